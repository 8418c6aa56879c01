package system

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/termkit/widget"
)

// FPS expresses an animation rate in frames per second
type FPS int

// Interval converts the rate to a tick interval
func (f FPS) Interval() time.Duration {
	if f <= 0 {
		return minAnimationInterval
	}
	return time.Second / time.Duration(f)
}

const (
	// minAnimationInterval is the finest granularity the engine honors
	minAnimationInterval = time.Millisecond

	// idleWait is the sleep used while no widget is registered; a
	// registration nudge cuts it short
	idleWait = time.Hour
)

type animationEntry struct {
	interval time.Duration
	next     time.Time
}

// AnimationEngine delivers periodic tick events to registered widgets
// from a dedicated timer goroutine.
//
// The timer goroutine never dispatches and never touches widget state:
// it only posts Timer events and nudges the terminal so the event loop
// wakes and drains. Single-writer discipline over the widget tree
// stays with the loop thread.
type AnimationEngine struct {
	post  func(Event)
	wake  func()
	clock TimeProvider

	mu      sync.Mutex
	entries map[widget.Widget]*animationEntry

	running  atomic.Bool
	stopCh   chan struct{}
	recalcCh chan struct{}
	wg       sync.WaitGroup
}

// NewAnimationEngine creates a stopped engine. post receives the Timer
// events; wake unblocks the input loop after a batch of posts.
func NewAnimationEngine(post func(Event), wake func(), clock TimeProvider) *AnimationEngine {
	return &AnimationEngine{
		post:     post,
		wake:     wake,
		clock:    clock,
		entries:  make(map[widget.Widget]*animationEntry),
		recalcCh: make(chan struct{}, 1),
	}
}

// Start launches the timer goroutine. Idempotent
func (e *AnimationEngine) Start() {
	if e.running.Swap(true) {
		return
	}
	e.stopCh = make(chan struct{})
	e.wg.Add(1)
	Go(func() {
		defer e.wg.Done()
		e.run(e.stopCh)
	})
}

// Stop terminates the timer goroutine and waits for it. Registrations
// survive a stop; Start resumes them. Idempotent
func (e *AnimationEngine) Stop() {
	if !e.running.Swap(false) {
		return
	}
	close(e.stopCh)
	e.wg.Wait()
}

// IsRunning reports whether the timer goroutine is live
func (e *AnimationEngine) IsRunning() bool {
	return e.running.Load()
}

// RegisterWidget inserts or replaces the widget's entry; the interval
// takes effect on the next tick cycle. A widget holds at most one
// entry, re-registering only swaps the interval.
func (e *AnimationEngine) RegisterWidget(w widget.Widget, interval time.Duration) {
	if w == nil {
		return
	}
	if interval < minAnimationInterval {
		interval = minAnimationInterval
	}

	e.mu.Lock()
	e.entries[w] = &animationEntry{
		interval: interval,
		next:     e.clock.Now().Add(interval),
	}
	e.mu.Unlock()
	e.nudge()
}

// RegisterFPS is RegisterWidget with a frames-per-second rate
func (e *AnimationEngine) RegisterFPS(w widget.Widget, fps FPS) {
	e.RegisterWidget(w, fps.Interval())
}

// UnregisterWidget removes the widget's entry. Safe to call when not
// registered
func (e *AnimationEngine) UnregisterWidget(w widget.Widget) {
	e.mu.Lock()
	delete(e.entries, w)
	e.mu.Unlock()
	e.nudge()
}

// Registered reports whether w currently holds an entry
func (e *AnimationEngine) Registered(w widget.Widget) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.entries[w]
	return ok
}

// nudge makes the timer goroutine recompute its wait
func (e *AnimationEngine) nudge() {
	select {
	case e.recalcCh <- struct{}{}:
	default:
	}
}

// run sleeps until the earliest due entry, posts ticks, repeats
func (e *AnimationEngine) run(stopCh <-chan struct{}) {
	timer := time.NewTimer(idleWait)
	defer timer.Stop()

	for {
		wait := e.nextWait()
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(wait)

		select {
		case <-stopCh:
			return
		case <-e.recalcCh:
		case <-timer.C:
			e.tick(e.clock.Now())
		}
	}
}

// nextWait returns the duration until the earliest due entry
func (e *AnimationEngine) nextWait() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.entries) == 0 {
		return idleWait
	}
	now := e.clock.Now()
	wait := idleWait
	for _, entry := range e.entries {
		if d := entry.next.Sub(now); d < wait {
			wait = d
		}
	}
	if wait < minAnimationInterval {
		wait = minAnimationInterval
	}
	return wait
}

// tick posts Timer events for every due entry and advances deadlines.
// Widgets destroyed while registered are dropped here instead of
// ticking a stale target.
func (e *AnimationEngine) tick(now time.Time) int {
	e.mu.Lock()
	var due []widget.Widget
	for w, entry := range e.entries {
		if !w.Alive() {
			delete(e.entries, w)
			continue
		}
		if !entry.next.After(now) {
			due = append(due, w)
			entry.next = entry.next.Add(entry.interval)
			if !entry.next.After(now) {
				// Missed cycles collapse into one tick, no bursts
				entry.next = now.Add(entry.interval)
			}
		}
	}
	e.mu.Unlock()

	for _, w := range due {
		e.post(TimerEvent(w))
	}
	if len(due) > 0 && e.wake != nil {
		e.wake()
	}
	return len(due)
}
