// Package system is the runtime core of termkit: it glues the
// terminal, the widget tree, the event queue, and the animation engine
// together and runs the user-input event loop.
//
// Two goroutines participate at runtime. The goroutine calling Run
// owns the event loop and is the only one allowed to mutate the widget
// tree or call SendEvent. The animation engine's timer goroutine only
// posts events; the queue's swap-on-drain is the synchronization point
// that makes cross-goroutine posting safe without holding a lock
// during dispatch.
package system

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/termkit/audio"
	"github.com/lixenwraith/termkit/paint"
	"github.com/lixenwraith/termkit/terminal"
	"github.com/lixenwraith/termkit/widget"
)

// System organizes the highest level of the framework: head widget,
// focus state, event queue binding, and lifecycle.
type System struct {
	term  *terminal.Terminal
	queue *EventQueue
	anim  *AnimationEngine
	clock TimeProvider
	bell  *audio.Bell

	mouseMode  terminal.MouseMode
	signalMode terminal.SignalMode

	// head is read from the animation goroutine, so the pointer swap
	// must be atomic
	head atomic.Pointer[headRef]

	// focus is loop-thread state
	focus    widget.Widget
	tabFocus atomic.Bool

	state         atomic.Uint32 // loopState
	running       atomic.Bool
	exitRequested atomic.Bool
	exitCode      atomic.Int32

	filterMu     sync.Mutex
	filters      []installedFilter
	nextFilterID int

	palette atomic.Pointer[paint.Palette]
}

type headRef struct {
	w widget.Widget
}

// Option configures a System
type Option func(*System)

// WithTerminal substitutes the terminal, used by tests to inject a
// simulation-backed one
func WithTerminal(t *terminal.Terminal) Option {
	return func(s *System) { s.term = t }
}

// WithMouseMode selects the mouse reporting mode used at Run
func WithMouseMode(m terminal.MouseMode) Option {
	return func(s *System) { s.mouseMode = m }
}

// WithSignalMode selects ctrl-key signal handling used at Run
func WithSignalMode(m terminal.SignalMode) Option {
	return func(s *System) { s.signalMode = m }
}

// WithClock substitutes the time source for animation scheduling
func WithClock(tp TimeProvider) Option {
	return func(s *System) { s.clock = tp }
}

// WithBell attaches an audio bell used by Beep
func WithBell(b *audio.Bell) Option {
	return func(s *System) { s.bell = b }
}

// New creates a System. The terminal is not touched until Run.
func New(opts ...Option) *System {
	s := &System{
		term:       terminal.New(),
		queue:      NewEventQueue(),
		clock:      NewMonotonicTimeProvider(),
		mouseMode:  terminal.MouseBasic,
		signalMode: terminal.SignalsOn,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.anim = NewAnimationEngine(s.PostEvent, s.term.Wake, s.clock)
	s.palette.Store(paint.DefaultPalette())
	return s
}

// Head returns the current head widget, nil before SetHead
func (s *System) Head() widget.Widget {
	if r := s.head.Load(); r != nil {
		return r.w
	}
	return nil
}

// SetHead installs the root of the displayed widget tree, disabling
// the previous head. Legal only before Run or after Run returns;
// swapping the head mid-run would race the loop's reads and is
// rejected, never silently accepted.
func (s *System) SetHead(w widget.Widget) error {
	if s.running.Load() {
		return ErrRunning
	}
	if old := s.Head(); old != nil && old != w {
		old.SetEnabled(false)
	}
	if w == nil {
		s.head.Store(nil)
	} else {
		s.head.Store(&headRef{w: w})
	}
	return nil
}

// Run starts the user-input event loop and blocks until Exit is
// called from within it. The head widget is enabled and given focus
// first. Returns the exit code passed to Exit.
//
// Fails before any screen change when no head is set or the terminal
// cannot enter managed mode, so a failed Run never leaves the
// terminal half-configured.
func (s *System) Run() (int, error) {
	head := s.Head()
	if head == nil {
		return 0, ErrNoHead
	}
	if s.running.Swap(true) {
		return 0, ErrRunning
	}
	defer s.running.Store(false)

	if err := s.term.Initialize(s.mouseMode, s.signalMode); err != nil {
		return 0, err
	}
	defer s.term.Uninitialize()
	defer s.anim.Stop()

	s.exitRequested.Store(false)
	s.exitCode.Store(0)

	head.SetEnabled(true)
	s.SetFocus(head)

	if w, h := s.term.Size(); w > 0 && h > 0 {
		s.SendEvent(ResizeEvent(head, w, h))
	}
	s.SendEvent(PaintEvent(head))

	return s.loop(), nil
}

// Exit sets the exit flag and code for the event loop; the loop
// observes it at the end of its current iteration and returns.
//
// Only call from the event-loop thread (a widget handler or filter),
// not from the animation goroutine: an exit requested elsewhere is
// blocked until the next input unit arrives.
func (s *System) Exit(code int) {
	s.exitCode.Store(int32(code))
	s.exitRequested.Store(true)
}

// Running reports whether the event loop is live
func (s *System) Running() bool {
	return s.running.Load()
}

// Focus returns the widget currently eligible for keyboard input
func (s *System) Focus() widget.Widget {
	return s.focus
}

// SetFocus gives program focus to w: FocusOut to the previous holder,
// FocusIn to w. No-op when w already holds focus, so repeated calls
// produce exactly one FocusOut/FocusIn pair.
func (s *System) SetFocus(w widget.Widget) {
	if w == s.focus {
		return
	}
	s.focusTo(w)
}

// ClearFocus removes focus entirely; only FocusOut is sent
func (s *System) ClearFocus() {
	if s.focus == nil {
		return
	}
	s.focusTo(nil)
}

func (s *System) focusTo(w widget.Widget) {
	if old := s.focus; old != nil {
		s.SendEvent(FocusOutEvent(old))
	}
	s.focus = w
	if w != nil {
		s.SendEvent(FocusInEvent(w))
	}
}

// FocusNext advances focus to the next tab stop in the tree
func (s *System) FocusNext() {
	if w := widget.NextFocus(s.Head(), s.focus); w != nil {
		s.SetFocus(w)
	}
}

// FocusPrev moves focus to the previous tab stop in the tree
func (s *System) FocusPrev() {
	if w := widget.PrevFocus(s.Head(), s.focus); w != nil {
		s.SetFocus(w)
	}
}

// EnableTabFocus lets Tab/Backtab drive the focus traversal instead
// of reaching the focus widget as key input
func (s *System) EnableTabFocus() {
	s.tabFocus.Store(true)
}

// DisableTabFocus restores Tab/Backtab as ordinary key input
func (s *System) DisableTabFocus() {
	s.tabFocus.Store(false)
}

// TabFocusEnabled reports whether focus-advance keys are intercepted
func (s *System) TabFocusEnabled() bool {
	return s.tabFocus.Load()
}

// PostEvent appends the event to the queue bound to the running loop.
// Never blocks, safe from any goroutine; this is the only event entry
// point permitted to the animation goroutine.
func (s *System) PostEvent(e Event) {
	s.queue.Post(e)
}

// EnableAnimation registers w for periodic Timer events, starting the
// animation engine on first use. Re-registering replaces the interval
// in place.
func (s *System) EnableAnimation(w widget.Widget, interval time.Duration) {
	if !s.anim.IsRunning() {
		s.anim.Start()
	}
	s.anim.RegisterWidget(w, interval)
}

// EnableAnimationFPS is EnableAnimation with a frames-per-second rate
func (s *System) EnableAnimationFPS(w widget.Widget, fps FPS) {
	s.EnableAnimation(w, fps.Interval())
}

// DisableAnimation removes w's registration. The engine keeps running
// even when empty.
func (s *System) DisableAnimation(w widget.Widget) {
	s.anim.UnregisterWidget(w)
}

// Animation exposes the engine for inspection
func (s *System) Animation() *AnimationEngine {
	return s.anim
}

// Terminal returns the shared terminal handle
func (s *System) Terminal() *terminal.Terminal {
	return s.term
}

// Palette returns the current global palette
func (s *System) Palette() *paint.Palette {
	return s.palette.Load()
}

// SetPalette replaces the global palette consumed by painting code.
// Rejects nil, performs no further validation.
func (s *System) SetPalette(p *paint.Palette) error {
	if p == nil {
		return ErrNilPalette
	}
	s.palette.Store(p)
	return nil
}

// Beep rings the audio bell when one is attached and ready, the
// terminal bell otherwise
func (s *System) Beep() {
	if s.bell != nil && s.bell.Ready() {
		s.bell.Ring(880, 50*time.Millisecond)
		return
	}
	s.term.Beep()
}
