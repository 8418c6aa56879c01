package system

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termkit/terminal"
)

// waitFor polls cond until it holds or the deadline passes
func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", what)
}

// TestRunLoopEndToEnd drives the full loop against a simulation
// screen: initial resize/paint, tab-focus traversal, filter-based
// exit, and terminal release on the way out.
func TestRunLoopEndToEnd(t *testing.T) {
	term, sim := newSimPair(t)
	s := New(
		WithTerminal(term),
		WithMouseMode(terminal.MouseBasic),
		WithSignalMode(terminal.SignalsOff),
	)
	s.EnableTabFocus()

	head := newTestWidget()
	a := newTestWidget()
	b := newTestWidget()
	head.AddChild(a)
	head.AddChild(b)
	if err := s.SetHead(head); err != nil {
		t.Fatalf("SetHead: %v", err)
	}

	s.InstallEventFilter(func(e Event) bool {
		if e.Kind == EventKeyPress && e.Key.Rune == 'q' {
			s.Exit(3)
			return true
		}
		return false
	})

	type result struct {
		code int
		err  error
	}
	resCh := make(chan result, 1)
	go func() {
		code, err := s.Run()
		resCh <- result{code, err}
	}()

	waitFor(t, "loop start", func() bool { return s.Running() && term.Initialized() })

	// Head was enabled, focused, and received the initial events
	if !head.Enabled() {
		t.Error("Expected head enabled by Run")
	}
	waitFor(t, "initial paint", func() bool { return head.paints.Load() >= 1 })
	if head.resizes.Load() < 1 {
		t.Errorf("Expected initial resize, got %d", head.resizes.Load())
	}

	// Tab advances focus from head to the first child stop
	sim.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	waitFor(t, "focus advance", func() bool { return a.focusIns.Load() >= 1 })

	// Ordinary key input reaches the focus widget
	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	waitFor(t, "key delivery", func() bool { return a.keys.Load() >= 1 })
	if a.lastKey.Rune != 'x' {
		t.Errorf("Expected rune 'x', got %q", a.lastKey.Rune)
	}

	// The quit filter consumes 'q' and requests exit
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case res := <-resCh:
		if res.err != nil {
			t.Fatalf("Run: %v", res.err)
		}
		if res.code != 3 {
			t.Errorf("Expected exit code 3, got %d", res.code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for Run to return")
	}

	if term.Initialized() {
		t.Error("Expected terminal released after Run")
	}
	if s.Running() {
		t.Error("Expected running flag cleared")
	}
	// 'q' never reached any widget
	if b.keys.Load() != 0 || head.keys.Load() != 0 {
		t.Error("Expected filtered key to reach no widget")
	}
}

// TestRunLoopAnimationDelivery runs the loop with a fast animation
// registration and verifies Timer events arrive on the loop thread via
// the queue drain
func TestRunLoopAnimationDelivery(t *testing.T) {
	term, sim := newSimPair(t)
	s := New(
		WithTerminal(term),
		WithSignalMode(terminal.SignalsOff),
	)
	head := newTestWidget()
	if err := s.SetHead(head); err != nil {
		t.Fatalf("SetHead: %v", err)
	}
	s.EnableAnimation(head, 5*time.Millisecond)

	resCh := make(chan int, 1)
	go func() {
		code, _ := s.Run()
		resCh <- code
	}()

	waitFor(t, "loop start", func() bool { return s.Running() })
	waitFor(t, "timer delivery", func() bool { return head.timers.Load() >= 3 })

	if !s.Animation().IsRunning() {
		t.Error("Expected animation engine running")
	}

	// Exit goes through the loop thread: a filter triggers it on the
	// next key
	s.InstallEventFilter(func(e Event) bool {
		if e.Kind == EventKeyPress {
			s.Exit(0)
			return true
		}
		return false
	})
	sim.InjectKey(tcell.KeyRune, 'z', tcell.ModNone)

	select {
	case <-resCh:
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for Run to return")
	}

	if s.Animation().IsRunning() {
		t.Error("Expected animation engine stopped with the loop")
	}
}
