package system

import (
	"github.com/lixenwraith/termkit/terminal"
	"github.com/lixenwraith/termkit/widget"
)

// loopState tracks the user-input event loop lifecycle
type loopState uint8

const (
	loopIdle loopState = iota
	loopRunning
	loopExiting
)

// loop is the user-input event loop. Each iteration: one blocking
// terminal read, synchronous dispatch of the decoded input, one queue
// drain, one exit check. The blocking read is the only operation in
// the runtime allowed to block indefinitely; this loop is the sole
// consumer of the terminal byte stream.
//
// Exit is cooperative: the flag flipped by Exit is observed here, so
// shutdown latency is bounded by the next input unit or animation
// wake, not immediate.
func (s *System) loop() int {
	s.state.Store(uint32(loopRunning))
	defer s.state.Store(uint32(loopIdle))

	for {
		in := s.term.Read()
		s.handleInput(in)
		s.drain()

		if s.exitRequested.Load() || in.Type == terminal.InputClosed {
			s.state.Store(uint32(loopExiting))
			return int(s.exitCode.Load())
		}
	}
}

// drain takes ownership of the queued events and feeds them to
// SendEvent in FIFO order. Posts racing the swap go to the fresh
// buffer and wait for the next iteration.
func (s *System) drain() {
	for _, e := range s.queue.Take() {
		s.SendEvent(e)
	}
}

// handleInput translates one decoded input unit into zero or more
// dispatches
func (s *System) handleInput(in terminal.Input) {
	switch in.Type {
	case terminal.InputKey:
		s.handleKey(in)
	case terminal.InputMouse:
		if head := s.Head(); head != nil {
			s.SendEvent(MouseEvent(head, widget.MouseEvent{
				X:      in.X,
				Y:      in.Y,
				Button: in.Button,
				Action: in.Action,
				Mod:    in.Mod,
			}))
		}
	case terminal.InputResize:
		if head := s.Head(); head != nil {
			s.SendEvent(ResizeEvent(head, in.Width, in.Height))
		}
	case terminal.InputWake, terminal.InputClosed, terminal.InputNone:
		// Wake exists only to trigger the drain; Closed is handled by
		// the loop itself
	}
}

// handleKey delivers keyboard input to the focus widget, except the
// focus-advance keys, which drive the tab-focus traversal instead of
// being delivered as ordinary key events.
func (s *System) handleKey(in terminal.Input) {
	if s.tabFocus.Load() {
		switch in.Key {
		case terminal.KeyTab:
			s.FocusNext()
			return
		case terminal.KeyBacktab:
			s.FocusPrev()
			return
		}
	}
	if s.focus != nil {
		s.SendEvent(KeyPressEvent(s.focus, widget.KeyEvent{
			Key:  in.Key,
			Rune: in.Rune,
			Mod:  in.Mod,
		}))
	}
}
