// Package terminal owns the shared terminal handle: managed-mode
// lifecycle, blocking input decoding, cursor control, and buffer
// flushing. It is the only package that talks to tcell directly.
package terminal

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termkit/paint"
)

// SignalMode controls ctrl-key handling
type SignalMode uint8

const (
	// SignalsOn raises the OS signal for ctrl-C, ctrl-Z and ctrl-\
	// instead of delivering them as key input
	SignalsOn SignalMode = iota
	// SignalsOff delivers ctrl-key combinations as ordinary key input
	SignalsOff
)

// Terminal wraps one tcell screen behind an idempotent
// Initialize/Uninitialize pair. A single instance is shared by the
// whole process; the input loop is its only reader.
type Terminal struct {
	mu          sync.Mutex
	screen      tcell.Screen
	newScreen   func() (tcell.Screen, error)
	initialized bool
	mouseMode   MouseMode
	signalMode  SignalMode

	// Reader-thread state, no locking needed
	lastButtons tcell.ButtonMask

	cursorVisible bool
	cursorX       int
	cursorY       int
}

// Option configures a Terminal
type Option func(*Terminal)

// WithScreen substitutes the tcell screen, used by tests to inject a
// simulation screen
func WithScreen(s tcell.Screen) Option {
	return func(t *Terminal) {
		t.newScreen = func() (tcell.Screen, error) { return s, nil }
	}
}

// New creates an uninitialized Terminal
func New(opts ...Option) *Terminal {
	t := &Terminal{newScreen: tcell.NewScreen}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Initialize enters managed mode: raw input, alternate screen, hidden
// cursor, mouse reporting per mode. No-op if already initialized.
// On failure the terminal is left untouched.
func (t *Terminal) Initialize(mouse MouseMode, signals SignalMode) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	s, err := t.newScreen()
	if err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}

	if flags := mouse.mouseFlags(); flags != 0 {
		s.EnableMouse(flags)
	}
	s.HideCursor()

	t.screen = s
	t.mouseMode = mouse
	t.signalMode = signals
	t.lastButtons = 0
	t.cursorVisible = false
	t.initialized = true
	return nil
}

// Uninitialize restores the terminal state. Safe to call multiple
// times and on every exit path. Unblocks a concurrent Read.
func (t *Terminal) Uninitialize() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized {
		return
	}
	t.screen.Fini()
	t.initialized = false
}

// Initialized reports whether the terminal is in managed mode
func (t *Terminal) Initialized() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.initialized
}

// MouseMode returns the mode requested at Initialize
func (t *Terminal) MouseMode() MouseMode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mouseMode
}

// SignalMode returns the mode requested at Initialize
func (t *Terminal) SignalMode() SignalMode {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.signalMode
}

// Read blocks until the next decoded input unit. The input loop is the
// sole caller; serializing reads here keeps the byte stream from
// interleaving. Returns InputClosed once the terminal is uninitialized.
func (t *Terminal) Read() Input {
	t.mu.Lock()
	s := t.screen
	ok := t.initialized
	sigMode := t.signalMode
	t.mu.Unlock()

	if !ok {
		return Input{Type: InputClosed}
	}

	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized
			return Input{Type: InputClosed}
		case *tcell.EventKey:
			key, r, mod := translateKey(ev)
			if sigMode == SignalsOn && raiseForKey(key) {
				continue
			}
			return Input{Type: InputKey, Key: key, Rune: r, Mod: mod}
		case *tcell.EventMouse:
			x, y, btn, act := translateMouse(ev, &t.lastButtons)
			return Input{Type: InputMouse, X: x, Y: y, Button: btn, Action: act, Mod: translateMod(ev.Modifiers())}
		case *tcell.EventResize:
			w, h := ev.Size()
			return Input{Type: InputResize, Width: w, Height: h}
		case *tcell.EventInterrupt:
			return Input{Type: InputWake}
		default:
			continue
		}
	}
}

// Wake injects a synthetic input unit so a blocked Read returns.
// Safe to call from any goroutine; no-op when uninitialized.
func (t *Terminal) Wake() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.initialized {
		return
	}
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Size returns current terminal dimensions, zero when uninitialized
func (t *Terminal) Size() (width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.initialized {
		return 0, 0
	}
	return t.screen.Size()
}

// ShowCursor sets cursor visibility at the last moved-to position
func (t *Terminal) ShowCursor(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.initialized {
		return
	}
	t.cursorVisible = visible
	if visible {
		t.screen.ShowCursor(t.cursorX, t.cursorY)
	} else {
		t.screen.HideCursor()
	}
}

// MoveCursor positions the cursor (0-indexed), keeping visibility
func (t *Terminal) MoveCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cursorX, t.cursorY = x, y
	if t.initialized && t.cursorVisible {
		t.screen.ShowCursor(x, y)
	}
}

// Flush writes the buffer's dirty cells to the screen and shows them
func (t *Terminal) Flush(buf *paint.Buffer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.initialized {
		return
	}
	buf.Drain(func(x, y int, c paint.Cell) {
		if c.Rune == 0 {
			// Continuation half of a wide glyph, tcell manages it
			return
		}
		t.screen.SetContent(x, y, c.Rune, nil, styleFor(c))
	})
	t.screen.Show()
}

// Sync forces a full redraw
func (t *Terminal) Sync() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.initialized {
		t.screen.Sync()
	}
}

// Beep rings the terminal bell
func (t *Terminal) Beep() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.initialized {
		_ = t.screen.Beep()
	}
}

// styleFor converts cell styling to a tcell style
func styleFor(c paint.Cell) tcell.Style {
	st := tcell.StyleDefault
	if r, g, b, ok := c.Fg.RGB255(); ok {
		st = st.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	if r, g, b, ok := c.Bg.RGB255(); ok {
		st = st.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	if c.Attrs&paint.AttrBold != 0 {
		st = st.Bold(true)
	}
	if c.Attrs&paint.AttrDim != 0 {
		st = st.Dim(true)
	}
	if c.Attrs&paint.AttrItalic != 0 {
		st = st.Italic(true)
	}
	if c.Attrs&paint.AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if c.Attrs&paint.AttrBlink != 0 {
		st = st.Blink(true)
	}
	if c.Attrs&paint.AttrReverse != 0 {
		st = st.Reverse(true)
	}
	return st
}

// Emergency escape sequences, written raw when recovering from a crash
var (
	csiMouseOff     = []byte("\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l")
	csiCursorShow   = []byte("\x1b[?25h")
	csiAltScreenOff = []byte("\x1b[?1049l")
	csiSGR0         = []byte("\x1b[0m")
)

// EmergencyReset restores the terminal to a usable state without going
// through tcell. Used by the crash handler when screen state is unknown.
func EmergencyReset(w io.Writer) {
	w.Write(csiMouseOff)
	w.Write(csiCursorShow)
	w.Write(csiAltScreenOff)
	w.Write(csiSGR0)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
