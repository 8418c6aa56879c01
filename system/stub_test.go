package system

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termkit/terminal"
	"github.com/lixenwraith/termkit/widget"
)

// newSimTerminal builds a terminal over a tcell simulation screen
func newSimTerminal(t *testing.T) *terminal.Terminal {
	t.Helper()
	term, _ := newSimPair(t)
	return term
}

// newSimPair additionally exposes the simulation screen for input
// injection
func newSimPair(t *testing.T) (*terminal.Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	return terminal.New(terminal.WithScreen(sim)), sim
}

// failScreen is a minimal mock whose Init always fails
type failScreen struct {
	tcell.Screen
}

func (f *failScreen) Init() error {
	return errInitRefused
}

var errInitRefused = errors.New("simulated init failure")

// testWidget records every capability invocation with atomic counters
type testWidget struct {
	widget.Base

	paints    atomic.Int32
	focusIns  atomic.Int32
	focusOuts atomic.Int32
	keys      atomic.Int32
	mice      atomic.Int32
	resizes   atomic.Int32
	timers    atomic.Int32
	customs   atomic.Int32
	deletes   atomic.Int32

	lastKey    widget.KeyEvent
	lastData   any
	lastWidth  int
	lastHeight int
}

func newTestWidget() *testWidget {
	w := &testWidget{}
	w.SetAcceptsFocus(true)
	return w
}

func (w *testWidget) HandlePaint() bool {
	w.paints.Add(1)
	return true
}

func (w *testWidget) HandleFocusIn() bool {
	w.focusIns.Add(1)
	return true
}

func (w *testWidget) HandleFocusOut() bool {
	w.focusOuts.Add(1)
	return true
}

func (w *testWidget) HandleKey(k widget.KeyEvent) bool {
	// Payload before the counter; readers synchronize on the counter
	w.lastKey = k
	w.keys.Add(1)
	return true
}

func (w *testWidget) HandleMouse(widget.MouseEvent) bool {
	w.mice.Add(1)
	return true
}

func (w *testWidget) HandleResize(width, height int) bool {
	w.lastWidth, w.lastHeight = width, height
	w.resizes.Add(1)
	return true
}

func (w *testWidget) HandleTimer() bool {
	w.timers.Add(1)
	return true
}

func (w *testWidget) HandleCustom(data any) bool {
	w.lastData = data
	w.customs.Add(1)
	return true
}

func (w *testWidget) HandleDelete() bool {
	w.deletes.Add(1)
	return true
}

// bareWidget has no capability hooks at all
type bareWidget struct {
	widget.Base
}
