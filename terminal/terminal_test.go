package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/termkit/paint"
)

func newSim(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	return New(WithScreen(sim)), sim
}

// TestInitializeIdempotent verifies the idempotent acquire/release pair
func TestInitializeIdempotent(t *testing.T) {
	term, _ := newSim(t)

	if term.Initialized() {
		t.Fatal("Expected uninitialized terminal")
	}
	if err := term.Initialize(MouseBasic, SignalsOff); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := term.Initialize(MouseMove, SignalsOn); err != nil {
		t.Fatalf("Second Initialize: %v", err)
	}
	if !term.Initialized() {
		t.Fatal("Expected initialized terminal")
	}
	// First initialization wins; the second was a no-op
	if term.MouseMode() != MouseBasic {
		t.Errorf("Expected MouseBasic kept, got %v", term.MouseMode())
	}
	if term.SignalMode() != SignalsOff {
		t.Errorf("Expected SignalsOff kept, got %v", term.SignalMode())
	}

	term.Uninitialize()
	term.Uninitialize()
	if term.Initialized() {
		t.Fatal("Expected uninitialized after release")
	}
}

// TestReadKey verifies blocking read and key decoding
func TestReadKey(t *testing.T) {
	term, sim := newSim(t)
	if err := term.Initialize(MouseOff, SignalsOff); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer term.Uninitialize()

	go sim.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)

	in := readWithTimeout(t, term)
	if in.Type != InputKey || in.Key != KeyRune || in.Rune != 'k' {
		t.Errorf("Expected rune key 'k', got %+v", in)
	}
}

// TestReadWake verifies the synthetic nudge unblocks a read
func TestReadWake(t *testing.T) {
	term, _ := newSim(t)
	if err := term.Initialize(MouseOff, SignalsOff); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer term.Uninitialize()

	go term.Wake()

	in := readWithTimeout(t, term)
	if in.Type != InputWake {
		t.Errorf("Expected wake input, got %+v", in)
	}
}

// TestReadClosed verifies reads return Closed once uninitialized
func TestReadClosed(t *testing.T) {
	term, _ := newSim(t)
	if in := term.Read(); in.Type != InputClosed {
		t.Errorf("Expected Closed before initialization, got %+v", in)
	}
}

func readWithTimeout(t *testing.T, term *Terminal) Input {
	t.Helper()
	ch := make(chan Input, 1)
	go func() { ch <- term.Read() }()
	select {
	case in := <-ch:
		return in
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for Read")
		return Input{}
	}
}

// TestTranslateKeyTable checks representative key decodings
func TestTranslateKeyTable(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		key  Key
		r    rune
		mod  ModMask
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), KeyRune, 'a', ModNone},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeySpace, ' ', ModNone},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), KeyTab, 0, ModNone},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModShift), KeyBacktab, 0, ModShift},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone), KeyEnter, '\r', ModNone},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyUp, 0, ModNone},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), KeyF5, 0, ModNone},
		{"ctrl-a", tcell.NewEventKey(tcell.KeyCtrlA, 1, tcell.ModCtrl), KeyCtrlA, 1, ModCtrl},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, r, mod := translateKey(tt.ev)
			if key != tt.key || r != tt.r || mod != tt.mod {
				t.Errorf("Got key=%v r=%q mod=%v, want key=%v r=%q mod=%v",
					key, r, mod, tt.key, tt.r, tt.mod)
			}
		})
	}
}

// TestTranslateMouseSequence decodes a press-drag-release-move run
func TestTranslateMouseSequence(t *testing.T) {
	var prev tcell.ButtonMask

	x, y, btn, act := translateMouse(tcell.NewEventMouse(3, 4, tcell.Button1, tcell.ModNone), &prev)
	if x != 3 || y != 4 || btn != MouseBtnLeft || act != MouseActionPress {
		t.Errorf("Expected left press at (3,4), got %v %v at (%d,%d)", btn, act, x, y)
	}

	_, _, btn, act = translateMouse(tcell.NewEventMouse(5, 4, tcell.Button1, tcell.ModNone), &prev)
	if btn != MouseBtnLeft || act != MouseActionDrag {
		t.Errorf("Expected left drag, got %v %v", btn, act)
	}

	_, _, btn, act = translateMouse(tcell.NewEventMouse(5, 4, tcell.ButtonNone, tcell.ModNone), &prev)
	if btn != MouseBtnLeft || act != MouseActionRelease {
		t.Errorf("Expected left release, got %v %v", btn, act)
	}

	_, _, btn, act = translateMouse(tcell.NewEventMouse(6, 6, tcell.ButtonNone, tcell.ModNone), &prev)
	if btn != MouseBtnNone || act != MouseActionMove {
		t.Errorf("Expected bare move, got %v %v", btn, act)
	}

	_, _, btn, act = translateMouse(tcell.NewEventMouse(6, 6, tcell.WheelUp, tcell.ModNone), &prev)
	if btn != MouseBtnWheelUp || act != MouseActionPress {
		t.Errorf("Expected wheel up press, got %v %v", btn, act)
	}
}

// TestMouseModeFlags verifies each mode is a superset of the previous
func TestMouseModeFlags(t *testing.T) {
	if MouseOff.mouseFlags() != 0 {
		t.Error("Expected no flags for MouseOff")
	}
	basic := MouseBasic.mouseFlags()
	drag := MouseDrag.mouseFlags()
	move := MouseMove.mouseFlags()
	if drag&basic != basic {
		t.Error("Expected Drag to include Basic")
	}
	if move&drag != drag {
		t.Error("Expected Move to include Drag")
	}
}

// TestFlush verifies dirty cells land on the screen
func TestFlush(t *testing.T) {
	term, sim := newSim(t)
	if err := term.Initialize(MouseOff, SignalsOff); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	defer term.Uninitialize()

	buf := paint.NewBuffer(10, 2)
	buf.SetString(0, 0, "hi", paint.Hex("#ffffff"), paint.Default(), paint.AttrNone)
	term.Flush(buf)

	contents, w, _ := sim.GetContents()
	if w < 2 {
		t.Fatalf("Unexpected sim width %d", w)
	}
	if len(contents[0].Runes) == 0 || contents[0].Runes[0] != 'h' {
		t.Errorf("Expected 'h' at cell 0, got %v", contents[0].Runes)
	}
	if len(contents[1].Runes) == 0 || contents[1].Runes[0] != 'i' {
		t.Errorf("Expected 'i' at cell 1, got %v", contents[1].Runes)
	}

	if buf.DirtyCount() != 0 {
		t.Errorf("Expected dirty set cleared by flush, got %d", buf.DirtyCount())
	}
}
