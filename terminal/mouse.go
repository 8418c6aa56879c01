package terminal

import "github.com/gdamore/tcell/v2"

// MouseButton represents mouse button identity
type MouseButton uint8

const (
	MouseBtnNone MouseButton = iota
	MouseBtnLeft
	MouseBtnMiddle
	MouseBtnRight
	MouseBtnWheelUp
	MouseBtnWheelDown
)

// MouseAction represents the type of mouse event
type MouseAction uint8

const (
	MouseActionNone MouseAction = iota
	MouseActionPress
	MouseActionRelease
	MouseActionMove
	MouseActionDrag
)

// MouseMode controls which mouse events the terminal reports.
// Each mode is a strict superset of the previous one.
type MouseMode uint8

const (
	MouseOff   MouseMode = iota // No mouse events
	MouseBasic                  // Press/release for all buttons and the wheel
	MouseDrag                   // Basic, plus motion while a button is held
	MouseMove                   // Basic, plus all motion events
)

// String returns human-readable button name
func (b MouseButton) String() string {
	switch b {
	case MouseBtnLeft:
		return "Left"
	case MouseBtnMiddle:
		return "Middle"
	case MouseBtnRight:
		return "Right"
	case MouseBtnWheelUp:
		return "WheelUp"
	case MouseBtnWheelDown:
		return "WheelDown"
	default:
		return "None"
	}
}

// String returns human-readable action name
func (a MouseAction) String() string {
	switch a {
	case MouseActionPress:
		return "Press"
	case MouseActionRelease:
		return "Release"
	case MouseActionMove:
		return "Move"
	case MouseActionDrag:
		return "Drag"
	default:
		return "None"
	}
}

// String returns human-readable mode name
func (m MouseMode) String() string {
	switch m {
	case MouseBasic:
		return "Basic"
	case MouseDrag:
		return "Drag"
	case MouseMove:
		return "Move"
	default:
		return "Off"
	}
}

// mouseFlags maps a MouseMode to the tcell enable flags
func (m MouseMode) mouseFlags() tcell.MouseFlags {
	switch m {
	case MouseBasic:
		return tcell.MouseButtonEvents
	case MouseDrag:
		return tcell.MouseButtonEvents | tcell.MouseDragEvents
	case MouseMove:
		return tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents
	default:
		return 0
	}
}

// buttonBits lists the tcell button bits the decoder tracks, in the
// priority order used when several change in one report.
var buttonBits = []struct {
	mask tcell.ButtonMask
	btn  MouseButton
}{
	{tcell.Button1, MouseBtnLeft},
	{tcell.Button3, MouseBtnMiddle},
	{tcell.Button2, MouseBtnRight},
}

// translateMouse converts a tcell mouse event into (x, y, button, action)
// by diffing the current button mask against the previous report.
// prev is updated to the held-button state after the event.
func translateMouse(ev *tcell.EventMouse, prev *tcell.ButtonMask) (int, int, MouseButton, MouseAction) {
	x, y := ev.Position()
	cur := ev.Buttons()

	// Wheel events are momentary; they never appear in prev
	if cur&tcell.WheelUp != 0 {
		return x, y, MouseBtnWheelUp, MouseActionPress
	}
	if cur&tcell.WheelDown != 0 {
		return x, y, MouseBtnWheelDown, MouseActionPress
	}

	held := cur & tcell.ButtonMask(0xFF)
	was := *prev
	*prev = held

	for _, b := range buttonBits {
		pressed := held&b.mask != 0
		wasPressed := was&b.mask != 0
		if pressed && !wasPressed {
			return x, y, b.btn, MouseActionPress
		}
		if !pressed && wasPressed {
			return x, y, b.btn, MouseActionRelease
		}
	}

	// No button transition: motion report
	for _, b := range buttonBits {
		if held&b.mask != 0 {
			return x, y, b.btn, MouseActionDrag
		}
	}
	return x, y, MouseBtnNone, MouseActionMove
}
