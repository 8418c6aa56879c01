package system

import "github.com/lixenwraith/termkit/widget"

// EventKind discriminates runtime events
type EventKind uint8

const (
	EventNone EventKind = iota
	EventPaint
	EventDelete
	EventFocusIn
	EventFocusOut
	EventKeyPress
	EventMouse
	EventResize
	EventTimer
	EventCustom
)

// String returns human-readable kind name
func (k EventKind) String() string {
	switch k {
	case EventPaint:
		return "Paint"
	case EventDelete:
		return "Delete"
	case EventFocusIn:
		return "FocusIn"
	case EventFocusOut:
		return "FocusOut"
	case EventKeyPress:
		return "KeyPress"
	case EventMouse:
		return "Mouse"
	case EventResize:
		return "Resize"
	case EventTimer:
		return "Timer"
	case EventCustom:
		return "Custom"
	default:
		return "None"
	}
}

// Event is one deliverable unit: a kind, exactly one target widget
// resolved at post time, and the kind-specific payload. The target may
// die before delivery; the dispatcher re-validates and drops stale
// events without error.
type Event struct {
	Kind   EventKind
	Target widget.Widget

	// Kind-specific payloads
	Key           widget.KeyEvent
	Mouse         widget.MouseEvent
	Width, Height int
	Data          any
}

// PaintEvent requests a repaint of w
func PaintEvent(w widget.Widget) Event {
	return Event{Kind: EventPaint, Target: w}
}

// DeleteEvent requests destruction of w and its subtree
func DeleteEvent(w widget.Widget) Event {
	return Event{Kind: EventDelete, Target: w}
}

// FocusInEvent notifies w that it gained focus
func FocusInEvent(w widget.Widget) Event {
	return Event{Kind: EventFocusIn, Target: w}
}

// FocusOutEvent notifies w that it lost focus
func FocusOutEvent(w widget.Widget) Event {
	return Event{Kind: EventFocusOut, Target: w}
}

// KeyPressEvent delivers keyboard input to w
func KeyPressEvent(w widget.Widget, k widget.KeyEvent) Event {
	return Event{Kind: EventKeyPress, Target: w, Key: k}
}

// MouseEvent delivers mouse input to w
func MouseEvent(w widget.Widget, m widget.MouseEvent) Event {
	return Event{Kind: EventMouse, Target: w, Mouse: m}
}

// ResizeEvent notifies w of new terminal geometry
func ResizeEvent(w widget.Widget, width, height int) Event {
	return Event{Kind: EventResize, Target: w, Width: width, Height: height}
}

// TimerEvent delivers one animation tick to w
func TimerEvent(w widget.Widget) Event {
	return Event{Kind: EventTimer, Target: w}
}

// CustomEvent delivers an application-defined payload to w
func CustomEvent(w widget.Widget, data any) Event {
	return Event{Kind: EventCustom, Target: w, Data: data}
}
