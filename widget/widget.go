// Package widget defines the tree-node contract consumed by the runtime.
//
// A widget is anything that can live in the display tree. Event handling is
// modeled as small optional capability interfaces rather than one fat
// interface; the dispatcher type-asserts for the capability matching the
// event kind and treats an absent capability as "not consumed".
package widget

import "github.com/lixenwraith/termkit/terminal"

// Widget is the minimal contract for a node in the display tree.
// The canonical implementation is Base; concrete widgets embed it.
type Widget interface {
	// Parent returns the owning widget, nil for a detached or head widget.
	Parent() Widget
	// SetParent reparents the widget. Called by AddChild/RemoveChild only.
	SetParent(Widget)
	// Children returns the owned child widgets in insertion order.
	Children() []Widget

	// Enabled reports whether the widget participates in input delivery.
	// A disabled widget never receives input or focus events but may
	// still be painted.
	Enabled() bool
	SetEnabled(bool)

	// AcceptsFocus reports whether the widget is a tab-focus stop.
	AcceptsFocus() bool

	// Alive reports whether the widget still exists. Destroyed widgets
	// stay reachable through stale references but drop every event.
	Alive() bool

	// Destroy marks the widget and its subtree dead and detaches it from
	// its parent. Safe to call more than once.
	Destroy()
}

// Capability interfaces, one per event kind. Each handler returns whether
// the event was consumed; the runtime does not bubble unconsumed events.

// PaintHandler receives paint requests.
type PaintHandler interface {
	HandlePaint() bool
}

// FocusHandler receives focus-in and focus-out notifications.
type FocusHandler interface {
	HandleFocusIn() bool
	HandleFocusOut() bool
}

// KeyHandler receives keyboard input while the widget holds focus.
type KeyHandler interface {
	HandleKey(KeyEvent) bool
}

// MouseHandler receives mouse input.
type MouseHandler interface {
	HandleMouse(MouseEvent) bool
}

// ResizeHandler receives terminal geometry changes.
type ResizeHandler interface {
	HandleResize(width, height int) bool
}

// TimerHandler receives animation ticks scheduled through the
// animation engine.
type TimerHandler interface {
	HandleTimer() bool
}

// CustomHandler receives application-defined events.
type CustomHandler interface {
	HandleCustom(data any) bool
}

// DeleteHandler is notified immediately before the widget is destroyed.
type DeleteHandler interface {
	HandleDelete() bool
}

// KeyEvent carries one decoded keyboard input unit.
type KeyEvent struct {
	Key  terminal.Key
	Rune rune
	Mod  terminal.ModMask
}

// MouseEvent carries one decoded mouse input unit.
type MouseEvent struct {
	X, Y   int
	Button terminal.MouseButton
	Action terminal.MouseAction
	Mod    terminal.ModMask
}
