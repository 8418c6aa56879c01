package widget

import "sync/atomic"

// Base is the canonical Widget implementation, meant to be embedded by
// concrete widgets. The zero value is alive, enabled, and refuses
// focus.
//
// Tree mutation (AddChild, RemoveChild, Destroy, SetParent) is
// reserved for the event-loop thread. The enabled and alive flags are
// atomic because the animation engine reads them from its timer
// goroutine.
type Base struct {
	parent   Widget
	children []Widget

	disabled     atomic.Bool
	dead         atomic.Bool
	acceptsFocus bool
}

// Parent returns the owning widget set by AddChild.
// Note: when the parent embeds Base, the link resolves to that
// embedded Base; compare identities via the stored child values.
func (b *Base) Parent() Widget {
	return b.parent
}

// SetParent reparents the widget
func (b *Base) SetParent(p Widget) {
	b.parent = p
}

// Children returns the owned child widgets in insertion order
func (b *Base) Children() []Widget {
	return b.children
}

// AddChild appends c to the children and claims ownership
func (b *Base) AddChild(c Widget) {
	c.SetParent(b)
	b.children = append(b.children, c)
}

// RemoveChild detaches c; no-op if c is not a child
func (b *Base) RemoveChild(c Widget) {
	for i, ch := range b.children {
		if ch == c {
			b.children = append(b.children[:i], b.children[i+1:]...)
			c.SetParent(nil)
			return
		}
	}
}

// Enabled reports whether the widget receives input and focus events
func (b *Base) Enabled() bool {
	return !b.disabled.Load()
}

// SetEnabled toggles input delivery
func (b *Base) SetEnabled(enabled bool) {
	b.disabled.Store(!enabled)
}

// AcceptsFocus reports whether the widget is a tab-focus stop
func (b *Base) AcceptsFocus() bool {
	return b.acceptsFocus
}

// SetAcceptsFocus marks the widget as a tab-focus stop
func (b *Base) SetAcceptsFocus(accepts bool) {
	b.acceptsFocus = accepts
}

// Alive reports whether the widget still exists
func (b *Base) Alive() bool {
	return !b.dead.Load()
}

// Destroy marks the widget and its whole subtree dead. Stale
// references resolve to "absent" through Alive; physical detachment
// from the parent is the tree owner's concern.
func (b *Base) Destroy() {
	if b.dead.Swap(true) {
		return
	}
	for _, c := range b.children {
		c.Destroy()
	}
}
