package system

import "github.com/lixenwraith/termkit/widget"

// EventFilter inspects an event before its target sees it. Returning
// true consumes the event and prevents delivery.
type EventFilter func(Event) bool

// InstallEventFilter registers a filter and returns its handle.
// Filters run in installation order on every SendEvent.
func (s *System) InstallEventFilter(f EventFilter) int {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	s.nextFilterID++
	id := s.nextFilterID
	s.filters = append(s.filters, installedFilter{id: id, fn: f})
	return id
}

// RemoveEventFilter unregisters the filter with the given handle.
// No-op for unknown handles.
func (s *System) RemoveEventFilter(id int) {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	for i, f := range s.filters {
		if f.id == id {
			s.filters = append(s.filters[:i], s.filters[i+1:]...)
			return
		}
	}
}

type installedFilter struct {
	id int
	fn EventFilter
}

func (s *System) snapshotFilters() []installedFilter {
	s.filterMu.Lock()
	defer s.filterMu.Unlock()
	if len(s.filters) == 0 {
		return nil
	}
	out := make([]installedFilter, len(s.filters))
	copy(out, s.filters)
	return out
}

// SendEvent synchronously delivers one event, bypassing the queue:
// filters first, then the capability hook matching the event kind.
// Returns whether the event reached the target widget.
//
// Stale or disabled targets are dropped silently with a false return;
// a UI runtime stays live despite widget teardown races. Paint and
// Delete are exempt from the enabled check: a disabled widget may
// still be painted, and destruction must always go through.
//
// Must be called from the event-loop thread only. Other goroutines
// hand off through PostEvent.
func (s *System) SendEvent(e Event) bool {
	t := e.Target
	if t == nil || !t.Alive() {
		return false
	}
	if !t.Enabled() && e.Kind != EventPaint && e.Kind != EventDelete {
		return false
	}

	for _, f := range s.snapshotFilters() {
		if f.fn(e) {
			return false
		}
	}

	switch e.Kind {
	case EventPaint:
		if h, ok := t.(widget.PaintHandler); ok {
			h.HandlePaint()
		}
	case EventDelete:
		s.deliverDelete(t)
	case EventFocusIn:
		if h, ok := t.(widget.FocusHandler); ok {
			h.HandleFocusIn()
		}
	case EventFocusOut:
		if h, ok := t.(widget.FocusHandler); ok {
			h.HandleFocusOut()
		}
	case EventKeyPress:
		if h, ok := t.(widget.KeyHandler); ok {
			h.HandleKey(e.Key)
		}
	case EventMouse:
		if h, ok := t.(widget.MouseHandler); ok {
			h.HandleMouse(e.Mouse)
		}
	case EventResize:
		if h, ok := t.(widget.ResizeHandler); ok {
			h.HandleResize(e.Width, e.Height)
		}
	case EventTimer:
		if h, ok := t.(widget.TimerHandler); ok {
			h.HandleTimer()
		}
	case EventCustom:
		if h, ok := t.(widget.CustomHandler); ok {
			h.HandleCustom(e.Data)
		}
	default:
		return false
	}
	return true
}

// deliverDelete tears a widget down: notify, mark the subtree dead,
// detach from the parent, and scrub runtime references to it.
func (s *System) deliverDelete(t widget.Widget) {
	if h, ok := t.(widget.DeleteHandler); ok {
		h.HandleDelete()
	}

	parent := t.Parent()
	t.Destroy()
	if parent != nil {
		if owner, ok := parent.(interface{ RemoveChild(widget.Widget) }); ok {
			owner.RemoveChild(t)
		}
	}

	// Focus is cleared, never reassigned, on destruction
	if s.focus == t {
		s.focus = nil
	}
	s.anim.UnregisterWidget(t)
}
