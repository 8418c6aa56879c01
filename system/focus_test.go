package system

import "testing"

// TestSetFocusIdempotent verifies that focusing the same widget twice
// produces exactly one FocusOut/FocusIn pair total
func TestSetFocusIdempotent(t *testing.T) {
	s := newTestSystem(t)
	w := newTestWidget()

	s.SetFocus(w)
	s.SetFocus(w)

	if got := w.focusIns.Load(); got != 1 {
		t.Errorf("Expected exactly 1 FocusIn, got %d", got)
	}
	if got := w.focusOuts.Load(); got != 0 {
		t.Errorf("Expected 0 FocusOut, got %d", got)
	}
}

// TestSetFocusHandoff verifies the FocusOut-then-FocusIn protocol
func TestSetFocusHandoff(t *testing.T) {
	s := newTestSystem(t)
	a := newTestWidget()
	b := newTestWidget()

	s.SetFocus(a)
	s.SetFocus(b)

	if a.focusOuts.Load() != 1 {
		t.Errorf("Expected 1 FocusOut on a, got %d", a.focusOuts.Load())
	}
	if b.focusIns.Load() != 1 {
		t.Errorf("Expected 1 FocusIn on b, got %d", b.focusIns.Load())
	}
	if s.Focus() != b {
		t.Error("Expected focus on b")
	}
}

// TestClearFocus verifies clearing sends only FocusOut
func TestClearFocus(t *testing.T) {
	s := newTestSystem(t)
	w := newTestWidget()

	s.SetFocus(w)
	s.ClearFocus()
	s.ClearFocus()

	if w.focusOuts.Load() != 1 {
		t.Errorf("Expected 1 FocusOut, got %d", w.focusOuts.Load())
	}
	if w.focusIns.Load() != 1 {
		t.Errorf("Expected 1 FocusIn from the earlier SetFocus, got %d", w.focusIns.Load())
	}
	if s.Focus() != nil {
		t.Error("Expected no focus widget")
	}
}

// TestFocusOutToDisabledSuppressed verifies a disabled previous holder
// does not receive FocusOut
func TestFocusOutToDisabledSuppressed(t *testing.T) {
	s := newTestSystem(t)
	a := newTestWidget()
	b := newTestWidget()

	s.SetFocus(a)
	a.SetEnabled(false)
	s.SetFocus(b)

	if a.focusOuts.Load() != 0 {
		t.Errorf("Expected FocusOut suppressed for disabled widget, got %d", a.focusOuts.Load())
	}
	if s.Focus() != b {
		t.Error("Expected focus handed to b regardless")
	}
}

// TestFocusTraversal verifies Tab-order advancement over the tree
func TestFocusTraversal(t *testing.T) {
	s := newTestSystem(t)
	root := newTestWidget()
	root.SetAcceptsFocus(false)
	a := newTestWidget()
	b := newTestWidget()
	c := newTestWidget()
	root.AddChild(a)
	root.AddChild(b)
	root.AddChild(c)

	if err := s.SetHead(root); err != nil {
		t.Fatalf("SetHead: %v", err)
	}

	s.FocusNext()
	if s.Focus() != a {
		t.Fatal("Expected first stop a")
	}
	s.FocusNext()
	if s.Focus() != b {
		t.Fatal("Expected second stop b")
	}

	// Disabled widgets drop out of the chain
	c.SetEnabled(false)
	s.FocusNext()
	if s.Focus() != a {
		t.Fatalf("Expected wrap to a past disabled c, got %v", s.Focus())
	}

	s.FocusPrev()
	if s.Focus() != b {
		t.Fatal("Expected reverse traversal to b")
	}
}
