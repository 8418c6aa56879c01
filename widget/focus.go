package widget

// FocusChain returns the tab-focus stops reachable from head in
// depth-first preorder: alive, enabled, focus-accepting widgets.
// Disabled or dead subtrees are skipped wholesale; disabling a
// container removes its content from the chain.
func FocusChain(head Widget) []Widget {
	var chain []Widget
	var walk func(w Widget)
	walk = func(w Widget) {
		if w == nil || !w.Alive() || !w.Enabled() {
			return
		}
		if w.AcceptsFocus() {
			chain = append(chain, w)
		}
		for _, c := range w.Children() {
			walk(c)
		}
	}
	walk(head)
	return chain
}

// NextFocus returns the focus stop after cur in the chain rooted at
// head, wrapping around. With cur absent from the chain (or nil) the
// first stop is returned. Returns nil when the chain is empty.
func NextFocus(head, cur Widget) Widget {
	return advance(head, cur, 1)
}

// PrevFocus returns the focus stop before cur, wrapping around
func PrevFocus(head, cur Widget) Widget {
	return advance(head, cur, -1)
}

func advance(head, cur Widget, dir int) Widget {
	chain := FocusChain(head)
	if len(chain) == 0 {
		return nil
	}
	for i, w := range chain {
		if w == cur {
			return chain[(i+dir+len(chain))%len(chain)]
		}
	}
	return chain[0]
}
