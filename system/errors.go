package system

import "errors"

var (
	// ErrNoHead is returned by Run when no head widget is set
	ErrNoHead = errors.New("system: no head widget set")

	// ErrRunning rejects lifecycle changes that would race the event
	// loop, like swapping the head widget mid-run
	ErrRunning = errors.New("system: event loop is running")

	// ErrNilPalette rejects clearing the palette to nil
	ErrNilPalette = errors.New("system: nil palette")
)
