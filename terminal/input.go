package terminal

// InputType discriminates decoded input units
type InputType uint8

const (
	InputNone InputType = iota
	InputKey
	InputMouse
	InputResize
	InputWake   // Synthetic nudge, carries no payload
	InputClosed // Terminal shut down, reader should return
)

// Input is one decoded unit from the terminal byte stream
type Input struct {
	Type InputType

	// Key payload
	Key  Key
	Rune rune
	Mod  ModMask

	// Mouse payload
	X, Y   int
	Button MouseButton
	Action MouseAction

	// Resize payload
	Width, Height int
}

// String returns a short description for diagnostics
func (t InputType) String() string {
	switch t {
	case InputKey:
		return "Key"
	case InputMouse:
		return "Mouse"
	case InputResize:
		return "Resize"
	case InputWake:
		return "Wake"
	case InputClosed:
		return "Closed"
	default:
		return "None"
	}
}
