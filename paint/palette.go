package paint

// PaletteSize is the number of definable color slots
const PaletteSize = 16

// Palette defines the color set consumed by painting code. Slots follow
// the classic ANSI layout: 0-7 normal, 8-15 bright.
type Palette struct {
	colors [PaletteSize]Color
}

// Well-known palette slots
const (
	SlotBlack = iota
	SlotRed
	SlotGreen
	SlotYellow
	SlotBlue
	SlotMagenta
	SlotCyan
	SlotWhite
	SlotBrightBlack
	SlotBrightRed
	SlotBrightGreen
	SlotBrightYellow
	SlotBrightBlue
	SlotBrightMagenta
	SlotBrightCyan
	SlotBrightWhite
)

// NewPalette creates a palette with every slot at the terminal default
func NewPalette() *Palette {
	return &Palette{}
}

// DefaultPalette returns the stock palette
func DefaultPalette() *Palette {
	p := &Palette{}
	hexes := [PaletteSize]string{
		"#1c1c1c", "#d75f5f", "#87af87", "#d7af5f",
		"#5f87af", "#af87af", "#5fafaf", "#d0d0d0",
		"#4e4e4e", "#ff8787", "#afd7af", "#ffd787",
		"#87afd7", "#d7afd7", "#87d7d7", "#ffffff",
	}
	for i, h := range hexes {
		p.colors[i] = Hex(h)
	}
	return p
}

// Color returns the color at slot i, default color if out of range
func (p *Palette) Color(i int) Color {
	if i < 0 || i >= PaletteSize {
		return Color{}
	}
	return p.colors[i]
}

// Set overwrites slot i, no-op if out of range
func (p *Palette) Set(i int, c Color) {
	if i < 0 || i >= PaletteSize {
		return
	}
	p.colors[i] = c
}
