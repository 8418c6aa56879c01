// Package paint provides the drawing surface consumed by the runtime:
// styled cells, a dirty-tracked screen buffer, and color palettes.
// Layout math and glyph shaping live with the widgets, not here.
package paint

import "github.com/lucasb-eyer/go-colorful"

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

// Color is an RGB color or the terminal default when unset
type Color struct {
	c   colorful.Color
	set bool
}

// RGB builds a color from 8-bit components
func RGB(r, g, b uint8) Color {
	return Color{
		c:   colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0},
		set: true,
	}
}

// Hex parses "#rrggbb" or "#rgb". Invalid input yields the default color
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}
	}
	return Color{c: c, set: true}
}

// Default returns the terminal's own default color
func Default() Color {
	return Color{}
}

// IsSet reports whether the color overrides the terminal default
func (c Color) IsSet() bool {
	return c.set
}

// RGB255 returns 8-bit components; ok is false for the default color
func (c Color) RGB255() (r, g, b uint8, ok bool) {
	if !c.set {
		return 0, 0, 0, false
	}
	r8, g8, b8 := c.c.Clamped().RGB255()
	return r8, g8, b8, true
}

// Blend interpolates toward other in Lab space, t in [0,1].
// Blending with a default color returns the other operand unchanged.
func (c Color) Blend(other Color, t float64) Color {
	if !c.set {
		return other
	}
	if !other.set {
		return c
	}
	return Color{c: c.c.BlendLab(other.c, t).Clamped(), set: true}
}
