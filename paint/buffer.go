package paint

import "github.com/mattn/go-runewidth"

// Point represents a 2D coordinate
type Point struct {
	X, Y int
}

// Cell represents a single cell in the buffer.
// A zero Rune marks the continuation half of a wide glyph.
type Cell struct {
	Rune  rune
	Fg    Color
	Bg    Color
	Attrs Attr
}

// Buffer represents a 2D grid of cells with dirty tracking for
// efficient flushing
type Buffer struct {
	width  int
	height int
	lines  [][]Cell
	dirty  map[Point]bool
}

// NewBuffer creates a new buffer with the given dimensions
func NewBuffer(width, height int) *Buffer {
	lines := make([][]Cell, height)
	for y := 0; y < height; y++ {
		lines[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			lines[y][x] = Cell{Rune: ' '}
		}
	}
	return &Buffer{
		width:  width,
		height: height,
		lines:  lines,
		dirty:  make(map[Point]bool),
	}
}

// Width returns the buffer width
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height
func (b *Buffer) Height() int {
	return b.height
}

// Cell returns the cell at the given position
func (b *Buffer) Cell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.lines[y][x]
}

// SetCell writes a cell and marks it dirty. Wide runes claim the
// following cell as a continuation; out-of-bounds writes are clipped.
func (b *Buffer) SetCell(x, y int, c Cell) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.lines[y][x] = c
	b.dirty[Point{x, y}] = true

	if runewidth.RuneWidth(c.Rune) == 2 && x+1 < b.width {
		b.lines[y][x+1] = Cell{Rune: 0, Fg: c.Fg, Bg: c.Bg, Attrs: c.Attrs}
		b.dirty[Point{x + 1, y}] = true
	}
}

// SetString writes a string starting at (x, y), advancing by display
// width. Returns the x position past the last written cell.
func (b *Buffer) SetString(x, y int, s string, fg, bg Color, attrs Attr) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= b.width {
			break
		}
		b.SetCell(x, y, Cell{Rune: r, Fg: fg, Bg: bg, Attrs: attrs})
		x += w
	}
	return x
}

// Fill sets every cell to the given rune and colors
func (b *Buffer) Fill(r rune, fg, bg Color) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.lines[y][x] = Cell{Rune: r, Fg: fg, Bg: bg}
			b.dirty[Point{x, y}] = true
		}
	}
}

// Resize resizes the buffer, preserving existing content where possible
func (b *Buffer) Resize(newWidth, newHeight int) {
	if newWidth == b.width && newHeight == b.height {
		return
	}
	newLines := make([][]Cell, newHeight)
	for y := 0; y < newHeight; y++ {
		newLines[y] = make([]Cell, newWidth)
		for x := 0; x < newWidth; x++ {
			if y < b.height && x < b.width {
				newLines[y][x] = b.lines[y][x]
			} else {
				newLines[y][x] = Cell{Rune: ' '}
			}
		}
	}

	b.width = newWidth
	b.height = newHeight
	b.lines = newLines

	// Everything is dirty after a resize
	b.dirty = make(map[Point]bool)
	for y := 0; y < newHeight; y++ {
		for x := 0; x < newWidth; x++ {
			b.dirty[Point{x, y}] = true
		}
	}
}

// DirtyCount returns the number of cells pending flush
func (b *Buffer) DirtyCount() int {
	return len(b.dirty)
}

// Drain visits every dirty cell and clears the dirty set.
// Visit order is unspecified; cells carry their own coordinates.
func (b *Buffer) Drain(visit func(x, y int, c Cell)) {
	for p := range b.dirty {
		visit(p.X, p.Y, b.lines[p.Y][p.X])
	}
	b.dirty = make(map[Point]bool)
}
