package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// BlendMode selects how a Set call composites the background
type BlendMode uint8

const (
	BlendNone BlendMode = iota // background untouched
	BlendReplace
	BlendAlpha
	BlendSoftLight
	BlendScreen
)

// Cell is one composited terminal cell
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
}

// RenderBuffer is a compositor over a cell array with dirty tracking
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
	bg      RGB
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear(b.bg)
}

// Clear resets all cells to empty over bg using exponential copy
func (b *RenderBuffer) Clear(bg RGB) {
	b.bg = bg
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: 0, Fg: bg, Bg: bg}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *RenderBuffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// ===== COMPOSITOR API =====

// Set composites a cell: a non-zero rune replaces rune, foreground and attributes,
// the background is combined with bg by mode
func (b *RenderBuffer) Set(x, y int, mainRune rune, fg, bg RGB, mode BlendMode, alpha float64, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]

	if mainRune != 0 {
		dst.Rune = mainRune
		dst.Fg = fg
		dst.Attrs = attrs
	}

	switch mode {
	case BlendReplace:
		dst.Bg = bg
	case BlendAlpha:
		dst.Bg = Blend(dst.Bg, bg, alpha)
	case BlendSoftLight:
		dst.Bg = SoftLight(dst.Bg, bg, alpha)
	case BlendScreen:
		dst.Bg = Screen(dst.Bg, Scale(bg, alpha))
	}
	b.touched[idx] = true
}

// SetFgOnly writes rune and foreground, keeping the composited background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg RGB, attrs tcell.AttrMask) {
	b.Set(x, y, r, fg, RGBBlack, BlendNone, 0, attrs)
}

// SetBgOnly composites the background, keeping rune and foreground
func (b *RenderBuffer) SetBgOnly(x, y int, bg RGB, mode BlendMode, alpha float64) {
	b.Set(x, y, 0, RGBBlack, bg, mode, alpha, 0)
}

// Get returns the cell at (x, y), the zero cell when out of bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether any renderer wrote to (x, y) since the last Clear
func (b *RenderBuffer) Touched(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.touched[y*b.width+x]
}

// FlushToScreen copies every cell into the screen's back buffer
// The cell after a double-width rune is its continuation and is skipped
func (b *RenderBuffer) FlushToScreen(s tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(c.Fg.Tcell()).
				Background(c.Bg.Tcell()).
				Attributes(c.Attrs)
			s.SetContent(x, y, r, nil, style)
			if runewidth.RuneWidth(r) == 2 {
				x++
			}
		}
	}
}
