package renderer

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/magnifier/glyph"
	"github.com/lixenwraith/magnifier/parameter"
	"github.com/lixenwraith/magnifier/render"
	"github.com/lixenwraith/magnifier/vmath"
)

// HeadingRenderer draws the heading glyphs, their staggered reveal and the highlight
type HeadingRenderer struct {
	index *glyph.Index
	pal   render.Palette
}

// NewHeadingRenderer creates a new heading renderer
func NewHeadingRenderer(index *glyph.Index, pal render.Palette) *HeadingRenderer {
	return &HeadingRenderer{
		index: index,
		pal:   pal,
	}
}

// Render draws all rendered, non-space units
func (r *HeadingRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	elapsed := ctx.Elapsed()

	for _, u := range r.index.Units() {
		if u.IsSpace || !u.Rendered() {
			continue
		}

		fg := render.Blend(r.pal.Background, r.pal.Text, revealProgress(u, elapsed))
		var attrs tcell.AttrMask
		if u.Highlighted() {
			fg = r.pal.Highlight
			attrs = tcell.AttrBold
		}

		buf.SetFgOnly(u.Cell.X, u.Cell.Y, firstRune(u.Char), fg, attrs)
	}

	if ctx.Focused {
		r.renderFocus(buf)
	}
}

// renderFocus marks the corners of the heading region while it has keyboard focus
func (r *HeadingRenderer) renderFocus(buf *render.RenderBuffer) {
	c := r.index.Container()
	if c.Empty() {
		return
	}
	x0, y0 := c.X, c.Y
	x1, y1 := c.X+c.Width-1, c.Y+c.Height-1

	buf.SetFgOnly(x0, y0, '╭', r.pal.GoldPrimary, tcell.AttrNone)
	buf.SetFgOnly(x1, y0, '╮', r.pal.GoldPrimary, tcell.AttrNone)
	buf.SetFgOnly(x0, y1, '╰', r.pal.GoldPrimary, tcell.AttrNone)
	buf.SetFgOnly(x1, y1, '╯', r.pal.GoldPrimary, tcell.AttrNone)
}

// revealProgress returns the fade-in fraction of u, 1 once fully revealed
func revealProgress(u *glyph.Unit, elapsed time.Duration) float64 {
	if u.Reveal == 0 {
		return 1
	}
	t := elapsed - u.Reveal
	return vmath.Clamp(float64(t)/float64(parameter.RevealDuration), 0, 1)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
