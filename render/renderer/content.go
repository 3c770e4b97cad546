package renderer

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/magnifier/lens"
	"github.com/lixenwraith/magnifier/parameter/visual"
	"github.com/lixenwraith/magnifier/render"
	"github.com/lixenwraith/magnifier/vmath"
)

// Half-block pixels: each cell holds two vertically stacked pixels
const (
	blockFull  = '█'
	blockUpper = '▀'
	blockLower = '▄'
)

type maskKey struct {
	r    rune
	w, h int
}

// ContentRenderer draws the lens content as an enlarged bitmap glyph
// Glyphs outside the bitmap font fall back to a single bold cell
type ContentRenderer struct {
	ctrl  *lens.Controller
	pal   render.Palette
	face  *basicfont.Face
	masks map[maskKey]*image.Alpha
}

// NewContentRenderer creates a new enlarged glyph renderer
func NewContentRenderer(ctrl *lens.Controller, pal render.Palette) *ContentRenderer {
	return &ContentRenderer{
		ctrl:  ctrl,
		pal:   pal,
		face:  basicfont.Face7x13,
		masks: make(map[maskKey]*image.Alpha),
	}
}

// IsVisible hides the layer while the lens is inactive
func (r *ContentRenderer) IsVisible() bool {
	return r.ctrl.Active()
}

// Render draws the current content at its animated opacity and scale
func (r *ContentRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := r.ctrl.Presenter()
	if !p.Visible() {
		return
	}
	st := p.State()

	ink := r.pal.GoldPrimary
	if st.Tier == lens.Important {
		ink = r.pal.GoldSecondary
	}
	fg := render.Blend(r.pal.LensFill, ink, st.Opacity)

	center := lensCenter(r.ctrl)
	rx, ry := r.ctrl.Radius()
	ch := firstRune(st.Char)

	if !r.drawable(st.Char, ch) {
		cx, cy := center.Round()
		buf.SetFgOnly(cx, cy, ch, fg, tcell.AttrBold)
		return
	}

	// Inner height in half-block pixels, which are roughly square on screen
	h := int(math.Round(4 * ry * visual.ContentHeightRatio * st.Scale))
	w := int(math.Round(float64(h) * float64(r.face.Advance) / float64(r.face.Height)))
	if w < 1 || h < 2 {
		return
	}
	mask := r.mask(ch, w, h)

	rows := (h + 1) / 2
	x0 := int(math.Round(center.X - float64(w)/2))
	y0 := int(math.Round(center.Y - float64(rows)/2))

	for row := 0; row < rows; row++ {
		for col := 0; col < w; col++ {
			x, y := x0+col, y0+row
			if !vmath.EllipseContains(float64(x)+0.5-center.X, float64(y)+0.5-center.Y, rx, ry) {
				continue
			}
			top := mask.AlphaAt(col, 2*row).A > visual.ContentInkThreshold
			bottom := mask.AlphaAt(col, 2*row+1).A > visual.ContentInkThreshold

			var block rune
			switch {
			case top && bottom:
				block = blockFull
			case top:
				block = blockUpper
			case bottom:
				block = blockLower
			default:
				continue
			}
			buf.SetFgOnly(x, y, block, fg, tcell.AttrNone)
		}
	}
}

// drawable reports whether s is a single narrow rune the bitmap font covers
func (r *ContentRenderer) drawable(s string, ch rune) bool {
	if len([]rune(s)) != 1 || runewidth.RuneWidth(ch) != 1 {
		return false
	}
	_, _, _, _, ok := r.face.Glyph(fixed.Point26_6{}, ch)
	return ok
}

// mask rasterizes ch and scales it to w x h pixels, cached per size
func (r *ContentRenderer) mask(ch rune, w, h int) *image.Alpha {
	key := maskKey{r: ch, w: w, h: h}
	if m, ok := r.masks[key]; ok {
		return m
	}

	src := image.NewAlpha(image.Rect(0, 0, r.face.Advance, r.face.Height))
	d := font.Drawer{
		Dst:  src,
		Src:  image.Opaque,
		Face: r.face,
		Dot:  fixed.P(0, r.face.Ascent),
	}
	d.DrawString(string(ch))

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	r.masks[key] = dst
	return dst
}
