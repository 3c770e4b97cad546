package renderer

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/magnifier/lens"
	"github.com/lixenwraith/magnifier/parameter"
	"github.com/lixenwraith/magnifier/parameter/visual"
	"github.com/lixenwraith/magnifier/render"
	"github.com/lixenwraith/magnifier/vmath"
)

// LensRenderer draws the lens body: fill, tier glow, rim and the idle crosshair
type LensRenderer struct {
	ctrl *lens.Controller
	pal  render.Palette
}

// NewLensRenderer creates a new lens renderer
func NewLensRenderer(ctrl *lens.Controller, pal render.Palette) *LensRenderer {
	return &LensRenderer{
		ctrl: ctrl,
		pal:  pal,
	}
}

// IsVisible hides the layer while the lens is inactive
func (r *LensRenderer) IsVisible() bool {
	return r.ctrl.Active()
}

// Render composites the lens over the heading
func (r *LensRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	center := lensCenter(r.ctrl)
	rx, ry := r.ctrl.Radius()
	area := lensBounds(center, rx, ry)
	st := r.ctrl.Presenter().State()
	visible := r.ctrl.Presenter().Visible()

	glow, strength := r.pal.GlowSmall, visual.GlowSmallStrength
	if st.Tier == lens.Important {
		glow, strength = r.pal.GlowMedium, visual.GlowMediumStrength
	}

	for y := area.Y; y < area.Y+area.Height; y++ {
		for x := area.X; x < area.X+area.Width; x++ {
			dx := float64(x) + 0.5 - center.X
			dy := float64(y) + 0.5 - center.Y
			if !vmath.EllipseContains(dx, dy, rx, ry) {
				continue
			}

			// Heading text seen through the glass recedes toward the fill
			if cell := buf.Get(x, y); cell.Rune != 0 {
				buf.SetFgOnly(x, y, cell.Rune, render.Blend(cell.Fg, r.pal.LensFill, visual.HeadingDimUnderLens), cell.Attrs)
			}
			buf.SetBgOnly(x, y, r.pal.LensFill, render.BlendAlpha, visual.LensFillAlpha)

			if visible {
				falloff := 1 - vmath.EllipseDistSq(dx, dy, rx, ry)
				buf.SetBgOnly(x, y, glow, render.BlendScreen, strength*st.Opacity*falloff)
			}
			if vmath.EllipseRing(dx, dy, rx, ry, visual.LensRingThickness) {
				buf.SetBgOnly(x, y, r.pal.LensRing, render.BlendAlpha, visual.LensRingAlpha)
			}
		}
	}

	if !visible {
		cx, cy := center.Round()
		buf.SetFgOnly(cx, cy, parameter.LensCrosshair, r.pal.LensRing, tcell.AttrNone)
	}
}

// lensCenter returns the drawn lens centre in screen space
func lensCenter(ctrl *lens.Controller) vmath.Vec2 {
	return ctrl.Position().Add(ctrl.Container().Origin())
}

// lensBounds returns every cell whose centre may fall inside the ellipse
func lensBounds(center vmath.Vec2, rx, ry float64) vmath.Area {
	x0 := int(math.Floor(center.X - rx))
	y0 := int(math.Floor(center.Y - ry))
	x1 := int(math.Ceil(center.X + rx))
	y1 := int(math.Ceil(center.Y + ry))
	return vmath.Area{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
