package lens

import (
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/magnifier/engine"
	"github.com/lixenwraith/magnifier/glyph"
	"github.com/lixenwraith/magnifier/parameter"
	"github.com/lixenwraith/magnifier/vmath"
)

// Config holds lens geometry and smoothing
type Config struct {
	RadiusX float64
	RadiusY float64

	PointerSmoothing float64
	TouchSmoothing   float64

	// Touch disables cursor hiding, there is no pointer indicator to hide
	Touch bool

	Content PresenterConfig
}

// DefaultConfig returns the compiled-in lens settings
func DefaultConfig() Config {
	return Config{
		RadiusX:          parameter.LensRadiusX,
		RadiusY:          parameter.LensRadiusY,
		PointerSmoothing: parameter.PointerSmoothing,
		TouchSmoothing:   parameter.TouchSmoothing,
		Content:          DefaultPresenterConfig(),
	}
}

// Observer receives every highlight transition to a new glyph
type Observer func(char string, tier Tier)

// Controller owns the lens lifecycle and runs the per-frame pipeline:
// smooth, clamp, position, hit test, highlight
type Controller struct {
	cfg Config

	sched   *engine.Scheduler
	surface *glyph.Surface
	index   *glyph.Index
	cursor  Cursor

	smoother    *Smoother
	hit         *HitTester
	highlighter *Highlighter
	presenter   *Presenter

	state State

	// At most one outstanding frame request
	frame        engine.FrameID
	framePending bool

	raw    Sample
	hasRaw bool
	pos    Position // clamped, where the lens is drawn

	element  *glyph.Element
	observer Observer
}

// NewController wires the lens pipeline; cursor may be nil
func NewController(cfg Config, sched *engine.Scheduler, surface *glyph.Surface, index *glyph.Index, cursor Cursor) (*Controller, error) {
	if sched == nil {
		return nil, fmt.Errorf("new controller: %w", ErrNoScheduler)
	}
	if surface == nil {
		return nil, fmt.Errorf("new controller: %w", ErrNoSurface)
	}
	if index == nil {
		return nil, fmt.Errorf("new controller: %w", ErrNoIndex)
	}
	if cfg.RadiusX <= 0 || cfg.RadiusY <= 0 {
		return nil, fmt.Errorf("new controller: radius %.1fx%.1f: %w", cfg.RadiusX, cfg.RadiusY, ErrBadRadius)
	}

	smoother, err := NewSmoother(cfg.PointerSmoothing, cfg.TouchSmoothing)
	if err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	presenter, err := NewPresenter(sched, cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}

	c := &Controller{
		cfg:       cfg,
		sched:     sched,
		surface:   surface,
		index:     index,
		cursor:    cursor,
		smoother:  smoother,
		hit:       NewHitTester(surface, index),
		presenter: presenter,
		element:   &glyph.Element{Kind: glyph.KindLens, Z: glyph.ZLens},
	}
	c.highlighter = NewHighlighter(index, presenter)
	c.highlighter.OnChange(c.notify)
	return c, nil
}

// SetObserver registers the highlight observer, nil removes it
func (c *Controller) SetObserver(fn Observer) {
	c.observer = fn
}

func (c *Controller) notify(u *glyph.Unit) {
	if c.observer == nil || u == nil {
		return
	}
	c.observer(u.Char, c.presenter.TierOf(u.Char))
}

// ready reports whether the heading container can host the lens
func (c *Controller) ready() bool {
	return !c.index.Container().Empty()
}

// Activate starts a lens session; origin, if set, places the lens there without smoothing
// Without an origin the lens opens at the last known position, or the container centre
func (c *Controller) Activate(origin *Sample) {
	if c.state == Active || !c.ready() {
		return
	}
	c.state = Active
	if !c.cfg.Touch && c.cursor != nil {
		c.cursor.HideCursor()
	}
	c.surface.Add(c.element)

	var start Sample
	switch {
	case origin != nil:
		start = *origin
	case c.hasRaw:
		start = c.raw
	default:
		ctr := c.index.Container()
		start = Sample{X: float64(ctr.Width) / 2, Y: float64(ctr.Height) / 2}
	}
	c.raw = start
	c.hasRaw = true

	c.smoother.Seed(start.Vec())
	c.apply(c.smoother.Position())
}

// OnMove records the latest raw sample and schedules one update for the next frame
// A pending update is cancelled and replaced, so only the latest sample of a frame is filtered
func (c *Controller) OnMove(raw Sample) {
	if c.state != Active {
		return
	}
	c.raw = raw
	c.hasRaw = true

	if c.framePending {
		c.sched.CancelFrame(c.frame)
	}
	c.frame = c.sched.RequestFrame(c.onFrame)
	c.framePending = true
}

func (c *Controller) onFrame(time.Time) {
	c.framePending = false
	if c.state != Active || !c.ready() {
		return
	}
	c.apply(c.smoother.Next(c.raw))
}

// apply positions the lens and drives hit test and highlight from one smoothed position
func (c *Controller) apply(smoothed Position) {
	ctr := c.index.Container()
	c.pos = Clamp(smoothed, float64(ctr.Width), float64(ctr.Height), c.cfg.RadiusX, c.cfg.RadiusY)
	c.element.Area = c.LensArea()

	c.highlighter.Update(c.hit.Locate(smoothed))
}

// Deactivate ends the session, clearing highlight, content and any pending update
func (c *Controller) Deactivate() {
	if c.state != Active {
		return
	}
	c.state = Inactive
	if !c.cfg.Touch && c.cursor != nil {
		c.cursor.ShowCursor()
	}
	if c.framePending {
		c.sched.CancelFrame(c.frame)
		c.framePending = false
	}
	c.highlighter.Reset()
	c.presenter.Clear()
	c.surface.Remove(c.element)
	c.element.Area = vmath.Area{}
	c.smoother.Reset()
}

// Resize deactivates and re-segments the heading inside bounds; the lens stays inactive
func (c *Controller) Resize(bounds vmath.Area) {
	c.Deactivate()
	c.index.Resegment(bounds)
	c.highlighter.Reset()
	c.hasRaw = false
	log.Printf("lens: resized to %dx%d, container %+v", bounds.Width, bounds.Height, c.index.Container())
}

// Nudge moves the raw lens target by (dx, dy) cells, keeping it inside the container
func (c *Controller) Nudge(dx, dy float64) {
	if c.state != Active {
		return
	}
	base := c.raw
	if !c.hasRaw {
		base = Sample{X: c.pos.X, Y: c.pos.Y}
	}
	ctr := c.index.Container()
	c.OnMove(Sample{
		X:     vmath.Clamp(base.X+dx, 0, float64(ctr.Width)),
		Y:     vmath.Clamp(base.Y+dy, 0, float64(ctr.Height)),
		Touch: base.Touch,
	})
}

// State returns the lens lifecycle state
func (c *Controller) State() State {
	return c.state
}

// Active reports whether the lens is shown
func (c *Controller) Active() bool {
	return c.state == Active
}

// Position returns the clamped lens centre, container-local
func (c *Controller) Position() Position {
	return c.pos
}

// Smoothed returns the filter output before clamping
func (c *Controller) Smoothed() Position {
	return c.smoother.Position()
}

// Radius returns the lens radii in cells
func (c *Controller) Radius() (float64, float64) {
	return c.cfg.RadiusX, c.cfg.RadiusY
}

// Container returns the heading container area on screen
func (c *Controller) Container() vmath.Area {
	return c.index.Container()
}

// Index returns the glyph index the lens reads
func (c *Controller) Index() *glyph.Index {
	return c.index
}

// LensArea returns the screen cells covered by the lens bounding box
func (c *Controller) LensArea() vmath.Area {
	cx, cy := c.pos.Add(c.index.Container().Origin()).Round()
	rx, ry := int(c.cfg.RadiusX), int(c.cfg.RadiusY)
	return vmath.Area{X: cx - rx, Y: cy - ry, Width: 2*rx + 1, Height: 2*ry + 1}
}

// Highlighted returns the highlighted unit, nil when none
func (c *Controller) Highlighted() *glyph.Unit {
	return c.highlighter.Current()
}

// Presenter returns the lens content pipeline
func (c *Controller) Presenter() *Presenter {
	return c.presenter
}

// FramePending reports whether an update is queued for the next frame
func (c *Controller) FramePending() bool {
	return c.framePending
}
