package lens

import (
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lixenwraith/magnifier/engine"
	"github.com/lixenwraith/magnifier/parameter"
	"github.com/lixenwraith/magnifier/vmath"
)

// Tier is the cosmetic importance class of the lens content
type Tier uint8

const (
	Baseline Tier = iota
	Important
)

// String returns the tier name
func (t Tier) String() string {
	if t == Important {
		return "important"
	}
	return "baseline"
}

// PresenterConfig tunes the content swap animation
type PresenterConfig struct {
	SwapDelay    time.Duration
	FadeDuration time.Duration
	Important    string
}

// DefaultPresenterConfig returns the compiled-in animation settings
func DefaultPresenterConfig() PresenterConfig {
	return PresenterConfig{
		SwapDelay:    parameter.SwapDelay,
		FadeDuration: parameter.FadeDuration,
		Important:    parameter.ImportantChars,
	}
}

// ContentState is the lens content as the renderer sees it
// Char and Tier change only at the swap; Opacity and Scale chase their targets each Step
type ContentState struct {
	Char string
	Tier Tier

	Opacity float64
	Scale   float64

	TargetOpacity float64
	TargetScale   float64
}

// Presenter is the content update pipeline of the lens
// A new glyph fades the old one out, swaps after SwapDelay and fades back in
// Only the latest request survives a pending swap
type Presenter struct {
	sched *engine.Scheduler
	cfg   PresenterConfig
	upper cases.Caser

	important string
	last      string // most recently requested content, "" when cleared

	state    ContentState
	lastStep time.Time
}

// NewPresenter creates a presenter scheduling its swap on sched
func NewPresenter(sched *engine.Scheduler, cfg PresenterConfig) (*Presenter, error) {
	if sched == nil {
		return nil, ErrNoScheduler
	}
	if cfg.SwapDelay < 0 {
		cfg.SwapDelay = 0
	}
	upper := cases.Upper(language.Und)
	return &Presenter{
		sched:     sched,
		cfg:       cfg,
		upper:     upper,
		important: upper.String(cfg.Important),
		state: ContentState{
			Scale:       parameter.FadedScale,
			TargetScale: parameter.FadedScale,
		},
	}, nil
}

// TierOf classifies a glyph against the importance list, case-insensitively
func (p *Presenter) TierOf(char string) Tier {
	up := p.upper.String(char)
	if utf8.RuneCountInString(up) != 1 {
		return Baseline
	}
	if strings.Contains(p.important, up) {
		return Important
	}
	return Baseline
}

// Present requests new lens content, "" fades the lens content down without a swap
func (p *Presenter) Present(char string) {
	if char == "" {
		p.Clear()
		return
	}
	if char == p.last {
		return
	}
	p.last = char
	p.fadeOut()

	target := char
	p.sched.After(parameter.TimerLensSwap, p.cfg.SwapDelay, func() {
		p.swap(target)
	})
}

// Clear cancels any pending swap and fades the content out
func (p *Presenter) Clear() {
	p.sched.Cancel(parameter.TimerLensSwap)
	p.last = ""
	p.fadeOut()
}

func (p *Presenter) fadeOut() {
	p.state.TargetOpacity = 0
	p.state.TargetScale = parameter.FadedScale
}

// swap runs from the delayed timer; a target that is no longer the latest request is dropped
func (p *Presenter) swap(target string) {
	if target != p.last {
		return
	}
	p.state.Char = target
	p.state.Tier = p.TierOf(target)
	p.state.TargetOpacity = 1
	if p.state.Tier == Important {
		p.state.TargetScale = parameter.ImportantScale
	} else {
		p.state.TargetScale = parameter.BaselineScale
	}
}

// Step advances opacity and scale toward their targets by the time elapsed since the previous Step
func (p *Presenter) Step(now time.Time) {
	if p.lastStep.IsZero() {
		p.lastStep = now
		return
	}
	dt := now.Sub(p.lastStep)
	p.lastStep = now
	if dt <= 0 {
		return
	}

	if p.cfg.FadeDuration <= 0 {
		p.state.Opacity = p.state.TargetOpacity
		p.state.Scale = p.state.TargetScale
		return
	}

	frac := float64(dt) / float64(p.cfg.FadeDuration)
	scaleSpan := parameter.ImportantScale - parameter.FadedScale
	p.state.Opacity = vmath.Approach(p.state.Opacity, p.state.TargetOpacity, frac)
	p.state.Scale = vmath.Approach(p.state.Scale, p.state.TargetScale, frac*scaleSpan)
}

// Content returns the logical lens content, "" while fading out or cleared
func (p *Presenter) Content() string {
	if p.state.TargetOpacity == 0 {
		return ""
	}
	return p.state.Char
}

// Requested returns the latest requested content, which may not be displayed yet
func (p *Presenter) Requested() string {
	return p.last
}

// State returns a snapshot for rendering
func (p *Presenter) State() ContentState {
	return p.state
}

// Visible reports whether any content is still drawn
func (p *Presenter) Visible() bool {
	return p.state.Char != "" && p.state.Opacity > 0
}
