package input

import (
	"errors"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/magnifier/engine"
	"github.com/lixenwraith/magnifier/lens"
	"github.com/lixenwraith/magnifier/parameter"
	"github.com/lixenwraith/magnifier/vmath"
)

var (
	ErrNoLens      = errors.New("input: lens controller is required")
	ErrNoScheduler = errors.New("input: scheduler is required")
)

// Lens is the controller surface the adapter drives
type Lens interface {
	Activate(origin *lens.Sample)
	OnMove(raw lens.Sample)
	Deactivate()
	Resize(bounds vmath.Area)
	Nudge(dx, dy float64)
	Active() bool
	Container() vmath.Area
}

// Suspender stops the process until the shell resumes it
type Suspender interface {
	Suspend() error
}

// Options tune the adapter
type Options struct {
	// Touch treats button-1 press, drag and release as touch start, move and end
	Touch bool

	// ResizeDebounce coalesces resize bursts, zero uses the default
	ResizeDebounce time.Duration

	Keys      *KeyTable
	Suspender Suspender

	// OnResize runs immediately on every resize event, before the debounced re-segmentation
	OnResize func(width, height int)
}

// Adapter normalizes tcell events into lens controller calls
type Adapter struct {
	lens  Lens
	sched *engine.Scheduler
	opts  Options

	focused  bool // keyboard focus on the heading region
	inside   bool // pointer over the container
	touching bool // touch in progress
	held     bool // button 1 down on the previous mouse event
}

// NewAdapter creates an input adapter for l
func NewAdapter(l Lens, sched *engine.Scheduler, opts Options) (*Adapter, error) {
	if l == nil {
		return nil, ErrNoLens
	}
	if sched == nil {
		return nil, ErrNoScheduler
	}
	if opts.ResizeDebounce <= 0 {
		opts.ResizeDebounce = parameter.ResizeDebounce
	}
	if opts.Keys == nil {
		opts.Keys = DefaultKeyTable()
	}
	return &Adapter{lens: l, sched: sched, opts: opts}, nil
}

// HandleEvent processes a tcell event and returns false if the program should exit
func (a *Adapter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			a.blur()
		}
	case *tcell.EventResize:
		a.handleResize(ev)
	}
	return true
}

// Focused reports whether the heading region has keyboard focus
func (a *Adapter) Focused() bool {
	return a.focused
}

// Touching reports whether a touch is in progress
func (a *Adapter) Touching() bool {
	return a.touching
}

func (a *Adapter) handleKey(ev *tcell.EventKey) bool {
	intent := a.opts.Keys.Lookup(ev)

	switch intent {
	case IntentQuit:
		return false

	case IntentSuspend:
		a.blur()
		if a.opts.Suspender != nil {
			if err := a.opts.Suspender.Suspend(); err != nil {
				log.Printf("input: suspend failed: %v", err)
			}
		}

	case IntentFocus:
		a.focused = !a.focused

	case IntentActivate:
		if a.focused {
			a.lens.Activate(nil)
		}

	case IntentDismiss:
		if a.focused {
			// Next pointer motion over the heading opens the lens again
			a.inside = false
			a.lens.Deactivate()
		}

	default:
		if dx, dy, ok := intent.nudge(); ok {
			a.lens.Nudge(float64(dx*parameter.NudgeStepX), float64(dy*parameter.NudgeStepY))
		}
	}
	return true
}

func (a *Adapter) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	ctr := a.lens.Container()
	in := ctr.Contains(x, y)
	pressed := ev.Buttons()&tcell.Button1 != 0

	sample := lens.ToLocal(ctr, x, y)
	s := lens.Sample{X: sample.X, Y: sample.Y, Touch: a.opts.Touch}

	if a.opts.Touch {
		start := pressed && !a.held
		a.held = pressed
		switch {
		case start && in:
			a.touching = true
			a.focused = true
			a.lens.Activate(&s)
		case pressed && a.touching:
			a.lens.OnMove(s)
		case !pressed && a.touching:
			a.touching = false
			a.lens.Deactivate()
		}
		return
	}

	if pressed && in {
		a.focused = true
	}
	switch {
	case in && !a.inside:
		a.inside = true
		if a.lens.Active() {
			a.lens.OnMove(s)
		} else {
			a.lens.Activate(&s)
		}
	case in:
		a.lens.OnMove(s)
	case a.inside:
		a.inside = false
		a.lens.Deactivate()
	}
}

// blur forces deactivation when the terminal loses focus or the process stops
func (a *Adapter) blur() {
	a.inside = false
	a.touching = false
	a.held = false
	a.lens.Deactivate()
}

func (a *Adapter) handleResize(ev *tcell.EventResize) {
	w, h := ev.Size()
	if a.opts.OnResize != nil {
		a.opts.OnResize(w, h)
	}
	a.sched.After(parameter.TimerResize, a.opts.ResizeDebounce, func() {
		a.inside = false
		a.touching = false
		a.lens.Resize(vmath.Area{Width: w, Height: h})
	})
}
