package lens

import (
	"errors"

	"github.com/lixenwraith/magnifier/vmath"
)

var (
	ErrNoScheduler = errors.New("lens: scheduler is required")
	ErrNoIndex     = errors.New("lens: glyph index is required")
	ErrNoSurface   = errors.New("lens: surface is required")
	ErrBadRadius   = errors.New("lens: radius must be positive")
	ErrBadFactor   = errors.New("lens: smoothing factor must be in (0, 1]")
)

// Sample is one raw pointer reading, local to the heading container's top-left
type Sample struct {
	X, Y  float64
	Touch bool
}

// Vec returns the sample position
func (s Sample) Vec() vmath.Vec2 {
	return vmath.Vec2{X: s.X, Y: s.Y}
}

// Position is a smoothed or clamped lens position in container-local coordinates
type Position = vmath.Vec2

// State is the lens lifecycle state
type State uint8

const (
	Inactive State = iota
	Active
)

// String returns the state name
func (s State) String() string {
	if s == Active {
		return "Active"
	}
	return "Inactive"
}

// Cursor hides and restores the pointer indicator while the lens is active
type Cursor interface {
	HideCursor()
	ShowCursor()
}
