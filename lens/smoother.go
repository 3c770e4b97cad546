package lens

import "github.com/lixenwraith/magnifier/vmath"

// Smooth applies one step of exponential damping toward raw
func Smooth(raw Sample, prev Position, factor float64) Position {
	return vmath.LerpVec(prev, raw.Vec(), factor)
}

// Smoother keeps the damped lens position across samples of one lens session
type Smoother struct {
	pointer float64
	touch   float64

	pos    Position
	seeded bool
}

// NewSmoother creates a smoother with the pointer and touch damping factors
func NewSmoother(pointer, touch float64) (*Smoother, error) {
	if !validFactor(pointer) || !validFactor(touch) {
		return nil, ErrBadFactor
	}
	return &Smoother{pointer: pointer, touch: touch}, nil
}

func validFactor(f float64) bool {
	return f > 0 && f <= 1
}

// Factor returns the damping factor for the sample's input kind
func (s *Smoother) Factor(touch bool) float64 {
	if touch {
		return s.touch
	}
	return s.pointer
}

// Seed sets the position without damping
func (s *Smoother) Seed(p Position) {
	s.pos = p
	s.seeded = true
}

// Next filters raw against the previous output; an unseeded smoother seeds from raw
func (s *Smoother) Next(raw Sample) Position {
	if !s.seeded {
		s.Seed(raw.Vec())
		return s.pos
	}
	s.pos = Smooth(raw, s.pos, s.Factor(raw.Touch))
	return s.pos
}

// Position returns the last output
func (s *Smoother) Position() Position {
	return s.pos
}

// Reset forgets the session so the next activation seeds afresh
func (s *Smoother) Reset() {
	s.pos = Position{}
	s.seeded = false
}
