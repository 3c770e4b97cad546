// Package vmath holds the small float helpers shared by the lens pipeline.
// Positions are continuous cell coordinates: x grows right, y grows down.
package vmath

import "math"

// Vec2 is a position or offset in cell space
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * f
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Round returns the cell containing v
func (v Vec2) Round() (int, int) {
	return int(math.Floor(v.X)), int(math.Floor(v.Y))
}

// Clamp limits v to [lo, hi]
// When hi < lo the lower bound wins, so an undersized range pins to lo
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// ClampInt is Clamp for cell indices
func ClampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Lerp interpolates from a toward b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpVec interpolates each axis independently
func LerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a.X, b.X, t), Lerp(a.Y, b.Y, t)}
}

// Approach moves v toward target by at most step, never overshooting
func Approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}
