package vmath

// Area is an axis-aligned cell rectangle
type Area struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether the area covers no cells
func (a Area) Empty() bool {
	return a.Width <= 0 || a.Height <= 0
}

// Contains checks if cell (x, y) is within the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// ContainsVec checks if continuous position v is within the area
func (a Area) ContainsVec(v Vec2) bool {
	return v.X >= float64(a.X) && v.X < float64(a.X+a.Width) &&
		v.Y >= float64(a.Y) && v.Y < float64(a.Y+a.Height)
}

// Origin returns the top-left corner
func (a Area) Origin() Vec2 {
	return Vec2{float64(a.X), float64(a.Y)}
}

// Center returns the centre point
func (a Area) Center() Vec2 {
	return Vec2{float64(a.X) + float64(a.Width)/2, float64(a.Y) + float64(a.Height)/2}
}

// Union returns the smallest area covering both
func (a Area) Union(o Area) Area {
	if a.Empty() {
		return o
	}
	if o.Empty() {
		return a
	}
	x0, y0 := min(a.X, o.X), min(a.Y, o.Y)
	x1 := max(a.X+a.Width, o.X+o.Width)
	y1 := max(a.Y+a.Height, o.Y+o.Height)
	return Area{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
