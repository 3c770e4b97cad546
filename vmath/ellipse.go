package vmath

// Ellipse utilities for the lens outline
// Terminal cells are about twice as tall as wide, so a lens with rx = 2*ry
// renders as a circle

// EllipseDistSq returns normalized squared distance from the ellipse centre
// Result <= 1 means the offset is inside the ellipse
func EllipseDistSq(dx, dy, rx, ry float64) float64 {
	if rx <= 0 || ry <= 0 {
		return 2
	}
	nx := dx / rx
	ny := dy / ry
	return nx*nx + ny*ny
}

// EllipseContains returns true if offset (dx, dy) is inside or on the ellipse boundary
func EllipseContains(dx, dy, rx, ry float64) bool {
	return EllipseDistSq(dx, dy, rx, ry) <= 1
}

// EllipseRing returns true if offset lies in the outer band of the ellipse
// thickness is in normalized units, e.g. 0.25 keeps the outer quarter
func EllipseRing(dx, dy, rx, ry, thickness float64) bool {
	d := EllipseDistSq(dx, dy, rx, ry)
	inner := 1 - thickness
	return d <= 1 && d >= inner*inner
}
