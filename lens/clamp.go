package lens

import "github.com/lixenwraith/magnifier/vmath"

// Clamp keeps a lens of radii (rx, ry) inside a container of size (w, h)
// Axes clamp independently to [r, extent-r]; an undersized axis pins to r
func Clamp(p Position, w, h, rx, ry float64) Position {
	return Position{
		X: vmath.Clamp(p.X, rx, w-rx),
		Y: vmath.Clamp(p.Y, ry, h-ry),
	}
}
