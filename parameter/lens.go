package parameter

// Lens Geometry
// Terminal cells are roughly twice as tall as wide, so the lens is an ellipse
// in cell space that reads as a circle on screen
const (
	// LensRadiusX is the horizontal lens radius in cells
	LensRadiusX = 8

	// LensRadiusY is the vertical lens radius in cells
	LensRadiusY = 4

	// LensCrosshair is drawn at the lens centre when no glyph is displayed
	LensCrosshair = '+'
)

// Smoothing
const (
	// PointerSmoothing is the damping factor for mouse input
	PointerSmoothing = 0.2

	// TouchSmoothing is the damping factor for touch input, lagging more to hide coordinate jitter
	TouchSmoothing = 0.3
)
