package visual

// Lens frame compositing
const (
	// LensFillAlpha is the opacity of the lens fill over the heading
	LensFillAlpha = 0.85

	// LensRingAlpha is the opacity of the lens rim
	LensRingAlpha = 0.7

	// LensRingThickness is the rim width in normalized ellipse units
	LensRingThickness = 0.22

	// HeadingDimUnderLens fades heading glyphs seen through the fill toward it
	HeadingDimUnderLens = 0.55
)

// Enlarged glyph
const (
	// ContentHeightRatio is the glyph height relative to the lens inner height
	ContentHeightRatio = 0.8

	// ContentInkThreshold is the scaled alpha above which a half-block pixel is drawn
	ContentInkThreshold = 0x7f
)
