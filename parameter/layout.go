package parameter

// Heading Layout
const (
	// NarrowWidth and MediumWidth split terminal widths into padding tiers
	NarrowWidth = 80
	MediumWidth = 120

	// Minimum vertical padding rows around the heading text, per tier
	PaddingNarrow = 1
	PaddingMedium = 2
	PaddingWide   = 3

	// HeadingMarginX is the horizontal margin kept free on each side of the text
	HeadingMarginX = 2
)

// Heading Source
const (
	// DefaultHeading is shown when no heading text or file is supplied
	DefaultHeading = "EXCELLENCE IN EVERY DETAIL"

	// DefaultWordSelector matches word groupings in heading markup
	DefaultWordSelector = ".word"

	// FallbackHeadingSelector is used when markup has no word groupings
	FallbackHeadingSelector = "#main-heading, h1"

	// WordTextAttr carries the literal word text in markup
	WordTextAttr = "data-text"
)
