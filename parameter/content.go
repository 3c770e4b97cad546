package parameter

import "time"

// Lens Content Pipeline
const (
	// SwapDelay hides the glyph swap behind the fade-out
	SwapDelay = 50 * time.Millisecond

	// FadeDuration is the time for opacity and scale to travel from one target to the other
	FadeDuration = 120 * time.Millisecond

	// FadedScale is the content scale while faded out
	FadedScale = 0.7

	// BaselineScale is the displayed scale for ordinary glyphs
	BaselineScale = 1.0

	// ImportantScale is the displayed scale for glyphs in the importance list
	ImportantScale = 1.1

	// ImportantChars is the canonical importance allow-list, compared upper-cased
	ImportantChars = "EXCLNIVATYRS"
)

// Heading Reveal
const (
	// RevealDelay is the wait before the first glyph starts fading in
	RevealDelay = 300 * time.Millisecond

	// RevealStagger is the per-glyph delay between fade-ins
	RevealStagger = 30 * time.Millisecond

	// RevealStaggerTouch is the per-glyph delay in touch mode
	RevealStaggerTouch = 40 * time.Millisecond

	// RevealDuration is the fade-in length of a single glyph
	RevealDuration = 600 * time.Millisecond
)
