package visual

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Default palette, any entry can be overridden by a theme stylesheet
var (
	RgbBackground    = mustHex("#0b0b12")
	RgbText          = mustHex("#8a8a9a")
	RgbHighlight     = mustHex("#f4d98a")
	RgbGoldPrimary   = mustHex("#d4af37")
	RgbGoldSecondary = mustHex("#ffd700")
	RgbGlowSmall     = mustHex("#6b5a1e")
	RgbGlowMedium    = mustHex("#a8861f")
	RgbLensRing      = mustHex("#c9b26b")
	RgbLensFill      = mustHex("#16141c")
)

// Glow blend strength applied to the lens fill under the enlarged glyph
const (
	GlowSmallStrength  = 0.35
	GlowMediumStrength = 0.6
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("visual: bad colour literal " + s)
	}
	return c
}
