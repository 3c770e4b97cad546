package render

import (
	"github.com/lixenwraith/magnifier/theme"
)

// Palette is a theme quantized once for the render loop
type Palette struct {
	Background    RGB
	Text          RGB
	Highlight     RGB
	GoldPrimary   RGB
	GoldSecondary RGB
	GlowSmall     RGB
	GlowMedium    RGB
	LensRing      RGB
	LensFill      RGB
}

// NewPalette quantizes th
func NewPalette(th theme.Theme) Palette {
	return Palette{
		Background:    FromColorful(th.Background),
		Text:          FromColorful(th.Text),
		Highlight:     FromColorful(th.Highlight),
		GoldPrimary:   FromColorful(th.GoldPrimary),
		GoldSecondary: FromColorful(th.GoldSecondary),
		GlowSmall:     FromColorful(th.GlowSmall),
		GlowMedium:    FromColorful(th.GlowMedium),
		LensRing:      FromColorful(th.LensRing),
		LensFill:      FromColorful(th.LensFill),
	}
}
