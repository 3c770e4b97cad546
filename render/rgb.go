package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit colour as stored in the render buffer
type RGB struct {
	R, G, B uint8
}

// Predefined default color
var (
	RGBBlack = RGB{0, 0, 0}
)

// Lookup tables array access (no pointers) for speed
var (
	softLightG  [256]float64
	softLightDF [256]float64
)

// init pre-calculates the Perez SoftLight lookup tables
func init() {
	for i := 0; i < 256; i++ {
		df := float64(i) / 255.0
		softLightDF[i] = df

		if df <= 0.25 {
			softLightG[i] = ((16.0*df-12.0)*df + 4.0) * df
		} else {
			softLightG[i] = math.Sqrt(df)
		}
	}
}

// FromColorful quantizes a colorful colour
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Colorful returns the colour in go-colorful space
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Tcell converts to a tcell colour; tcell downgrades to the palette in 256-colour mode
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// clamp converts float to uint8
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v)
}

// Blend mixes src over c by alpha in linear RGB
func Blend(c, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	return FromColorful(c.Colorful().BlendLinearRgb(src.Colorful(), alpha))
}

// Scale multiplies each channel by f
func Scale(c RGB, f float64) RGB {
	return RGB{
		R: clamp(float64(c.R)*f + 0.5),
		G: clamp(float64(c.G)*f + 0.5),
		B: clamp(float64(c.B)*f + 0.5),
	}
}

func softLightChannel(d, s uint8, intensity float64) uint8 {
	df := softLightDF[d]
	sf := softLightDF[s]

	var result float64
	if sf < 0.5 {
		result = df - (1.0-2.0*sf)*df*(1.0-df)
	} else {
		result = df + (2.0*sf-1.0)*(softLightG[d]-df)
	}

	result = df + (result-df)*intensity
	return clamp(result*255.0 + 0.5)
}

// SoftLight applies Perez soft light blend, gentler than linear alpha
func SoftLight(c, src RGB, intensity float64) RGB {
	return RGB{
		R: softLightChannel(c.R, src.R, intensity),
		G: softLightChannel(c.G, src.G, intensity),
		B: softLightChannel(c.B, src.B, intensity),
	}
}

// Screen lightens c by src, used for glow that must never darken the lens fill
func Screen(c, src RGB) RGB {
	return RGB{
		R: 255 - uint8((uint16(255-c.R)*uint16(255-src.R))/255),
		G: 255 - uint8((uint16(255-c.G)*uint16(255-src.G))/255),
		B: 255 - uint8((uint16(255-c.B)*uint16(255-src.B))/255),
	}
}
