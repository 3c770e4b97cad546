// Package theme resolves the lens palette from CSS custom properties.
// Only :root (or html) rules are read; every other rule is ignored.
package theme

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/magnifier/parameter/visual"
)

// ErrBadColor is returned when a known property holds an unparseable colour
var ErrBadColor = errors.New("invalid theme colour")

// Theme is the resolved palette used by the renderer
type Theme struct {
	Background    colorful.Color
	Text          colorful.Color
	Highlight     colorful.Color
	GoldPrimary   colorful.Color
	GoldSecondary colorful.Color
	GlowSmall     colorful.Color
	GlowMedium    colorful.Color
	LensRing      colorful.Color
	LensFill      colorful.Color
}

// Default returns the built-in palette
func Default() Theme {
	return Theme{
		Background:    visual.RgbBackground,
		Text:          visual.RgbText,
		Highlight:     visual.RgbHighlight,
		GoldPrimary:   visual.RgbGoldPrimary,
		GoldSecondary: visual.RgbGoldSecondary,
		GlowSmall:     visual.RgbGlowSmall,
		GlowMedium:    visual.RgbGlowMedium,
		LensRing:      visual.RgbLensRing,
		LensFill:      visual.RgbLensFill,
	}
}

// slots maps custom property names to palette entries
func (t *Theme) slots() map[string]*colorful.Color {
	return map[string]*colorful.Color{
		"--background":     &t.Background,
		"--text":           &t.Text,
		"--highlight":      &t.Highlight,
		"--gold-primary":   &t.GoldPrimary,
		"--gold-secondary": &t.GoldSecondary,
		"--glow-sm":        &t.GlowSmall,
		"--glow-md":        &t.GlowMedium,
		"--lens-ring":      &t.LensRing,
		"--lens-fill":      &t.LensFill,
	}
}

// Parse overlays the custom properties found in stylesheet onto the default palette
// Unknown properties are ignored, later declarations win
func Parse(stylesheet string) (Theme, error) {
	th := Default()

	sheet, err := parser.Parse(stylesheet)
	if err != nil {
		return th, fmt.Errorf("failed to parse theme stylesheet: %w", err)
	}

	slots := th.slots()
	for _, rule := range sheet.Rules {
		if rule.Kind != css.QualifiedRule || !isRootRule(rule) {
			continue
		}
		for _, decl := range rule.Declarations {
			slot, ok := slots[strings.ToLower(decl.Property)]
			if !ok {
				continue
			}
			c, err := parseColor(decl.Value)
			if err != nil {
				return th, fmt.Errorf("%w: %s: %q", ErrBadColor, decl.Property, decl.Value)
			}
			*slot = c
		}
	}

	return th, nil
}

// Load reads and parses a stylesheet file
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read theme: %w", err)
	}
	return Parse(string(data))
}

func isRootRule(rule *css.Rule) bool {
	for _, sel := range rule.Selectors {
		switch strings.TrimSpace(sel) {
		case ":root", "html":
			return true
		}
	}
	return false
}

// parseColor accepts #rgb, #rrggbb and rgb(r, g, b)
func parseColor(v string) (colorful.Color, error) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "#") && len(v) == 4 {
		v = "#" + strings.Repeat(v[1:2], 2) + strings.Repeat(v[2:3], 2) + strings.Repeat(v[3:4], 2)
	}
	if strings.HasPrefix(v, "#") {
		return colorful.Hex(v)
	}
	if strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")") {
		var r, g, b int
		if _, err := fmt.Sscanf(strings.ReplaceAll(v[4:len(v)-1], " ", ""), "%d,%d,%d", &r, &g, &b); err != nil {
			return colorful.Color{}, err
		}
		return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
	}
	return colorful.Color{}, fmt.Errorf("unsupported colour %q", v)
}
