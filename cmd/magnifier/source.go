package main

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/magnifier/asset"
	"github.com/lixenwraith/magnifier/config"
	"github.com/lixenwraith/magnifier/content"
	"github.com/lixenwraith/magnifier/theme"
)

// loadHeading resolves the heading source, first match wins:
// positional text, -heading file, config text, config file, built-in markup
func loadHeading(cfg *config.Config, args []string, file string) (content.Heading, error) {
	selector := cfg.Heading.Selector

	switch {
	case len(args) > 0:
		return content.FromText(strings.Join(args, " "))
	case file != "":
		return content.Load(file, selector)
	case cfg.Heading.Text != "":
		return content.FromText(cfg.Heading.Text)
	case cfg.Heading.File != "":
		return content.Load(cfg.Heading.File, selector)
	}

	h, err := content.FromMarkup(strings.NewReader(asset.DefaultHeadingMarkup), selector)
	if err != nil {
		return content.Heading{}, fmt.Errorf("built-in heading: %w", err)
	}
	return h, nil
}

// loadTheme reads the stylesheet at path, or the built-in palette when empty
func loadTheme(path string) (theme.Theme, error) {
	if path == "" {
		return theme.Default(), nil
	}
	return theme.Load(path)
}
