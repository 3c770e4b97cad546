// Package config layers a TOML file and environment overrides over the compiled-in defaults
package config

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/magnifier/lens"
	"github.com/lixenwraith/magnifier/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full program configuration
type Config struct {
	Lens    Lens    `toml:"lens"`
	Content Content `toml:"content"`
	Input   Input   `toml:"input"`
	Audio   Audio   `toml:"audio"`
	Heading Heading `toml:"heading"`
}

// Lens holds lens geometry and smoothing
type Lens struct {
	RadiusX          float64 `toml:"radius_x"`
	RadiusY          float64 `toml:"radius_y"`
	PointerSmoothing float64 `toml:"pointer_smoothing"`
	TouchSmoothing   float64 `toml:"touch_smoothing"`
}

// Content holds the lens content animation
type Content struct {
	SwapDelay    time.Duration `toml:"swap_delay"`
	FadeDuration time.Duration `toml:"fade_duration"`
	Important    string        `toml:"important"`
}

// Input holds input adapter settings
type Input struct {
	ResizeDebounce time.Duration `toml:"resize_debounce"`
	Touch          bool          `toml:"touch"`
}

// Audio holds click feedback settings
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Heading selects the heading source
type Heading struct {
	Text     string `toml:"text"`
	File     string `toml:"file"`
	Selector string `toml:"selector"`
}

// Default returns the compiled-in configuration
func Default() *Config {
	return &Config{
		Lens: Lens{
			RadiusX:          parameter.LensRadiusX,
			RadiusY:          parameter.LensRadiusY,
			PointerSmoothing: parameter.PointerSmoothing,
			TouchSmoothing:   parameter.TouchSmoothing,
		},
		Content: Content{
			SwapDelay:    parameter.SwapDelay,
			FadeDuration: parameter.FadeDuration,
			Important:    parameter.ImportantChars,
		},
		Input: Input{
			ResizeDebounce: parameter.ResizeDebounce,
		},
		Audio: Audio{
			Volume: parameter.DefaultVolume,
		},
		Heading: Heading{
			Selector: parameter.DefaultWordSelector,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides and validates
// An empty path yields the defaults with environment overrides
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		for _, key := range md.Undecoded() {
			log.Printf("config: ignoring unknown key %q in %s", key.String(), path)
		}
		log.Printf("config: loaded %s", path)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies the audio environment overrides
// Volume is read as 0-100 and clamped
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv(parameter.EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	if volume := os.Getenv(parameter.EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.Volume = float64(val) / 100.0
			if c.Audio.Volume < 0 {
				c.Audio.Volume = 0
			}
			if c.Audio.Volume > 1 {
				c.Audio.Volume = 1
			}
		}
	}
}

// Validate rejects values the lens pipeline cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Lens.RadiusX <= 0 || c.Lens.RadiusY <= 0:
		return fmt.Errorf("%w: lens radius must be positive, got %vx%v", ErrInvalid, c.Lens.RadiusX, c.Lens.RadiusY)
	case !factor(c.Lens.PointerSmoothing):
		return fmt.Errorf("%w: lens.pointer_smoothing must be in (0, 1], got %v", ErrInvalid, c.Lens.PointerSmoothing)
	case !factor(c.Lens.TouchSmoothing):
		return fmt.Errorf("%w: lens.touch_smoothing must be in (0, 1], got %v", ErrInvalid, c.Lens.TouchSmoothing)
	case c.Content.SwapDelay < 0:
		return fmt.Errorf("%w: content.swap_delay must not be negative", ErrInvalid)
	case c.Content.FadeDuration < 0:
		return fmt.Errorf("%w: content.fade_duration must not be negative", ErrInvalid)
	case c.Input.ResizeDebounce < 0:
		return fmt.Errorf("%w: input.resize_debounce must not be negative", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0, 1], got %v", ErrInvalid, c.Audio.Volume)
	case strings.TrimSpace(c.Heading.Selector) == "":
		return fmt.Errorf("%w: heading.selector is empty", ErrInvalid)
	}
	return nil
}

func factor(f float64) bool {
	return f > 0 && f <= 1
}

// Write encodes the configuration as TOML
func (c *Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// LensConfig returns the lens controller settings
func (c *Config) LensConfig() lens.Config {
	return lens.Config{
		RadiusX:          c.Lens.RadiusX,
		RadiusY:          c.Lens.RadiusY,
		PointerSmoothing: c.Lens.PointerSmoothing,
		TouchSmoothing:   c.Lens.TouchSmoothing,
		Touch:            c.Input.Touch,
		Content: lens.PresenterConfig{
			SwapDelay:    c.Content.SwapDelay,
			FadeDuration: c.Content.FadeDuration,
			Important:    c.Content.Important,
		},
	}
}
