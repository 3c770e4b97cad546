package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/magnifier/parameter"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "magnifier.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected default config valid, got %v", err)
	}
	if cfg.Content.Important != parameter.ImportantChars {
		t.Errorf("Expected importance list %q, got %q", parameter.ImportantChars, cfg.Content.Important)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	t.Setenv(parameter.EnvAudioEnabled, "")
	t.Setenv(parameter.EnvMasterVolume, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Lens.RadiusX != parameter.LensRadiusX {
		t.Errorf("Expected default radius, got %v", cfg.Lens.RadiusX)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv(parameter.EnvAudioEnabled, "")
	t.Setenv(parameter.EnvMasterVolume, "")

	path := writeFile(t, `
[lens]
radius_x = 10
pointer_smoothing = 0.5

[content]
swap_delay = "80ms"
important = "go"

[input]
touch = true

[heading]
text = "GO FAST"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Lens.RadiusX != 10 || cfg.Lens.RadiusY != parameter.LensRadiusY {
		t.Errorf("Expected radius 10x%d, got %vx%v", parameter.LensRadiusY, cfg.Lens.RadiusX, cfg.Lens.RadiusY)
	}
	if cfg.Lens.PointerSmoothing != 0.5 || cfg.Lens.TouchSmoothing != parameter.TouchSmoothing {
		t.Errorf("Unexpected smoothing %v / %v", cfg.Lens.PointerSmoothing, cfg.Lens.TouchSmoothing)
	}
	if cfg.Content.SwapDelay != 80*time.Millisecond {
		t.Errorf("Expected swap delay 80ms, got %v", cfg.Content.SwapDelay)
	}
	if cfg.Content.FadeDuration != parameter.FadeDuration {
		t.Errorf("Expected default fade, got %v", cfg.Content.FadeDuration)
	}
	if !cfg.Input.Touch || cfg.Heading.Text != "GO FAST" {
		t.Errorf("Unexpected input/heading: %+v %+v", cfg.Input, cfg.Heading)
	}

	lc := cfg.LensConfig()
	if !lc.Touch || lc.RadiusX != 10 || lc.Content.Important != "go" {
		t.Errorf("Unexpected lens config: %+v", lc)
	}
}

func TestLoadRejects(t *testing.T) {
	t.Setenv(parameter.EnvAudioEnabled, "")
	t.Setenv(parameter.EnvMasterVolume, "")

	tests := []struct {
		name string
		body string
	}{
		{"negative radius", "[lens]\nradius_y = -1\n"},
		{"zero smoothing", "[lens]\ntouch_smoothing = 0.0\n"},
		{"smoothing above one", "[lens]\npointer_smoothing = 1.5\n"},
		{"negative delay", "[content]\nswap_delay = \"-5ms\"\n"},
		{"loud", "[audio]\nvolume = 2.0\n"},
		{"blank selector", "[heading]\nselector = \"  \"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFile(t, "[lens\nradius_x = "))
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("Expected parse error, not validation error")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	tests := []struct {
		enabled string
		volume  string
		wantOn  bool
		wantVol float64
	}{
		{"true", "75", true, 0.75},
		{"false", "150", false, 1},
		{"1", "-20", true, 0},
		{"maybe", "abc", false, parameter.DefaultVolume},
	}

	for _, tt := range tests {
		t.Setenv(parameter.EnvAudioEnabled, tt.enabled)
		t.Setenv(parameter.EnvMasterVolume, tt.volume)

		cfg := Default()
		cfg.ApplyEnv()
		if cfg.Audio.Enabled != tt.wantOn {
			t.Errorf("%s: expected enabled %v, got %v", tt.enabled, tt.wantOn, cfg.Audio.Enabled)
		}
		if cfg.Audio.Volume != tt.wantVol {
			t.Errorf("%s: expected volume %v, got %v", tt.volume, tt.wantVol, cfg.Audio.Volume)
		}
	}
}

func TestWriteIsLoadable(t *testing.T) {
	t.Setenv(parameter.EnvAudioEnabled, "")
	t.Setenv(parameter.EnvMasterVolume, "")

	var buf bytes.Buffer
	if err := Default().Write(&buf); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	for _, section := range []string{"[lens]", "[content]", "[input]", "[audio]", "[heading]"} {
		if !strings.Contains(buf.String(), section) {
			t.Errorf("Expected %s in output", section)
		}
	}

	cfg, err := Load(writeFile(t, buf.String()))
	if err != nil {
		t.Fatalf("Reloading written config failed: %v", err)
	}
	if cfg.Content.SwapDelay != parameter.SwapDelay {
		t.Errorf("Expected swap delay %v, got %v", parameter.SwapDelay, cfg.Content.SwapDelay)
	}
}
