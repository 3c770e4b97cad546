package terminal

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestDetectColorMode(t *testing.T) {
	reset := func(t *testing.T) {
		for _, k := range []string{"COLORTERM", "KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
			"ALACRITTY_WINDOW_ID", "ALACRITTY_LOG", "WEZTERM_PANE"} {
			t.Setenv(k, "")
		}
		t.Setenv("TERM", "xterm-256color")
	}

	t.Run("fallback", func(t *testing.T) {
		reset(t)
		if got := DetectColorMode(); got != ColorMode256 {
			t.Errorf("Expected 256, got %v", got)
		}
	})
	t.Run("colorterm", func(t *testing.T) {
		reset(t)
		t.Setenv("COLORTERM", "24bit")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("Expected truecolor, got %v", got)
		}
	})
	t.Run("terminal env", func(t *testing.T) {
		reset(t)
		t.Setenv("WEZTERM_PANE", "1")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("Expected truecolor, got %v", got)
		}
	})
	t.Run("direct term", func(t *testing.T) {
		reset(t)
		t.Setenv("TERM", "xterm-direct")
		if got := DetectColorMode(); got != ColorModeTrueColor {
			t.Errorf("Expected truecolor, got %v", got)
		}
	})
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"256", ColorMode256},
		{"truecolor", ColorModeTrueColor},
		{"24BIT", ColorModeTrueColor},
	}
	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseColorMode(%q): expected %v, got %v (%v)", tt.in, tt.want, got, err)
		}
	}
	if _, err := ParseColorMode("16"); err == nil {
		t.Error("Expected error for unknown mode")
	}
}

func TestApplyColorMode(t *testing.T) {
	t.Setenv("COLORTERM", "")
	t.Setenv("TCELL_TRUECOLOR", "")

	applyColorMode(ColorMode256)
	if got := os.Getenv("TCELL_TRUECOLOR"); got != "disable" {
		t.Errorf("Expected tcell truecolor disabled, got %q", got)
	}
	applyColorMode(ColorModeTrueColor)
	if got := os.Getenv("COLORTERM"); got != "truecolor" {
		t.Errorf("Expected COLORTERM truecolor, got %q", got)
	}
}

func TestScreenCursorTracking(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	s, err := Wrap(sim, ColorModeTrueColor)
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	defer s.Close()

	if !s.CursorHidden() {
		t.Error("Expected cursor hidden after init")
	}

	s.ShowCursor()
	s.TrackPointer(7, 3)
	s.Show()
	x, y, visible := sim.GetCursor()
	if !visible || x != 7 || y != 3 {
		t.Errorf("Expected visible cursor at (7,3), got (%d,%d) visible=%v", x, y, visible)
	}

	s.HideCursor()
	s.TrackPointer(9, 4)
	s.Show()
	if _, _, visible := sim.GetCursor(); visible {
		t.Error("Expected cursor to stay hidden while tracking")
	}

	s.ShowCursor()
	s.Show()
	x, y, _ = sim.GetCursor()
	if x != 9 || y != 4 {
		t.Errorf("Expected cursor restored at last pointer (9,4), got (%d,%d)", x, y)
	}
}

func TestEmergencyResetSequences(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.String()
	for _, seq := range []string{"\x1b[?1003l", "\x1b[?25h", "\x1b[?1049l", "\x1b[0m"} {
		if !strings.Contains(out, seq) {
			t.Errorf("Expected reset output to contain %q", seq)
		}
	}
}
