package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/magnifier/asset"
)

func wordTexts(h Heading) []string {
	out := make([]string, len(h.Words))
	for i, w := range h.Words {
		out[i] = w.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFromText(t *testing.T) {
	h, err := FromText("  GO   fast \n now ")
	if err != nil {
		t.Fatalf("FromText failed: %v", err)
	}
	expected := []string{"GO", "fast", "now"}
	if got := wordTexts(h); !equalStrings(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
	if h.Text() != "GO fast now" {
		t.Errorf("Unexpected joined text %q", h.Text())
	}
}

func TestFromTextEmpty(t *testing.T) {
	if _, err := FromText(" \t\n"); !errors.Is(err, ErrEmptyHeading) {
		t.Errorf("Expected ErrEmptyHeading, got %v", err)
	}
}

func TestFromMarkupDefaultAsset(t *testing.T) {
	h, err := FromMarkup(strings.NewReader(asset.DefaultHeadingMarkup), "")
	if err != nil {
		t.Fatalf("FromMarkup failed: %v", err)
	}
	expected := []string{"EXCELLENCE", "IN", "EVERY", "DETAIL"}
	if got := wordTexts(h); !equalStrings(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestFromMarkupPrefersDataText(t *testing.T) {
	markup := `<h1><span class="word" data-text="GO"><span class="char">G</span><span class="char">O</span></span></h1>`
	h, err := FromMarkup(strings.NewReader(markup), ".word")
	if err != nil {
		t.Fatalf("FromMarkup failed: %v", err)
	}
	if got := wordTexts(h); !equalStrings(got, []string{"GO"}) {
		t.Errorf("Expected literal data-text, got %v", got)
	}
}

func TestFromMarkupAlreadyWrappedWithoutDataText(t *testing.T) {
	markup := `<h1><span class="word"><span class="char">G</span><span class="char">O</span></span></h1>`
	h, err := FromMarkup(strings.NewReader(markup), ".word")
	if err != nil {
		t.Fatalf("FromMarkup failed: %v", err)
	}
	if got := wordTexts(h); !equalStrings(got, []string{"GO"}) {
		t.Errorf("Expected wrapped characters concatenated, got %v", got)
	}
}

func TestFromMarkupFallbackHeading(t *testing.T) {
	markup := `<body><h1 id="main-heading">Hello <b>World</b></h1></body>`
	h, err := FromMarkup(strings.NewReader(markup), ".word")
	if err != nil {
		t.Fatalf("FromMarkup failed: %v", err)
	}
	if got := wordTexts(h); !equalStrings(got, []string{"Hello", "World"}) {
		t.Errorf("Expected fallback split, got %v", got)
	}
}

func TestFromMarkupBadSelector(t *testing.T) {
	_, err := FromMarkup(strings.NewReader("<h1>x</h1>"), "[[[")
	if !errors.Is(err, ErrBadSelector) {
		t.Errorf("Expected ErrBadSelector, got %v", err)
	}
}

func TestFromMarkupNoHeading(t *testing.T) {
	_, err := FromMarkup(strings.NewReader("<p>nothing here</p>"), ".word")
	if !errors.Is(err, ErrEmptyHeading) {
		t.Errorf("Expected ErrEmptyHeading, got %v", err)
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "heading.txt")
	if err := os.WriteFile(txt, []byte("plain <b>text</b>"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	h, err := Load(txt, "")
	if err != nil {
		t.Fatalf("Load txt failed: %v", err)
	}
	if got := wordTexts(h); !equalStrings(got, []string{"plain", "<b>text</b>"}) {
		t.Errorf("Expected plain text taken literally, got %v", got)
	}
	if h.Source != txt {
		t.Errorf("Expected source %s, got %s", txt, h.Source)
	}

	htm := filepath.Join(dir, "heading.HTML")
	if err := os.WriteFile(htm, []byte(`<span class="word">A</span><span class="word">B</span>`), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	h, err = Load(htm, "")
	if err != nil {
		t.Fatalf("Load html failed: %v", err)
	}
	if got := wordTexts(h); !equalStrings(got, []string{"A", "B"}) {
		t.Errorf("Expected markup words, got %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt"), ""); err == nil {
		t.Error("Expected error for missing file")
	}
}
