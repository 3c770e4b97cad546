package content

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/lixenwraith/magnifier/parameter"
)

// FromText splits plain text on whitespace into word groupings
func FromText(text string) (Heading, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Heading{}, ErrEmptyHeading
	}
	words := make([]Word, len(fields))
	for i, f := range fields {
		words[i] = Word{Text: f}
	}
	return Heading{Words: words, Source: "text"}, nil
}

// FromMarkup extracts word groupings from HTML
// Elements matching selector each form one word, taking the data-text attribute
// when present and the element's text otherwise. Without matches the heading
// element's text is split on whitespace
func FromMarkup(r io.Reader, selector string) (Heading, error) {
	if selector == "" {
		selector = parameter.DefaultWordSelector
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return Heading{}, fmt.Errorf("%w %q: %v", ErrBadSelector, selector, err)
	}

	doc, err := html.Parse(r)
	if err != nil {
		return Heading{}, fmt.Errorf("failed to parse heading markup: %w", err)
	}

	var words []Word
	for _, n := range sel.MatchAll(doc) {
		text := strings.TrimSpace(attr(n, parameter.WordTextAttr))
		if text == "" {
			text = strings.TrimSpace(textContent(n))
		}
		// A word grouping never spans whitespace; collapse stray inner spaces
		for _, f := range strings.Fields(text) {
			words = append(words, Word{Text: f})
		}
	}

	if len(words) == 0 {
		fallback := cascadia.MustCompile(parameter.FallbackHeadingSelector)
		if n := fallback.MatchFirst(doc); n != nil {
			h, err := FromText(textContent(n))
			if err != nil {
				return Heading{}, err
			}
			h.Source = "markup"
			return h, nil
		}
		return Heading{}, ErrEmptyHeading
	}

	return Heading{Words: words, Source: "markup"}, nil
}

// Load reads a heading file, treating .html and .htm as markup and anything else as plain text
func Load(path, selector string) (Heading, error) {
	f, err := os.Open(path)
	if err != nil {
		return Heading{}, fmt.Errorf("failed to open heading file: %w", err)
	}
	defer f.Close()

	var h Heading
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		h, err = FromMarkup(f, selector)
	default:
		var data []byte
		data, err = io.ReadAll(f)
		if err == nil {
			h, err = FromText(string(data))
		}
	}
	if err != nil {
		return Heading{}, fmt.Errorf("%s: %w", path, err)
	}

	h.Source = path
	log.Printf("Loaded heading from %s (%d words)", path, len(h.Words))
	return h, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
