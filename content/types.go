package content

import "errors"

var (
	// ErrEmptyHeading is returned when a source yields no visible words
	ErrEmptyHeading = errors.New("heading has no words")

	// ErrBadSelector is returned for a word selector that does not compile
	ErrBadSelector = errors.New("invalid word selector")
)

// Word is one word grouping of the heading, holding its literal text
type Word struct {
	Text string
}

// Heading is the ordered word list handed to the glyph index
type Heading struct {
	Words  []Word
	Source string // file path, "markup", or "text"
}

// Text joins the words with single spaces
func (h Heading) Text() string {
	n := 0
	for _, w := range h.Words {
		n += len(w.Text) + 1
	}
	buf := make([]byte, 0, n)
	for i, w := range h.Words {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, w.Text...)
	}
	return string(buf)
}
