package lens

import "github.com/lixenwraith/magnifier/glyph"

// HighlightState is the highlight machine state
type HighlightState uint8

const (
	NoneHighlighted HighlightState = iota
	OneHighlighted
)

// ContentSink receives lens content changes, "" clears the lens
type ContentSink interface {
	Present(char string)
}

// Highlighter is the only writer of unit highlight markers
// It holds a non-owning reference to the highlighted unit, tagged with the
// index generation it came from so a stale reference is dropped unread
type Highlighter struct {
	index *glyph.Index
	sink  ContentSink

	current    *glyph.Unit
	currentGen uint64

	onChange func(u *glyph.Unit)
}

// NewHighlighter creates a highlighter in NoneHighlighted
func NewHighlighter(index *glyph.Index, sink ContentSink) *Highlighter {
	return &Highlighter{index: index, sink: sink}
}

// OnChange registers a callback for every transition to a new glyph or to none
func (h *Highlighter) OnChange(fn func(u *glyph.Unit)) {
	h.onChange = fn
}

// State returns the current machine state
func (h *Highlighter) State() HighlightState {
	if h.live() {
		return OneHighlighted
	}
	return NoneHighlighted
}

// Current returns the highlighted unit, nil in NoneHighlighted
func (h *Highlighter) Current() *glyph.Unit {
	if !h.live() {
		return nil
	}
	return h.current
}

// live reports whether the held reference belongs to the current segmentation
func (h *Highlighter) live() bool {
	return h.current != nil && h.index != nil && h.currentGen == h.index.Generation()
}

// Update drives one transition from a hit-test result
func (h *Highlighter) Update(r *glyph.Unit) {
	if h.index == nil {
		return
	}
	// A stale reference still owns the lens content until cleared here
	stale := h.current != nil && !h.live()
	if stale {
		h.current = nil
	}
	if r != nil && (!h.index.Valid(r) || !r.Highlightable()) {
		r = nil
	}

	switch {
	case r == nil:
		if h.current == nil {
			if stale {
				h.present("")
				h.notify(nil)
			}
			return
		}
		h.index.SetHighlighted(h.current, false)
		h.current = nil
		h.present("")
		h.notify(nil)

	case r == h.current:
		// Same glyph: no re-trigger

	default:
		if h.current != nil {
			h.index.SetHighlighted(h.current, false)
		}
		h.index.SetHighlighted(r, true)
		h.current = r
		h.currentGen = h.index.Generation()
		h.present(r.Char)
		h.notify(r)
	}
}

// Reset forces NoneHighlighted, clearing the marker if the reference is still current
func (h *Highlighter) Reset() {
	if h.live() {
		h.index.SetHighlighted(h.current, false)
	}
	h.current = nil
}

func (h *Highlighter) present(char string) {
	if h.sink != nil {
		h.sink.Present(char)
	}
}

func (h *Highlighter) notify(u *glyph.Unit) {
	if h.onChange != nil {
		h.onChange(u)
	}
}
