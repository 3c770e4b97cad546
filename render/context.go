package render

import "time"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Now is the frame time, Start the time the heading was first laid out
	Now   time.Time
	Start time.Time

	// Focused reports keyboard focus on the heading region
	Focused bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// Elapsed returns the time since Start, zero before it
func (c RenderContext) Elapsed() time.Duration {
	if c.Now.Before(c.Start) {
		return 0
	}
	return c.Now.Sub(c.Start)
}
