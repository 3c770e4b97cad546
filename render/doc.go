// Package render composites the heading, the lens and its enlarged glyph
// into a cell buffer and flushes it to a tcell screen.
//
// Layers implement SystemRenderer and are registered on a RenderOrchestrator
// by priority; the concrete layers live in render/renderer.
package render
