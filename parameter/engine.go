package parameter

import "time"

// Main Loop Timing
const (
	// FrameInterval is the render and frame-callback interval (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// EventChannelSize is the buffer between the terminal poller and the main loop
	EventChannelSize = 256
)

// Logging
const (
	// LogDir is created relative to the working directory when debug logging is on
	LogDir = "logs"

	// LogFileName is the debug log file inside LogDir
	LogFileName = "magnifier.log"
)
