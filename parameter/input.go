package parameter

import "time"

// Input Handling
const (
	// ResizeDebounce coalesces bursts of terminal resize events
	ResizeDebounce = 250 * time.Millisecond

	// NudgeStepX is the horizontal lens movement per arrow key press
	NudgeStepX = 2

	// NudgeStepY is the vertical lens movement per arrow key press
	NudgeStepY = 1
)

// Scheduler timer keys
const (
	TimerResize   = "resize"
	TimerLensSwap = "lens.swap"
)
