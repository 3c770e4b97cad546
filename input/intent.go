package input

// Intent is the semantic action a key resolves to
type Intent uint8

const (
	IntentNone Intent = iota

	// System
	IntentQuit    // q, Esc, Ctrl+C, Ctrl+Q
	IntentSuspend // Ctrl+Z

	// Region
	IntentFocus    // Tab, Shift+Tab
	IntentActivate // Enter, Space while the region has focus
	IntentDismiss  // x while the region has focus

	// Lens movement while active
	IntentNudgeLeft
	IntentNudgeRight
	IntentNudgeUp
	IntentNudgeDown
)

var intentNames = [...]string{
	IntentNone:       "none",
	IntentQuit:       "quit",
	IntentSuspend:    "suspend",
	IntentFocus:      "focus",
	IntentActivate:   "activate",
	IntentDismiss:    "dismiss",
	IntentNudgeLeft:  "nudge_left",
	IntentNudgeRight: "nudge_right",
	IntentNudgeUp:    "nudge_up",
	IntentNudgeDown:  "nudge_down",
}

// String returns the intent name
func (i Intent) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}

// nudge returns the cell offset for a nudge intent
func (i Intent) nudge() (dx, dy int, ok bool) {
	switch i {
	case IntentNudgeLeft:
		return -1, 0, true
	case IntentNudgeRight:
		return 1, 0, true
	case IntentNudgeUp:
		return 0, -1, true
	case IntentNudgeDown:
		return 0, 1, true
	}
	return 0, 0, false
}
