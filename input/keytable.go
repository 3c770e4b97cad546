package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Enter, Tab)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:   IntentQuit,
			tcell.KeyCtrlQ:   IntentQuit,
			tcell.KeyEscape:  IntentQuit,
			tcell.KeyCtrlZ:   IntentSuspend,
			tcell.KeyTab:     IntentFocus,
			tcell.KeyBacktab: IntentFocus,
			tcell.KeyEnter:   IntentActivate,
			tcell.KeyLeft:    IntentNudgeLeft,
			tcell.KeyRight:   IntentNudgeRight,
			tcell.KeyUp:      IntentNudgeUp,
			tcell.KeyDown:    IntentNudgeDown,
		},
		Runes: map[rune]Intent{
			'q': IntentQuit,
			' ': IntentActivate,
			'x': IntentDismiss,
			'h': IntentNudgeLeft,
			'l': IntentNudgeRight,
			'k': IntentNudgeUp,
			'j': IntentNudgeDown,
		},
	}
}

// Lookup resolves a key event, unbound keys yield IntentNone
func (t *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return t.Runes[ev.Rune()]
	}
	return t.SpecialKeys[ev.Key()]
}
