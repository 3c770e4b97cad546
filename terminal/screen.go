package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdout is redirected
var ErrNotTerminal = errors.New("stdout is not a terminal")

// Screen owns the tcell screen and tracks the pointer indicator the lens hides
type Screen struct {
	tcell.Screen
	mode ColorMode

	cursorHidden bool
	cursorX      int
	cursorY      int
}

// New creates and initializes a tcell screen with mouse motion and focus reporting
func New(mode ColorMode) (*Screen, error) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil, ErrNotTerminal
	}
	applyColorMode(mode)

	sc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	s, err := Wrap(sc, mode)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Wrap initializes an existing tcell screen, used with simulation screens in tests
func Wrap(sc tcell.Screen, mode ColorMode) (*Screen, error) {
	if err := sc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	sc.EnableMouse(tcell.MouseMotionEvents)
	sc.EnableFocus()
	sc.HideCursor()
	return &Screen{Screen: sc, mode: mode, cursorHidden: true}, nil
}

// Mode returns the color mode the screen was created with
func (s *Screen) Mode() ColorMode {
	return s.mode
}

// TrackPointer moves the visible pointer indicator to (x, y) unless the lens hides it
func (s *Screen) TrackPointer(x, y int) {
	s.cursorX, s.cursorY = x, y
	if !s.cursorHidden {
		s.Screen.ShowCursor(x, y)
	}
}

// HideCursor hides the pointer indicator while the lens is active
func (s *Screen) HideCursor() {
	s.cursorHidden = true
	s.Screen.HideCursor()
}

// ShowCursor restores the pointer indicator at the last tracked position
func (s *Screen) ShowCursor() {
	s.cursorHidden = false
	s.Screen.ShowCursor(s.cursorX, s.cursorY)
}

// CursorHidden reports whether the pointer indicator is hidden
func (s *Screen) CursorHidden() bool {
	return s.cursorHidden
}

// Close finalizes the screen
func (s *Screen) Close() {
	s.Screen.Fini()
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	// Disable mouse tracking and focus reporting
	io.WriteString(w, "\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l\x1b[?1004l")

	io.WriteString(w, "\x1b[?25h")   // cursor show
	io.WriteString(w, "\x1b[?1049l") // alt screen exit
	io.WriteString(w, "\x1b[0m")     // SGR reset
	io.WriteString(w, "\x1b[?7h")    // auto wrap on

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
