//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package terminal

import "errors"

// resetTerminalMode is a no-op where termios is not available
func resetTerminalMode() {}

// Suspend is not supported without POSIX job control
func (s *Screen) Suspend() error {
	return errors.New("suspend not supported on this platform")
}
