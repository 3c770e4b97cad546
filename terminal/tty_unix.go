//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL
			unix.IoctlSetTermios(fd, ioctlSetTermios, termios)
		}
	}
}

// Suspend releases the screen, stops the process with SIGTSTP and re-acquires the screen on SIGCONT
func (s *Screen) Suspend() error {
	if err := s.Screen.Suspend(); err != nil {
		return fmt.Errorf("suspend screen: %w", err)
	}
	if err := unix.Kill(unix.Getpid(), unix.SIGTSTP); err != nil {
		s.Screen.Resume()
		return fmt.Errorf("stop process: %w", err)
	}
	if err := s.Screen.Resume(); err != nil {
		return fmt.Errorf("resume screen: %w", err)
	}
	s.Screen.Sync()
	return nil
}
