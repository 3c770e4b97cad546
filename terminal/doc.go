// Package terminal sets up the tcell screen for the lens and restores the tty on exit or crash.
//
// Features:
//   - Colour mode detection and forcing (truecolor or 256)
//   - Mouse motion and focus reporting for the input adapter
//   - Job-control suspend that releases and re-acquires the screen
//   - Emergency reset for panic recovery
package terminal
