package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/lixenwraith/magnifier/parameter"
)

const (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger to logs/magnifier.log when debug is set, otherwise discards it
// The terminal belongs to the screen, so log output must never reach stdout or stderr
// An existing log over maxLogSize is rotated aside with a timestamp suffix
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("magnifier-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Printf("=== magnifier started, pid %d ===", os.Getpid())
	return f
}

// reportFatal writes err to w and to the debug log, then closes the log file
// os.Exit skips deferred calls, so this is the last chance to flush the log
func reportFatal(w io.Writer, err error, logFile *os.File) {
	fmt.Fprintf(w, "magnifier: %v\n", err)
	log.Printf("fatal: %v", err)
	log.SetOutput(io.Discard)
	if logFile != nil {
		logFile.Close()
	}
}
