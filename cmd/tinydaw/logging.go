package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "tinydaw.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger. A full-screen program cannot
// share stdout or stderr with the screen, so with debug off everything
// is discarded. With debug on, lines append to logs/tinydaw.log and the
// file is rotated away once it grows past maxLogSize.
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
		rotated := filepath.Join(logDir, fmt.Sprintf("tinydaw-%s.log", time.Now().Format("20060102-150405")))
		os.Rename(logPath, rotated)
	}

	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(logFile)
	return logFile
}
