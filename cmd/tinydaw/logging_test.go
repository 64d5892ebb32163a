package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDisabled(t *testing.T) {
	logFile := setupLogging(false)
	if logFile != nil {
		t.Error("Expected nil log file when debug is off")
		logFile.Close()
	}

	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLoggingEnabled(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected a log file when debug is on")
	}
	defer logFile.Close()

	logPath := filepath.Join(logDir, logFileName)
	if _, err := os.Stat(logPath); err != nil {
		t.Fatalf("Expected log file at %s: %v", logPath, err)
	}

	log.Println("probe line")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected logged line to reach the file")
	}
}

func TestSetupLoggingRotation(t *testing.T) {
	defer os.RemoveAll(logDir)

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatalf("Failed to create log directory: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)

	// Seed a log file just past the rotation threshold.
	oversized := make([]byte, maxLogSize+1)
	if err := os.WriteFile(logPath, oversized, 0644); err != nil {
		t.Fatalf("Failed to seed oversized log file: %v", err)
	}

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected a log file after rotation")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("Failed to read log directory: %v", err)
	}
	rotated := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotated = true
			break
		}
	}
	if !rotated {
		t.Error("Expected the oversized file to be renamed aside")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("Expected a fresh log file under %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLoggingAvoidsStdStreams(t *testing.T) {
	defer os.RemoveAll(logDir)

	logFile := setupLogging(true)
	if logFile == nil {
		t.Fatal("Expected a log file when debug is on")
	}
	defer logFile.Close()

	// The screen owns stdout; log output must never land there.
	if log.Writer() == os.Stdout {
		t.Error("Log output must not be stdout")
	}
	if log.Writer() == os.Stderr {
		t.Error("Log output must not be stderr")
	}
}
