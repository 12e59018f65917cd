package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	logFile := setupLogging(false, t.TempDir())
	if logFile != nil {
		t.Error("no log file expected without debug")
		logFile.Close()
	}

	if output := log.Writer(); output != io.Discard {
		t.Errorf("log output = %v, want io.Discard", output)
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	defer log.SetOutput(io.Discard)

	logFile := setupLogging(true, dir)
	if logFile == nil {
		t.Fatal("expected a log file with debug on")
	}
	defer logFile.Close()

	logPath := filepath.Join(dir, logFileName)
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatal("log file not created")
	}

	log.Println("Test log message")

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty")
	}
}

func TestSetupLoggingRotatesLargeLog(t *testing.T) {
	dir := t.TempDir()
	defer log.SetOutput(io.Discard)

	logPath := filepath.Join(dir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatalf("seed large log: %v", err)
	}

	logFile := setupLogging(true, dir)
	if logFile == nil {
		t.Fatal("expected a log file")
	}
	defer logFile.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read log dir: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("previous log was not rotated")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("stat new log: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("new log should be under %d bytes, got %d", maxLogSize, info.Size())
	}
}

func TestSetupLoggingKeepsTerminalClean(t *testing.T) {
	defer log.SetOutput(io.Discard)

	logFile := setupLogging(true, t.TempDir())
	if logFile == nil {
		t.Fatal("expected a log file")
	}
	defer logFile.Close()

	output := log.Writer()
	if output == os.Stdout {
		t.Error("log output must not be stdout")
	}
	if output == os.Stderr {
		t.Error("log output must not be stderr")
	}
}
