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
	logFileName = "starchart.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes the standard logger. Without debug all output is
// discarded; with debug it goes to logs/starchart.log so log writes
// never corrupt the terminal UI. Returns the open file (nil when
// disabled); caller closes it on exit
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir: %v (logging disabled)\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(logDir, logFileName)

	// Rotate oversized logs aside instead of growing forever
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("starchart-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "log rotate: %v\n", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log file: %v (logging disabled)\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
