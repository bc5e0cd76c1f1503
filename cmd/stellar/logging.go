package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logDir      = "logs"
	logFileName = "stellar.log"
	maxLogSize  = 10 << 20
)

// setupLogging routes the standard logger to logs/stellar.log when debug is set
// Without debug all output is discarded; the terminal belongs to the renderer
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// rotateLog renames an oversized log to a timestamped sibling
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	base := strings.TrimSuffix(logFileName, filepath.Ext(logFileName))
	rotated := filepath.Join(logDir, fmt.Sprintf("%s_%s.log", base, time.Now().Format("20060102_150405")))
	_ = os.Rename(logPath, rotated)
}
