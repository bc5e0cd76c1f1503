package main

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/stellar/engine"
)

var _ engine.Logger = (*Logger)(nil)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want LogLevel
	}{
		{"debug", LogLevelDebug},
		{"INFO", LogLevelInfo},
		{"warning", LogLevelWarn},
		{"warn", LogLevelWarn},
		{"error", LogLevelError},
		{"bogus", LogLevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLogLevel(tt.in), tt.in)
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	buf := captureLog(t)
	l := NewLogger("warn")

	l.Debugf("d %d", 1)
	l.Infof("i %d", 2)
	l.Warnf("w %d", 3)
	l.Errorf("e %d", 4)

	out := buf.String()
	assert.NotContains(t, out, "[DEBUG]")
	assert.NotContains(t, out, "[INFO]")
	assert.Contains(t, out, "[WARN] w 3")
	assert.Contains(t, out, "[ERROR] e 4")
}

func TestLoggerDebugLevelLogsAll(t *testing.T) {
	buf := captureLog(t)
	l := NewLogger("debug")
	l.Debugf("tick %d", 120)
	assert.Contains(t, buf.String(), "[DEBUG] tick 120")
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "warn", LogLevelWarn.String())
	assert.Equal(t, "unknown", LogLevel(99).String())
}
