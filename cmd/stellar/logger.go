package main

import (
	"log"
	"strings"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// parseLogLevel parses a level name case-insensitively; unknown names mean info
func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug
	case "info":
		return LogLevelInfo
	case "warn", "warning":
		return LogLevelWarn
	case "error":
		return LogLevelError
	default:
		return LogLevelInfo
	}
}

// Logger is a leveled front for the standard logger; it satisfies engine.Logger
type Logger struct {
	level LogLevel
}

// NewLogger creates a logger with the given minimum level
func NewLogger(level string) *Logger {
	return &Logger{level: parseLogLevel(level)}
}

func (l *Logger) shouldLog(level LogLevel) bool {
	return level >= l.level
}

func (l *Logger) Debugf(format string, v ...any) {
	if l.shouldLog(LogLevelDebug) {
		log.Printf("[DEBUG] "+format, v...)
	}
}

func (l *Logger) Infof(format string, v ...any) {
	if l.shouldLog(LogLevelInfo) {
		log.Printf("[INFO] "+format, v...)
	}
}

func (l *Logger) Warnf(format string, v ...any) {
	if l.shouldLog(LogLevelWarn) {
		log.Printf("[WARN] "+format, v...)
	}
}

func (l *Logger) Errorf(format string, v ...any) {
	if l.shouldLog(LogLevelError) {
		log.Printf("[ERROR] "+format, v...)
	}
}
