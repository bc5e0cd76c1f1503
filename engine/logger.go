package engine

// Logger is injected into the engine; the front-end decides where lines go
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Warnf(format string, v ...any)
	Errorf(format string, v ...any)
}

// NoOpLogger discards everything
type NoOpLogger struct{}

func (NoOpLogger) Debugf(format string, v ...any) {}
func (NoOpLogger) Infof(format string, v ...any)  {}
func (NoOpLogger) Warnf(format string, v ...any)  {}
func (NoOpLogger) Errorf(format string, v ...any) {}

// NewNoOpLogger returns a Logger that discards everything
func NewNoOpLogger() Logger {
	return NoOpLogger{}
}
