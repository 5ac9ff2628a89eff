package logger

import (
	"strings"

	"github.com/rs/zerolog"
)

type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}

// ParseLevel maps LOG_LEVEL style names to zerolog levels, defaulting to info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NoOpLogger discards everything
type NoOpLogger struct{}

func (NoOpLogger) Debug(component, message string, fields map[string]interface{})   {}
func (NoOpLogger) Info(component, message string, fields map[string]interface{})    {}
func (NoOpLogger) Warning(component, message string, fields map[string]interface{}) {}
func (NoOpLogger) Error(component string, err error, fields map[string]interface{}) {}
