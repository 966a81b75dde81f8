package logger

import (
	"sync"

	"github.com/philipp01105/tlog/core"
	"github.com/philipp01105/tlog/handler"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Default returns the package default logger: name "default", INFO
// level, the default template, and the shared stdout handler. It is
// built on first use.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		// Build cannot fail: the name is non-empty
		defaultLogger, _ = NewBuilder("default").
			WithHandler(handler.Default()).
			Build()
	}
	return defaultLogger
}

// SetDefault replaces the package default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Debug logs a debug message using the default logger
func Debug(message string, overrides ...core.Field) error {
	return Default().Debug(message, overrides...)
}

// Info logs an info message using the default logger
func Info(message string, overrides ...core.Field) error {
	return Default().Info(message, overrides...)
}

// Warning logs a warning message using the default logger
func Warning(message string, overrides ...core.Field) error {
	return Default().Warning(message, overrides...)
}

// Error logs an error message using the default logger
func Error(message string, overrides ...core.Field) error {
	return Default().Error(message, overrides...)
}

// Exception logs an error message with a trace block using the default
// logger
func Exception(message string, err error, overrides ...core.Field) error {
	return Default().Exception(message, err, overrides...)
}
