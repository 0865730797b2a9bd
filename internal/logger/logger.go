// Package logger provides structured logging for the ocr-translator application.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	mu            sync.RWMutex
	defaultLogger = newLogger(zerolog.InfoLevel, FormatConsole, os.Stderr)
)

func newLogger(level zerolog.Level, format string, output io.Writer) zerolog.Logger {
	writer := output
	if format != FormatJSON {
		writer = zerolog.ConsoleWriter{Out: output, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("app", "ocr-translator").
		Logger()
}

// Setup replaces the default logger. level is a zerolog level name
// (debug, info, warn, error); format is "console" or "json".
func Setup(level, format string, output io.Writer) error {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	if parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	if output == nil {
		output = os.Stderr
	}
	// Submissions log from their own goroutines.
	output = zerolog.SyncWriter(output)

	l := newLogger(parsed, strings.ToLower(strings.TrimSpace(format)), output)

	mu.Lock()
	defaultLogger = l
	mu.Unlock()
	return nil
}

// L returns the default logger for structured fields.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := defaultLogger
	return &l
}

// Debug logs a debug message using the default logger.
func Debug(format string, args ...interface{}) {
	L().Debug().Msgf(format, args...)
}

// Info logs an informational message using the default logger.
func Info(format string, args ...interface{}) {
	L().Info().Msgf(format, args...)
}

// Warn logs a warning message using the default logger.
func Warn(format string, args ...interface{}) {
	L().Warn().Msgf(format, args...)
}

// Error logs an error message using the default logger.
func Error(format string, args ...interface{}) {
	L().Error().Msgf(format, args...)
}
