package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Log output formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Logger wraps zerolog.Logger
type Logger struct {
	zerolog.Logger
}

// Options configures a logger
type Options struct {
	Level  string
	Format string
	Out    io.Writer // defaults to os.Stderr
}

// New creates a console logger at info level
func New() *Logger {
	return NewWithOptions(Options{})
}

// NewWithLevel creates a console logger with a specific level
func NewWithLevel(level string) *Logger {
	return NewWithOptions(Options{Level: level})
}

// NewWithOptions creates a logger writing either pretty console lines or JSON
func NewWithOptions(opts Options) *Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}

	if opts.Format != FormatJSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(out).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Logger()

	return &Logger{logger}
}

// ParseLevel converts a level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger *Logger) {
	log.Logger = logger.Logger
}

// Global returns the global logger
func Global() *Logger {
	return &Logger{log.Logger}
}
