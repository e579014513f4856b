// Package logger provides structured logging using zerolog.
// It supports JSON and console output formats with configurable log levels.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is the output format (json, console)
	Format string `env:"LOG_FORMAT" envDefault:"json"`

	// EnableCaller adds caller information to log entries
	EnableCaller bool `env:"LOG_CALLER" envDefault:"false"`

	// ServiceName is the name of the service for log context
	ServiceName string `env:"SERVICE_NAME" envDefault:"travel-affiliate"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Level:        "info",
		Format:       "json",
		EnableCaller: false,
		ServiceName:  "travel-affiliate",
	}
}

// Logger wraps zerolog.Logger with additional context.
type Logger struct {
	zerolog.Logger
}

// New creates a new Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a new Logger with custom output writer.
// This is useful for testing.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer io.Writer = output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
		}
	}

	ctx := zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.ServiceName)

	if cfg.EnableCaller {
		ctx = ctx.Caller()
	}

	return &Logger{
		Logger: ctx.Logger(),
	}
}

// WithContext returns a new logger with an additional string field.
func (l *Logger) WithContext(key, value string) *Logger {
	return &Logger{
		Logger: l.With().Str(key, value).Logger(),
	}
}

// WithRequestID returns a logger with request ID context.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithContext("request_id", requestID)
}

// WithModel returns a logger with chat model context.
func (l *Logger) WithModel(model string) *Logger {
	return l.WithContext("model", model)
}

// WithComponent returns a logger tagged with the emitting component.
func (l *Logger) WithComponent(component string) *Logger {
	return l.WithContext("component", component)
}

// Nop returns a disabled logger that produces no output.
// Useful for testing when logs are not needed.
func Nop() *Logger {
	return &Logger{
		Logger: zerolog.Nop(),
	}
}

// SetGlobal makes l the zerolog global logger so packages that log through
// github.com/rs/zerolog/log share its level, format and service field.
func SetGlobal(l *Logger) {
	log.Logger = l.Logger
	zerolog.SetGlobalLevel(l.GetLevel())
}
