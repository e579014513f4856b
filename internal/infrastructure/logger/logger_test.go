package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	return result
}

func TestNewLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(Config{Level: "info", Format: "json", ServiceName: "test-service"}, &buf)

	l.Info().Msg("test message")

	result := decodeLine(t, &buf)
	assert.Equal(t, "info", result["level"])
	assert.Equal(t, "test message", result["message"])
	assert.Equal(t, "test-service", result["service"])
	assert.NotEmpty(t, result["time"])
}

func TestNewLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(Config{Level: "info", Format: "console", ServiceName: "test-service"}, &buf)

	l.Info().Msg("test message")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "INF")
}

func TestNewLogger_LogLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logged at debug level", "debug", "debug", true},
		{"debug not logged at info level", "info", "debug", false},
		{"warn logged at info level", "info", "warn", true},
		{"info not logged at error level", "error", "info", false},
		{"error logged at warn level", "warn", "error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithOutput(Config{Level: tt.configLevel, Format: "json"}, &buf)

			switch tt.logLevel {
			case "debug":
				l.Debug().Msg("m")
			case "info":
				l.Info().Msg("m")
			case "warn":
				l.Warn().Msg("m")
			case "error":
				l.Error().Msg("m")
			}

			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestNewLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(Config{Level: "verbose", Format: "json"}, &buf)

	l.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Info().Msg("shown")
	assert.NotZero(t, buf.Len())
}

func TestNewLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput(Config{Level: "info", Format: "json", EnableCaller: true}, &buf)

	l.Info().Msg("with caller")

	result := decodeLine(t, &buf)
	assert.Contains(t, result["caller"], "logger_test.go")
}

func TestLogger_ContextHelpers(t *testing.T) {
	tests := []struct {
		name      string
		derive    func(*Logger) *Logger
		wantKey   string
		wantValue string
	}{
		{name: "WithContext", derive: func(l *Logger) *Logger { return l.WithContext("route", "BKK-CNX") }, wantKey: "route", wantValue: "BKK-CNX"},
		{name: "WithRequestID", derive: func(l *Logger) *Logger { return l.WithRequestID("req-123") }, wantKey: "request_id", wantValue: "req-123"},
		{name: "WithModel", derive: func(l *Logger) *Logger { return l.WithModel("gpt-4o-mini") }, wantKey: "model", wantValue: "gpt-4o-mini"},
		{name: "WithComponent", derive: func(l *Logger) *Logger { return l.WithComponent("chat") }, wantKey: "component", wantValue: "chat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := NewWithOutput(DefaultConfig(), &buf)

			tt.derive(base).Info().Msg("derived")

			result := decodeLine(t, &buf)
			assert.Equal(t, tt.wantValue, result[tt.wantKey])
			assert.Equal(t, "travel-affiliate", result["service"])
		})
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() {
		l.Info().Msg("discarded")
		l.WithModel("m").Error().Msg("discarded")
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.EnableCaller)
	assert.Equal(t, "travel-affiliate", cfg.ServiceName)
}

func TestSetGlobal(t *testing.T) {
	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})

	var buf bytes.Buffer
	SetGlobal(NewWithOutput(Config{Level: "warn", Format: "json", ServiceName: "global-test"}, &buf))

	log.Info().Msg("filtered")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	result := decodeLine(t, &buf)
	assert.Equal(t, "global-test", result["service"])
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}
