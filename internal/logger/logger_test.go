package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewWithOptions_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Level: "warn", Format: FormatJSON, Out: &buf})

	log.Info().Msg("dropped")
	log.Warn().Str("cidr", "10.0.0.0/8").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "10.0.0.0/8", entry["cidr"])
}

func TestNewWithOptions_Console(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOptions(Options{Out: &buf})

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	SetGlobalLogger(NewWithOptions(Options{Format: FormatJSON, Out: &buf}))
	t.Cleanup(func() { SetGlobalLogger(New()) })

	Global().Info().Msg("global")
	assert.Contains(t, buf.String(), `"message":"global"`)
}
