package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"verbose", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	log, closer, err := New(Config{Level: "warn", Format: "json", Output: "file", FilePath: path})
	require.NoError(t, err)

	log.Info().Msg("dropped")
	log.Warn().Str("file", "hamilton.xlsx").Msg("kept")
	require.NoError(t, closer())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"file":"hamilton.xlsx"`)
	assert.Contains(t, string(data), `"level":"warn"`)
}

func TestNew_FileErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing path", Config{Output: "file"}},
		{"missing directory", Config{Output: "file", FilePath: filepath.Join(t.TempDir(), "no", "such", "run.log")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, closer, err := New(tt.cfg)
			assert.Error(t, err)
			assert.NoError(t, closer())
		})
	}
}
