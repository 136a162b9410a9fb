package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Sheet)
	assert.Equal(t, DefaultHolidays, cfg.Holidays)
	assert.Equal(t, 40.0, cfg.OvertimeThreshold)
	assert.Equal(t, 1.5, cfg.PremiumMultiplier)
	assert.Equal(t, 17.0, cfg.FallbackRate)
	assert.Equal(t, 17, cfg.RateColumn)
	assert.False(t, cfg.ResolveRateColumn)
	assert.Equal(t, "info", cfg.Log.Level)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, len(DefaultHolidays), opts.Holidays.Len())
	assert.True(t, opts.Holidays.Contains(time.Date(2023, 7, 4, 0, 0, 0, 0, time.UTC)))
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("SHIFTSHEET_SHEET", "Schedule")
	t.Setenv("SHIFTSHEET_HOLIDAYS", "2024-01-01, 2024-12-25")
	t.Setenv("SHIFTSHEET_OVERTIME_THRESHOLD", "44")
	t.Setenv("SHIFTSHEET_PREMIUM_MULTIPLIER", "2")
	t.Setenv("SHIFTSHEET_FALLBACK_RATE", "not-a-number")
	t.Setenv("SHIFTSHEET_WORKERS", "3")
	t.Setenv("SHIFTSHEET_RESOLVE_RATE_COLUMN", "true")
	t.Setenv("SHIFTSHEET_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Schedule", cfg.Sheet)
	assert.Equal(t, []string{"2024-01-01", "2024-12-25"}, cfg.Holidays)
	assert.Equal(t, 44.0, cfg.OvertimeThreshold)
	assert.Equal(t, 2.0, cfg.PremiumMultiplier)
	assert.Equal(t, 17.0, cfg.FallbackRate, "unparseable values keep the default")
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.ResolveRateColumn)
	assert.Equal(t, "debug", cfg.Log.Level)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, "Schedule", opts.SheetName)
	assert.Equal(t, 3, opts.Workers)
	assert.True(t, opts.Layout.ResolveRateColumn)
}

func TestLoad_EmptyHolidayList(t *testing.T) {
	t.Setenv("SHIFTSHEET_HOLIDAYS", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Holidays)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SHIFTSHEET_SHEET=FromFile\nSHIFTSHEET_WORKERS=5\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("SHIFTSHEET_SHEET")
		os.Unsetenv("SHIFTSHEET_WORKERS")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "FromFile", cfg.Sheet)
	assert.Equal(t, 5, cfg.Workers)
}

func TestOptions_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"bad holiday", Config{Holidays: []string{"July 4th"}, OvertimeThreshold: 40, PremiumMultiplier: 1.5}},
		{"zero threshold", Config{PremiumMultiplier: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Options()
			assert.Error(t, err)
		})
	}
}
