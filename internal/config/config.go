// Package config loads run settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ukaji3/shiftsheet-go/internal/logger"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/hours"
)

// DefaultHolidays is the holiday calendar used when none is configured.
var DefaultHolidays = []string{
	"2023-05-29",
	"2023-07-04",
	"2023-09-04",
	"2023-11-23",
	"2023-11-25",
	"2023-12-31",
}

// Config holds run settings.
type Config struct {
	Sheet             string
	Holidays          []string
	OvertimeThreshold float64
	PremiumMultiplier float64
	FallbackRate      float64
	RateColumn        int
	ResolveRateColumn bool
	Workers           int
	Log               logger.Config
}

// Load reads settings from envFile, if it exists, and the environment.
// Variables already set in the environment win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	defaults := shiftsheet.DefaultOptions()
	logDefaults := logger.DefaultConfig()

	cfg := &Config{
		Sheet:             getEnv("SHIFTSHEET_SHEET", ""),
		Holidays:          getEnvList("SHIFTSHEET_HOLIDAYS", DefaultHolidays),
		OvertimeThreshold: getEnvFloat("SHIFTSHEET_OVERTIME_THRESHOLD", defaults.OvertimeThreshold),
		PremiumMultiplier: getEnvFloat("SHIFTSHEET_PREMIUM_MULTIPLIER", defaults.PremiumMultiplier),
		FallbackRate:      getEnvFloat("SHIFTSHEET_FALLBACK_RATE", defaults.FallbackRate),
		RateColumn:        getEnvInt("SHIFTSHEET_RATE_COLUMN", defaults.Layout.RateColumn),
		ResolveRateColumn: getEnvBool("SHIFTSHEET_RESOLVE_RATE_COLUMN", false),
		Workers:           getEnvInt("SHIFTSHEET_WORKERS", 0),
		Log: logger.Config{
			Level:      getEnv("SHIFTSHEET_LOG_LEVEL", logDefaults.Level),
			Format:     getEnv("SHIFTSHEET_LOG_FORMAT", logDefaults.Format),
			Output:     getEnv("SHIFTSHEET_LOG_OUTPUT", logDefaults.Output),
			FilePath:   getEnv("SHIFTSHEET_LOG_FILE", ""),
			TimeFormat: logDefaults.TimeFormat,
		},
	}
	return cfg, nil
}

// Options converts the settings into run options.
func (c *Config) Options() (shiftsheet.Options, error) {
	cal, err := hours.NewHolidayCalendar(c.Holidays...)
	if err != nil {
		return shiftsheet.Options{}, err
	}

	opts := shiftsheet.DefaultOptions()
	opts.SheetName = c.Sheet
	opts.Holidays = cal
	opts.OvertimeThreshold = c.OvertimeThreshold
	opts.PremiumMultiplier = c.PremiumMultiplier
	opts.FallbackRate = c.FallbackRate
	opts.Layout.RateColumn = c.RateColumn
	opts.Layout.ResolveRateColumn = c.ResolveRateColumn
	opts.Workers = c.Workers
	return opts, opts.Validate()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
