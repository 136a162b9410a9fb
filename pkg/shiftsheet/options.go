// Package shiftsheet converts biweekly timesheet workbooks into classified
// hours per employee and a payroll breakdown per building.
package shiftsheet

import (
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/hours"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/parser"
)

// DefaultFallbackRate replaces hourly rates that fail to parse.
const DefaultFallbackRate = 17.0

// Options configures a run. It is read-only once a run starts.
type Options struct {
	// SheetName is the worksheet tab shared by every workbook of the run.
	// Empty selects the first sheet.
	SheetName string
	// Holidays is the holiday calendar.
	Holidays hours.HolidayCalendar
	// OvertimeThreshold is the weekly regular-hour cap.
	OvertimeThreshold float64
	// PremiumMultiplier is applied to overtime and holiday hours.
	PremiumMultiplier float64
	// FallbackRate replaces rate cells that fail to parse.
	FallbackRate float64
	// Layout maps column roles to grid columns.
	Layout parser.ColumnLayout
	// Workers bounds how many files are extracted at once.
	// Zero means one per CPU.
	Workers int
	// Logger receives progress and warnings. The zero value is silent.
	Logger zerolog.Logger
}

// DefaultOptions returns default options with an empty holiday calendar.
func DefaultOptions() Options {
	return Options{
		Holidays:          hours.MustHolidayCalendar(),
		OvertimeThreshold: hours.DefaultOvertimeThreshold,
		PremiumMultiplier: 1.5,
		FallbackRate:      DefaultFallbackRate,
		Layout:            parser.DefaultColumnLayout(),
		Logger:            zerolog.Nop(),
	}
}

// Validate checks the numeric settings.
func (o Options) Validate() error {
	switch {
	case o.OvertimeThreshold <= 0:
		return fmt.Errorf("overtime threshold must be positive, got %v", o.OvertimeThreshold)
	case o.PremiumMultiplier <= 0:
		return fmt.Errorf("premium multiplier must be positive, got %v", o.PremiumMultiplier)
	case o.FallbackRate < 0:
		return fmt.Errorf("fallback rate must not be negative, got %v", o.FallbackRate)
	case o.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", o.Workers)
	}
	return nil
}

// workers returns the effective extraction parallelism.
func (o Options) workers() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}

func (o Options) policy() hours.Policy {
	return hours.Policy{
		Holidays:          o.Holidays,
		OvertimeThreshold: o.OvertimeThreshold,
	}
}
