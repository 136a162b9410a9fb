// Package main provides the CLI entry point for shiftsheet.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/shiftsheet-go/internal/config"
	"github.com/ukaji3/shiftsheet-go/internal/logger"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/hours"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/output"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/payroll"
)

var (
	envFile           string
	sheetName         string
	holidays          string
	overtimeThreshold float64
	premium           float64
	fallbackRate      float64
	workers           int
	employeesOut      string
	payrollOut        string
	shiftsOut         string
	xlsxOut           string
	jsonOut           bool
	pretty            bool
	logLevel          string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftsheet [timesheet.xlsx ...]",
		Short: "Turn biweekly timesheet workbooks into payroll hours",
		Long: `shiftsheet reads biweekly timesheet workbooks, classifies worked hours
into holiday, regular and overtime per employee, and prices them per building.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&envFile, "env", ".env", "Environment file with SHIFTSHEET_* settings")
	flags.StringVarP(&sheetName, "sheet", "s", "", "Worksheet tab name shared by all files (default: first sheet)")
	flags.StringVar(&holidays, "holidays", "", "Comma-separated holiday dates (YYYY-MM-DD)")
	flags.Float64Var(&overtimeThreshold, "overtime-threshold", hours.DefaultOvertimeThreshold, "Weekly regular-hour cap")
	flags.Float64Var(&premium, "premium", payroll.DefaultPremiumMultiplier, "Overtime and holiday pay multiplier")
	flags.Float64Var(&fallbackRate, "fallback-rate", shiftsheet.DefaultFallbackRate, "Hourly rate used when a rate cell does not parse")
	flags.IntVarP(&workers, "workers", "w", 0, "Files extracted in parallel (default: number of CPUs)")
	flags.StringVar(&employeesOut, "employees-out", "", "Per-employee CSV output path")
	flags.StringVar(&payrollOut, "payroll-out", "", "Per-building payroll CSV output path")
	flags.StringVar(&shiftsOut, "shifts-out", "", "Per-shift CSV output path, keyed by shift ID")
	flags.StringVar(&xlsxOut, "xlsx-out", "", "Workbook output path holding all tables")
	flags.BoolVar(&jsonOut, "json", false, "Print the full report as JSON")
	flags.BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	opts, err := cfg.Options()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	opts.Logger = log

	report, err := shiftsheet.Run(cmd.Context(), args, opts)
	if errors.Is(err, shiftsheet.ErrNoData) {
		for _, f := range report.Failures {
			log.Error().Str("file", f.File).Msg(f.Error)
		}
		return err
	}
	if err != nil {
		return err
	}

	if err := writeOutputs(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	return nil
}

// applyFlags overrides loaded settings with flags the user set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("sheet") {
		cfg.Sheet = sheetName
	}
	if flags.Changed("holidays") {
		cfg.Holidays = strings.Split(holidays, ",")
	}
	if flags.Changed("overtime-threshold") {
		cfg.OvertimeThreshold = overtimeThreshold
	}
	if flags.Changed("premium") {
		cfg.PremiumMultiplier = premium
	}
	if flags.Changed("fallback-rate") {
		cfg.FallbackRate = fallbackRate
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
}

func writeOutputs(stdout io.Writer, report *models.Report) error {
	if employeesOut != "" {
		if err := writeFile(employeesOut, func(w io.Writer) error {
			return output.WriteEmployeeCSV(w, report.Employees)
		}); err != nil {
			return fmt.Errorf("failed to write employee table: %w", err)
		}
	}

	if payrollOut != "" {
		if err := writeFile(payrollOut, func(w io.Writer) error {
			return output.WritePayrollCSV(w, report.Payroll)
		}); err != nil {
			return fmt.Errorf("failed to write payroll table: %w", err)
		}
	}

	if shiftsOut != "" {
		if err := writeFile(shiftsOut, func(w io.Writer) error {
			return output.WriteShiftCSV(w, report.Shifts)
		}); err != nil {
			return fmt.Errorf("failed to write shift table: %w", err)
		}
	}

	if xlsxOut != "" {
		if err := output.WriteXLSX(xlsxOut, report); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
	}

	if jsonOut {
		data, err := output.ToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}

	if employeesOut == "" && payrollOut == "" && shiftsOut == "" && xlsxOut == "" {
		return output.WriteEmployeeCSV(stdout, report.Employees)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
