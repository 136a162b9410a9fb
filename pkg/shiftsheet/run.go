package shiftsheet

import (
	"context"
	"path/filepath"
	"sort"
	"time"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/hours"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/parser"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/payroll"
	"golang.org/x/sync/errgroup"
)

// Run extracts every file in parallel and combines the results into a
// report. A file that fails is listed in Report.Failures and does not stop
// the others. ErrNoData is returned, along with the report, when no file
// yields any shift.
func Run(ctx context.Context, paths []string, opts Options) (*models.Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.Logger.With().Str("component", "run").Logger()
	start := time.Now()

	results := make([]*models.FileResult, len(paths))
	errs := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers())
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = NewFileError(filepath.Base(path), "read", err)
				return nil
			}
			results[i], errs[i] = ExtractFile(path, opts)
			return nil
		})
	}
	_ = g.Wait()

	var (
		ok       []models.FileResult
		failures []models.FileFailure
	)
	for i, path := range paths {
		if errs[i] != nil {
			log.Warn().Err(errs[i]).Str("file", filepath.Base(path)).Msg("skipping file")
			failures = append(failures, models.FileFailure{File: filepath.Base(path), Error: errs[i].Error()})
			continue
		}
		ok = append(ok, *results[i])
	}

	report := Combine(ok, opts)
	report.Failures = failures

	log.Info().
		Int("files", len(paths)).
		Int("failed", len(failures)).
		Int("employees", len(report.Employees)).
		Int("warnings", len(report.Warnings)).
		Dur("elapsed", time.Since(start)).
		Msg("run complete")

	if len(report.Summaries) == 0 {
		return report, ErrNoData
	}
	return report, nil
}

// Combine merges per-file results and runs classification and payroll.
// The output does not depend on the order of results.
func Combine(results []models.FileResult, opts Options) *models.Report {
	sorted := append([]models.FileResult(nil), results...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].File != sorted[j].File {
			return sorted[i].File < sorted[j].File
		}
		return sorted[i].Path < sorted[j].Path
	})

	report := &models.Report{}
	var (
		worked  []models.WorkedHours
		entries []models.RateEntry
	)
	for _, r := range sorted {
		report.Files = append(report.Files, r.File)
		worked = append(worked, r.Shifts...)
		entries = append(entries, r.Rates...)
		report.Warnings = append(report.Warnings, r.Warnings...)
	}

	policy := opts.policy()
	weekly := hours.Classify(worked, policy, hours.ByWeek)
	report.Employees = hours.Totals(weekly)
	report.Shifts = worked
	report.Summaries = hours.Classify(worked, policy, hours.ByBuildingMonth)
	report.Rates = parser.AverageRates(entries)
	report.Pay = payroll.Join(report.Summaries, report.Rates, opts.PremiumMultiplier)
	report.Payroll = payroll.Aggregate(report.Pay)
	report.BuildingHours = hours.BuildingHours(worked)

	for _, name := range payroll.MissingRates(report.Pay) {
		report.Warnings = append(report.Warnings, models.Warning{
			Kind:     models.WarningJoinGap,
			Employee: name,
			Message:  "employee has hours but no hourly rate; pay left unpriced",
		})
	}
	return report
}
