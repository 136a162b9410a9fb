package shiftsheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/hours"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/parser"
)

// ExtractFile reads one workbook and turns its sheet into worked hours and
// rate entries. Any failure is returned as a *FileError naming the file.
func ExtractFile(path string, opts Options) (*models.FileResult, error) {
	name := filepath.Base(path)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewFileError(name, "read", ErrFileNotFound)
		}
		return nil, NewFileError(name, "read", err)
	}

	grid, err := parser.ReadGrid(path, opts.SheetName)
	if err != nil {
		if !errors.Is(err, models.ErrSheetNotFound) {
			err = fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		return nil, NewFileError(name, "read", err)
	}

	return ExtractGrid(grid, opts)
}

// ExtractGrid runs the locate, reshape, pair and duration stages over an
// already-read grid.
func ExtractGrid(grid *models.RawGrid, opts Options) (*models.FileResult, error) {
	log := opts.Logger.With().Str("component", "extract").Str("file", grid.Source).Logger()

	headers, err := parser.LocateWeekHeaders(grid, opts.Layout.MarkerColumn)
	if err != nil {
		return nil, NewFileError(grid.Source, "locate", err)
	}
	layout := parser.ResolveColumnLayout(grid, headers, opts.Layout)

	result := &models.FileResult{File: grid.Source, Path: grid.Path, Sheet: grid.Sheet}
	if grid.Unreadable > 0 {
		result.Warnings = append(result.Warnings, models.Warning{
			Kind:    models.WarningParse,
			File:    grid.Source,
			Message: fmt.Sprintf("%d formula cells have no readable value and were left blank", grid.Unreadable),
		})
	}

	building, ok := parser.BuildingName(grid, headers.First)
	if !ok {
		result.Warnings = append(result.Warnings, models.Warning{
			Kind:    models.WarningLayout,
			File:    grid.Source,
			Message: "no building line found above the first week header",
		})
	}
	result.BuildingName = building

	var punches []models.Punch
	for _, block := range parser.Blocks(headers, grid.NumRows()) {
		week, err := parser.ExtractWeek(grid, block, layout)
		if err != nil {
			return nil, NewFileError(grid.Source, "extract", err)
		}
		punches = append(punches, week...)
	}

	src := parser.ShiftSource{File: grid.Source, Path: grid.Path, Sheet: grid.Sheet, Building: building}
	shifts, warnings := parser.ResolvePairs(src, punches)
	result.Warnings = append(result.Warnings, warnings...)

	worked, warnings := hours.Compute(shifts)
	for i := range warnings {
		warnings[i].File = grid.Source
	}
	result.Warnings = append(result.Warnings, warnings...)
	result.Shifts = worked

	rates, warnings := parser.ExtractRates(grid, headers.First, layout, opts.FallbackRate)
	result.Warnings = append(result.Warnings, warnings...)
	result.Rates = rates

	for _, w := range result.Warnings {
		log.Warn().Str("kind", string(w.Kind)).Str("employee", w.Employee).Msg(w.Message)
	}
	log.Debug().
		Str("building", building).
		Int("punches", len(punches)).
		Int("shifts", len(worked)).
		Int("rates", len(rates)).
		Msg("extracted sheet")

	return result, nil
}
