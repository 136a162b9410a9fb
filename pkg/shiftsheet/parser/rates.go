package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

// rateLabelPattern matches administrative labels in the name or rate column.
// Whole words only, so names such as "Dayana" survive.
var rateLabelPattern = regexp.MustCompile(`(?i)\b(employees?|day|date|total hours)\b`)

// ExtractRates reads (name, rate) pairs from the fixed rate columns of every
// row from startRow down. Rows with a blank name or rate, or with an
// administrative label in either cell, are skipped. A rate that does not
// parse is replaced by fallback and reported.
func ExtractRates(g *models.RawGrid, startRow int, layout ColumnLayout, fallback float64) ([]models.RateEntry, []models.Warning) {
	var (
		entries  []models.RateEntry
		warnings []models.Warning
	)

	for row := startRow; row < g.NumRows(); row++ {
		name := g.Cell(row, layout.RateNameColumn)
		rateText := g.Cell(row, layout.RateColumn)
		if name == Unknown || rateText == Unknown {
			continue
		}
		if rateLabelPattern.MatchString(name) || rateLabelPattern.MatchString(rateText) {
			continue
		}

		entry := models.RateEntry{EmployeeName: name, Row: row}
		rate, err := ParseRate(rateText)
		if err != nil {
			entry.Rate = fallback
			entry.Fallback = true
			warnings = append(warnings, models.Warning{
				Kind:     models.WarningParse,
				File:     g.Source,
				Employee: name,
				Message:  fmt.Sprintf("%v; using fallback rate %.2f", err, fallback),
			})
		} else {
			entry.Rate = rate
		}
		entries = append(entries, entry)
	}

	return entries, warnings
}

// ParseRate parses an hourly rate cell, tolerating a currency sign and
// thousands separators. Negative rates are rejected.
func ParseRate(text string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(strings.TrimSpace(text))
	rate, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, models.NewParseError("rate", text, err)
	}
	if rate < 0 {
		return 0, models.NewParseError("rate", text, fmt.Errorf("negative rate"))
	}
	return rate, nil
}

// AverageRates groups entries by trimmed employee name and averages every
// observed rate for each employee. Output is sorted by name.
func AverageRates(entries []models.RateEntry) []models.HourlyRate {
	observed := make(map[string][]float64)
	fallbacks := make(map[string]int)
	for _, e := range entries {
		name := strings.TrimSpace(e.EmployeeName)
		observed[name] = append(observed[name], e.Rate)
		if e.Fallback {
			fallbacks[name]++
		}
	}

	rates := make([]models.HourlyRate, 0, len(observed))
	for name, values := range observed {
		// Sum in sorted order so the mean does not depend on file order.
		sort.Float64s(values)
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		rates = append(rates, models.HourlyRate{
			EmployeeName: name,
			Rate:         sum / float64(len(values)),
			Observations: len(values),
			Fallbacks:    fallbacks[name],
		})
	}
	sort.Slice(rates, func(i, j int) bool {
		return rates[i].EmployeeName < rates[j].EmployeeName
	})
	return rates
}
