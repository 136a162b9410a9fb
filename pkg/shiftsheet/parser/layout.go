package parser

import (
	"strings"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

// ColumnLayout maps column roles to 0-based grid columns.
type ColumnLayout struct {
	// MarkerColumn holds the "Date" header markers and the employee names.
	MarkerColumn int
	// RateNameColumn holds the employee name paired with a rate.
	RateNameColumn int
	// RateColumn holds the hourly rate.
	RateColumn int
	// ResolveRateColumn enables a header scan for a "rate" column that
	// overrides RateColumn when found.
	ResolveRateColumn bool
}

// DefaultColumnLayout returns the layout of the standard biweekly sheet:
// names in column B and rates in column R.
func DefaultColumnLayout() ColumnLayout {
	return ColumnLayout{
		MarkerColumn:   1,
		RateNameColumn: 1,
		RateColumn:     17,
	}
}

// ResolveColumnLayout returns layout with RateColumn replaced by the first
// header-row column whose text mentions "rate", when resolution is enabled.
func ResolveColumnLayout(g *models.RawGrid, headers WeekHeaders, layout ColumnLayout) ColumnLayout {
	if !layout.ResolveRateColumn {
		return layout
	}
	for _, row := range []int{headers.First, headers.Second} {
		for col := 0; col < g.NumCols(); col++ {
			if col == layout.MarkerColumn {
				continue
			}
			if strings.Contains(strings.ToLower(g.Cell(row, col)), "rate") {
				resolved := layout
				resolved.RateColumn = col
				return resolved
			}
		}
	}
	return layout
}
