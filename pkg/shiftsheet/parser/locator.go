package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

// WeekHeaders holds the grid rows of the two week header rows.
type WeekHeaders struct {
	First  int
	Second int
}

// buildingPattern matches the leading building line, e.g.
// "Hamilton Cove Weekly Schedule" or "Hamilton Cove employees".
var buildingPattern = regexp.MustCompile(`(?i)^([\p{L}\p{N}_\s]+)\s(Weekly|employees)`)

// LocateWeekHeaders scans the marker column for rows containing "Date".
// The first two matches anchor week 1 and week 2.
func LocateWeekHeaders(g *models.RawGrid, markerCol int) (WeekHeaders, error) {
	var found []int
	for row := 0; row < g.NumRows(); row++ {
		if strings.Contains(strings.ToLower(g.Cell(row, markerCol)), "date") {
			found = append(found, row)
			if len(found) == 2 {
				break
			}
		}
	}
	if len(found) < 2 {
		return WeekHeaders{}, models.NewLayoutError(
			"expected two %q header rows in column %d, found %d", "Date", markerCol, len(found))
	}
	return WeekHeaders{First: found[0], Second: found[1]}, nil
}

// BuildingName finds the building line above the first week header.
// It returns false when no row above the header matches.
func BuildingName(g *models.RawGrid, firstHeader int) (string, bool) {
	for row := 0; row < firstHeader && row < g.NumRows(); row++ {
		for _, cell := range g.Rows[row] {
			if m := buildingPattern.FindStringSubmatch(strings.TrimSpace(cell)); m != nil {
				return strings.TrimSpace(m[1]), true
			}
		}
	}
	return "", false
}
