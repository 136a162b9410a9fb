package parser

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

// Block is one week of the schedule: rows (Header, End) belong to it.
type Block struct {
	Week   int
	Header int
	End    int
}

// Blocks splits the grid into the two week blocks anchored by headers.
// Week 1 ends at the week 2 header; week 2 runs to the end of the grid.
func Blocks(headers WeekHeaders, numRows int) [2]Block {
	return [2]Block{
		{Week: 1, Header: headers.First, End: headers.Second},
		{Week: 2, Header: headers.Second, End: numRows},
	}
}

// skippedIdentities are marker-column labels that never name an employee.
var skippedIdentities = map[string]bool{
	Unknown:            true,
	"Name of Employee": true,
	"Date":             true,
	"Day":              true,
}

// IsEmployeeIdentity reports whether a marker-column cell names an employee.
func IsEmployeeIdentity(text string) bool {
	return !skippedIdentities[strings.TrimSpace(text)]
}

// punchColumn is a grid column that can hold punches.
type punchColumn struct {
	col    int
	anchor int
	kind   models.PunchKind
}

// ExtractWeek reshapes one week block into long-form punches.
//
// Columns left of the marker column are ignored. A header cell holding a
// date makes a time-in column; the blank header right after it makes the
// matching time-out column. Any other column (totals, rates, notes) is
// skipped, as are cells that hold no time of day.
func ExtractWeek(g *models.RawGrid, block Block, layout ColumnLayout) ([]models.Punch, error) {
	dates := make(map[int]time.Time)
	var columns []punchColumn

	for col := layout.MarkerColumn + 1; col < g.NumCols(); col++ {
		header := g.Cell(block.Header, col)
		if d, ok := ParseHeaderDate(header); ok {
			dates[col] = d
			columns = append(columns, punchColumn{col: col, anchor: col, kind: models.PunchIn})
			continue
		}
		if header == Unknown {
			if _, ok := dates[col-1]; ok {
				columns = append(columns, punchColumn{col: col, anchor: col - 1, kind: models.PunchOut})
			}
		}
	}
	if len(dates) == 0 {
		return nil, models.NewLayoutError("week %d header row %d has no date columns", block.Week, block.Header)
	}

	var rows []int
	for row := block.Header + 1; row < block.End && row < g.NumRows(); row++ {
		if IsEmployeeIdentity(g.Cell(row, layout.MarkerColumn)) {
			rows = append(rows, row)
		}
	}

	// Column-major, like an unpivot of the date columns.
	var punches []models.Punch
	for _, pc := range columns {
		for _, row := range rows {
			value, ok := PunchValue(g.Cell(row, pc.col))
			if !ok {
				continue
			}
			punches = append(punches, models.Punch{
				Key:      models.ShiftKey{Row: row, DateColumn: pc.anchor},
				Kind:     pc.kind,
				Employee: g.Cell(row, layout.MarkerColumn),
				Date:     dates[pc.anchor],
				Value:    value,
				Week:     block.Week,
			})
		}
	}
	return punches, nil
}

// PunchValue returns the time-of-day text of a punch cell. Text with a
// colon is kept as is, except that a "YYYY-MM-DD HH:MM:SS" timestamp keeps
// only its clock. A bare Excel serial with a fractional day, or below one
// day, is read as that time of day. Anything else holds no punch.
func PunchValue(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == Unknown {
		return "", false
	}
	if strings.Contains(text, ":") {
		if t, err := time.Parse(DateLayout+" "+ClockLayout, text); err == nil {
			return t.Format(ClockLayout), true
		}
		return text, true
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || v < 0 {
		return "", false
	}
	whole, frac := math.Modf(v)
	if whole > 0 && frac == 0 {
		return "", false
	}
	return clockFromSerial(frac), true
}
