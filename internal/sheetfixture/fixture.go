// Package sheetfixture builds biweekly timesheet grids and workbooks for tests.
package sheetfixture

import (
	"time"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
	"github.com/xuri/excelize/v2"
)

// Column positions of the standard biweekly sheet.
const (
	NameColumn  = 1
	FirstDay    = 2
	TotalColumn = 16
	RateColumn  = 17
	Width       = 18
)

// Shift is a time-in/time-out pair; an empty Out leaves the cell blank.
type Shift struct {
	In  string
	Out string
}

// Employee is one employee row of a week block.
type Employee struct {
	Name string
	// Shifts maps day offset (0-6) from the week start to a shift.
	Shifts map[int]Shift
	Rate   string
}

// Week is one week block of the sheet.
type Week struct {
	Start     time.Time
	Employees []Employee
}

// Sheet describes a whole biweekly sheet.
type Sheet struct {
	// Title is the building line, e.g. "Hamilton Cove Weekly Schedule".
	Title string
	Weeks [2]Week
}

// Day returns the date d days after start in DateLayout form.
func Day(start time.Time, d int) string {
	return start.AddDate(0, 0, d).Format("2006-01-02")
}

// Rows renders the sheet as grid rows.
func (s Sheet) Rows() [][]string {
	rows := [][]string{
		row(NameColumn, s.Title),
		row(0),
	}
	for _, w := range s.Weeks {
		header := row(NameColumn, "Date")
		day := row(NameColumn, "Day")
		for d := 0; d < 7; d++ {
			header[FirstDay+2*d] = Day(w.Start, d)
			day[FirstDay+2*d] = w.Start.AddDate(0, 0, d).Weekday().String()
		}
		header[TotalColumn] = "Total Hours"
		header[RateColumn] = "Hourly Rate"
		rows = append(rows, header, day, row(NameColumn, "Name of Employee"))

		for _, e := range w.Employees {
			r := row(NameColumn, e.Name)
			for d, sh := range e.Shifts {
				r[FirstDay+2*d] = sh.In
				r[FirstDay+2*d+1] = sh.Out
			}
			r[TotalColumn] = "0"
			r[RateColumn] = e.Rate
			rows = append(rows, r)
		}
		rows = append(rows, row(0))
	}
	return rows
}

// Grid renders the sheet as a RawGrid.
func (s Sheet) Grid(source string) *models.RawGrid {
	return &models.RawGrid{Source: source, Sheet: "Sheet1", Rows: s.Rows()}
}

// WriteXLSX saves the sheet as a workbook with a single tab named sheetName.
// Every cell is written as text.
func (s Sheet) WriteXLSX(path, sheetName string) error {
	return s.write(path, sheetName, nil)
}

// Formats selects the number formats of typed cells written by
// WriteTypedXLSX. Exactly one of each Custom/BuiltIn pair is used; a
// Custom code wins when set.
type Formats struct {
	DateCustom  string
	DateBuiltIn int
	TimeCustom  string
	TimeBuiltIn int
}

// WriteTypedXLSX saves the sheet like WriteXLSX, but header dates and
// punches are stored as Excel serial numbers displayed through formats,
// the way a spreadsheet application saves them.
func (s Sheet) WriteTypedXLSX(path, sheetName string, formats Formats) error {
	return s.write(path, sheetName, &formats)
}

func (s Sheet) write(path, sheetName string, formats *Formats) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}
	for i, r := range s.Rows() {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(r))
		for j, v := range r {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}
	if formats != nil {
		if err := s.typeCells(f, sheetName, *formats); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// excelEpoch is day zero of the 1900 date system as Excel counts it.
var excelEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

func (s Sheet) typeCells(f *excelize.File, sheetName string, formats Formats) error {
	dateStyle, err := newNumFmtStyle(f, formats.DateCustom, formats.DateBuiltIn)
	if err != nil {
		return err
	}
	timeStyle, err := newNumFmtStyle(f, formats.TimeCustom, formats.TimeBuiltIn)
	if err != nil {
		return err
	}

	for i, r := range s.Rows() {
		for j, v := range r {
			var (
				serial float64
				style  int
			)
			if d, err := time.Parse("2006-01-02", v); err == nil {
				serial, style = d.Sub(excelEpoch).Hours()/24, dateStyle
			} else if c, err := time.Parse("15:04:05", v); err == nil {
				clock := c.Sub(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC))
				serial, style = clock.Hours()/24, timeStyle
			} else {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return err
			}
			if err := f.SetCellFloat(sheetName, cell, serial, -1, 64); err != nil {
				return err
			}
			if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
				return err
			}
		}
	}
	return nil
}

func newNumFmtStyle(f *excelize.File, custom string, builtIn int) (int, error) {
	if custom != "" {
		return f.NewStyle(&excelize.Style{CustomNumFmt: &custom})
	}
	return f.NewStyle(&excelize.Style{NumFmt: builtIn})
}

func row(col int, text ...string) []string {
	r := make([]string, Width)
	for i, t := range text {
		r[col+i] = t
	}
	return r
}

// NineToFive returns a 09:00-17:00 shift on each of the given days.
func NineToFive(days ...int) map[int]Shift {
	shifts := make(map[int]Shift, len(days))
	for _, d := range days {
		shifts[d] = Shift{In: "09:00:00", Out: "17:00:00"}
	}
	return shifts
}
