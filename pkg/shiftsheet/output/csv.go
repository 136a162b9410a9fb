package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
)

// EmployeeHeader is the header row of the per-employee table.
var EmployeeHeader = []string{"Employee Name", "Holiday Hours", "Regular Hours", "Overtime Hours"}

// PayrollHeader is the header row of the per-building payroll table.
var PayrollHeader = []string{
	"Building Name", "Month", "Year",
	"Regular Hours Pay", "Overtime Pay", "Holiday Pay", "Total Pay",
	"Missing Rate",
}

// ShiftHeader is the header row of the per-shift audit table.
var ShiftHeader = []string{
	"Shift ID", "Employee Name", "Building Name", "Date", "Time In", "Time Out", "Hours",
}

// EmployeeRows renders the per-employee table, sorted by name, with hour
// values at one decimal.
func EmployeeRows(totals []models.EmployeeTotals) [][]string {
	sorted := append([]models.EmployeeTotals(nil), totals...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EmployeeName < sorted[j].EmployeeName
	})

	rows := make([][]string, 0, len(sorted))
	for _, t := range sorted {
		rows = append(rows, []string{
			t.EmployeeName,
			formatHours(t.HolidayHours),
			formatHours(t.RegularHours),
			formatHours(t.OvertimeHours),
		})
	}
	return rows
}

// PayrollRows renders the payroll table in aggregation order.
func PayrollRows(lines []models.PayrollLine) [][]string {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			l.BuildingName,
			strconv.Itoa(l.Month),
			strconv.Itoa(l.Year),
			formatMoney(l.RegularPay),
			formatMoney(l.OvertimePay),
			formatMoney(l.HolidayPay),
			formatMoney(l.TotalPay),
			strings.Join(l.MissingRate, "; "),
		})
	}
	return rows
}

// ShiftRows renders one row per worked shift, in report order, so every
// hour in the totals can be traced back to its cell by Shift ID.
func ShiftRows(shifts []models.WorkedHours) [][]string {
	rows := make([][]string, 0, len(shifts))
	for _, s := range shifts {
		rows = append(rows, []string{
			s.ID.String(),
			s.EmployeeName,
			s.BuildingName,
			s.Date.Format("2006-01-02"),
			s.TimeIn,
			s.TimeOut,
			strconv.FormatFloat(s.Hours, 'f', 2, 64),
		})
	}
	return rows
}

// WriteShiftCSV writes the per-shift audit table as CSV.
func WriteShiftCSV(w io.Writer, shifts []models.WorkedHours) error {
	return writeCSV(w, ShiftHeader, ShiftRows(shifts))
}

// WriteEmployeeCSV writes the per-employee table as CSV.
func WriteEmployeeCSV(w io.Writer, totals []models.EmployeeTotals) error {
	return writeCSV(w, EmployeeHeader, EmployeeRows(totals))
}

// WritePayrollCSV writes the per-building payroll table as CSV.
func WritePayrollCSV(w io.Writer, lines []models.PayrollLine) error {
	return writeCSV(w, PayrollHeader, PayrollRows(lines))
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}

// ReadEmployeeCSV parses a table written by WriteEmployeeCSV.
func ReadEmployeeCSV(r io.Reader) ([]models.EmployeeTotals, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("employee table is empty")
	}
	if !equalHeader(records[0], EmployeeHeader) {
		return nil, fmt.Errorf("unexpected employee header %q", records[0])
	}

	totals := make([]models.EmployeeTotals, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(EmployeeHeader) {
			return nil, fmt.Errorf("row %d: want %d fields, got %d", i+2, len(EmployeeHeader), len(rec))
		}
		var vals [3]float64
		for j := range vals {
			v, err := strconv.ParseFloat(rec[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d %s: %w", i+2, EmployeeHeader[j+1], err)
			}
			vals[j] = v
		}
		totals = append(totals, models.EmployeeTotals{
			EmployeeName:  rec[0],
			HolidayHours:  vals[0],
			RegularHours:  vals[1],
			OvertimeHours: vals[2],
		})
	}
	return totals, nil
}

func equalHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if strings.TrimSpace(got[i]) != want[i] {
			return false
		}
	}
	return true
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64)
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
