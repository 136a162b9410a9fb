package output

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by WriteXLSX.
const (
	EmployeesSheet = "Employees"
	PayrollSheet   = "Payroll"
	ShiftsSheet    = "Shifts"
)

// WriteXLSX writes the per-employee, payroll and shift tables to a workbook
// at path.
func WriteXLSX(path string, report *models.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), EmployeesSheet); err != nil {
		return err
	}
	for _, name := range []string{PayrollSheet, ShiftsSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return err
		}
	}

	if err := writeSheet(f, EmployeesSheet, EmployeeHeader, EmployeeRows(report.Employees)); err != nil {
		return err
	}
	if err := writeSheet(f, PayrollSheet, PayrollHeader, PayrollRows(report.Payroll)); err != nil {
		return err
	}
	if err := writeSheet(f, ShiftsSheet, ShiftHeader, ShiftRows(report.Shifts)); err != nil {
		return err
	}

	return f.SaveAs(path)
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	all := append([][]string{header}, rows...)
	for i, row := range all {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
			if i > 0 {
				if n, err := strconv.ParseFloat(v, 64); err == nil {
					values[j] = n
				}
			}
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
