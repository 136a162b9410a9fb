package parser

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/extrame/xls"
	"github.com/ukaji3/shiftsheet-go/internal/sheetfixture"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
	"github.com/xuri/excelize/v2"
)

func TestReadGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B1", "Hamilton Cove Weekly")
	f.SetCellValue(sheetName, "B3", "Date")
	f.SetCellValue(sheetName, "C3", "2023-01-16")
	f.SetCellValue(sheetName, "C4", "09:00:00")
	f.SetCellValue(sheetName, "R4", 15.5)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	grid, err := ReadGrid(tmpFile, "")
	if err != nil {
		t.Fatalf("ReadGrid failed: %v", err)
	}

	if grid.Source != "test.xlsx" {
		t.Errorf("Expected source test.xlsx, got %q", grid.Source)
	}
	if grid.Sheet != sheetName {
		t.Errorf("Expected sheet %q, got %q", sheetName, grid.Sheet)
	}
	if grid.NumRows() != 4 {
		t.Errorf("Expected 4 rows, got %d", grid.NumRows())
	}
	if got := grid.Cell(0, 1); got != "Hamilton Cove Weekly" {
		t.Errorf("Expected building line, got %q", got)
	}
	if got := grid.Cell(2, 2); got != "2023-01-16" {
		t.Errorf("Expected header date, got %q", got)
	}
	if got := grid.Cell(3, 2); got != "09:00:00" {
		t.Errorf("Expected punch, got %q", got)
	}
	if got := grid.Cell(3, 17); got != "15.5" {
		t.Errorf("Expected rate 15.5, got %q", got)
	}
	if got := grid.Cell(10, 10); got != "" {
		t.Errorf("Expected blank outside grid, got %q", got)
	}
}

func TestReadGridSheetNotFound(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	_, err := ReadGrid(tmpFile, "1-16 to 1-29")
	if !errors.Is(err, models.ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}
}

func TestNormalizeCell(t *testing.T) {
	tests := []struct {
		formatted string
		raw       string
		kind      numFmtKind
		expected  string
	}{
		{"9:00 AM", "0.375", fmtTime, "09:00:00"},
		{"17:30", "0.729166666666667", fmtTime, "17:30:00"},
		{"0:00", "0", fmtTime, "00:00:00"},
		{"1/16/23", "44942", fmtDate, "2023-01-16"},
		{"Jan 16", "44942", fmtDate, "2023-01-16"},
		{"Monday", "44942", fmtDate, "2023-01-16"},
		{"1/16/23 9:00", "44942.375", fmtDateTime, "2023-01-16 09:00:00"},
		{"1/16/23 0:00", "44942", fmtDateTime, "2023-01-16"},
		{"$15.00", "15", fmtOther, "$15.00"},
		{"17", "17", fmtOther, "17"},
		{" Jane Smith ", " Jane Smith ", fmtOther, "Jane Smith"},
		{"", "", fmtOther, ""},
	}

	for _, tt := range tests {
		result := normalizeCell(tt.formatted, tt.raw, tt.kind)
		if result != tt.expected {
			t.Errorf("normalizeCell(%q, %q, %d) = %q, expected %q",
				tt.formatted, tt.raw, tt.kind, result, tt.expected)
		}
	}
}

func TestNumFmtCodeKind(t *testing.T) {
	tests := []struct {
		code     string
		expected numFmtKind
	}{
		{"mmm d", fmtDate},
		{"d mmm", fmtDate},
		{"dddd", fmtDate},
		{"m/d/yy", fmtDate},
		{"[$-409]mmmm d, yyyy;@", fmtDate},
		{"h:mm:ss", fmtTime},
		{"h:mm AM/PM", fmtTime},
		{"[h]:mm", fmtTime},
		{"m/d/yy h:mm", fmtDateTime},
		{"General", fmtOther},
		{"$#,##0.00", fmtOther},
		{`0.0 "hrs"`, fmtOther},
		{"0%", fmtOther},
	}

	for _, tt := range tests {
		if got := numFmtCodeKind(tt.code); got != tt.expected {
			t.Errorf("numFmtCodeKind(%q) = %d, expected %d", tt.code, got, tt.expected)
		}
	}
}

func TestReadGridTypedCells(t *testing.T) {
	tests := []struct {
		name    string
		formats sheetfixture.Formats
	}{
		{"custom month day", sheetfixture.Formats{DateCustom: "mmm d", TimeBuiltIn: 21}},
		{"custom day month", sheetfixture.Formats{DateCustom: "d mmm", TimeBuiltIn: 21}},
		{"weekday name", sheetfixture.Formats{DateCustom: "dddd", TimeCustom: "h:mm AM/PM"}},
		{"custom slashes", sheetfixture.Formats{DateCustom: "m/d/yy", TimeBuiltIn: 20}},
		{"built-in date", sheetfixture.Formats{DateBuiltIn: 14, TimeBuiltIn: 19}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpFile := filepath.Join(t.TempDir(), "typed.xlsx")
			if err := standardSheet().WriteTypedXLSX(tmpFile, "Sheet1", tt.formats); err != nil {
				t.Fatalf("Failed to save test file: %v", err)
			}

			grid, err := ReadGrid(tmpFile, "")
			if err != nil {
				t.Fatalf("ReadGrid failed: %v", err)
			}

			headers, err := LocateWeekHeaders(grid, 1)
			if err != nil {
				t.Fatalf("LocateWeekHeaders failed: %v", err)
			}
			if got := grid.Cell(headers.First, 2); got != "2023-01-16" {
				t.Errorf("Expected header date 2023-01-16, got %q", got)
			}
			if got := grid.Cell(headers.Second, 14); got != "2023-01-29" {
				t.Errorf("Expected header date 2023-01-29, got %q", got)
			}

			week1, err := ExtractWeek(grid, Blocks(headers, grid.NumRows())[0], DefaultColumnLayout())
			if err != nil {
				t.Fatalf("ExtractWeek failed: %v", err)
			}
			if len(week1) != 8 {
				t.Fatalf("Expected 8 punches, got %d", len(week1))
			}
			if week1[0].Value != "09:00:00" || week1[1].Value != "17:00:00" {
				t.Errorf("Expected 09:00:00-17:00:00, got %q-%q", week1[0].Value, week1[1].Value)
			}
		})
	}
}

func TestPlainNumberFormats(t *testing.T) {
	wb := &xls.WorkBook{Formats: map[uint16]*xls.Format{}}
	wb.Xfs = append(wb.Xfs, &xls.Xf8{Format: 14}, &xls.Xf8{Format: 21}, &xls.Xf5{Format: 170})
	wb.Formats[170] = &xls.Format{}

	date := &xls.XfRk{Index: 0, Rk: xls.RK(44942<<2 | 2)}
	if got := date.String(wb); got == "44942" {
		t.Fatalf("Expected the library to render format 14 lossily, got %q", got)
	}

	plainNumberFormats(wb)

	// 0.375 is exact in the 30 high bits an RK float keeps.
	clock := &xls.XfRk{Index: 1, Rk: xls.RK(math.Float64bits(0.375) >> 32)}
	custom := &xls.XfRk{Index: 2, Rk: xls.RK(44943<<2 | 2)}
	if got := date.String(wb); got != "44942" {
		t.Errorf("Expected date serial 44942, got %q", got)
	}
	if got := clock.String(wb); got != "0.375" {
		t.Errorf("Expected time serial 0.375, got %q", got)
	}
	if got := custom.String(wb); got != "44943" {
		t.Errorf("Expected custom-format serial 44943, got %q", got)
	}

	if d, ok := ParseHeaderDate(date.String(wb)); !ok || d.Day() != 16 {
		t.Errorf("Expected serial header to parse as 2023-01-16, got %v %v", d, ok)
	}
	if v, ok := PunchValue(clock.String(wb)); !ok || v != "09:00:00" {
		t.Errorf("Expected serial punch to read as 09:00:00, got %q", v)
	}
}

func TestLastDataRow(t *testing.T) {
	rows := [][]string{
		{"", "title"},
		{},
		{"", "", "x"},
		{"", " "},
		{},
	}

	if got := lastDataRow(rows); got != 2 {
		t.Errorf("Expected last data row 2, got %d", got)
	}
	if got := lastDataRow([][]string{{""}, {}}); got != -1 {
		t.Errorf("Expected -1 for blank sheet, got %d", got)
	}
}
