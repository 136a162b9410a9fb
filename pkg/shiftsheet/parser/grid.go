package parser

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/extrame/xls"
	"github.com/ukaji3/shiftsheet-go/pkg/shiftsheet/models"
	"github.com/xuri/excelize/v2"
)

// xlsFormulaText is what extrame/xls returns for a formula cell in place
// of its cached result.
const xlsFormulaText = "FormulaCol"

// ReadGrid reads one worksheet of a workbook into a RawGrid.
// Legacy .xls workbooks are read through extrame/xls, everything else
// through excelize. An empty sheetName selects the first sheet.
func ReadGrid(path, sheetName string) (*models.RawGrid, error) {
	var (
		rows       [][]string
		sheet      string
		unreadable int
		err        error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xls":
		rows, sheet, unreadable, err = readXLS(path, sheetName)
	default:
		rows, sheet, err = readXLSX(path, sheetName)
	}
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}

	return &models.RawGrid{
		Source:     filepath.Base(path),
		Path:       abs,
		Sheet:      sheet,
		Rows:       rows[:lastDataRow(rows)+1],
		Unreadable: unreadable,
	}, nil
}

func readXLSX(path, sheetName string) ([][]string, string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, "", fmt.Errorf("%w: %q", models.ErrSheetNotFound, sheetName)
	}

	formatted, err := f.GetRows(sheetName)
	if err != nil {
		return nil, "", err
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, "", err
	}

	formats := newFormatCache(f, sheetName)
	rows := make([][]string, len(formatted))
	for rowIdx, row := range formatted {
		cells := make([]string, len(row))
		for colIdx, cellValue := range row {
			rawValue := cellAt(raw, rowIdx, colIdx)
			kind := fmtOther
			if rawValue != cellValue {
				kind = formats.kindAt(colIdx, rowIdx)
			}
			cells[colIdx] = normalizeCell(cellValue, rawValue, kind)
		}
		rows[rowIdx] = cells
	}
	return rows, sheetName, nil
}

func readXLS(path, sheetName string) ([][]string, string, int, error) {
	wb, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, "", 0, err
	}
	plainNumberFormats(wb)

	var ws *xls.WorkSheet
	for i := 0; i < wb.NumSheets(); i++ {
		s := wb.GetSheet(i)
		if s == nil {
			continue
		}
		if sheetName == "" || s.Name == sheetName {
			ws = s
			break
		}
	}
	if ws == nil {
		return nil, "", 0, fmt.Errorf("%w: %q", models.ErrSheetNotFound, sheetName)
	}

	unreadable := 0
	rows := make([][]string, int(ws.MaxRow)+1)
	for rowIdx := 0; rowIdx <= int(ws.MaxRow); rowIdx++ {
		row := ws.Row(rowIdx)
		if row == nil {
			continue
		}
		cells := make([]string, row.LastCol())
		for colIdx := row.FirstCol(); colIdx < row.LastCol(); colIdx++ {
			text := strings.TrimSpace(row.Col(colIdx))
			if text == xlsFormulaText {
				unreadable++
				text = Unknown
			}
			cells[colIdx] = text
		}
		rows[rowIdx] = cells
	}
	return rows, ws.Name, unreadable, nil
}

// plainNumberFormats points every cell format of wb at General. extrame/xls
// renders date formats as "2006.01" and custom formats as RFC 3339, both
// lossy; under General it returns the stored serial, which header dates and
// punch columns convert themselves.
func plainNumberFormats(wb *xls.WorkBook) {
	for _, xf := range wb.Xfs {
		switch x := xf.(type) {
		case *xls.Xf8:
			x.Format = 0
		case *xls.Xf5:
			x.Format = 0
		}
	}
}

func cellAt(rows [][]string, rowIdx, colIdx int) string {
	if rowIdx >= len(rows) || colIdx >= len(rows[rowIdx]) {
		return ""
	}
	return rows[rowIdx][colIdx]
}

// normalizeCell converts a formatted cell to its canonical grid text.
// Cells whose number format is a date or time become YYYY-MM-DD or
// HH:MM:SS, whatever display format the author picked.
func normalizeCell(formatted, raw string, kind numFmtKind) string {
	text := strings.TrimSpace(formatted)
	if kind == fmtOther || raw == "" || raw == formatted {
		return text
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return text
	}

	whole, frac := math.Modf(v)
	switch {
	case kind == fmtTime, kind == fmtDateTime && whole == 0:
		return clockFromSerial(frac)
	case kind == fmtDate && whole > 0, kind == fmtDateTime && frac == 0:
		return dateFromSerial(whole, text)
	case kind == fmtDateTime:
		return dateFromSerial(whole, text) + " " + clockFromSerial(frac)
	}
	return text
}

func dateFromSerial(whole float64, fallback string) string {
	t, err := excelize.ExcelDateToTime(whole, false)
	if err != nil {
		return fallback
	}
	return t.Format(DateLayout)
}

// clockFromSerial formats the fractional day of an Excel serial as HH:MM:SS.
func clockFromSerial(frac float64) string {
	secs := int(math.Round(frac*86400)) % 86400
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs%3600/60, secs%60)
}
