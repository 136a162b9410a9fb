// Package models defines data structures for timesheet extraction and payroll.
package models

import "strings"

// RawGrid is the cell text of one worksheet, row-major and 0-based.
// Rows may be ragged; a missing cell reads as blank.
type RawGrid struct {
	// Source is the workbook file name (no path).
	Source string `json:"source"`
	// Path is the absolute path the workbook was read from, if any.
	Path string `json:"path,omitempty"`
	// Sheet is the worksheet name the grid was read from.
	Sheet string `json:"sheet"`
	// Rows holds the normalized cell text.
	Rows [][]string `json:"rows"`
	// Unreadable counts cells whose value the reader could not recover,
	// such as formula results in legacy .xls files. They read as blank.
	Unreadable int `json:"unreadable,omitempty"`
}

// Cell returns the trimmed text at (row, col), or "" when out of range.
func (g *RawGrid) Cell(row, col int) string {
	if row < 0 || row >= len(g.Rows) {
		return ""
	}
	r := g.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// NumRows returns the number of rows in the grid.
func (g *RawGrid) NumRows() int {
	return len(g.Rows)
}

// NumCols returns the width of the widest row.
func (g *RawGrid) NumCols() int {
	n := 0
	for _, r := range g.Rows {
		if len(r) > n {
			n = len(r)
		}
	}
	return n
}
