package parser

import "strings"

// lastDataRow returns the index of the last row holding a non-blank cell,
// or -1 when every row is blank.
func lastDataRow(rows [][]string) int {
	for rowIdx := len(rows) - 1; rowIdx >= 0; rowIdx-- {
		for _, cell := range rows[rowIdx] {
			if strings.TrimSpace(cell) != "" {
				return rowIdx
			}
		}
	}
	return -1
}
