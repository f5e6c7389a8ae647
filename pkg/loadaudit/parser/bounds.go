package parser

// lastDataRow returns the index of the last row holding at least one
// non-empty cell, or -1 when every row is blank.
func lastDataRow(rows [][]string) int {
	for rowIdx := len(rows) - 1; rowIdx >= 0; rowIdx-- {
		if !isBlankRow(rows[rowIdx]) {
			return rowIdx
		}
	}
	return -1
}

// isBlankRow reports whether every cell in row is empty.
func isBlankRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
