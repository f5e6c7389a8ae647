package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

// parseNumber coerces a cell to float64. Null cells and unparsable text yield
// 0; ok is false only for non-null cells that failed to parse.
func parseNumber(c models.Cell) (v float64, ok bool) {
	if c.Null() {
		return 0, true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// formatID stringifies an identifier cell. Integral numbers written with a
// fraction or exponent lose it ("1023.0" becomes "1023"); other values,
// including zero-padded codes, are returned as is.
func formatID(s string) string {
	if !strings.ContainsAny(s, ".eE") {
		return s
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatInt(int64(f), 10)
	}
	return s
}
