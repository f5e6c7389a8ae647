package output

import (
	"math"
	"strconv"
	"strings"
)

// FormatHours renders hours rounded to two decimals without trailing zeros.
func FormatHours(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// ProgressBar renders ratio (clamped to [0, 1]) as a bar of width cells.
func ProgressBar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}
	ratio = math.Max(0, math.Min(1, ratio))
	filled := int(math.Round(ratio * float64(width)))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Percent renders ratio as a whole percentage.
func Percent(ratio float64) string {
	return strconv.Itoa(int(math.Round(ratio*100))) + "%"
}
