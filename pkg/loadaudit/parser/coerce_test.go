package parser

import (
	"testing"

	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    models.Cell
		expected float64
		ok       bool
	}{
		{models.NewCell("123"), 123, true},
		{models.NewCell("123.45"), 123.45, true},
		{models.NewCell(" 7.5 "), 7.5, true},
		{models.NewCell("-100"), -100, true},
		{models.NewCell("1E+1"), 10, true},
		{models.NewCell("hello"), 0, false},
		{models.NewCell("NaN"), 0, true},
		{models.NewCell(" NaN "), 0, false},
		{models.NewCell("inf"), 0, false},
		{models.NewCell("#N/A"), 0, true},
		{models.NewCell(""), 0, true},
		{models.Cell{}, 0, true},
	}

	for _, tt := range tests {
		result, ok := parseNumber(tt.input)
		if result != tt.expected || ok != tt.ok {
			t.Errorf("parseNumber(%q) = (%v, %v), expected (%v, %v)",
				tt.input.Value, result, ok, tt.expected, tt.ok)
		}
	}
}

func TestFormatID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1023", "1023"},
		{"1023.0", "1023"},
		{"1.023E+3", "1023"},
		{"10.5", "10.5"},
		{"A-17", "A-17"},
		{"00123", "00123"},
		{"Docente", "Docente"},
	}

	for _, tt := range tests {
		if result := formatID(tt.input); result != tt.expected {
			t.Errorf("formatID(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}
