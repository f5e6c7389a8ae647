// Package models defines data structures for teaching-load auditing.
package models

// Cell represents a single raw sheet cell. An empty cell, or one holding a
// missing-value marker such as "#N/A", is null.
type Cell struct {
	// Value is the raw cell text.
	Value string `json:"value,omitempty"`
	// Valid is false when the cell is null.
	Valid bool `json:"valid"`
}

// naTokens are the markers spreadsheet exports and lookup formulas leave in
// place of a value. Matching is exact; surrounding whitespace makes a value.
var naTokens = map[string]bool{
	"":         true,
	"#N/A":     true,
	"#N/A N/A": true,
	"#NA":      true,
	"-1.#IND":  true,
	"-1.#QNAN": true,
	"-NaN":     true,
	"-nan":     true,
	"1.#IND":   true,
	"1.#QNAN":  true,
	"<NA>":     true,
	"N/A":      true,
	"NA":       true,
	"NULL":     true,
	"NaN":      true,
	"None":     true,
	"n/a":      true,
	"nan":      true,
	"null":     true,
}

// IsNA reports whether s is read as a missing value.
func IsNA(s string) bool {
	return naTokens[s]
}

// NewCell builds a Cell from raw sheet text.
func NewCell(s string) Cell {
	return Cell{Value: s, Valid: !IsNA(s)}
}

// Null reports whether the cell is null.
func (c Cell) Null() bool {
	return !c.Valid
}

// String returns the cell text, or the empty string for a null cell.
func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value
}

// Ptr returns a pointer to the cell text, or nil for a null cell.
func (c Cell) Ptr() *string {
	if !c.Valid {
		return nil
	}
	v := c.Value
	return &v
}
