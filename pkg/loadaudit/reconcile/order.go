package reconcile

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

// Order selects the output ordering of records.
type Order string

const (
	// OrderSheet keeps the order in which identifiers first appear.
	OrderSheet Order = "sheet"
	// OrderName sorts by display name, case-insensitively.
	OrderName Order = "name"
	// OrderID sorts by identifier, numerically when both are numbers.
	OrderID Order = "id"
)

// ParseOrder parses an ordering. The empty string means OrderSheet.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderSheet:
		return OrderSheet, nil
	case OrderName:
		return OrderName, nil
	case OrderID:
		return OrderID, nil
	}
	return "", fmt.Errorf("invalid sort: %s (must be sheet, name, or id)", s)
}

// Sort orders records in place. Sorting is stable so ties keep sheet order.
func Sort(records []models.InstructorRecord, order Order) {
	switch order {
	case OrderName:
		sort.SliceStable(records, func(i, j int) bool {
			return strings.ToLower(strings.Join(strings.Fields(records[i].Name), " ")) <
				strings.ToLower(strings.Join(strings.Fields(records[j].Name), " "))
		})
	case OrderID:
		sort.SliceStable(records, func(i, j int) bool {
			return lessID(records[i].ID, records[j].ID)
		})
	}
}

// lessID compares numeric identifiers by value and everything else as text.
// Numbers sort before text.
func lessID(a, b string) bool {
	na, aok := parseID(a)
	nb, bok := parseID(b)
	switch {
	case aok && bok:
		return na < nb
	case aok != bok:
		return aok
	}
	return a < b
}

func parseID(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}
