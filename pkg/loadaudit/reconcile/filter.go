package reconcile

import (
	"fmt"
	"strings"

	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

// Status selects records by compliance.
type Status string

const (
	// StatusAll keeps every record.
	StatusAll Status = "all"
	// StatusCompliant keeps records within capacity.
	StatusCompliant Status = "compliant"
	// StatusOverage keeps records exceeding capacity.
	StatusOverage Status = "overage"
)

// ParseStatus parses a status selector. The empty string means StatusAll.
func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusAll:
		return StatusAll, nil
	case StatusCompliant:
		return StatusCompliant, nil
	case StatusOverage:
		return StatusOverage, nil
	}
	return "", fmt.Errorf("invalid status: %s (must be all, compliant, or overage)", s)
}

// Filter holds the text and status selectors applied to records.
type Filter struct {
	Query  string
	Status Status
	Order  Order
}

// MatchText reports whether query matches the record: a case-insensitive
// substring of the name, or an exact substring of the identifier. An empty
// query matches everything.
func (f Filter) MatchText(r models.InstructorRecord) bool {
	if f.Query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Query)) ||
		strings.Contains(r.ID, f.Query)
}

// MatchStatus reports whether the record passes the status selector.
func (f Filter) MatchStatus(r models.InstructorRecord) bool {
	switch f.Status {
	case StatusCompliant:
		return !r.Overage
	case StatusOverage:
		return r.Overage
	}
	return true
}

// Match reports whether the record passes both selectors.
func (f Filter) Match(r models.InstructorRecord) bool {
	return f.MatchText(r) && f.MatchStatus(r)
}

// Apply returns the records passing f, keeping input order.
func (f Filter) Apply(records []models.InstructorRecord) []models.InstructorRecord {
	out := []models.InstructorRecord{}
	for _, r := range records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
