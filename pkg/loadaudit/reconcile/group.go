// Package reconcile builds one compliance record per instructor from a
// normalized table and filters the result.
package reconcile

import (
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

// Group partitions rows by instructor identifier. Groups are returned in the
// order their identifier first appears; rows keep sheet order within a group.
func Group(rows []models.NormalizedRow) [][]models.NormalizedRow {
	index := make(map[string]int)
	var groups [][]models.NormalizedRow
	for _, r := range rows {
		i, ok := index[r.ID]
		if !ok {
			i = len(groups)
			index[r.ID] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], r)
	}
	return groups
}

// Build reconciles every instructor group of table into a record. The first
// row of each group supplies identity and capacity fields.
func Build(table *models.Table) []models.InstructorRecord {
	hasCategory := table.Columns.Has(table.Columns.Category)

	var records []models.InstructorRecord
	for _, group := range Group(table.Rows) {
		if len(group) == 0 {
			continue
		}
		records = append(records, buildRecord(group, hasCategory))
	}
	return records
}

func buildRecord(group []models.NormalizedRow, hasCategory bool) models.InstructorRecord {
	first := group[0]

	courses := []models.Course{}
	assigned := 0.0
	for _, r := range group {
		if r.Course == nil {
			continue
		}
		courses = append(courses, models.Course{Title: *r.Course, Hours: r.CourseHours})
		assigned += r.CourseHours
	}

	categories := []string{models.CategoryNotSpecified}
	if hasCategory {
		categories = Categories(group)
	}

	return models.InstructorRecord{
		ID:            first.ID,
		Name:          first.FullName,
		PayrollHours:  first.PayrollHours,
		BaseHours:     first.BaseHours,
		ContractHours: first.ContractHours,
		AssignedHours: assigned,
		Overage:       models.IsOverage(assigned, first.PayrollHours),
		Categories:    categories,
		Courses:       courses,
	}
}

// Categories returns the distinct non-null category labels of group in
// first-seen order.
func Categories(group []models.NormalizedRow) []string {
	seen := make(map[string]bool)
	labels := []string{}
	for _, r := range group {
		if r.Category == nil || seen[*r.Category] {
			continue
		}
		seen[*r.Category] = true
		labels = append(labels, *r.Category)
	}
	return labels
}
