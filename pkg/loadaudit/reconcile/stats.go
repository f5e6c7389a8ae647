package reconcile

import (
	"github.com/montanaflynn/stats"
	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

// Summarize computes count and hour statistics over records.
func Summarize(records []models.InstructorRecord) models.Summary {
	s := models.Summary{Total: len(records)}

	assigned := make(stats.Float64Data, 0, len(records))
	payroll := make(stats.Float64Data, 0, len(records))
	var utilization stats.Float64Data
	for _, r := range records {
		if r.Overage {
			s.Overage++
		} else {
			s.Compliant++
		}
		assigned = append(assigned, r.AssignedHours)
		payroll = append(payroll, r.PayrollHours)
		if r.PayrollHours > 0 {
			utilization = append(utilization, r.AssignedHours/r.PayrollHours)
		}
	}

	s.AssignedHours = sum(assigned)
	s.PayrollHours = sum(payroll)
	if len(utilization) > 0 {
		if mean, err := utilization.Mean(); err == nil {
			s.MeanUtilization = mean
		}
	}
	return s
}

// sum returns 0 for empty input, where stats reports NaN and an error.
func sum(data stats.Float64Data) float64 {
	if len(data) == 0 {
		return 0
	}
	v, err := data.Sum()
	if err != nil {
		return 0
	}
	return v
}

// Reconcile builds, filters and orders the records of table and summarizes
// the filtered set.
func Reconcile(table *models.Table, f Filter) ([]models.InstructorRecord, models.Summary) {
	records := f.Apply(Build(table))
	Sort(records, f.Order)
	return records, Summarize(records)
}
