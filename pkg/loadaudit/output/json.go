// Package output renders audit reports as JSON or terminal text.
package output

import (
	"encoding/json"

	"github.com/ukaji3/loadaudit-go/pkg/loadaudit/models"
)

// ToJSON serializes a report.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}
