package output

import (
	"fmt"

	"github.com/goccy/go-json"
)

// JSONFormatter renders the full report, inputs included, as indented JSON.
type JSONFormatter struct{}

// Name returns the format identifier.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the report as JSON.
func (f *JSONFormatter) Format(report *Report) ([]byte, error) {
	if report.Ledger == nil {
		return nil, fmt.Errorf("report has no ledger")
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}
