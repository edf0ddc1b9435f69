// Package output renders a computed projection for people and machines:
// CSV for spreadsheets, JSON for other tools, and a console summary.
package output

import (
	"fmt"

	"github.com/lpsim/lifeplan-simulator/internal/domain"
)

// Report bundles everything a formatter may render: the inputs that produced
// the ledger, the event timeline and the ledger itself.
type Report struct {
	Profile    *domain.Profile    `json:"profile"`
	Parameters domain.Parameters  `json:"parameters"`
	LifeEvents []domain.LifeEvent `json:"life_events,omitempty"`
	Ledger     *domain.Ledger     `json:"ledger"`
}

// Formatter renders a report into a byte stream.
type Formatter interface {
	// Name returns the format identifier used on the command line.
	Name() string
	// Format renders the report.
	Format(report *Report) ([]byte, error)
}

// NewFormatter returns the formatter for a format name.
func NewFormatter(name string) (Formatter, error) {
	switch name {
	case "csv":
		return &CSVFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "console":
		return &ConsoleFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want csv, json or console)", name)
	}
}

// eventsForYear joins the descriptions of the year's events for one timeline.
func eventsForYear(events []domain.LifeEvent, year int, source domain.EventSource) string {
	text := ""
	for _, event := range events {
		if event.Year != year || event.Source != source {
			continue
		}
		if text != "" {
			text += "、"
		}
		text += event.Description
	}
	return text
}
