package feed

import (
	"fmt"
	"time"

	"drawlab/domain/core"
	"drawlab/domain/draw"
)

// ValidationReport summarizes one ingestion batch.
type ValidationReport struct {
	Parsed   int      `json:"parsed"`
	Valid    int      `json:"valid"`
	Rejected []string `json:"rejected,omitempty"`
}

// ValidateBatch checks parsed draws against the game variant plus the
// ingestion-only rules: a positive draw number and a date not in the
// future. Valid draws are returned for persistence; failures are
// reported per draw, never aborting the batch.
func ValidateBatch(parsed draw.History, variant draw.Variant, now time.Time) (draw.History, ValidationReport) {
	report := ValidationReport{Parsed: len(parsed)}
	today := core.NewDrawDate(now)

	valid := make(draw.History, 0, len(parsed))
	for _, d := range parsed {
		if d.DrawNumber <= 0 {
			report.Rejected = append(report.Rejected,
				fmt.Sprintf("draw %d: draw number must be positive", d.DrawNumber))
			continue
		}
		if d.Date.After(today) {
			report.Rejected = append(report.Rejected,
				fmt.Sprintf("draw %d: date %s in future", d.DrawNumber, d.Date))
			continue
		}
		if err := d.Validate(variant); err != nil {
			report.Rejected = append(report.Rejected, err.Error())
			continue
		}
		valid = append(valid, d)
	}

	report.Valid = len(valid)
	return valid, report
}
