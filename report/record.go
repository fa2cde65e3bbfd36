// Package report provides the dated long-format record set handed to
// presentation collaborators. This package has no dependencies on sim/ —
// it stores pure data types.
package report

import (
	"math"
	"time"
)

// Observable names published to consumers, in output order.
const (
	Susceptible = "susceptible"
	Exposed     = "exposed"
	Infectious  = "infectious"
	Recovered   = "recovered"
	Deaths      = "deaths"
)

// Record is one (day, observable) pair: the sole interface presentation
// code consumes. Counts are rounded to whole people.
type Record struct {
	Date       time.Time
	Observable string
	Count      int64
}

// Series is a named per-day value sequence, day index 0 first.
type Series struct {
	Name   string
	Values []float64
}

// Assemble converts per-day series into long-format records, one per
// (day, observable), dating day index d as start + d days. Records are
// grouped by observable, days ascending within each group.
func Assemble(start time.Time, series []Series) []Record {
	total := 0
	for _, s := range series {
		total += len(s.Values)
	}
	records := make([]Record, 0, total)
	for _, s := range series {
		for day, value := range s.Values {
			records = append(records, Record{
				Date:       start.AddDate(0, 0, day),
				Observable: s.Name,
				Count:      int64(math.Round(value)),
			})
		}
	}
	return records
}
