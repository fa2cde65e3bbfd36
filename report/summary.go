package report

import "time"

// Summary aggregates statistics from an assembled record set.
type Summary struct {
	TotalRecords  int
	FirstDate     time.Time
	LastDate      time.Time
	FinalDeaths   int64
	PerObservable map[string]int // observable name → record count
}

// Summarize computes aggregate statistics from a record set.
// Safe for empty input (returns zero-value fields).
func Summarize(records []Record) *Summary {
	summary := &Summary{
		PerObservable: make(map[string]int),
	}
	summary.TotalRecords = len(records)

	var lastDeathsDate time.Time
	for _, r := range records {
		summary.PerObservable[r.Observable]++
		if summary.FirstDate.IsZero() || r.Date.Before(summary.FirstDate) {
			summary.FirstDate = r.Date
		}
		if r.Date.After(summary.LastDate) {
			summary.LastDate = r.Date
		}
		if r.Observable == Deaths && !r.Date.Before(lastDeathsDate) {
			lastDeathsDate = r.Date
			summary.FinalDeaths = r.Count
		}
	}
	return summary
}
