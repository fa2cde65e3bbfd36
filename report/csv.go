package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes records as CSV with a date,type,count header, matching
// the long format the records carry.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "type", "count"}); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for i, r := range records {
		row := []string{r.Date.Format("2006-01-02"), r.Observable, strconv.FormatInt(r.Count, 10)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
