package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []Record{
		{Date: start, Observable: Infectious, Count: 12},
		{Date: start.AddDate(0, 0, 1), Observable: Infectious, Count: 15},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"date", "type", "count"}, rows[0])
	assert.Equal(t, []string{"2020-03-01", "infectious", "12"}, rows[1])
	assert.Equal(t, []string{"2020-03-02", "infectious", "15"}, rows[2])
}

func TestWriteCSV_NoRecords_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "date,type,count\n", buf.String())
}
