package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_DatesAndRounding(t *testing.T) {
	// GIVEN two short series starting 2020-03-01
	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	series := []Series{
		{Name: Infectious, Values: []float64{0.4, 1.5, 2.6}},
		{Name: Deaths, Values: []float64{0, 0.05, 1.9}},
	}

	// WHEN assembled
	got := Assemble(start, series)

	// THEN there is one record per (day, observable), grouped by
	// observable, dated from the start day, with rounded counts
	require.Len(t, got, 6)
	assert.Equal(t, Record{Date: start, Observable: Infectious, Count: 0}, got[0])
	assert.Equal(t, Record{Date: start.AddDate(0, 0, 1), Observable: Infectious, Count: 2}, got[1])
	assert.Equal(t, Record{Date: start.AddDate(0, 0, 2), Observable: Infectious, Count: 3}, got[2])
	assert.Equal(t, Record{Date: start, Observable: Deaths, Count: 0}, got[3])
	assert.Equal(t, Record{Date: start.AddDate(0, 0, 2), Observable: Deaths, Count: 2}, got[5])
}

func TestAssemble_Empty(t *testing.T) {
	got := Assemble(time.Now(), nil)
	assert.Empty(t, got)
}
