package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelay_ZeroShift_Identity(t *testing.T) {
	// GIVEN an arbitrary series
	series := []float64{1, 4, 9, 16, 25}

	// WHEN delayed by zero days
	got := Delay(series, 0)

	// THEN the series is unchanged
	assert.Equal(t, series, got)
}

func TestDelay_WholeDayShift_FrontZeroPadded(t *testing.T) {
	// GIVEN a series with a known onset
	series := []float64{0, 0, 0, 10, 20, 30}

	// WHEN delayed by two whole days
	got := Delay(series, 2)

	// THEN the front is zero-padded, trailing values drop, length is kept
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 10}, got)
}

func TestDelay_FractionalShift_Interpolates(t *testing.T) {
	// GIVEN a linear ramp
	series := []float64{0, 10, 20, 30}

	// WHEN delayed by half a day
	got := Delay(series, 0.5)

	// THEN interior values interpolate between the bracketing samples
	assert.InDeltaSlice(t, []float64{0, 5, 15, 25}, got, 1e-12)
}

func TestDelay_Additivity(t *testing.T) {
	// GIVEN a ramp (linear, so interpolation is exact)
	series := make([]float64, 30)
	for i := range series {
		series[i] = float64(i)
	}

	// WHEN delaying by 1.5 then 2.0 days versus 3.5 days at once
	composed := Delay(Delay(series, 1.5), 2.0)
	direct := Delay(series, 3.5)

	// THEN the two agree
	assert.InDeltaSlice(t, direct, composed, 1e-9)
}

func TestDelay_NegativeShift_HoldsFinalValue(t *testing.T) {
	// GIVEN a cumulative-style series
	series := []float64{0, 1, 3, 6}

	// WHEN shifted backward by one day
	got := Delay(series, -1)

	// THEN values advance and the tail holds the final sample
	assert.InDeltaSlice(t, []float64{1, 3, 6, 6}, got, 1e-12)
}

func TestDelay_EmptySeries(t *testing.T) {
	assert.Empty(t, Delay(nil, 2.5))
}

func TestScaled_CopiesAndScales(t *testing.T) {
	series := []float64{1, 2, 3}
	got := Scaled(series, 2.5)
	assert.Equal(t, []float64{2.5, 5, 7.5}, got)
	// source untouched
	assert.Equal(t, []float64{1, 2, 3}, series)
}
