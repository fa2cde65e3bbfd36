package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateDeaths_BelowCapacity_UsesLowRate(t *testing.T) {
	// GIVEN a recovered trajectory with ICU demand always below capacity
	recovered := []float64{0, 5, 12, 20}
	icuDemand := []float64{0, 0, 0, 0}

	// WHEN deaths are accumulated at the low rate 0.01
	got := EstimateDeaths(recovered, icuDemand, 100, 0.01, 0.03)

	// THEN each step adds rate * recovered increment, unrounded
	assert.InDeltaSlice(t, []float64{0, 0.05, 0.12, 0.20}, got, 1e-12)
}

func TestEstimateDeaths_OverCapacity_SwitchesToHighRate(t *testing.T) {
	// GIVEN ICU demand exceeding capacity on days 2 and 3 only
	recovered := []float64{0, 10, 20, 30}
	icuDemand := []float64{0, 1, 5, 5}

	// WHEN deaths are accumulated with capacity 2
	got := EstimateDeaths(recovered, icuDemand, 2, 0.01, 0.03)

	// THEN the over-capacity days' cohorts pay the high rate
	assert.InDeltaSlice(t, []float64{0, 0.1, 0.4, 0.7}, got, 1e-12)
}

func TestEstimateDeaths_NonDecreasing(t *testing.T) {
	recovered := []float64{0, 2, 2, 7, 7, 19, 40}
	icuDemand := []float64{0, 0, 9, 9, 0, 0, 9}
	got := EstimateDeaths(recovered, icuDemand, 3, 0.01, 0.03)
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Errorf("deaths decreased at day %d: %g -> %g", i, got[i-1], got[i])
		}
	}
}
