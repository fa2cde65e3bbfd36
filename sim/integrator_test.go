package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrate_ExponentialDecay_MatchesClosedForm(t *testing.T) {
	// GIVEN y' = -y with y(0) = 1, whose solution is e^-t
	decay := func(t float64, y []float64) []float64 {
		return []float64{-y[0]}
	}

	// WHEN integrated over 10 days
	got, err := Integrate(decay, []float64{1}, 10)
	require.NoError(t, err)

	// THEN each day sample matches the closed form tightly
	require.Len(t, got, 10)
	for day := 0; day < 10; day++ {
		assert.InDelta(t, math.Exp(-float64(day)), got[day][0], 1e-6, "day %d", day)
	}
}

func TestIntegrate_FirstSampleIsInitialCondition(t *testing.T) {
	f := func(t float64, y []float64) []float64 { return []float64{1, -1} }
	got, err := Integrate(f, []float64{3, 4}, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, got[0])
}

func TestIntegrate_StepFunctionRHS_SamplesBothRegimes(t *testing.T) {
	// GIVEN y' = 0 before day 2 and y' = 1 after, discontinuous like the
	// beta switch
	f := func(tm float64, y []float64) []float64 {
		if tm < 2 {
			return []float64{0}
		}
		return []float64{1}
	}

	// WHEN integrated over 5 days
	got, err := Integrate(f, []float64{0}, 5)
	require.NoError(t, err)

	// THEN the ramp starts exactly at the switch day
	assert.InDelta(t, 0, got[2][0], 1e-8)
	assert.InDelta(t, 1, got[3][0], 1e-6)
	assert.InDelta(t, 2, got[4][0], 1e-6)
}

func TestIntegrate_NaNDerivative_SurfacesIntegrationFailure(t *testing.T) {
	// GIVEN a pathological RHS
	f := func(t float64, y []float64) []float64 {
		return []float64{math.NaN()}
	}

	// WHEN integration is attempted
	_, err := Integrate(f, []float64{1}, 3)

	// THEN the failure is surfaced, not zero-filled
	assert.ErrorIs(t, err, ErrIntegration)
}

func TestIntegrate_NonPositiveHorizon(t *testing.T) {
	f := func(t float64, y []float64) []float64 { return []float64{0} }
	_, err := Integrate(f, []float64{1}, 0)
	assert.ErrorIs(t, err, ErrIntegration)
}
