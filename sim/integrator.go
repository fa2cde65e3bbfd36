package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// RHS is the right-hand side of a first-order ODE system y' = f(t, y).
type RHS func(t float64, y []float64) []float64

// Solver tolerances and step-control guards. The horizon is hundreds of
// days and the system has four components, so these are generous.
const (
	solverAbsTol   = 1e-8
	solverRelTol   = 1e-8
	solverMinStep  = 1e-12
	solverMaxSteps = 100000
)

// Dormand–Prince RK5(4) tableau. The seventh stage row doubles as the
// fifth-order solution weights (FSAL is not exploited here).
var (
	dpC = [7]float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}
	dpA = [7][6]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}
	dpB5 = [7]float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0}
	dpB4 = [7]float64{5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640, -92097.0 / 339200, 187.0 / 2100, 1.0 / 40}
)

// Integrate advances y' = f(t, y) from day 0 across daysTotal integer days
// and returns one state sample per day index, starting with y0 at day 0.
//
// Each unit day is integrated independently with adaptive Dormand–Prince
// steps, so every output sample is a true step endpoint and no accepted
// step straddles an integer day. In particular the beta discontinuity at
// the lockdown switch day is always a step boundary, never stepped over.
func Integrate(f RHS, y0 []float64, daysTotal int) ([][]float64, error) {
	if daysTotal <= 0 {
		return nil, fmt.Errorf("%w: non-positive day count %d", ErrIntegration, daysTotal)
	}
	out := make([][]float64, daysTotal)
	out[0] = append([]float64(nil), y0...)
	for day := 0; day+1 < daysTotal; day++ {
		next, err := integrateInterval(f, float64(day), float64(day)+1, out[day])
		if err != nil {
			return nil, err
		}
		out[day+1] = next
	}
	return out, nil
}

// integrateInterval advances from (t0, y0) to t1 with adaptive steps.
func integrateInterval(f RHS, t0, t1 float64, y0 []float64) ([]float64, error) {
	dim := len(y0)
	y := append([]float64(nil), y0...)
	t := t0
	h := t1 - t0

	var k [7][]float64
	for steps := 0; t < t1; steps++ {
		// Floating-point residue after the last accepted step snaps to t1.
		if t1-t < solverMinStep {
			break
		}
		if steps >= solverMaxSteps {
			return nil, fmt.Errorf("%w: step budget exhausted at t=%.4f", ErrIntegration, t)
		}
		if h < solverMinStep {
			return nil, fmt.Errorf("%w: step size underflow at t=%.4f", ErrIntegration, t)
		}
		if t+h > t1 {
			h = t1 - t
		}

		for i := 0; i < 7; i++ {
			stage := append([]float64(nil), y...)
			for j := 0; j < i; j++ {
				floats.AddScaled(stage, h*dpA[i][j], k[j])
			}
			k[i] = f(t+dpC[i]*h, stage)
		}

		y5 := append([]float64(nil), y...)
		for i := 0; i < 7; i++ {
			floats.AddScaled(y5, h*dpB5[i], k[i])
		}

		// Error norm from the embedded fourth-order solution, scaled per
		// component by the mixed absolute/relative tolerance.
		errNorm := 0.0
		for c := 0; c < dim; c++ {
			e := 0.0
			for i := 0; i < 7; i++ {
				e += h * (dpB5[i] - dpB4[i]) * k[i][c]
			}
			scale := solverAbsTol + solverRelTol*math.Max(math.Abs(y[c]), math.Abs(y5[c]))
			errNorm += (e / scale) * (e / scale)
		}
		errNorm = math.Sqrt(errNorm / float64(dim))

		if math.IsNaN(errNorm) || math.IsInf(errNorm, 0) {
			h *= 0.2
			continue
		}
		if errNorm <= 1 {
			t += h
			y = y5
		}
		factor := 5.0
		if errNorm > 0 {
			factor = math.Min(5.0, math.Max(0.2, 0.9*math.Pow(errNorm, -0.2)))
		}
		h *= factor
	}
	return y, nil
}
