package sim

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Delay shifts a day-indexed series by shiftDays, which may be fractional
// or negative. out[t] is the source value at t-shiftDays, linearly
// interpolated between the bracketing integer samples; indices before the
// shift origin read zero, and indices past the last source sample hold the
// final value. Length is preserved and a shift of 0 is the identity.
func Delay(series []float64, shiftDays float64) []float64 {
	out := make([]float64, len(series))
	if len(series) == 0 {
		return out
	}
	last := len(series) - 1
	for t := range series {
		src := float64(t) - shiftDays
		switch {
		case src < 0:
			// zero before the shift origin
		case src >= float64(last):
			out[t] = series[last]
		default:
			lo := int(math.Floor(src))
			frac := src - float64(lo)
			out[t] = series[lo]*(1-frac) + series[lo+1]*frac
		}
	}
	return out
}

// Scaled returns a copy of series with every value multiplied by factor.
func Scaled(series []float64, factor float64) []float64 {
	out := append([]float64(nil), series...)
	floats.Scale(factor, out)
	return out
}
