package sim

// EstimateDeaths folds over the day grid and accumulates fatalities from
// each day's increment of the Recovered compartment. While ICU demand
// exceeds capacity the high fatality rate applies to that day's cohort.
// The result is non-decreasing because Recovered is non-decreasing.
func EstimateDeaths(recovered, icuDemand []float64, icuBeds, rateLow, rateHigh float64) []float64 {
	deaths := make([]float64, len(recovered))
	rPrev, dPrev := 0.0, 0.0
	for t := range recovered {
		rate := rateLow
		if icuDemand[t] > icuBeds {
			rate = rateHigh
		}
		d := dPrev + rate*(recovered[t]-rPrev)
		deaths[t] = d
		rPrev, dPrev = recovered[t], d
	}
	return deaths
}
