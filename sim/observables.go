package sim

// Observable derivation: the raw Infectious trajectory describes biology,
// not reporting. Each signal below is a scaled copy of I pushed forward by
// the clinical/testing lags along the timeline
// exposed → infectious → symptoms → at home → hospital → ICU.

// DetectedCases converts the Infectious trajectory into the positive-test
// counts that get officially announced.
func DetectedCases(infectious []float64, p Params) []float64 {
	found := Scaled(infectious, p.CaseDetectionRate)
	return Delay(found, p.FoundLagDays)
}

// ICUDemand converts the Infectious trajectory into the number of cases
// simultaneously needing intensive care. The signal is scaled up by
// hospital stay over infectious duration because a severe case holds a bed
// well past the model's infectious window, then shifted by the admission
// lags and the scaling lag from Params.
func ICUDemand(infectious []float64, p Params) []float64 {
	demand := Scaled(infectious, ICUFraction*TimeInHospitalDays/p.TimeInfectedDays)
	demand = Delay(demand, p.ICULagDays)
	return Delay(demand, p.ICUScalingLagDays)
}

// PerCapitaInfected is the probability of a random person being infectious,
// per million.
func PerCapitaInfected(infectious []float64, population float64) []float64 {
	return Scaled(infectious, 1e6/population)
}
