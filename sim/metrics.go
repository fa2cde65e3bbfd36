package sim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metrics aggregates statistics about a finished run for final reporting.
// Useful for comparing scenarios without staring at full trajectories.
type Metrics struct {
	PeakInfectious    float64 // maximum simultaneous infectious count
	PeakInfectiousDay int     // day index of that maximum
	PeakICUDemand     float64 // maximum simultaneous ICU demand
	DaysOverCapacity  int     // days with ICU demand above bed capacity
	TotalDeaths       float64 // reported deaths at the end of the horizon
	AttackRate        float64 // fraction of the population ever infected
	DoublingTimeDays  float64 // initial case doubling time; 0 when not growing
}

// ComputeMetrics summarizes a Result against its scenario's ICU capacity.
func ComputeMetrics(res *Result, icuBeds int64) *Metrics {
	m := &Metrics{
		PeakInfectious:    floats.Max(res.Infectious),
		PeakInfectiousDay: floats.MaxIdx(res.Infectious),
		PeakICUDemand:     floats.Max(res.ICUDemand),
		TotalDeaths:       res.Deaths[len(res.Deaths)-1],
	}
	for _, demand := range res.ICUDemand {
		if demand > float64(icuBeds) {
			m.DaysOverCapacity++
		}
	}
	population := res.Susceptible[0] + res.Exposed[0]
	m.AttackRate = (population - res.Susceptible[len(res.Susceptible)-1]) / population
	if res.Params.GrowthRate > 0 {
		m.DoublingTimeDays = math.Ln2 / res.Params.GrowthRate
	}
	return m
}

// Print displays the aggregated metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Scenario Metrics ===")
	fmt.Printf("Peak Infectious      : %.0f (day %d)\n", m.PeakInfectious, m.PeakInfectiousDay)
	fmt.Printf("Peak ICU Demand      : %.0f\n", m.PeakICUDemand)
	fmt.Printf("Days Over ICU Cap    : %d\n", m.DaysOverCapacity)
	fmt.Printf("Total Reported Deaths: %.0f\n", m.TotalDeaths)
	fmt.Printf("Attack Rate          : %.2f%%\n", m.AttackRate*100)
	if m.DoublingTimeDays > 0 {
		fmt.Printf("Initial Doubling Time: %.1f days\n", m.DoublingTimeDays)
	}
}
