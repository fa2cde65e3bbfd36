package sim

import "time"

// Defaults applied by NewScenarioConfig.
const (
	DefaultDaysTotal      = 365
	DefaultInitialExposed = 1.0
)

// ScenarioConfig groups the scenario-level inputs for NewSimulator.
type ScenarioConfig struct {
	Population        int64     // total population N (must be > 0)
	ICUBeds           int64     // intensive-care bed capacity (must be > 0)
	FirstInfection    time.Time // calendar date the first exposed case appears
	Lockdown          time.Time // calendar date contact restrictions take effect
	DaysTotal         int       // days to simulate (must be > 0)
	InitialExposed    float64   // E0, exposed people at day 0 (must be > 0)
	ICUScalingLagDays float64   // extra ICU-signal delay; negative = derive from hospital stay
}

// NewScenarioConfig returns a ScenarioConfig for the given population,
// ICU capacity, and dates, with the horizon, initial-exposed, and
// ICU-scaling-lag fields at their defaults.
func NewScenarioConfig(population, icuBeds int64, firstInfection, lockdown time.Time) ScenarioConfig {
	return ScenarioConfig{
		Population:        population,
		ICUBeds:           icuBeds,
		FirstInfection:    firstInfection,
		Lockdown:          lockdown,
		DaysTotal:         DefaultDaysTotal,
		InitialExposed:    DefaultInitialExposed,
		ICUScalingLagDays: -1,
	}
}
