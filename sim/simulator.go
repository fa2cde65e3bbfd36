package sim

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Simulator owns the configuration and derived parameters for one scenario.
// It carries no mutable run state; Run may be called repeatedly and
// independent Simulators may run concurrently.
type Simulator struct {
	Config ScenarioConfig
	Params Params
}

// Result holds the full day-indexed trajectories of one finished run.
// Indices run 0..DaysTotal-1; day 0 is the first-infection date.
type Result struct {
	Start     time.Time
	DaysTotal int
	Params    Params

	Susceptible []float64
	Exposed     []float64
	Infectious  []float64
	Recovered   []float64

	Found     []float64 // detected cases, reporting-lagged
	ICUDemand []float64 // cases simultaneously needing intensive care
	PerCapita []float64 // infectious per million population
	Deaths    []float64 // cumulative deaths, reporting-lagged
}

// NewSimulator validates the scenario and derives the ODE parameters.
// All ConfigError paths surface here, before any integration work.
func NewSimulator(cfg ScenarioConfig) (*Simulator, error) {
	params, err := DeriveParams(cfg)
	if err != nil {
		return nil, err
	}
	return &Simulator{Config: cfg, Params: params}, nil
}

// Run integrates the SEIR system over the scenario horizon and derives the
// lagged observable signals. A run either fully succeeds or returns an
// error with no partial series.
func (s *Simulator) Run() (*Result, error) {
	cfg, p := s.Config, s.Params
	n := float64(cfg.Population)

	logrus.Infof("Starting SEIR run: N=%d, ICU beds=%d, switch day=%d, beta0=%.4f, beta1=%.4f, horizon=%d days",
		cfg.Population, cfg.ICUBeds, p.DaysToSwitch, p.Beta0, p.Beta1, cfg.DaysTotal)

	rhs := func(t float64, y []float64) []float64 {
		return Derivative(t, stateFromVector(y), n, p).vector()
	}
	trajectory, err := Integrate(rhs, InitialState(n, cfg.InitialExposed).vector(), cfg.DaysTotal)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Start:       cfg.FirstInfection,
		DaysTotal:   cfg.DaysTotal,
		Params:      p,
		Susceptible: make([]float64, cfg.DaysTotal),
		Exposed:     make([]float64, cfg.DaysTotal),
		Infectious:  make([]float64, cfg.DaysTotal),
		Recovered:   make([]float64, cfg.DaysTotal),
	}
	for day, y := range trajectory {
		state := stateFromVector(y)
		res.Susceptible[day] = state.Susceptible
		res.Exposed[day] = state.Exposed
		res.Infectious[day] = state.Infectious
		res.Recovered[day] = state.Recovered
	}

	res.Found = DetectedCases(res.Infectious, p)
	res.ICUDemand = ICUDemand(res.Infectious, p)
	res.PerCapita = PerCapitaInfected(res.Infectious, n)

	deaths := EstimateDeaths(res.Recovered, res.ICUDemand, float64(cfg.ICUBeds),
		InfectionFatalityRateLow, InfectionFatalityRateHigh)
	res.Deaths = Delay(deaths, p.DeathLagDays)

	logrus.Infof("Run finished: final recovered %.0f, final reported deaths %.0f",
		res.Recovered[cfg.DaysTotal-1], res.Deaths[cfg.DaysTotal-1])
	return res, nil
}
