package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

var (
	// ErrConfig marks an invalid scenario or a degenerate derived-parameter
	// combination, detected before any integration starts.
	ErrConfig = errors.New("invalid scenario configuration")

	// ErrIntegration marks a solver failure; the run produces no series.
	ErrIntegration = errors.New("integration failure")
)

// Params holds the derived rate constants and auxiliary quantities for one
// simulation run. Computed once by DeriveParams, never mutated afterward.
type Params struct {
	Beta0        float64 // transmission coefficient before the lockdown switch
	Beta1        float64 // transmission coefficient from the switch day on
	DaysToSwitch int     // day index at which beta switches (may be <= 0)
	Sigma        float64 // rate at which an exposed person becomes infectious
	Gamma        float64 // rate at which an infectious person stops infecting
	GrowthRate   float64 // initial exponential growth rate s1 (sign = grow/decline)

	TimeInfectedDays  float64 // average infectious duration, 1/gamma
	CaseDetectionRate float64 // fraction of infections that appear in test counts

	FoundLagDays      float64 // infection -> officially announced positive test
	ICULagDays        float64 // infection -> ICU admission
	ICUScalingLagDays float64 // extra ICU delay for hospital stay vs. infectious time
	DeathLagDays      float64 // recovered-compartment timing -> reported death
}

// incubationRate returns sigma, the rate at which an exposed person becomes
// infective: symptom onset minus the presymptomatic head start.
func incubationRate(daysToIncubation, daysPresymptomatic float64) float64 {
	return 1.0 / (daysToIncubation - daysPresymptomatic)
}

// recoveryRate returns gamma from the generation-time identity
// generationTime = 1/sigma + 0.5 * 1/gamma.
func recoveryRate(generationTime, sigma float64) (float64, error) {
	denom := generationTime - 1.0/sigma
	if denom <= 0 {
		return 0, fmt.Errorf("%w: generation time %.2f does not exceed incubation-to-infectious time %.2f",
			ErrConfig, generationTime, 1.0/sigma)
	}
	return 1.0 / (2.0 * denom), nil
}

// growthRate returns s1, the initial exponential growth rate of the linearized
// SEIR system. Positive for r0 > 1, negative for r0 < 1.
// https://hal.archives-ouvertes.fr/hal-00657584/document page 13
func growthRate(r0, sigma, gamma float64) (float64, error) {
	radicand := (sigma+gamma)*(sigma+gamma) + 4.0*sigma*gamma*(r0-1.0)
	if radicand < 0 {
		return 0, fmt.Errorf("%w: no real growth rate for r0=%.2f, sigma=%.4f, gamma=%.4f",
			ErrConfig, r0, sigma, gamma)
	}
	return 0.5 * (-(sigma + gamma) + math.Sqrt(radicand)), nil
}

// DeriveParams maps a ScenarioConfig and the fixed epidemiological constants
// to the rate constants of the ODE system. Fails fast on degenerate inputs;
// a lockdown date at or before the first infection is accepted and means the
// post-lockdown regime applies from day 0.
func DeriveParams(cfg ScenarioConfig) (Params, error) {
	if cfg.Population <= 0 {
		return Params{}, fmt.Errorf("%w: population must be positive, got %d", ErrConfig, cfg.Population)
	}
	if cfg.ICUBeds <= 0 {
		return Params{}, fmt.Errorf("%w: ICU bed capacity must be positive, got %d", ErrConfig, cfg.ICUBeds)
	}
	if cfg.DaysTotal <= 0 {
		return Params{}, fmt.Errorf("%w: days to simulate must be positive, got %d", ErrConfig, cfg.DaysTotal)
	}
	if cfg.InitialExposed <= 0 || cfg.InitialExposed > float64(cfg.Population) {
		return Params{}, fmt.Errorf("%w: initial exposed must be in (0, population], got %g", ErrConfig, cfg.InitialExposed)
	}

	sigma := incubationRate(DaysToIncubation, DaysPresymptomatic)
	gamma, err := recoveryRate(GenerationTime, sigma)
	if err != nil {
		return Params{}, err
	}
	s1, err := growthRate(BasicReproductionNumber, sigma, gamma)
	if err != nil {
		return Params{}, err
	}

	daysToSwitch := int(cfg.Lockdown.Sub(cfg.FirstInfection).Hours() / 24)
	if daysToSwitch <= 0 {
		logrus.Warnf("Lockdown date %s does not follow first infection %s; contact restrictions apply from day 0",
			cfg.Lockdown.Format("2006-01-02"), cfg.FirstInfection.Format("2006-01-02"))
	}

	timeInfected := 1.0 / gamma

	icuScalingLag := cfg.ICUScalingLagDays
	if icuScalingLag < 0 {
		// Stretch the ICU signal because a severe case occupies a bed far
		// longer than the model's infectious period. Tunable, not settled.
		icuScalingLag = math.Round((TimeInHospitalDays/timeInfected - 1.0) * timeInfected)
	}

	return Params{
		Beta0:        BasicReproductionNumber * gamma,
		Beta1:        LockdownReproductionNumber * gamma,
		DaysToSwitch: daysToSwitch,
		Sigma:        sigma,
		Gamma:        gamma,
		GrowthRate:   s1,

		TimeInfectedDays:  timeInfected,
		CaseDetectionRate: (1.0 - PercentAsymptomatic) * DetectedFraction,

		FoundLagDays:      DaysPresymptomatic + SymptomToHospitalLagDays + TestLagDays + CommunicationLagDays,
		ICULagDays:        DaysPresymptomatic + SymptomToHospitalLagDays + HospitalToICULagDays,
		ICUScalingLagDays: icuScalingLag,
		DeathLagDays:      -timeInfected + DaysPresymptomatic + SymptomToHospitalLagDays + TimeInHospitalDays + CommunicationLagDays,
	}, nil
}
