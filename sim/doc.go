// Package sim provides the deterministic SEIR epidemic simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - params.go: derivation of the ODE rate constants from scenario inputs
//   - model.go: the four-compartment SEIR derivative with the lockdown switch
//   - simulator.go: scenario setup, integration, and observable post-processing
//
// # Architecture
//
// A run is a single synchronous call chain: ScenarioConfig → DeriveParams →
// Integrate → observables → EstimateDeaths → Result. Supporting pieces:
//   - constants.go: fixed epidemiological estimates (reproduction numbers,
//     generation time, clinical lags, fatality fractions)
//   - integrator.go: adaptive Dormand–Prince RK5(4) over the day grid
//   - series.go: day-indexed series helpers and the fractional-day delay
//   - deaths.go: the ICU-capacity-branching fatality recurrence
//   - metrics.go: aggregate statistics over a finished run
//
// Every run owns its state; independent runs may execute concurrently with
// no coordination.
package sim
