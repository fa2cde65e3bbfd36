package sim

// State is the SEIR compartment vector at one instant. S+E+I+R stays equal
// to the total population; the derivative terms cancel pairwise.
type State struct {
	Susceptible float64
	Exposed     float64
	Infectious  float64
	Recovered   float64
}

// Beta returns the transmission coefficient at time t: a step function with
// a single discontinuity at the lockdown switch day. The comparison is
// strict — at t == DaysToSwitch the post-lockdown coefficient applies.
func (p Params) Beta(t float64) float64 {
	if t < float64(p.DaysToSwitch) {
		return p.Beta0
	}
	return p.Beta1
}

// Derivative returns d(S,E,I,R)/dt for a population of size n at time t.
func Derivative(t float64, y State, n float64, p Params) State {
	infection := p.Beta(t) * y.Susceptible * y.Infectious / n
	return State{
		Susceptible: -infection,
		Exposed:     infection - p.Sigma*y.Exposed,
		Infectious:  p.Sigma*y.Exposed - p.Gamma*y.Infectious,
		Recovered:   p.Gamma * y.Infectious,
	}
}

// InitialState places e0 exposed people in an otherwise susceptible
// population of size n.
func InitialState(n, e0 float64) State {
	return State{Susceptible: n - e0, Exposed: e0}
}

func (y State) vector() []float64 {
	return []float64{y.Susceptible, y.Exposed, y.Infectious, y.Recovered}
}

func stateFromVector(v []float64) State {
	return State{Susceptible: v[0], Exposed: v[1], Infectious: v[2], Recovered: v[3]}
}
