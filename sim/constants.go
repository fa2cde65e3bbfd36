package sim

// Fixed epidemiological estimates. These are literature values for the
// modeled pathogen, fixed at build time; everything scenario-specific
// (population, ICU beds, dates) arrives via ScenarioConfig.
const (
	// BasicReproductionNumber is the expected number of secondary infections
	// per case with no intervention in place.
	// https://en.wikipedia.org/wiki/Basic_reproduction_number
	BasicReproductionNumber = 3.0

	// LockdownReproductionNumber is the reproduction number after contact
	// restrictions take effect.
	// https://papers.ssrn.com/sol3/papers.cfm?abstract_id=3539694
	LockdownReproductionNumber = 1.1

	// GenerationTime is the average interval between successive infections
	// in a transmission chain: 1/sigma + 0.5 * 1/gamma.
	// https://www.medrxiv.org/content/10.1101/2020.03.05.20031815v1
	GenerationTime = 4.6

	// DaysPresymptomatic: almost half of transmissions happen before symptom
	// onset (Drosten).
	// https://www.medrxiv.org/content/10.1101/2020.03.08.20032946v1.full.pdf
	DaysPresymptomatic = 2.5

	// DaysToIncubation is the average time from infection to symptom onset.
	DaysToIncubation = 5.2

	// PercentAsymptomatic per Iceland population screening; the virus is
	// already detectable in the throat ~2.5 days before symptoms.
	PercentAsymptomatic = 0.35

	// DetectedFraction of symptomatic cases that show up in test counts.
	// Rough estimate; many mild cases go undetected even with perfect tests.
	DetectedFraction = 1.0 / 20.0

	// TimeInHospitalDays is the average hospital stay of a severe case.
	TimeInHospitalDays = 12.0

	// Reporting-chain lags, whole days.
	CommunicationLagDays     = 2.0
	TestLagDays              = 3.0
	SymptomToHospitalLagDays = 5.0
	HospitalToICULagDays     = 5.0

	// InfectionFatalityRateLow is the IFR with functioning intensive care
	// (Diamond Princess, age corrected).
	InfectionFatalityRateLow = 0.01

	// InfectionFatalityRateHigh applies while ICU demand exceeds capacity.
	InfectionFatalityRateHigh = InfectionFatalityRateLow * 3.0

	// ICUFraction of infections that need intensive care. Imperial College
	// NPI study: hospitalized/ICU/fatal = 6/2/1.
	ICUFraction = InfectionFatalityRateLow * 2.0
)
