package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/outbreak-sim/outbreak-sim/report"
	sim "github.com/outbreak-sim/outbreak-sim/sim"
)

var (
	// CLI flags for the scenario
	population     int64   // Total population N
	icuBeds        int64   // Intensive-care bed capacity
	firstInfection string  // Date the first exposed case appears (YYYY-MM-DD)
	lockdown       string  // Date contact restrictions take effect (YYYY-MM-DD)
	daysTotal      int     // Total days to simulate
	initialExposed float64 // Exposed people at day 0
	icuScalingLag  float64 // Extra ICU-signal delay in days (negative = derived)
	logLevel       string  // Log verbosity level

	// CLI flags for scenario presets and output
	scenarioFile string // Path to a YAML scenario preset file
	scenarioName string // Preset name inside the scenario file
	outputPath   string // CSV output path ("" = stdout summary only)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "outbreak-sim",
	Short: "Deterministic SEIR epidemic simulator with a lockdown switch",
}

// runCmd executes one simulation using parameters from CLI flags or a
// named scenario preset.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the SEIR simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		cfg, err := buildScenario()
		if err != nil {
			logrus.Fatalf("Invalid scenario: %v", err)
		}

		startTime := time.Now() // Get current time (start)

		s, err := sim.NewSimulator(*cfg)
		if err != nil {
			logrus.Fatalf("Scenario rejected: %v", err)
		}
		res, err := s.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		sim.ComputeMetrics(res, cfg.ICUBeds).Print()

		records := report.Assemble(res.Start, []report.Series{
			{Name: report.Susceptible, Values: res.Susceptible},
			{Name: report.Exposed, Values: res.Exposed},
			{Name: report.Infectious, Values: res.Infectious},
			{Name: report.Recovered, Values: res.Recovered},
			{Name: report.Deaths, Values: res.Deaths},
		})
		summary := report.Summarize(records)
		logrus.Infof("Assembled %d records over %s..%s, final reported deaths %d",
			summary.TotalRecords, summary.FirstDate.Format("2006-01-02"),
			summary.LastDate.Format("2006-01-02"), summary.FinalDeaths)

		if outputPath != "" {
			if err := writeRecords(outputPath, records); err != nil {
				logrus.Fatalf("Writing output: %v", err)
			}
			logrus.Infof("Wrote %s", outputPath)
		}

		logrus.Infof("Simulation complete in %v.", time.Since(startTime))
	},
}

// buildScenario assembles the ScenarioConfig from a preset (when named)
// overlaid with explicit flags.
func buildScenario() (*sim.ScenarioConfig, error) {
	if scenarioName != "" {
		cfg, err := GetScenarioConfig(scenarioFile, scenarioName)
		if err != nil {
			return nil, err
		}
		if cfg == nil {
			logrus.Fatalf("Scenario %q not found in %s", scenarioName, scenarioFile)
		}
		return cfg, nil
	}

	first, err := time.Parse("2006-01-02", firstInfection)
	if err != nil {
		return nil, err
	}
	locked, err := time.Parse("2006-01-02", lockdown)
	if err != nil {
		return nil, err
	}
	cfg := sim.NewScenarioConfig(population, icuBeds, first, locked)
	cfg.DaysTotal = daysTotal
	cfg.InitialExposed = initialExposed
	cfg.ICUScalingLagDays = icuScalingLag
	return &cfg, nil
}

func writeRecords(path string, records []report.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return report.WriteCSV(f, records)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&population, "population", 83_000_000, "Total population")
	runCmd.Flags().Int64Var(&icuBeds, "icu-beds", 28_000, "Intensive-care bed capacity")
	runCmd.Flags().StringVar(&firstInfection, "first-infection", "2020-01-28", "Date of first infection (YYYY-MM-DD)")
	runCmd.Flags().StringVar(&lockdown, "lockdown", "2020-03-22", "Date of lockdown (YYYY-MM-DD)")
	runCmd.Flags().IntVar(&daysTotal, "days", sim.DefaultDaysTotal, "Total days to model")
	runCmd.Flags().Float64Var(&initialExposed, "e0", sim.DefaultInitialExposed, "Exposed people at day 0")
	runCmd.Flags().Float64Var(&icuScalingLag, "icu-scaling-lag", -1, "Extra ICU signal delay in days (negative = derive from hospital stay)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "YAML scenario preset file")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Preset name from the scenario file (overrides scenario flags)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "CSV output path for the record set")

	rootCmd.AddCommand(runCmd)
}
