package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	sim "github.com/outbreak-sim/outbreak-sim/sim"
)

// Define struct for YAML
type ScenarioFile struct {
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

type Scenario struct {
	Population     int64   `yaml:"population"`
	ICUBeds        int64   `yaml:"icu_beds"`
	FirstInfection string  `yaml:"first_infection"`
	Lockdown       string  `yaml:"lockdown"`
	Days           int     `yaml:"days"`
	InitialExposed float64 `yaml:"initial_exposed"`
}

// GetScenarioConfig loads a named scenario preset from a YAML file.
// Returns (nil, nil) when the file has no scenario of that name.
func GetScenarioConfig(scenarioFilePath string, scenarioType string) (*sim.ScenarioConfig, error) {
	// Read YAML file
	data, err := os.ReadFile(scenarioFilePath)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	// Parse YAML
	var file ScenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}

	scenario, ok := file.Scenarios[scenarioType]
	if !ok {
		return nil, nil
	}
	logrus.Infof("Using preset scenario %v", scenarioType)

	first, err := time.Parse("2006-01-02", scenario.FirstInfection)
	if err != nil {
		return nil, fmt.Errorf("scenario %q first_infection: %w", scenarioType, err)
	}
	locked, err := time.Parse("2006-01-02", scenario.Lockdown)
	if err != nil {
		return nil, fmt.Errorf("scenario %q lockdown: %w", scenarioType, err)
	}

	cfg := sim.NewScenarioConfig(scenario.Population, scenario.ICUBeds, first, locked)
	if scenario.Days > 0 {
		cfg.DaysTotal = scenario.Days
	}
	if scenario.InitialExposed > 0 {
		cfg.InitialExposed = scenario.InitialExposed
	}
	return &cfg, nil
}
