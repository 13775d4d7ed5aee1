package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"gopkg.in/yaml.v3"
)

// SaveConfiguration writes a configuration as YAML that LoadFromFile reads back unchanged
func SaveConfiguration(config *domain.Configuration, filename string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// UpsertScenario adds a named scenario, replacing an existing one with the same name
func UpsertScenario(config *domain.Configuration, scenario domain.Scenario) {
	for i, s := range config.Scenarios {
		if s.Name == scenario.Name {
			config.Scenarios[i] = scenario
			return
		}
	}
	config.Scenarios = append(config.Scenarios, scenario)
}
