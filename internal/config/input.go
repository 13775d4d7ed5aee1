package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of simulation configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// fileConfiguration keeps the sections as nodes so each one can be decoded
// onto its defaults instead of onto zero values.
type fileConfiguration struct {
	Name       string         `yaml:"name"`
	Simulation yaml.Node      `yaml:"simulation"`
	Scenarios  []fileScenario `yaml:"scenarios"`
	Rules      yaml.Node      `yaml:"rules"`
}

type fileScenario struct {
	Name       string    `yaml:"name"`
	Parameters yaml.Node `yaml:"parameters"`
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	config, err := ip.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

// Parse decodes a configuration document. Sections that are left out keep
// their defaults, and every scenario starts from the base simulation so it
// only has to name the parameters it changes.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var file fileConfiguration
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config := domain.DefaultConfiguration()
	config.Name = file.Name

	if err := decodeOnto(&file.Rules, &config.Rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules: %w", err)
	}
	if err := decodeOnto(&file.Simulation, &config.Simulation); err != nil {
		return nil, fmt.Errorf("failed to parse simulation: %w", err)
	}

	for i, s := range file.Scenarios {
		scenario := domain.Scenario{Name: s.Name, Parameters: config.Simulation}
		if err := decodeOnto(&s.Parameters, &scenario.Parameters); err != nil {
			return nil, fmt.Errorf("failed to parse scenario %d (%s): %w", i, s.Name, err)
		}
		config.Scenarios = append(config.Scenarios, scenario)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// LoadRules reads a standalone rules file, overriding the default schedule
func (ip *InputParser) LoadRules(filename string) (domain.Rules, error) {
	rules := domain.DefaultRules()

	data, err := os.ReadFile(filename)
	if err != nil {
		return rules, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return rules, fmt.Errorf("failed to parse rules file %s: %w", filename, err)
	}
	if len(node.Content) > 0 {
		if err := node.Content[0].Decode(&rules); err != nil {
			return rules, fmt.Errorf("failed to parse rules file %s: %w", filename, err)
		}
	}

	if err := rules.Validate(); err != nil {
		return rules, fmt.Errorf("rules validation failed: %w", err)
	}
	return rules, nil
}

func decodeOnto(node *yaml.Node, out any) error {
	if node.Kind == 0 {
		return nil
	}
	return node.Decode(out)
}
