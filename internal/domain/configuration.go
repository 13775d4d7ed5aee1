package domain

import "fmt"

// Scenario is a named parameter set run alongside the base simulation
type Scenario struct {
	Name       string               `yaml:"name" json:"name"`
	Parameters SimulationParameters `yaml:"parameters" json:"parameters"`
}

// Configuration is the on-disk simulation file: base parameters, optional
// named scenarios and rule overrides.
type Configuration struct {
	Name       string               `yaml:"name,omitempty" json:"name,omitempty"`
	Simulation SimulationParameters `yaml:"simulation" json:"simulation"`
	Scenarios  []Scenario           `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
	Rules      Rules                `yaml:"rules" json:"rules"`
}

// DefaultConfiguration seeds a Configuration so a decoded file only has to name what it changes
func DefaultConfiguration() Configuration {
	return Configuration{
		Simulation: DefaultParameters(),
		Rules:      DefaultRules(),
	}
}

// Validate checks the rules table, the base parameters and every scenario
func (c *Configuration) Validate() error {
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if err := c.Simulation.Validate(c.Rules); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Scenarios))
	for i, s := range c.Scenarios {
		if s.Name == "" {
			return invalid(fmt.Sprintf("scenarios[%d].name", i), "is required")
		}
		if seen[s.Name] {
			return invalid(fmt.Sprintf("scenarios[%d].name", i), "duplicate scenario %q", s.Name)
		}
		seen[s.Name] = true
		if err := s.Parameters.Validate(c.Rules); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
	}
	return nil
}

// FindScenario returns the scenario with the given name
func (c *Configuration) FindScenario(name string) (Scenario, bool) {
	for _, s := range c.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return Scenario{}, false
}
