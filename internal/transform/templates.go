package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/herdsim/internal/domain"
)

// TemplateRegistry manages built-in scenario templates
type TemplateRegistry struct {
	templates map[string]Template
}

// Template represents a named collection of transforms
type Template struct {
	Name        string
	Category    string
	Description string
	Transforms  []ScenarioTransform
}

// NewTemplateRegistry creates an empty template registry
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]Template),
	}
}

// Register adds a template to the registry
func (tr *TemplateRegistry) Register(t Template) {
	tr.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name (case-insensitive)
func (tr *TemplateRegistry) Get(name string) (Template, bool) {
	t, ok := tr.templates[strings.ToLower(name)]
	return t, ok
}

// Clone returns a registry holding the same templates. Registering into the clone
// leaves the original untouched, so a clone can be extended while the original is read
// from other goroutines.
func (tr *TemplateRegistry) Clone() *TemplateRegistry {
	clone := &TemplateRegistry{templates: make(map[string]Template, len(tr.templates)+1)}
	for name, t := range tr.templates {
		clone.templates[name] = t
	}
	return clone
}

// List returns all registered template names in sorted order
func (tr *TemplateRegistry) List() []string {
	names := make([]string, 0, len(tr.templates))
	for name := range tr.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const (
	categoryUnits   = "Unit Count"
	categoryHorizon = "Horizon"
	categoryTiming  = "Timing"
	categoryFees    = "Growing Fund"
	categoryCombo   = "Combination Strategies"
)

// CreateBuiltInTemplates creates a template registry with the common what-if scenarios
func CreateBuiltInTemplates() *TemplateRegistry {
	registry := NewTemplateRegistry()

	registry.Register(Template{
		Name:        "add_unit",
		Category:    categoryUnits,
		Description: "Buy one more unit",
		Transforms:  []ScenarioTransform{&AddUnits{Units: 1}},
	})
	registry.Register(Template{
		Name:        "double_units",
		Category:    categoryUnits,
		Description: "Double the number of units",
		Transforms:  []ScenarioTransform{&ScaleUnits{Factor: 2}},
	})

	registry.Register(Template{
		Name:        "horizon_3yr",
		Category:    categoryHorizon,
		Description: "Project over 3 years (36 months)",
		Transforms:  []ScenarioTransform{&SetHorizon{Months: 36}},
	})
	registry.Register(Template{
		Name:        "horizon_5yr",
		Category:    categoryHorizon,
		Description: "Project over 5 years (60 months)",
		Transforms:  []ScenarioTransform{&SetHorizon{Months: 60}},
	})
	registry.Register(Template{
		Name:        "horizon_10yr",
		Category:    categoryHorizon,
		Description: "Project over 10 years (120 months, the maximum)",
		Transforms:  []ScenarioTransform{&SetHorizon{Months: 120}},
	})

	registry.Register(Template{
		Name:        "delay_6mo",
		Category:    categoryTiming,
		Description: "Buy the founders 6 months later",
		Transforms:  []ScenarioTransform{&ShiftStart{Months: 6}},
	})
	registry.Register(Template{
		Name:        "delay_12mo",
		Category:    categoryTiming,
		Description: "Buy the founders 12 months later",
		Transforms:  []ScenarioTransform{&ShiftStart{Months: 12}},
	})

	registry.Register(Template{
		Name:        "with_cgf",
		Category:    categoryFees,
		Description: "Include the Cattle Growing Fund in net figures",
		Transforms:  []ScenarioTransform{&SetCGF{Enabled: true}},
	})
	registry.Register(Template{
		Name:        "without_cgf",
		Category:    categoryFees,
		Description: "Exclude the Cattle Growing Fund from net figures",
		Transforms:  []ScenarioTransform{&SetCGF{Enabled: false}},
	})

	registry.Register(Template{
		Name:        "expand_long_term",
		Category:    categoryCombo,
		Description: "Double the units and project the full 10 years",
		Transforms: []ScenarioTransform{
			&ScaleUnits{Factor: 2},
			&SetHorizon{Months: 120},
		},
	})
	registry.Register(Template{
		Name:        "lean",
		Category:    categoryCombo,
		Description: "Skip the growing fund over a 5-year horizon",
		Transforms: []ScenarioTransform{
			&SetCGF{Enabled: false},
			&SetHorizon{Months: 60},
		},
	})

	return registry
}

// ApplyTemplate applies a template to base parameters
func ApplyTemplate(base domain.SimulationParameters, template Template) (domain.SimulationParameters, error) {
	return ApplyTransforms(base, template.Transforms)
}

// ParseTemplateList parses a comma-separated list of template names
func ParseTemplateList(templateList string) []string {
	if templateList == "" {
		return nil
	}

	parts := strings.Split(templateList, ",")
	templates := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			templates = append(templates, trimmed)
		}
	}
	return templates
}

// GetTemplateHelp returns formatted help text for all templates
func GetTemplateHelp(registry *TemplateRegistry) string {
	if len(registry.templates) == 0 {
		return "No templates registered"
	}

	var sb strings.Builder
	sb.WriteString("Available Templates:\n\n")

	order := []string{categoryUnits, categoryHorizon, categoryTiming, categoryFees, categoryCombo}
	categories := make(map[string][]Template)
	for _, name := range registry.List() {
		t := registry.templates[name]
		cat := t.Category
		if cat == "" {
			cat = categoryCombo
		}
		categories[cat] = append(categories[cat], t)
	}

	for _, category := range order {
		templates := categories[category]
		if len(templates) == 0 {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s:\n", category))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", t.Name, t.Description))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Usage:\n")
	sb.WriteString("  herdsim compare base.yaml --with double_units,without_cgf\n")
	sb.WriteString("  herdsim compare base.yaml --with delay_6mo,horizon_10yr\n")

	return sb.String()
}
