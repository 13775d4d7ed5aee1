package compare

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/herdsim/internal/calculation"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/transform"
)

var (
	// ErrUnknownTemplate is returned for a template name that is not registered
	ErrUnknownTemplate = errors.New("unknown template")
	// ErrUnknownScenario is returned for a scenario name missing from the configuration
	ErrUnknownScenario = errors.New("unknown scenario")
)

// CompareEngine orchestrates scenario comparison
type CompareEngine struct {
	Projector         calculation.Projector
	MetricsCalculator *MetricsCalculator
	TemplateRegistry  *transform.TemplateRegistry
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(projector calculation.Projector) *CompareEngine {
	return &CompareEngine{
		Projector:         projector,
		MetricsCalculator: NewMetricsCalculator(),
		TemplateRegistry:  transform.CreateBuiltInTemplates(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	BaseScenarioName string   // Display name of the base parameters
	Templates        []string // List of template names to apply
}

func (ce *CompareEngine) run(ctx context.Context, name string, params domain.SimulationParameters) (ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return ComparisonResult{}, err
	}
	result, err := ce.Projector.Project(params)
	if err != nil {
		return ComparisonResult{}, err
	}
	return ce.MetricsCalculator.CalculateMetrics(name, result), nil
}

// Compare projects the base parameters and every template applied to them
func (ce *CompareEngine) Compare(
	ctx context.Context,
	base domain.SimulationParameters,
	options CompareOptions,
) (*ComparisonSet, error) {

	baseName := options.BaseScenarioName
	if baseName == "" {
		baseName = "base"
	}

	baseResult, err := ce.run(ctx, baseName, base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}

	alternatives := []ComparisonResult{}

	for _, templateName := range options.Templates {
		template, ok := ce.TemplateRegistry.Get(templateName)
		if !ok {
			return nil, fmt.Errorf("template %s not found: %w", templateName, ErrUnknownTemplate)
		}

		modified, err := transform.ApplyTemplate(base, template)
		if err != nil {
			return nil, fmt.Errorf("failed to apply template %s: %w", templateName, err)
		}

		altResult, err := ce.run(ctx, baseName+"_"+template.Name, modified)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", templateName, err)
		}
		altResult.Description = template.Description
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareScenarios compares the configuration's base simulation against named scenarios
// from the same file. With no names every scenario is compared.
func (ce *CompareEngine) CompareScenarios(
	ctx context.Context,
	config *domain.Configuration,
	scenarioNames []string,
) (*ComparisonSet, error) {

	baseName := config.Name
	if baseName == "" {
		baseName = "base"
	}
	baseResult, err := ce.run(ctx, baseName, config.Simulation)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base scenario: %w", err)
	}

	if len(scenarioNames) == 0 {
		for _, s := range config.Scenarios {
			scenarioNames = append(scenarioNames, s.Name)
		}
	}

	alternatives := []ComparisonResult{}
	for _, name := range scenarioNames {
		scenario, ok := config.FindScenario(name)
		if !ok {
			return nil, fmt.Errorf("alternative scenario %s not found: %w", name, ErrUnknownScenario)
		}

		altResult, err := ce.run(ctx, scenario.Name, scenario.Parameters)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate scenario %s: %w", name, err)
		}
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseScenarioName:   baseName,
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}
