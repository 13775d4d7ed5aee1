// Package tuimsg holds the messages scenes send to the root TUI model.
package tuimsg

import (
	"github.com/rgehrsitz/herdsim/internal/compare"
	"github.com/rgehrsitz/herdsim/internal/domain"
)

// ScenarioSelectedMsg asks the root model to project a named parameter set
type ScenarioSelectedMsg struct {
	ScenarioName string
	Parameters   domain.SimulationParameters
}

// ParametersChangedMsg carries edited parameters to be projected
type ParametersChangedMsg struct {
	Parameters domain.SimulationParameters
}

// CalculationCompleteMsg carries a finished projection
type CalculationCompleteMsg struct {
	ScenarioName string
	Result       *domain.ProjectionResult
	Err          error
}

// ComparisonRequestedMsg asks the root model to compare templates against the current parameters
type ComparisonRequestedMsg struct {
	Templates []string
	Custom    string // optional transform spec, e.g. "add_units:units=2"
}

// ComparisonCompleteMsg carries a finished comparison
type ComparisonCompleteMsg struct {
	Set *compare.ComparisonSet
	Err error
}

// SaveScenarioMsg asks the root model to write the current parameters as a named scenario
type SaveScenarioMsg struct {
	Name string
}

// SaveCompleteMsg signals a save operation has finished
type SaveCompleteMsg struct {
	Filename string
	Err      error
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
