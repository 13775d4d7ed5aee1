package tui

import (
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/tui/tuimsg"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneScenarios
	SceneParameters
	SceneResults
	SceneHerd
	SceneCompare
	SceneHelp
)

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneScenarios:
		return "Scenarios"
	case SceneParameters:
		return "Parameters"
	case SceneResults:
		return "Results"
	case SceneHerd:
		return "Herd"
	case SceneCompare:
		return "Compare"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// ConfigLoadedMsg signals configuration has been loaded
type ConfigLoadedMsg struct {
	Config *domain.Configuration
}

// Scene messages, aliased so the root package can switch on them directly
type (
	ErrorMsg               = tuimsg.ErrorMsg
	ScenarioSelectedMsg    = tuimsg.ScenarioSelectedMsg
	ParametersChangedMsg   = tuimsg.ParametersChangedMsg
	CalculationCompleteMsg = tuimsg.CalculationCompleteMsg
	ComparisonRequestedMsg = tuimsg.ComparisonRequestedMsg
	ComparisonCompleteMsg  = tuimsg.ComparisonCompleteMsg
	SaveScenarioMsg        = tuimsg.SaveScenarioMsg
	SaveCompleteMsg        = tuimsg.SaveCompleteMsg
)
