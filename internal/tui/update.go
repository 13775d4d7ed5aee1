package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/herdsim/internal/config"
	"github.com/rgehrsitz/herdsim/internal/domain"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setSizes()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case NavigateMsg:
		if msg.Scene != m.currentScene {
			m.previousScene = m.currentScene
			m.currentScene = msg.Scene
		}
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ConfigLoadedMsg:
		return m.applyConfig(msg.Config)

	case ScenarioSelectedMsg:
		m.parametersModel.SetParameters(msg.Parameters, m.config.Rules.MaxDurationMonths)
		m.previousScene, m.currentScene = m.currentScene, SceneHome
		return m.project(msg.ScenarioName, msg.Parameters)

	case ParametersChangedMsg:
		name := m.selectedScenario
		if m.parametersModel.Modified() {
			name = m.baseScenarioOf(name) + " (edited)"
		} else {
			name = m.baseScenarioOf(name)
		}
		return m.project(name, msg.Parameters)

	case CalculationCompleteMsg:
		// a slower projection for parameters that were edited since is dropped
		if msg.Err == nil && msg.Result.Parameters != m.params {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.result = msg.Result
		m.homeModel.SetResult(msg.ScenarioName, msg.Result)
		m.parametersModel.SetResult(msg.Result)
		m.resultsModel.SetResults(msg.ScenarioName, msg.Result)
		m.herdModel.SetResult(msg.Result)
		return m, nil

	case ComparisonRequestedMsg:
		if m.compareEngine == nil {
			m.compareModel.SetResults(nil)
			return m, nil
		}
		engine := m.compareEngine
		templates := append([]string(nil), msg.Templates...)
		if msg.Custom != "" {
			scoped, err := withCustomTemplate(engine, msg.Custom)
			if err != nil {
				m.compareModel.SetResults(nil)
				m.err = err
				return m, nil
			}
			engine = scoped
			templates = append(templates, customTemplate)
		}
		if len(templates) == 0 {
			m.compareModel.SetResults(nil)
			m.err = errNoTemplates
			return m, nil
		}
		return m, compareCmd(engine, m.selectedScenario, m.params, templates)

	case ComparisonCompleteMsg:
		if msg.Err != nil {
			m.compareModel.SetResults(nil)
			m.err = msg.Err
			return m, nil
		}
		m.compareModel.SetResults(msg.Set)
		return m, nil

	case SaveScenarioMsg:
		if m.config == nil {
			return m, nil
		}
		config.UpsertScenario(m.config, domain.Scenario{Name: msg.Name, Parameters: m.params})
		m.scenariosModel.SetConfig(m.config)
		return m, saveCmd(*m.config, m.savePath())

	case SaveCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.status = fmt.Sprintf("saved to %s", msg.Filename)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// baseScenarioOf strips the edited marker from a scenario name
func (m Model) baseScenarioOf(name string) string {
	const suffix = " (edited)"
	if len(name) > len(suffix) && name[len(name)-len(suffix):] == suffix {
		return name[:len(name)-len(suffix)]
	}
	return name
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// any key dismisses an error
	if m.err != nil {
		m.err = nil
		return m, nil
	}

	if m.editing() {
		return m.updateCurrentScene(msg)
	}

	navigate := func(s Scene) (tea.Model, tea.Cmd) {
		return m, func() tea.Msg { return NavigateMsg{Scene: s} }
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		return navigate(SceneHelp)
	case "esc":
		if m.currentScene != SceneHome {
			if m.previousScene != m.currentScene && m.previousScene != SceneHelp {
				return navigate(m.previousScene)
			}
			return navigate(SceneHome)
		}
	case "h":
		return navigate(SceneHome)
	case "s":
		return navigate(SceneScenarios)
	case "p":
		return navigate(SceneParameters)
	case "r":
		return navigate(SceneResults)
	case "v":
		return navigate(SceneHerd)
	case "c":
		return navigate(SceneCompare)
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneScenarios:
		m.scenariosModel, cmd = m.scenariosModel.Update(msg)
	case SceneParameters:
		m.parametersModel, cmd = m.parametersModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	case SceneHerd:
		m.herdModel, cmd = m.herdModel.Update(msg)
	case SceneCompare:
		m.compareModel, cmd = m.compareModel.Update(msg)
	}
	return m, cmd
}
