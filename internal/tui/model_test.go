package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/herdsim/internal/config"
	"github.com/rgehrsitz/herdsim/internal/domain"
)

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// drain feeds each command's message back into the model until none is left
func drain(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for cmd != nil {
		m, cmd = step(t, m, cmd())
	}
	return m
}

func loaded(t *testing.T, configPath string) Model {
	t.Helper()
	m := NewModel(configPath)
	m = drain(t, m, loadConfigCmd(configPath))
	require.NoError(t, m.err)
	require.NotNil(t, m.result)
	return m
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadsDefaultConfiguration(t *testing.T) {
	m := NewModel("")
	assert.Contains(t, m.View(), "Loading configuration")

	m = loaded(t, "")
	assert.False(t, m.loading)
	assert.Equal(t, "base", m.selectedScenario)
	assert.Equal(t, domain.DefaultParameters(), m.params)

	view := m.View()
	assert.Contains(t, view, "Herdsim - Buffalo Herd Investment Projection")
	assert.Contains(t, view, "Home / base")
}

func TestModel_Navigation(t *testing.T) {
	m := loaded(t, "")

	tests := []struct {
		key   string
		scene Scene
	}{
		{"r", SceneResults},
		{"v", SceneHerd},
		{"c", SceneCompare},
		{"p", SceneParameters},
		{"s", SceneScenarios},
		{"?", SceneHelp},
		{"h", SceneHome},
	}
	for _, tt := range tests {
		m = drain(t, m, func() tea.Msg { return key(tt.key) })
		assert.Equal(t, tt.scene, m.currentScene, "key %s", tt.key)
	}

	m = drain(t, m, func() tea.Msg { return key("r") })
	m = drain(t, m, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyEsc} })
	assert.Equal(t, SceneHome, m.currentScene)

	_, cmd := step(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ParameterChangeReprojects(t *testing.T) {
	m := loaded(t, "")
	m = drain(t, m, func() tea.Msg { return key("p") })

	m = drain(t, m, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyRight} })
	assert.Equal(t, 2, m.params.UnitCount)
	assert.Equal(t, 2, m.result.Parameters.UnitCount)
	assert.Equal(t, "base (edited)", m.selectedScenario)

	m = drain(t, m, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyLeft} })
	assert.Equal(t, "base", m.selectedScenario)
	assert.Equal(t, uint64(1), m.projector.Stats().Hits, "returning to the loaded parameters hits the cache")
}

func TestModel_DropsStaleProjection(t *testing.T) {
	m := loaded(t, "")
	current := m.result

	stale := domain.DefaultParameters()
	stale.UnitCount = 7
	result, err := m.projector.Project(stale)
	require.NoError(t, err)

	m, _ = step(t, m, CalculationCompleteMsg{ScenarioName: "old", Result: result})
	assert.Same(t, current, m.result)
}

func TestModel_ScenarioSelection(t *testing.T) {
	m := loaded(t, "")
	p := domain.DefaultParameters()
	p.UnitCount = 3

	m = drain(t, m, func() tea.Msg { return ScenarioSelectedMsg{ScenarioName: "three units", Parameters: p} })
	assert.Equal(t, SceneHome, m.currentScene)
	assert.Equal(t, "three units", m.selectedScenario)
	assert.Equal(t, 3, m.result.Parameters.UnitCount)
	assert.Equal(t, 3, m.parametersModel.Parameters().UnitCount)
}

func TestModel_CompareWithCustomTransform(t *testing.T) {
	m := loaded(t, "")

	m = drain(t, m, func() tea.Msg { return ComparisonRequestedMsg{Custom: "add_units:units=2"} })
	require.NoError(t, m.err)
	require.NotNil(t, m.compareModel)

	m = drain(t, m, func() tea.Msg { return key("c") })
	assert.Contains(t, m.View(), "base_custom")

	_, shared := m.compareEngine.TemplateRegistry.Get(customTemplate)
	assert.False(t, shared, "the custom template stays local to its request")
}

func TestWithCustomTemplate_LeavesSharedRegistryAlone(t *testing.T) {
	m := loaded(t, "")
	before := m.compareEngine.TemplateRegistry.List()

	scoped, err := withCustomTemplate(m.compareEngine, "set_cgf:enabled=false")
	require.NoError(t, err)
	assert.NotSame(t, m.compareEngine, scoped)
	assert.Same(t, m.compareEngine.Projector, scoped.Projector)

	_, ok := scoped.TemplateRegistry.Get(customTemplate)
	assert.True(t, ok)
	assert.Equal(t, before, m.compareEngine.TemplateRegistry.List())
	assert.Len(t, scoped.TemplateRegistry.List(), len(before)+1)
}

func TestModel_CompareErrors(t *testing.T) {
	m := loaded(t, "")

	m, _ = step(t, m, ComparisonRequestedMsg{Custom: "no_such_transform"})
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "Press any key")

	// any key dismisses the error without acting on it
	m, cmd := step(t, m, key("r"))
	assert.Nil(t, cmd)
	assert.NoError(t, m.err)
	assert.Equal(t, SceneHome, m.currentScene)

	m, _ = step(t, m, ComparisonRequestedMsg{})
	assert.ErrorIs(t, m.err, errNoTemplates)
}

func TestModel_SaveScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "herd.yaml")
	cfg := domain.DefaultConfiguration()
	cfg.Name = "family herd"
	require.NoError(t, config.SaveConfiguration(&cfg, path))

	m := loaded(t, path)
	assert.Equal(t, "family herd", m.selectedScenario)

	m = drain(t, m, func() tea.Msg { return key("p") })
	m = drain(t, m, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyRight} })
	m = drain(t, m, func() tea.Msg { return SaveScenarioMsg{Name: "two units"} })
	require.NoError(t, m.err)
	assert.Contains(t, m.status, path)

	saved, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	scenario, ok := saved.FindScenario("two units")
	require.True(t, ok)
	assert.Equal(t, 2, scenario.Parameters.UnitCount)
}

func TestModel_EditingBypassesGlobalKeys(t *testing.T) {
	m := loaded(t, "")
	m = drain(t, m, func() tea.Msg { return key("c") })
	// the focus command only blinks the cursor, so it is not run
	m, _ = step(t, m, key("/"))
	require.True(t, m.editing())

	// "s" is typed into the input instead of switching scenes
	m, _ = step(t, m, key("s"))
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.editing())
	assert.Equal(t, SceneCompare, m.currentScene)
}

func TestModel_ConfigLoadError(t *testing.T) {
	m := NewModel(filepath.Join(t.TempDir(), "missing.yaml"))
	m, _ = step(t, m, loadConfigCmd(m.configPath)())
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")
}
