package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/herdsim/internal/calculation"
	"github.com/rgehrsitz/herdsim/internal/compare"
	"github.com/rgehrsitz/herdsim/internal/config"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/transform"
	"github.com/rgehrsitz/herdsim/internal/tui/scenes"
)

// DefaultSavePath is where scenarios are saved when the TUI was started without a config file
const DefaultSavePath = "herdsim.yaml"

// customTemplate names the template built from a typed transform spec
const customTemplate = "custom"

const compareTimeout = 30 * time.Second

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Configuration and data
	configPath string
	config     *domain.Configuration

	// Engines, built once the configuration's rules are known
	projector     *calculation.CachedEngine
	compareEngine *compare.CompareEngine

	// Current selection
	selectedScenario string
	params           domain.SimulationParameters
	result           *domain.ProjectionResult

	// Scene models
	homeModel       *scenes.HomeModel
	scenariosModel  *scenes.ScenariosModel
	parametersModel *scenes.ParametersModel
	resultsModel    *scenes.ResultsModel
	herdModel       *scenes.HerdModel
	compareModel    *scenes.CompareModel

	err     error
	status  string
	spinner spinner.Model

	loading        bool
	loadingMessage string
}

// NewModel creates a new application model. An empty configPath runs the
// default simulation.
func NewModel(configPath string) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = s.Style.Foreground(ColorPrimary)

	return Model{
		currentScene:    SceneHome,
		configPath:      configPath,
		homeModel:       scenes.NewHomeModel(),
		scenariosModel:  scenes.NewScenariosModel(),
		parametersModel: scenes.NewParametersModel(),
		resultsModel:    scenes.NewResultsModel(),
		herdModel:       scenes.NewHerdModel(),
		compareModel:    scenes.NewCompareModel(transform.CreateBuiltInTemplates()),
		spinner:         s,
		width:           100,
		height:          30,
		loading:         true,
		loadingMessage:  "Loading configuration...",
	}
}

// Init loads the configuration and starts the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadConfigCmd(m.configPath), m.spinner.Tick)
}

// loadConfigCmd returns a command that loads the configuration file
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			cfg := domain.DefaultConfiguration()
			return ConfigLoadedMsg{Config: &cfg}
		}

		cfg, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ConfigLoadedMsg{Config: cfg}
	}
}

// projectCmd runs one projection through the memoizing engine
func projectCmd(projector calculation.Projector, name string, params domain.SimulationParameters) tea.Cmd {
	return func() tea.Msg {
		result, err := projector.Project(params)
		return CalculationCompleteMsg{ScenarioName: name, Result: result, Err: err}
	}
}

// compareCmd compares templates against the current parameters
func compareCmd(engine *compare.CompareEngine, name string, params domain.SimulationParameters, templates []string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), compareTimeout)
		defer cancel()

		set, err := engine.Compare(ctx, params, compare.CompareOptions{
			BaseScenarioName: name,
			Templates:        templates,
		})
		return ComparisonCompleteMsg{Set: set, Err: err}
	}
}

// saveCmd writes the configuration to disk
func saveCmd(cfg domain.Configuration, path string) tea.Cmd {
	return func() tea.Msg {
		return SaveCompleteMsg{Filename: path, Err: config.SaveConfiguration(&cfg, path)}
	}
}

// withCustomTemplate returns a compare engine for one request whose registry is a copy
// of engine's plus the parsed transform under customTemplate. The shared registry is
// never written, since an earlier compareCmd may still be reading it.
func withCustomTemplate(engine *compare.CompareEngine, spec string) (*compare.CompareEngine, error) {
	t, err := transform.NewTransformRegistry().ParseTransformSpec(spec)
	if err != nil {
		return nil, fmt.Errorf("custom transform: %w", err)
	}
	registry := engine.TemplateRegistry.Clone()
	registry.Register(transform.Template{
		Name:        customTemplate,
		Category:    "Custom",
		Description: spec,
		Transforms:  []transform.ScenarioTransform{t},
	})

	scoped := *engine
	scoped.TemplateRegistry = registry
	return &scoped, nil
}

func (m Model) baseName() string {
	if m.config != nil && m.config.Name != "" {
		return m.config.Name
	}
	return scenes.BaseScenarioName
}

func (m Model) savePath() string {
	if m.configPath != "" {
		return m.configPath
	}
	return DefaultSavePath
}

// applyConfig builds the engines for the configuration's rules and projects its base parameters
func (m Model) applyConfig(cfg *domain.Configuration) (Model, tea.Cmd) {
	engine := calculation.NewEngineWithRules(cfg.Rules)
	projector, err := calculation.NewCachedEngine(engine, calculation.DefaultCacheSize)
	if err != nil {
		m.err = err
		return m, nil
	}

	m.config = cfg
	m.projector = projector
	m.compareEngine = compare.NewCompareEngine(projector)
	m.compareModel = scenes.NewCompareModel(m.compareEngine.TemplateRegistry)
	m.compareModel.SetSize(m.width, m.height)

	m.homeModel.SetConfig(cfg)
	m.scenariosModel.SetConfig(cfg)
	m.parametersModel.SetParameters(cfg.Simulation, cfg.Rules.MaxDurationMonths)

	return m.project(m.baseName(), cfg.Simulation)
}

// project starts a projection for the given parameters
func (m Model) project(name string, params domain.SimulationParameters) (Model, tea.Cmd) {
	if m.projector == nil {
		return m, nil
	}
	m.selectedScenario = name
	m.params = params
	m.loading = true
	m.loadingMessage = "Projecting " + name + "..."
	return m, projectCmd(m.projector, name, params)
}

func (m Model) setSizes() {
	m.homeModel.SetSize(m.width, m.height)
	m.scenariosModel.SetSize(m.width, m.height)
	m.parametersModel.SetSize(m.width, m.height)
	m.resultsModel.SetSize(m.width, m.height)
	m.herdModel.SetSize(m.width, m.height)
	m.compareModel.SetSize(m.width, m.height)
}

// editing reports whether the current scene owns the keyboard for text input
func (m Model) editing() bool {
	switch m.currentScene {
	case SceneParameters:
		return m.parametersModel.Editing()
	case SceneCompare:
		return m.compareModel.Editing()
	}
	return false
}

var errNoTemplates = errors.New("select at least one template")
