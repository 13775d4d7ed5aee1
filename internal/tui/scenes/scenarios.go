package scenes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/tui/components"
	"github.com/rgehrsitz/herdsim/internal/tui/tuimsg"
	"github.com/rgehrsitz/herdsim/internal/tui/tuistyles"
)

// BaseScenarioName labels the configuration's own simulation block when it has no name
const BaseScenarioName = "base"

// ScenariosModel lists the base simulation and every named scenario of the configuration
type ScenariosModel struct {
	scenarios     []domain.Scenario
	selectedIndex int
	cards         []*components.ScenarioCard
	width         int
	height        int
}

// NewScenariosModel creates a new scenarios scene model
func NewScenariosModel() *ScenariosModel {
	return &ScenariosModel{}
}

// SetConfig lists the base parameters first, then the named scenarios in file order
func (m *ScenariosModel) SetConfig(config *domain.Configuration) {
	baseName := config.Name
	if baseName == "" {
		baseName = BaseScenarioName
	}

	m.scenarios = append([]domain.Scenario{{Name: baseName, Parameters: config.Simulation}}, config.Scenarios...)
	m.cards = make([]*components.ScenarioCard, len(m.scenarios))
	for i, s := range m.scenarios {
		m.cards[i] = components.NewParametersCard(s.Name, s.Parameters)
	}
	m.cards[0].WithDescription("base simulation")

	if m.selectedIndex >= len(m.scenarios) {
		m.selectedIndex = 0
	}
}

// SetSize updates the scene dimensions
func (m *ScenariosModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SelectedScenario returns the scenario under the cursor
func (m *ScenariosModel) SelectedScenario() (domain.Scenario, bool) {
	if m.selectedIndex >= 0 && m.selectedIndex < len(m.scenarios) {
		return m.scenarios[m.selectedIndex], true
	}
	return domain.Scenario{}, false
}

// Update handles messages for the scenarios scene
func (m *ScenariosModel) Update(msg tea.Msg) (*ScenariosModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.selectedIndex < len(m.scenarios)-1 {
			m.selectedIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("g"))):
		m.selectedIndex = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("G"))):
		m.selectedIndex = max(0, len(m.scenarios)-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		s, ok := m.SelectedScenario()
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return tuimsg.ScenarioSelectedMsg{ScenarioName: s.Name, Parameters: s.Parameters}
		}
	}
	return m, nil
}

// View renders the scenario list beside the selected card
func (m *ScenariosModel) View() string {
	if len(m.scenarios) == 0 {
		return tuistyles.InfoStyle.Render("No configuration loaded")
	}

	list := tuistyles.BorderStyle.Render(
		tuistyles.SectionStyle.Render("Scenarios") + "\n\n" +
			components.ScenarioListCompact(m.cards, m.selectedIndex))

	for i, c := range m.cards {
		c.SetSelected(i == m.selectedIndex)
	}
	detail := m.cards[m.selectedIndex].Render()

	help := tuistyles.HelpDescStyle.Render("↑/↓ move • enter project this scenario • g/G first/last")
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, list, " ", detail),
		"",
		help)
}
