package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/herdsim/internal/breakeven"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/tui/components"
	"github.com/rgehrsitz/herdsim/internal/tui/tuimsg"
	"github.com/rgehrsitz/herdsim/internal/tui/tuistyles"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
	"github.com/rgehrsitz/herdsim/pkg/money"
)

// Slider keys
const (
	sliderUnits    = "unit_count"
	sliderDuration = "duration_months"
	sliderYear     = "start_year"
	sliderMonth    = "start_month"
	sliderDay      = "start_day"
	sliderCGF      = "cgf_enabled"
)

var monthLabels = func() []string {
	labels := make([]string, 12)
	for m := range labels {
		labels[m] = dateutil.ShortMonth(m)
	}
	return labels
}()

// ParametersModel edits the simulation parameters. Every change is sent
// to the root model, which re-projects immediately.
type ParametersModel struct {
	original      domain.SimulationParameters
	sliders       []*components.ParameterSlider
	focusedSlider int
	nameInput     textinput.Model
	naming        bool
	result        *domain.ProjectionResult
	width         int
	height        int
	modified      bool
}

// NewParametersModel creates a new parameters scene model
func NewParametersModel() *ParametersModel {
	ti := textinput.New()
	ti.Placeholder = "scenario name"
	ti.CharLimit = 40
	ti.Width = 30

	return &ParametersModel{nameInput: ti}
}

// SetParameters loads a parameter set and the horizon cap from the rules
func (m *ParametersModel) SetParameters(p domain.SimulationParameters, maxDuration int) {
	m.original = p
	m.modified = false
	m.buildSliders(p, maxDuration)
}

// SetResult shows the latest projection of the edited parameters
func (m *ParametersModel) SetResult(result *domain.ProjectionResult) {
	m.result = result
}

// SetSize updates the scene dimensions
func (m *ParametersModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Editing reports whether keystrokes are going to the name input
func (m *ParametersModel) Editing() bool {
	return m.naming
}

// Modified reports whether the sliders differ from the loaded parameters
func (m *ParametersModel) Modified() bool {
	return m.modified
}

func (m *ParametersModel) buildSliders(p domain.SimulationParameters, maxDuration int) {
	m.sliders = []*components.ParameterSlider{
		components.NewParameterSlider(sliderUnits, "Units", p.UnitCount, 1, 20, 1).
			WithDescription("Each unit is two founder buffaloes"),
		components.NewParameterSlider(sliderDuration, "Horizon", p.DurationMonths, min(12, maxDuration), maxDuration, 1).
			WithUnit(" months").
			WithDescription("pgup/pgdn move a whole year"),
		components.NewParameterSlider(sliderYear, "Start year", p.StartYear, 2020, 2040, 1),
		components.NewParameterSlider(sliderMonth, "Start month", p.StartMonth, 0, 11, 1).
			WithLabels(monthLabels),
		components.NewParameterSlider(sliderDay, "Start day", p.StartDay, 1, dateutil.DaysInMonth(p.StartYear, p.StartMonth), 1),
		components.NewToggle(sliderCGF, "Cattle Growing Fund", p.CGFEnabled).
			WithDescription("Deduct growing fund charges from net revenue"),
	}
	m.focusedSlider = min(m.focusedSlider, len(m.sliders)-1)
	m.sliders[m.focusedSlider].SetFocused(true)
}

func (m *ParametersModel) slider(key string) *components.ParameterSlider {
	for _, s := range m.sliders {
		if s.Key == key {
			return s
		}
	}
	return nil
}

// Parameters returns the parameters the sliders currently describe
func (m *ParametersModel) Parameters() domain.SimulationParameters {
	if len(m.sliders) == 0 {
		return m.original
	}
	return domain.SimulationParameters{
		UnitCount:      m.slider(sliderUnits).Value,
		DurationMonths: m.slider(sliderDuration).Value,
		StartYear:      m.slider(sliderYear).Value,
		StartMonth:     m.slider(sliderMonth).Value,
		StartDay:       m.slider(sliderDay).Value,
		CGFEnabled:     m.slider(sliderCGF).Value == 1,
	}
}

// Update handles messages for the parameters scene
func (m *ParametersModel) Update(msg tea.Msg) (*ParametersModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.naming {
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	if m.naming {
		return m.updateNameInput(keyMsg)
	}
	if len(m.sliders) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		m.moveFocus(-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		m.moveFocus(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "-"))):
		return m, m.adjust(-1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "+", "="))):
		return m, m.adjust(1)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("pgdown"))):
		return m, m.adjust(-12)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("pgup"))):
		return m, m.adjust(12)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("x"))):
		m.SetParameters(m.original, m.slider(sliderDuration).Max)
		return m, m.changed()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("ctrl+s"))):
		m.naming = true
		m.nameInput.SetValue("")
		return m, m.nameInput.Focus()
	}
	return m, nil
}

func (m *ParametersModel) updateNameInput(msg tea.KeyMsg) (*ParametersModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.naming = false
		m.nameInput.Blur()
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			return m, nil
		}
		m.naming = false
		m.nameInput.Blur()
		return m, func() tea.Msg { return tuimsg.SaveScenarioMsg{Name: name} }
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *ParametersModel) moveFocus(delta int) {
	next := m.focusedSlider + delta
	if next < 0 || next >= len(m.sliders) {
		return
	}
	m.sliders[m.focusedSlider].SetFocused(false)
	m.focusedSlider = next
	m.sliders[m.focusedSlider].SetFocused(true)
}

// adjust moves the focused slider and re-projects when the value changed
func (m *ParametersModel) adjust(steps int) tea.Cmd {
	if !m.sliders[m.focusedSlider].Move(steps) {
		return nil
	}

	// the day range follows the chosen month
	year, month := m.slider(sliderYear).Value, m.slider(sliderMonth).Value
	m.slider(sliderDay).SetMax(dateutil.DaysInMonth(year, month))

	m.modified = m.Parameters() != m.original
	return m.changed()
}

func (m *ParametersModel) changed() tea.Cmd {
	params := m.Parameters()
	return func() tea.Msg {
		return tuimsg.ParametersChangedMsg{Parameters: params}
	}
}

// View renders the parameters scene
func (m *ParametersModel) View() string {
	if len(m.sliders) == 0 {
		return "No parameters loaded.\n\nPress ESC to return home."
	}

	rendered := make([]string, len(m.sliders))
	for i, s := range m.sliders {
		rendered[i] = s.Render()
	}
	sliders := tuistyles.BorderStyle.Render(strings.Join(rendered, "\n\n"))

	sections := []string{
		tuistyles.TitleStyle.Render("Simulation Parameters"),
		lipgloss.JoinHorizontal(lipgloss.Top, sliders, " ", m.renderPreview()),
	}
	if m.naming {
		sections = append(sections, "Save as: "+m.nameInput.View())
	}
	sections = append(sections, tuistyles.HelpDescStyle.Render(
		"↑/↓ select • ←/→ adjust • x reset • ctrl+s save as scenario"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ParametersModel) renderPreview() string {
	var b strings.Builder
	b.WriteString(tuistyles.SectionStyle.Render("Live Projection"))
	b.WriteString("\n\n")

	if m.modified {
		b.WriteString(tuistyles.InfoStyle.Render("modified"))
		b.WriteString("\n\n")
	}

	if m.result == nil {
		b.WriteString(tuistyles.SubtitleStyle.Render("projecting..."))
		return tuistyles.BorderStyle.Render(b.String())
	}

	be := m.result.BreakEven
	lines := []*components.MetricCard{
		components.NewMetricCard("Investment", money.FormatINR(be.InitialInvestment)),
		components.NewMetricCard("Net revenue", money.FormatINR(be.FinalCumulativeNet)),
		components.NewMetricCard("Herd value", money.FormatINR(be.FinalAssetValue)),
		components.NewMetricCard("Total value", money.FormatINR(be.FinalTotalValue)).
			WithDelta(be.FinalTotalValue.Sub(be.InitialInvestment)),
		components.NewMetricCard("Herd size", fmt.Sprintf("%d", m.result.FinalHerdSize())),
		components.NewMetricCard("Break-even", breakeven.Describe(be.TotalValueBreakEven)),
	}
	for _, l := range lines {
		b.WriteString(l.RenderCompact())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(components.NewRecoveryBar("", be.TotalRecoveryPercent).WithWidth(24).Render())

	return tuistyles.BorderStyle.Render(b.String())
}
