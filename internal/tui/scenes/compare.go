package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/herdsim/internal/compare"
	"github.com/rgehrsitz/herdsim/internal/transform"
	"github.com/rgehrsitz/herdsim/internal/tui/components"
	"github.com/rgehrsitz/herdsim/internal/tui/tuimsg"
	"github.com/rgehrsitz/herdsim/internal/tui/tuistyles"
	"github.com/rgehrsitz/herdsim/pkg/money"
)

// CompareModel picks what-if templates to run against the current parameters
type CompareModel struct {
	templates   []transform.Template
	selected    map[string]bool
	cursorIndex int
	customInput textinput.Model
	editing     bool
	comparing   bool
	results     *compare.ComparisonSet
	width       int
	height      int
}

// NewCompareModel creates a new compare scene model
func NewCompareModel(registry *transform.TemplateRegistry) *CompareModel {
	ti := textinput.New()
	ti.Placeholder = "add_units:units=2"
	ti.CharLimit = 60
	ti.Width = 30

	m := &CompareModel{
		selected:    make(map[string]bool),
		customInput: ti,
	}
	for _, name := range registry.List() {
		t, _ := registry.Get(name)
		m.templates = append(m.templates, t)
	}
	return m
}

// SetResults stores comparison results
func (m *CompareModel) SetResults(results *compare.ComparisonSet) {
	m.results = results
	m.comparing = false
}

// SetSize updates the model dimensions
func (m *CompareModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Editing reports whether keystrokes are going to the custom transform input
func (m *CompareModel) Editing() bool {
	return m.editing
}

// SelectedTemplates returns the chosen template names in list order
func (m *CompareModel) SelectedTemplates() []string {
	var names []string
	for _, t := range m.templates {
		if m.selected[t.Name] {
			names = append(names, t.Name)
		}
	}
	return names
}

// Update handles messages for the compare scene
func (m *CompareModel) Update(msg tea.Msg) (*CompareModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if m.editing {
		if ok {
			switch keyMsg.String() {
			case "esc", "enter":
				m.editing = false
				m.customInput.Blur()
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.customInput, cmd = m.customInput.Update(msg)
		return m, cmd
	}
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.cursorIndex > 0 {
			m.cursorIndex--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.cursorIndex < len(m.templates)-1 {
			m.cursorIndex++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys(" ", "x"))):
		if m.cursorIndex < len(m.templates) {
			name := m.templates[m.cursorIndex].Name
			m.selected[name] = !m.selected[name]
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("/"))):
		m.editing = true
		return m, m.customInput.Focus()
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		req := tuimsg.ComparisonRequestedMsg{
			Templates: m.SelectedTemplates(),
			Custom:    strings.TrimSpace(m.customInput.Value()),
		}
		if len(req.Templates) == 0 && req.Custom == "" {
			return m, nil
		}
		m.comparing = true
		return m, func() tea.Msg { return req }
	}
	return m, nil
}

// View renders the compare scene
func (m *CompareModel) View() string {
	left := tuistyles.BorderStyle.Render(m.renderTemplates())

	var right string
	switch {
	case m.comparing:
		right = tuistyles.InfoStyle.Render("Comparing...")
	case m.results != nil:
		right = m.renderResults()
	default:
		right = tuistyles.SubtitleStyle.Render("Select templates and press enter")
	}

	help := tuistyles.HelpDescStyle.Render("space toggle • / custom transform • enter compare")
	return lipgloss.JoinVertical(lipgloss.Left,
		tuistyles.TitleStyle.Render("Compare What-If Scenarios"),
		lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right),
		help)
}

func (m *CompareModel) renderTemplates() string {
	var b strings.Builder
	b.WriteString(tuistyles.SectionStyle.Render("Templates"))
	b.WriteString("\n\n")

	for i, t := range m.templates {
		check := "[ ]"
		if m.selected[t.Name] {
			check = "[✓]"
		}
		style := tuistyles.UnselectedItemStyle
		cursor := "  "
		if i == m.cursorIndex {
			style = tuistyles.SelectedItemStyle
			cursor = "▸ "
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s %s", cursor, check, t.Name)))
		b.WriteString("\n")
	}
	if m.cursorIndex < len(m.templates) {
		b.WriteString("\n")
		b.WriteString(tuistyles.SubtitleStyle.Render(m.templates[m.cursorIndex].Description))
	}

	b.WriteString("\n\nCustom: ")
	b.WriteString(m.customInput.View())
	return b.String()
}

func (m *CompareModel) renderResults() string {
	base := m.results.BaseResult
	cards := []string{resultCard(base, true).Render()}
	for i := range m.results.AlternativeResults {
		cards = append(cards, resultCard(&m.results.AlternativeResults[i], false).Render())
	}

	var recs strings.Builder
	if len(m.results.Recommendations) > 0 {
		recs.WriteString(tuistyles.SectionStyle.Render("Recommendations"))
		for _, r := range m.results.Recommendations {
			recs.WriteString("\n• ")
			recs.WriteString(r)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, append(cards, recs.String())...)
}

func resultCard(r *compare.ComparisonResult, isBase bool) *components.ScenarioCard {
	card := components.NewScenarioCard(r.ScenarioName).
		WithDescription(r.Description).
		AddHighlight(fmt.Sprintf("total value %s (%sx)", money.FormatLakhCrore(r.FinalTotalValue), r.ValueMultiple.StringFixed(2))).
		AddHighlight(fmt.Sprintf("break-even %s", monthLabel(r.TotalValueBreakEvenMonth)))
	if isBase {
		return card.SetSelected(true)
	}

	delta := fmt.Sprintf("%s vs base (%s%%)", money.Signed(r.TotalValueDiffFromBase), r.TotalValuePctFromBase.StringFixed(1))
	return card.AddHighlight(tuistyles.MetricTrendStyle(!r.TotalValueDiffFromBase.IsNegative()).Render(delta))
}

func monthLabel(month *int) string {
	if month == nil {
		return "not projected"
	}
	return fmt.Sprintf("month %d", *month)
}
