package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/output"
	"github.com/rgehrsitz/herdsim/internal/tui/tuistyles"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
	"github.com/rgehrsitz/herdsim/pkg/money"
)

// HerdModel shows the lineage of one unit and the closing valuation by age bracket
type HerdModel struct {
	result   *domain.ProjectionResult
	viewport viewport.Model
	width    int
	height   int
}

// NewHerdModel creates a new herd scene model
func NewHerdModel() *HerdModel {
	return &HerdModel{viewport: viewport.New(80, 20)}
}

// SetResult updates the projection whose herd is shown
func (m *HerdModel) SetResult(result *domain.ProjectionResult) {
	m.result = result
	if result != nil {
		m.viewport.SetContent(RenderLineage(result))
		m.viewport.GotoTop()
	}
}

// SetSize updates the model dimensions
func (m *HerdModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = max(40, width/2)
	m.viewport.Height = max(5, height-10)
}

// Update scrolls the lineage
func (m *HerdModel) Update(msg tea.Msg) (*HerdModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the herd scene
func (m *HerdModel) View() string {
	if m.result == nil {
		return "No herd to display yet."
	}

	p := m.result.Parameters
	header := tuistyles.TitleStyle.Render("Herd Roster") + "\n" +
		tuistyles.SubtitleStyle.Render(fmt.Sprintf("Unit 1 of %d at %s • %d animals across all units",
			p.UnitCount, dateutil.LabelAbs(p.EndAbs()), m.result.FinalHerdSize()))

	lineage := tuistyles.BorderStyle.Padding(0, 1).Render(m.viewport.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, lineage, " ", m.renderBreakdown())

	help := tuistyles.HelpDescStyle.Render(fmt.Sprintf("↑/↓ scroll • %3.f%%", m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, help)
}

func (m *HerdModel) renderBreakdown() string {
	if len(m.result.AssetBreakdowns) == 0 {
		return ""
	}
	final := m.result.AssetBreakdowns[len(m.result.AssetBreakdowns)-1]

	var b strings.Builder
	b.WriteString(tuistyles.SectionStyle.Render("Herd Value, " + final.Label))
	b.WriteString("\n\n")
	for _, br := range final.Brackets {
		if br.Count == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%-14s %3d × %-10s %s\n",
			br.Label, br.Count, money.FormatINR(br.UnitValue), money.FormatINR(br.TotalValue)))
	}
	b.WriteString(strings.Repeat("─", 44))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-31s %s", "Total", tuistyles.MetricValueStyle.Render(money.FormatINR(final.Total))))

	return tuistyles.BorderStyle.Render(b.String())
}

// RenderLineage draws the representative unit as a tree: founders at the
// root, each calf under its mother, with age and value at the end of the horizon.
func RenderLineage(result *domain.ProjectionResult) string {
	lines := output.RosterLines(result, 1)
	rendered := make([]string, len(lines))
	for i, l := range lines {
		text := l.Describe()
		if l.Animal.IsFounder() {
			text = tuistyles.SelectedItemStyle.Render(l.Animal.ID) + strings.TrimPrefix(text, l.Animal.ID)
		}
		rendered[i] = l.Prefix + text
	}
	return strings.Join(rendered, "\n")
}
