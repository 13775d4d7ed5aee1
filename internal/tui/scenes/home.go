package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/herdsim/internal/breakeven"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/tui/components"
	"github.com/rgehrsitz/herdsim/internal/tui/tuistyles"
	"github.com/rgehrsitz/herdsim/pkg/money"
)

// HomeModel is the dashboard: headline figures of the current projection
type HomeModel struct {
	config       *domain.Configuration
	scenarioName string
	result       *domain.ProjectionResult
	width        int
	height       int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SetConfig updates the configuration
func (m *HomeModel) SetConfig(config *domain.Configuration) {
	m.config = config
}

// SetResult updates the projection shown on the dashboard
func (m *HomeModel) SetResult(name string, result *domain.ProjectionResult) {
	m.scenarioName = name
	m.result = result
}

// SetSize updates the model dimensions
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the home scene
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	return m, nil
}

// View renders the home dashboard
func (m *HomeModel) View() string {
	if m.config == nil || m.result == nil {
		return tuistyles.BorderStyle.Render(
			tuistyles.TitleStyle.Render("Buffalo Herd Investment Projection") + "\n\n" +
				tuistyles.SubtitleStyle.Render("Projecting..."))
	}

	sections := []string{
		m.renderHeader(),
		m.renderMetrics(),
		m.renderRecovery(),
		m.renderQuickActions(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *HomeModel) renderHeader() string {
	p := m.result.Parameters
	title := tuistyles.TitleStyle.Render("Buffalo Herd Investment Projection")
	sub := tuistyles.SubtitleStyle.Render(fmt.Sprintf("%s • %d unit%s from %s over %d months • growing fund %s",
		m.scenarioName, p.UnitCount, pluralS(p.UnitCount),
		startLabel(p), p.DurationMonths, onOff(p.CGFEnabled)))
	return title + "\n" + sub + "\n"
}

func (m *HomeModel) renderMetrics() string {
	be := m.result.BreakEven
	cards := []*components.MetricCard{
		components.NewAmountCard("Initial Investment", be.InitialInvestment).
			WithDescription(money.FormatINR(be.InitialInvestment)),
		components.NewAmountCard("Cumulative Net Revenue", be.FinalCumulativeNet).
			WithDescription(fmt.Sprintf("%s gross", money.FormatLakhCrore(m.result.TotalRevenue()))),
		components.NewAmountCard("Final Herd Value", be.FinalAssetValue).
			WithDescription(fmt.Sprintf("%d animals", m.result.FinalHerdSize())),
		components.NewAmountCard("Total Value", be.FinalTotalValue).
			WithDelta(be.FinalTotalValue.Sub(be.InitialInvestment)),
	}
	return components.MetricGrid(cards, 4)
}

func (m *HomeModel) renderRecovery() string {
	be := m.result.BreakEven
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(tuistyles.SectionStyle.Render("Investment Recovery"))
	b.WriteString("\n")
	b.WriteString(components.NewRecoveryBar("Revenue only", be.RevenueRecoveryPercent).Render())
	b.WriteString("\n")
	b.WriteString(components.NewRecoveryBar("Revenue + herd value", be.TotalRecoveryPercent).Render())
	b.WriteString("\n\n")

	label := tuistyles.MetricLabelStyle
	b.WriteString(label.Render("Revenue break-even:     "))
	b.WriteString(breakEvenValue(be.RevenueBreakEven))
	b.WriteString("\n")
	b.WriteString(label.Render("Total value break-even: "))
	b.WriteString(breakEvenValue(be.TotalValueBreakEven))
	b.WriteString("\n")
	return b.String()
}

func breakEvenValue(p *domain.BreakEvenPoint) string {
	if p == nil {
		return tuistyles.MetricNegativeStyle.Render(domain.NotProjected)
	}
	return tuistyles.MetricPositiveStyle.Render(breakeven.Describe(p))
}

func (m *HomeModel) renderQuickActions() string {
	actions := []struct{ key, desc string }{
		{"s", "pick a configured scenario"},
		{"p", "edit units, start and horizon"},
		{"r", "yearly results and chart"},
		{"v", "herd roster by generation"},
		{"c", "compare what-if templates"},
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(tuistyles.SectionStyle.Render("Quick Actions"))
	b.WriteString("\n")
	for _, a := range actions {
		b.WriteString("  ")
		b.WriteString(tuistyles.HelpKeyStyle.Render(a.key))
		b.WriteString(tuistyles.HelpDescStyle.Render("  " + a.desc))
		b.WriteString("\n")
	}
	return b.String()
}
