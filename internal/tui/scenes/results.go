package scenes

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/tui/components"
	"github.com/rgehrsitz/herdsim/internal/tui/tuistyles"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
	"github.com/rgehrsitz/herdsim/pkg/money"
)

// ResultsView selects what the results scene shows
type ResultsView int

const (
	ResultsYearly ResultsView = iota
	ResultsMonthly
	ResultsChart
)

// ResultsModel shows the yearly and monthly tables and a cumulative value chart
type ResultsModel struct {
	scenarioName string
	result       *domain.ProjectionResult
	view         ResultsView
	table        table.Model
	width        int
	height       int
}

// NewResultsModel creates a new results scene model
func NewResultsModel() *ResultsModel {
	t := table.New(table.WithFocused(true), table.WithHeight(14))

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(tuistyles.ColorBorder).
		BorderBottom(true).
		Foreground(tuistyles.ColorPrimary).
		Bold(true)
	styles.Selected = tuistyles.TableHighlightStyle
	t.SetStyles(styles)

	return &ResultsModel{table: t}
}

// SetResults updates the projection to display
func (m *ResultsModel) SetResults(scenarioName string, result *domain.ProjectionResult) {
	m.scenarioName = scenarioName
	m.result = result
	m.refreshTable()
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(max(5, height-14))
}

// ActiveView returns which view is shown
func (m *ResultsModel) ActiveView() ResultsView {
	return m.view
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab"))):
			m.view = (m.view + 1) % 3
			m.refreshTable()
			return m, nil
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("y"))):
			m.view = ResultsYearly
			m.refreshTable()
			return m, nil
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("m"))):
			m.view = ResultsMonthly
			m.refreshTable()
			return m, nil
		case key.Matches(keyMsg, key.NewBinding(key.WithKeys("g"))):
			m.view = ResultsChart
			return m, nil
		}
	}

	if m.view == ResultsChart {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ResultsModel) refreshTable() {
	if m.result == nil {
		return
	}
	// rows must be cleared before the column count changes
	m.table.SetRows(nil)
	switch m.view {
	case ResultsMonthly:
		m.table.SetColumns(monthlyColumns)
		m.table.SetRows(monthlyRows(m.result))
	default:
		m.table.SetColumns(yearlyColumns)
		m.table.SetRows(yearlyRows(m.result))
	}
	m.table.GotoTop()
}

var yearlyColumns = []table.Column{
	{Title: "Year", Width: 28},
	{Title: "Herd", Width: 5},
	{Title: "Revenue", Width: 12},
	{Title: "CPF", Width: 10},
	{Title: "CGF", Width: 10},
	{Title: "Net", Width: 12},
	{Title: "Cum. Net", Width: 12},
	{Title: "Herd Value", Width: 12},
	{Title: "Total", Width: 12},
	{Title: "Status", Width: 14},
}

var monthlyColumns = []table.Column{
	{Title: "#", Width: 4},
	{Title: "Month", Width: 9},
	{Title: "Herd", Width: 5},
	{Title: "Revenue", Width: 12},
	{Title: "CPF", Width: 10},
	{Title: "CGF", Width: 10},
	{Title: "Net", Width: 12},
	{Title: "Cum. Net", Width: 12},
	{Title: "Herd Value", Width: 12},
	{Title: "Total", Width: 12},
}

func yearlyRows(result *domain.ProjectionResult) []table.Row {
	rows := make([]table.Row, len(result.Yearly))
	for i, y := range result.Yearly {
		rows[i] = table.Row{
			y.Label,
			fmt.Sprintf("%d", y.HerdSize),
			money.FormatLakhCrore(y.Revenue),
			money.FormatLakhCrore(y.CPFCost),
			money.FormatLakhCrore(y.CGFCost),
			money.FormatLakhCrore(y.NetRevenue),
			money.FormatLakhCrore(y.CumulativeNet),
			money.FormatLakhCrore(y.AssetValue),
			money.FormatLakhCrore(y.CumulativeTotal),
			string(y.Status),
		}
	}
	return rows
}

func monthlyRows(result *domain.ProjectionResult) []table.Row {
	rows := make([]table.Row, len(result.Monthly))
	for i, mo := range result.Monthly {
		rows[i] = table.Row{
			fmt.Sprintf("%d", mo.MonthIndex+1),
			dateutil.Label(mo.Year, mo.Month),
			fmt.Sprintf("%d", mo.HerdSize),
			money.FormatLakhCrore(mo.Revenue),
			money.FormatLakhCrore(mo.CPFCost),
			money.FormatLakhCrore(mo.CGFCost),
			money.FormatLakhCrore(mo.NetRevenue),
			money.FormatLakhCrore(mo.CumulativeNet),
			money.FormatLakhCrore(mo.AssetValue),
			money.FormatLakhCrore(mo.TotalValue),
		}
	}
	return rows
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.result == nil {
		return "No results to display.\n\nAdjust parameters (p) or pick a scenario (s) first."
	}

	header := tuistyles.TitleStyle.Render("Projection Results") + "\n" +
		tuistyles.SubtitleStyle.Render(fmt.Sprintf("Scenario: %s • investment %s",
			m.scenarioName, money.FormatINR(m.result.BreakEven.InitialInvestment)))

	var body string
	switch m.view {
	case ResultsChart:
		body = m.renderChart()
	default:
		body = tuistyles.BorderStyle.Padding(0, 1).Render(m.table.View())
	}

	help := tuistyles.HelpDescStyle.Render("tab cycle views • y yearly • m monthly • g chart • ↑/↓ scroll")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", help)
}

func (m *ResultsModel) renderChart() string {
	n := len(m.result.Monthly)
	net := make([]decimal.Decimal, n)
	total := make([]decimal.Decimal, n)
	labels := make([]string, n)
	for i, mo := range m.result.Monthly {
		net[i] = mo.CumulativeNet
		total[i] = mo.TotalValue
		labels[i] = dateutil.Label(mo.Year, mo.Month)
	}

	width := 80
	if m.width > 20 {
		width = m.width - 6
	}
	chart := components.NewASCIIChart("Cumulative Value").
		WithSize(width, 14).
		AddDecimalSeries("Net revenue", net, tuistyles.ColorChartLine1).
		AddDecimalSeries("Net revenue + herd value", total, tuistyles.ColorChartLine2).
		WithReference("initial investment", m.result.BreakEven.InitialInvestment).
		WithLabels(labels)

	return tuistyles.BorderStyle.Render(chart.Render())
}
