// Package tuistyles holds the lipgloss palette and styles shared by the TUI
// model, its scenes and its components.
package tuistyles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/herdsim/pkg/money"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#2E8B57") // sea green
	ColorSecondary = lipgloss.Color("#8B5A2B") // earth brown
	ColorAccent    = lipgloss.Color("#F4A300")
	ColorSuccess   = lipgloss.Color("#3FB950")
	ColorWarning   = lipgloss.Color("#D29922")
	ColorDanger    = lipgloss.Color("#F85149")
	ColorInfo      = lipgloss.Color("#58A6FF")

	ColorBackground = lipgloss.Color("#0D1117")
	ColorForeground = lipgloss.Color("#E6EDF3")
	ColorMuted      = lipgloss.Color("#7D8590")
	ColorBorder     = lipgloss.Color("#30363D")

	ColorChartLine1 = lipgloss.Color("#58A6FF")
	ColorChartLine2 = lipgloss.Color("#3FB950")
	ColorChartLine3 = lipgloss.Color("#F4A300")
	ColorChartLine4 = lipgloss.Color("#BC8CFF")
)

// Base styles
var (
	AppStyle = lipgloss.NewStyle().Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)
)

// Metric styles
var (
	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Foreground(ColorForeground).
				Bold(true)

	MetricPositiveStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	MetricNegativeStyle = lipgloss.NewStyle().
				Foreground(ColorDanger)
)

// Parameter and slider styles
var (
	ParameterLabelStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	ParameterValueStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)

	SliderTrackStyle = lipgloss.NewStyle().Foreground(ColorBorder)
	SliderThumbStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
)

// Help, feedback and table styles
var (
	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDanger).
			Padding(1, 2)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo).
			Italic(true)

	TableHeaderStyle    = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TableCellStyle      = lipgloss.NewStyle().Foreground(ColorForeground)
	TableHighlightStyle = lipgloss.NewStyle().Foreground(ColorBackground).Background(ColorPrimary)
)

// MetricTrendStyle picks the positive or negative metric style
func MetricTrendStyle(isPositive bool) lipgloss.Style {
	if isPositive {
		return MetricPositiveStyle
	}
	return MetricNegativeStyle
}

// TrendIndicator returns an arrow for the direction of a change
func TrendIndicator(isPositive bool) string {
	if isPositive {
		return "↑"
	}
	return "↓"
}

// FormatCurrency abbreviates rupee amounts for cards and tables
func FormatCurrency(d decimal.Decimal) string {
	return money.FormatLakhCrore(d)
}

// StatusStyle colors a recovery status label
func StatusStyle(percent decimal.Decimal) lipgloss.Style {
	switch {
	case percent.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return MetricPositiveStyle.Bold(true)
	case percent.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return lipgloss.NewStyle().Foreground(ColorAccent)
	default:
		return lipgloss.NewStyle().Foreground(ColorWarning)
	}
}
