package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/herdsim/internal/tui/tuistyles"
	"github.com/rgehrsitz/herdsim/pkg/money"
)

// RecoveryBar shows how much of the initial investment has been recovered.
// Percentages past 100 fill the bar and still print the real figure.
type RecoveryBar struct {
	Label   string
	Percent decimal.Decimal
	Width   int
}

// NewRecoveryBar creates a recovery bar for the given percentage
func NewRecoveryBar(label string, percent decimal.Decimal) *RecoveryBar {
	return &RecoveryBar{
		Label:   label,
		Percent: percent,
		Width:   40,
	}
}

// WithWidth sets the bar width
func (r *RecoveryBar) WithWidth(width int) *RecoveryBar {
	r.Width = width
	return r
}

// Filled returns how many cells of the bar are filled
func (r *RecoveryBar) Filled() int {
	if r.Percent.IsNegative() {
		return 0
	}
	filled := r.Percent.Mul(decimal.NewFromInt(int64(r.Width))).Div(decimal.NewFromInt(100)).IntPart()
	return int(min(int64(r.Width), filled))
}

// IsComplete reports whether the investment is fully recovered
func (r *RecoveryBar) IsComplete() bool {
	return r.Percent.GreaterThanOrEqual(decimal.NewFromInt(100))
}

// Render returns the styled bar
func (r *RecoveryBar) Render() string {
	var content strings.Builder

	if r.Label != "" {
		labelStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorForeground).
			Bold(true)
		content.WriteString(labelStyle.Render(r.Label))
		content.WriteString("\n")
	}

	filled := r.Filled()
	barStyle := tuistyles.StatusStyle(r.Percent)
	emptyStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorBorder)

	content.WriteString("[")
	content.WriteString(barStyle.Render(strings.Repeat("█", filled)))
	content.WriteString(emptyStyle.Render(strings.Repeat("░", r.Width-filled)))
	content.WriteString("] ")
	content.WriteString(barStyle.Render(money.Percent(r.Percent)))

	return content.String()
}
