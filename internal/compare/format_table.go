package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/herdsim/pkg/money"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("HERD SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Configuration: %s\n", compSet.ConfigPath))
	}
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 13

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		numWidth, "Investment",
		numWidth, "Cum. Net",
		numWidth, "Total Value",
		numWidth, "Break-Even",
		numWidth, "Final Herd"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	base := compSet.BaseResult
	sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&alt, nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 96) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}

			sb.WriteString(fmt.Sprintf("  Total Value:      %s (%s%%)\n",
				money.Signed(alt.TotalValueDiffFromBase),
				alt.TotalValuePctFromBase.StringFixed(1)))

			if !alt.NetDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Cumulative Net:   %s\n", money.Signed(alt.NetDiffFromBase)))
			}

			if alt.BreakEvenMonthsDiff != nil && *alt.BreakEvenMonthsDiff != 0 {
				sb.WriteString(fmt.Sprintf("  Break-Even:       %+d months\n", *alt.BreakEvenMonthsDiff))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s %*d\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, money.FormatLakhCrore(result.InitialInvestment),
		numWidth, money.FormatLakhCrore(result.FinalCumulativeNet),
		numWidth, money.FormatLakhCrore(result.FinalTotalValue),
		numWidth, breakEvenLabel(result.TotalValueBreakEvenMonth),
		numWidth, result.FinalHerdSize)
}

func breakEvenLabel(month *int) string {
	if month == nil {
		return "Not Projected"
	}
	return fmt.Sprintf("month %d", *month)
}

// deltaSymbol returns + for gains, - for losses and = when unchanged
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return "="
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := tf.deltaSymbol(alt.TotalValueDiffFromBase)
		if !alt.TotalValueDiffFromBase.IsZero() {
			change += money.FormatLakhCrore(alt.TotalValueDiffFromBase.Abs())
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
