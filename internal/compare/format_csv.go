package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Scenario",
		"Type",
		"Units",
		"Duration Months",
		"Initial Investment",
		"Total Revenue",
		"Final Cumulative Net",
		"Final Asset Value",
		"Final Total Value",
		"Recovery %",
		"Value Multiple",
		"Revenue Break-Even Month",
		"Total Value Break-Even Month",
		"Final Herd Size",
		"Total Value Diff from Base",
		"Total Value % Change",
		"Break-Even Months Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		strconv.Itoa(result.Parameters.UnitCount),
		strconv.Itoa(result.Parameters.DurationMonths),
		result.InitialInvestment.StringFixed(2),
		result.TotalRevenue.StringFixed(2),
		result.FinalCumulativeNet.StringFixed(2),
		result.FinalAssetValue.StringFixed(2),
		result.FinalTotalValue.StringFixed(2),
		result.TotalRecoveryPercent.StringFixed(2),
		result.ValueMultiple.StringFixed(2),
		formatOptionalInt(result.RevenueBreakEvenMonth),
		formatOptionalInt(result.TotalValueBreakEvenMonth),
		strconv.Itoa(result.FinalHerdSize),
		result.TotalValueDiffFromBase.StringFixed(2),
		result.TotalValuePctFromBase.StringFixed(2),
		formatOptionalInt(result.BreakEvenMonthsDiff),
	}
}

// formatOptionalInt leaves the cell empty for an unreached milestone
func formatOptionalInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}
