package compare

import (
	"fmt"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/money"
	"github.com/shopspring/decimal"
)

// ComparisonResult represents a single scenario with its headline metrics
type ComparisonResult struct {
	ScenarioName string                      `json:"scenario_name"`
	Description  string                      `json:"description"`
	Parameters   domain.SimulationParameters `json:"parameters"`
	Result       *domain.ProjectionResult    `json:"-"`

	// Key Metrics
	InitialInvestment        decimal.Decimal `json:"initial_investment"`
	TotalRevenue             decimal.Decimal `json:"total_revenue"`
	FinalCumulativeNet       decimal.Decimal `json:"final_cumulative_net"`
	FinalAssetValue          decimal.Decimal `json:"final_asset_value"`
	FinalTotalValue          decimal.Decimal `json:"final_total_value"`
	TotalRecoveryPercent     decimal.Decimal `json:"total_recovery_percent"`
	ValueMultiple            decimal.Decimal `json:"value_multiple"` // final total value per rupee invested
	RevenueBreakEvenMonth    *int            `json:"revenue_break_even_month,omitempty"`
	TotalValueBreakEvenMonth *int            `json:"total_value_break_even_month,omitempty"`
	FinalHerdSize            int             `json:"final_herd_size"`

	// Comparison to Base
	NetDiffFromBase        decimal.Decimal `json:"net_diff_from_base"`
	TotalValueDiffFromBase decimal.Decimal `json:"total_value_diff_from_base"`
	TotalValuePctFromBase  decimal.Decimal `json:"total_value_pct_from_base"`
	BreakEvenMonthsDiff    *int            `json:"break_even_months_diff,omitempty"` // negative is sooner
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"base_scenario_name"`
	BaseResult         *ComparisonResult  `json:"base_result"`
	AlternativeResults []ComparisonResult `json:"alternative_results"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"config_path,omitempty"`
}

// MetricsCalculator extracts key metrics from projection results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

func monthNumber(p *domain.BreakEvenPoint) *int {
	if p == nil {
		return nil
	}
	n := p.MonthIndex + 1
	return &n
}

// CalculateMetrics computes all comparison metrics for one projection
func (mc *MetricsCalculator) CalculateMetrics(name string, result *domain.ProjectionResult) ComparisonResult {
	be := result.BreakEven
	multiple := decimal.Zero
	if be.InitialInvestment.IsPositive() {
		multiple = be.FinalTotalValue.Div(be.InitialInvestment).Round(2)
	}

	return ComparisonResult{
		ScenarioName:             name,
		Parameters:               result.Parameters,
		Result:                   result,
		InitialInvestment:        be.InitialInvestment,
		TotalRevenue:             result.TotalRevenue(),
		FinalCumulativeNet:       be.FinalCumulativeNet,
		FinalAssetValue:          be.FinalAssetValue,
		FinalTotalValue:          be.FinalTotalValue,
		TotalRecoveryPercent:     be.TotalRecoveryPercent,
		ValueMultiple:            multiple,
		RevenueBreakEvenMonth:    monthNumber(be.RevenueBreakEven),
		TotalValueBreakEvenMonth: monthNumber(be.TotalValueBreakEven),
		FinalHerdSize:            result.FinalHerdSize(),
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetDiffFromBase = scenario.FinalCumulativeNet.Sub(base.FinalCumulativeNet)
	scenario.TotalValueDiffFromBase = scenario.FinalTotalValue.Sub(base.FinalTotalValue)

	if !base.FinalTotalValue.IsZero() {
		scenario.TotalValuePctFromBase = scenario.TotalValueDiffFromBase.
			Div(base.FinalTotalValue).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	if scenario.TotalValueBreakEvenMonth != nil && base.TotalValueBreakEvenMonth != nil {
		diff := *scenario.TotalValueBreakEvenMonth - *base.TotalValueBreakEvenMonth
		scenario.BreakEvenMonthsDiff = &diff
	}

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}
	base := compSet.BaseResult

	// Highest value at the horizon
	best := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.FinalTotalValue.GreaterThan(best.FinalTotalValue) {
			best = alt
		}
	}
	if best != base {
		recommendations = append(recommendations,
			"Highest Value: "+best.ScenarioName+" ends "+money.FormatINR(best.FinalTotalValue.Sub(base.FinalTotalValue))+
				" ahead of the base scenario")
	}

	// Best return per rupee invested
	bestMultiple := base
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.ValueMultiple.GreaterThan(bestMultiple.ValueMultiple) {
			bestMultiple = alt
		}
	}
	if bestMultiple != base {
		recommendations = append(recommendations,
			fmt.Sprintf("Best Multiple: %s returns %sx the investment (base %sx)",
				bestMultiple.ScenarioName, bestMultiple.ValueMultiple.StringFixed(2), base.ValueMultiple.StringFixed(2)))
	}

	// Earliest break-even
	var earliest *ComparisonResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalValueBreakEvenMonth == nil {
			continue
		}
		if base.TotalValueBreakEvenMonth != nil && *alt.TotalValueBreakEvenMonth >= *base.TotalValueBreakEvenMonth {
			continue
		}
		if earliest == nil || *alt.TotalValueBreakEvenMonth < *earliest.TotalValueBreakEvenMonth {
			earliest = alt
		}
	}
	if earliest != nil {
		recommendations = append(recommendations,
			fmt.Sprintf("Fastest Recovery: %s breaks even in month %d", earliest.ScenarioName, *earliest.TotalValueBreakEvenMonth))
	}

	// Scenarios that never recover
	for _, alt := range compSet.AlternativeResults {
		if alt.TotalValueBreakEvenMonth == nil {
			recommendations = append(recommendations,
				"Caution: "+alt.ScenarioName+" does not break even within its horizon")
		}
	}

	return recommendations
}
