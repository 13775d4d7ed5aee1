// Package breakeven detects when a projection recovers its initial investment
// and classifies yearly recovery progress.
package breakeven

import (
	"fmt"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// RecoveryPercent expresses value as a percentage of the investment, rounded to two places
func RecoveryPercent(value, investment decimal.Decimal) decimal.Decimal {
	if !investment.IsPositive() {
		return decimal.Zero
	}
	return value.Div(investment).Mul(hundred).Round(2)
}

// ClassifyRecovery maps a recovery percentage onto its status band
func ClassifyRecovery(percent decimal.Decimal) domain.RecoveryStatus {
	switch {
	case percent.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return domain.StatusBreakEven
	case percent.GreaterThanOrEqual(decimal.NewFromInt(75)):
		return domain.StatusRecovered75
	case percent.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return domain.StatusRecovered50
	case percent.GreaterThanOrEqual(decimal.NewFromInt(25)):
		return domain.StatusRecovered25
	default:
		return domain.StatusInProgress
	}
}

func pointAt(m domain.MonthlySummary, value decimal.Decimal) *domain.BreakEvenPoint {
	return &domain.BreakEvenPoint{
		MonthIndex: m.MonthIndex,
		Year:       m.Year,
		Month:      m.Month,
		Date:       dateutil.LastDayOfMonth(m.Year, m.Month),
		Value:      value,
	}
}

// Detect walks the monthly summaries once and records the first month the cumulative
// net revenue, and separately the cumulative net plus herd value, reach the investment.
func Detect(monthly []domain.MonthlySummary, investment decimal.Decimal) domain.BreakEvenAnalysis {
	analysis := domain.BreakEvenAnalysis{
		InitialInvestment:  investment,
		FinalCumulativeNet: decimal.Zero,
		FinalAssetValue:    decimal.Zero,
		FinalTotalValue:    decimal.Zero,
	}

	for _, m := range monthly {
		if analysis.RevenueBreakEven == nil && m.CumulativeNet.GreaterThanOrEqual(investment) {
			analysis.RevenueBreakEven = pointAt(m, m.CumulativeNet)
		}
		if analysis.TotalValueBreakEven == nil && m.TotalValue.GreaterThanOrEqual(investment) {
			analysis.TotalValueBreakEven = pointAt(m, m.TotalValue)
		}
	}

	if n := len(monthly); n > 0 {
		last := monthly[n-1]
		analysis.FinalCumulativeNet = last.CumulativeNet
		analysis.FinalAssetValue = last.AssetValue
		analysis.FinalTotalValue = last.TotalValue
	}
	analysis.RevenueRecoveryPercent = RecoveryPercent(analysis.FinalCumulativeNet, investment)
	analysis.TotalRecoveryPercent = RecoveryPercent(analysis.FinalTotalValue, investment)
	analysis.Status = ClassifyRecovery(analysis.TotalRecoveryPercent)
	return analysis
}

// ReachedBy reports whether the point exists and falls at or before monthIndex
func ReachedBy(p *domain.BreakEvenPoint, monthIndex int) bool {
	return p != nil && p.MonthIndex <= monthIndex
}

// Describe renders a break-even point as "Mar 2029 (month 39)" or NotProjected
func Describe(p *domain.BreakEvenPoint) string {
	if p == nil {
		return domain.NotProjected
	}
	return fmt.Sprintf("%s (month %d)", dateutil.Label(p.Year, p.Month), p.MonthIndex+1)
}
