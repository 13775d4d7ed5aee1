package calculation

import (
	"fmt"

	"github.com/rgehrsitz/herdsim/internal/breakeven"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// BuildLedger produces one entry per living animal of the herd per simulated month.
// The herd is the representative unit; nothing here is scaled.
func BuildLedger(herd []domain.Animal, params domain.SimulationParameters, rules domain.Rules) []domain.MonthlyLedgerEntry {
	startAbs := params.StartAbs()
	ledger := make([]domain.MonthlyLedgerEntry, 0, len(herd)*params.DurationMonths)

	for idx := 0; idx < params.DurationMonths; idx++ {
		abs := startAbs + idx
		year, month := dateutil.FromAbs(abs)
		for i := range herd {
			a := &herd[i]
			if !a.AliveAt(abs) {
				continue
			}
			cgf, cgfApplicable := CGFCost(a, abs, params, rules)
			ledger = append(ledger, domain.MonthlyLedgerEntry{
				AnimalID:      a.ID,
				MonthIndex:    idx,
				Year:          year,
				Month:         month,
				Revenue:       MonthlyRevenue(a, abs, rules),
				CPFApplicable: CPFApplicable(a, abs, params, rules),
				CPFCost:       CPFCost(a, abs, params, rules),
				CGFApplicable: cgfApplicable,
				CGFCost:       cgf,
				AssetValue:    AssetValue(a, abs, params, rules),
			})
		}
	}
	return ledger
}

// Summarize rolls the ledger up month by month and scales every amount by the unit count.
// Ledger entries must be grouped by month index, as BuildLedger emits them.
func Summarize(ledger []domain.MonthlyLedgerEntry, params domain.SimulationParameters) []domain.MonthlySummary {
	units := decimal.NewFromInt(int64(params.UnitCount))
	startAbs := params.StartAbs()
	monthly := make([]domain.MonthlySummary, params.DurationMonths)

	for idx := range monthly {
		year, month := dateutil.FromAbs(startAbs + idx)
		monthly[idx] = domain.MonthlySummary{
			MonthIndex:    idx,
			Year:          year,
			Month:         month,
			Revenue:       decimal.Zero,
			CPFCost:       decimal.Zero,
			CGFCost:       decimal.Zero,
			NetRevenue:    decimal.Zero,
			CumulativeNet: decimal.Zero,
			AssetValue:    decimal.Zero,
			TotalValue:    decimal.Zero,
		}
	}

	for _, e := range ledger {
		m := &monthly[e.MonthIndex]
		m.Revenue = m.Revenue.Add(e.Revenue)
		m.CPFCost = m.CPFCost.Add(e.CPFCost)
		m.CGFCost = m.CGFCost.Add(e.CGFCost)
		m.AssetValue = m.AssetValue.Add(e.AssetValue)
		m.HerdSize++
		if !e.Revenue.IsZero() {
			m.UnitAnimalRevenue = append(m.UnitAnimalRevenue, domain.AnimalAmount{AnimalID: e.AnimalID, Amount: e.Revenue})
		}
	}

	cumulative := decimal.Zero
	for idx := range monthly {
		m := &monthly[idx]
		m.Revenue = m.Revenue.Mul(units)
		m.CPFCost = m.CPFCost.Mul(units)
		m.CGFCost = m.CGFCost.Mul(units)
		m.AssetValue = m.AssetValue.Mul(units)
		m.HerdSize *= params.UnitCount
		m.NetRevenue = m.Revenue.Sub(m.CPFCost).Sub(m.CGFCost)
		cumulative = cumulative.Add(m.NetRevenue)
		m.CumulativeNet = cumulative
		m.TotalValue = cumulative.Add(m.AssetValue)
	}
	return monthly
}

// YearLabel names a simulation year by the calendar months it covers
func YearLabel(year int, firstAbs, lastAbs int) string {
	return fmt.Sprintf("Year %d (%s - %s)", year, dateutil.LabelAbs(firstAbs), dateutil.LabelAbs(lastAbs))
}

// AggregateYears buckets the monthly summaries into 12-month simulation years counted
// from the start month. The last bucket is partial when the horizon is not a whole
// number of years.
func AggregateYears(monthly []domain.MonthlySummary, analysis domain.BreakEvenAnalysis, params domain.SimulationParameters) []domain.YearlyAggregate {
	startAbs := params.StartAbs()
	years := make([]domain.YearlyAggregate, 0, params.Years())

	for first := 0; first < len(monthly); first += 12 {
		last := min(first+12, len(monthly)) - 1
		y := domain.YearlyAggregate{
			Year:            first/12 + 1,
			FirstMonthIndex: first,
			Months:          last - first + 1,
			Label:           YearLabel(first/12+1, startAbs+first, startAbs+last),
			Revenue:         decimal.Zero,
			CPFCost:         decimal.Zero,
			CGFCost:         decimal.Zero,
			NetRevenue:      decimal.Zero,
		}
		for _, m := range monthly[first : last+1] {
			y.Revenue = y.Revenue.Add(m.Revenue)
			y.CPFCost = y.CPFCost.Add(m.CPFCost)
			y.CGFCost = y.CGFCost.Add(m.CGFCost)
			y.NetRevenue = y.NetRevenue.Add(m.NetRevenue)
		}

		end := monthly[last]
		y.AssetValue = end.AssetValue
		y.CumulativeNet = end.CumulativeNet
		y.CumulativeTotal = end.TotalValue
		y.HerdSize = end.HerdSize
		y.RecoveryPercent = breakeven.RecoveryPercent(end.TotalValue, analysis.InitialInvestment)
		y.Status = breakeven.ClassifyRecovery(y.RecoveryPercent)
		y.RevenueBreakEven = breakeven.ReachedBy(analysis.RevenueBreakEven, last)
		y.TotalValueBreakEven = breakeven.ReachedBy(analysis.TotalValueBreakEven, last)

		years = append(years, y)
	}
	return years
}

// YearEndBreakdowns values the herd by bracket at the last month of every simulation year
func YearEndBreakdowns(herd []domain.Animal, params domain.SimulationParameters, rules domain.Rules) []domain.AssetBreakdown {
	startAbs := params.StartAbs()
	breakdowns := make([]domain.AssetBreakdown, 0, params.Years())
	for first := 0; first < params.DurationMonths; first += 12 {
		last := min(first+12, params.DurationMonths) - 1
		breakdowns = append(breakdowns, Breakdown(herd, startAbs+last, params, rules))
	}
	return breakdowns
}
