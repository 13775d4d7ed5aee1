package calculation

import (
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// newbornOverride reports whether a newborn-bracket animal is valued at zero at abs
func newbornOverride(age, abs int, params domain.SimulationParameters, rules domain.Rules) bool {
	if !rules.FirstYearNewbornOverride {
		return false
	}
	return abs-params.StartAbs() < 12 && age <= rules.NewbornMaxAge
}

// AssetValue values one animal of a single unit at abs by its age bracket
func AssetValue(a *domain.Animal, abs int, params domain.SimulationParameters, rules domain.Rules) decimal.Decimal {
	if !a.AliveAt(abs) {
		return decimal.Zero
	}
	age := a.AgeAtAbs(abs)
	if newbornOverride(age, abs, params, rules) {
		return decimal.Zero
	}
	b, ok := domain.FindBracket(rules.AssetBrackets, age)
	if !ok {
		return decimal.Zero
	}
	return b.Amount
}

// HerdValue sums the representative herd at abs and scales it by the unit count
func HerdValue(herd []domain.Animal, abs int, params domain.SimulationParameters, rules domain.Rules) decimal.Decimal {
	total := decimal.Zero
	for i := range herd {
		total = total.Add(AssetValue(&herd[i], abs, params, rules))
	}
	return total.Mul(decimal.NewFromInt(int64(params.UnitCount)))
}

// Breakdown counts and values the herd per asset bracket at abs, scaled by the unit count.
// Every bracket is listed so tables line up across years.
func Breakdown(herd []domain.Animal, abs int, params domain.SimulationParameters, rules domain.Rules) domain.AssetBreakdown {
	units := params.UnitCount
	brackets := make([]domain.BracketValue, len(rules.AssetBrackets))
	for i, b := range rules.AssetBrackets {
		unitValue := b.Amount
		if newbornOverride(b.MinAge, abs, params, rules) {
			unitValue = decimal.Zero
		}
		brackets[i] = domain.BracketValue{Label: b.Label, UnitValue: unitValue, TotalValue: decimal.Zero}
	}

	for i := range herd {
		a := &herd[i]
		if !a.AliveAt(abs) {
			continue
		}
		age := a.AgeAtAbs(abs)
		for j, b := range rules.AssetBrackets {
			if b.Contains(age) {
				brackets[j].Count += units
				brackets[j].TotalValue = brackets[j].TotalValue.Add(AssetValue(a, abs, params, rules).Mul(decimal.NewFromInt(int64(units))))
				break
			}
		}
	}

	total := decimal.Zero
	for _, b := range brackets {
		total = total.Add(b.TotalValue)
	}
	year, month := dateutil.FromAbs(abs)
	return domain.AssetBreakdown{
		MonthIndex: abs - params.StartAbs(),
		Year:       (abs-params.StartAbs())/12 + 1,
		Label:      dateutil.Label(year, month),
		Brackets:   brackets,
		Total:      total,
	}
}
