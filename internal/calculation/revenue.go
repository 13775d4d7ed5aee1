package calculation

import (
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/shopspring/decimal"
)

// PhasePreProduction labels the months before an animal's first lactation
const PhasePreProduction = "pre-production"

// LactationOffset returns the months between an animal's anchor and its first lactation month.
// Founders start after transport and quarantine; offspring start once they mature.
func LactationOffset(a *domain.Animal, rules domain.Rules) int {
	if a.IsFounder() {
		return rules.FounderLactationOffset
	}
	return rules.OffspringLactationOffset
}

// CycleMonth returns the animal's position in the lactation cycle at abs.
// ok is false before production starts.
func CycleMonth(a *domain.Animal, abs int, rules domain.Rules) (cycleMonth int, ok bool) {
	monthsSinceStart := abs - a.AbsoluteBirthMonth
	offset := LactationOffset(a, rules)
	if monthsSinceStart < offset {
		return 0, false
	}
	return (monthsSinceStart - offset) % rules.CycleLength, true
}

func lactationTier(a *domain.Animal, abs int, rules domain.Rules) (domain.RevenueTier, bool) {
	cm, ok := CycleMonth(a, abs, rules)
	if !ok {
		return domain.RevenueTier{}, false
	}
	for _, tier := range rules.LactationCycle {
		if cm >= tier.FromCycleMonth && cm <= tier.ToCycleMonth {
			return tier, true
		}
	}
	return domain.RevenueTier{}, false
}

// MonthlyRevenue is the milk revenue one animal of a single unit earns in an absolute month
func MonthlyRevenue(a *domain.Animal, abs int, rules domain.Rules) decimal.Decimal {
	tier, ok := lactationTier(a, abs, rules)
	if !ok {
		return decimal.Zero
	}
	return tier.Amount
}

// LactationPhase names the cycle tier the animal is in, or PhasePreProduction
func LactationPhase(a *domain.Animal, abs int, rules domain.Rules) string {
	if _, ok := CycleMonth(a, abs, rules); !ok {
		return PhasePreProduction
	}
	tier, ok := lactationTier(a, abs, rules)
	if !ok {
		return ""
	}
	return tier.Label
}
