package calculation

import (
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/shopspring/decimal"
)

func inWindow(abs int, params domain.SimulationParameters) bool {
	return abs >= params.StartAbs() && abs <= params.EndAbs()
}

// CPFApplicable reports whether the Cattle Protection Fund is charged for the animal at abs
func CPFApplicable(a *domain.Animal, abs int, params domain.SimulationParameters, rules domain.Rules) bool {
	if !inWindow(abs, params) || !a.AliveAt(abs) {
		return false
	}
	sinceStart := abs - params.StartAbs()

	switch {
	case !a.IsFounder():
		return a.AgeAtAbs(abs) >= rules.OffspringCPFAge
	case a.FounderRole == domain.FounderSecond:
		free := sinceStart >= rules.SecondFounderFreeFrom && sinceStart < rules.SecondFounderFreeUntil
		return !free
	default:
		return sinceStart >= rules.FirstFounderFreeMonths
	}
}

// CPFCost is the monthly CPF charge for one animal of a single unit
func CPFCost(a *domain.Animal, abs int, params domain.SimulationParameters, rules domain.Rules) decimal.Decimal {
	if !CPFApplicable(a, abs, params, rules) {
		return decimal.Zero
	}
	return rules.MonthlyCPF()
}

// CGFAge is the age used by the growing fund schedule, counting the birth month as month 1
func CGFAge(a *domain.Animal, abs int) int {
	return abs - a.AbsoluteBirthMonth + 1
}

// CGFCost returns the Cattle Growing Fund charge for the animal at abs. Founders never pay it
// and nothing is charged while the fund is disabled.
func CGFCost(a *domain.Animal, abs int, params domain.SimulationParameters, rules domain.Rules) (decimal.Decimal, bool) {
	if !params.CGFEnabled || a.IsFounder() || !inWindow(abs, params) || !a.AliveAt(abs) {
		return decimal.Zero, false
	}
	b, ok := domain.FindBracket(rules.CGFBrackets, CGFAge(a, abs))
	if !ok || b.Amount.IsZero() {
		return decimal.Zero, false
	}
	return b.Amount, true
}
