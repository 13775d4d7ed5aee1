package output

import (
	"fmt"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/money"
)

// Assumptions lists the schedule constants a report was computed with
func Assumptions(rules domain.Rules) []string {
	lines := []string{
		fmt.Sprintf("Each unit buys %d founders at %s plus one year of CPF (%s)",
			domain.FoundersPerUnit, money.FormatINR(rules.FounderPrice), money.FormatINR(rules.CPFAnnualFee)),
		fmt.Sprintf("Founders start milking in month %d; offspring mature and first calve at %d months",
			rules.FounderLactationOffset, rules.OffspringLactationOffset),
	}
	for _, tier := range rules.LactationCycle {
		lines = append(lines, fmt.Sprintf("Cycle months %d-%d (%s): %s per month",
			tier.FromCycleMonth+1, tier.ToCycleMonth+1, tier.Label, money.FormatINR(tier.Amount)))
	}
	lines = append(lines,
		fmt.Sprintf("Each female calves every %d months from age %d", rules.BirthInterval, rules.MaturationAge),
		fmt.Sprintf("CPF %s per animal-month; offspring pay from age %d", money.FormatINR(rules.MonthlyCPF()), rules.OffspringCPFAge),
	)
	if rules.FirstYearNewbornOverride {
		lines = append(lines, fmt.Sprintf("Animals aged %d months or less are valued at zero during year one", rules.NewbornMaxAge))
	}
	return lines
}
