package output

import (
	"fmt"

	"github.com/rgehrsitz/herdsim/internal/breakeven"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
	"github.com/rgehrsitz/herdsim/pkg/money"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as whole rupees with Indian grouping
func FormatCurrency(amount decimal.Decimal) string {
	return money.FormatINR(amount)
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return money.Percent(amount)
}

// BreakEvenText describes a break-even point, or "Not Projected"
func BreakEvenText(p *domain.BreakEvenPoint) string {
	return breakeven.Describe(p)
}

// BreakEvenDate is the ISO date of a break-even point, or "Not Projected"
func BreakEvenDate(p *domain.BreakEvenPoint) string {
	if p == nil {
		return domain.NotProjected
	}
	return p.Date.Format("2006-01-02")
}

func startLabel(p domain.SimulationParameters) string {
	return fmt.Sprintf("%d %s", p.StartDay, dateutil.Label(p.StartYear, p.StartMonth))
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}

// finalBreakdown is the asset breakdown at the end of the horizon
func finalBreakdown(result *domain.ProjectionResult) *domain.AssetBreakdown {
	if len(result.AssetBreakdowns) == 0 {
		return nil
	}
	return &result.AssetBreakdowns[len(result.AssetBreakdowns)-1]
}
