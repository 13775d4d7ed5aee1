package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyLedgerEntry is one animal's cash flow and valuation in one simulated month (single unit)
type MonthlyLedgerEntry struct {
	AnimalID      string          `json:"animal_id"`
	MonthIndex    int             `json:"month_index"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	Revenue       decimal.Decimal `json:"revenue"`
	CPFApplicable bool            `json:"cpf_applicable"`
	CPFCost       decimal.Decimal `json:"cpf_cost"`
	CGFApplicable bool            `json:"cgf_applicable"`
	CGFCost       decimal.Decimal `json:"cgf_cost"`
	AssetValue    decimal.Decimal `json:"asset_value"`
}

// Net is revenue minus the fees charged on this entry
func (e MonthlyLedgerEntry) Net() decimal.Decimal {
	return e.Revenue.Sub(e.CPFCost).Sub(e.CGFCost)
}

// AnimalAmount is one animal's share of a monthly total
type AnimalAmount struct {
	AnimalID string          `json:"animal_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlySummary rolls every animal up for one simulated month, scaled by unit count
type MonthlySummary struct {
	MonthIndex        int             `json:"month_index"`
	Year              int             `json:"year"`
	Month             int             `json:"month"`
	Revenue           decimal.Decimal `json:"revenue"`
	UnitAnimalRevenue []AnimalAmount  `json:"unit_animal_revenue"` // representative unit, not scaled
	CPFCost           decimal.Decimal `json:"cpf_cost"`
	CGFCost           decimal.Decimal `json:"cgf_cost"`
	NetRevenue        decimal.Decimal `json:"net_revenue"`
	CumulativeNet     decimal.Decimal `json:"cumulative_net"`
	AssetValue        decimal.Decimal `json:"asset_value"`
	TotalValue        decimal.Decimal `json:"total_value"`
	HerdSize          int             `json:"herd_size"`
}

// YearlyAggregate rolls up one 12-month simulation year measured from the start date
type YearlyAggregate struct {
	Year                int             `json:"year"` // 1-based simulation year
	FirstMonthIndex     int             `json:"first_month_index"`
	Months              int             `json:"months"`
	Label               string          `json:"label"`
	Revenue             decimal.Decimal `json:"revenue"`
	CPFCost             decimal.Decimal `json:"cpf_cost"`
	CGFCost             decimal.Decimal `json:"cgf_cost"`
	NetRevenue          decimal.Decimal `json:"net_revenue"`
	AssetValue          decimal.Decimal `json:"asset_value"`
	CumulativeNet       decimal.Decimal `json:"cumulative_net"`
	CumulativeTotal     decimal.Decimal `json:"cumulative_total"`
	RecoveryPercent     decimal.Decimal `json:"recovery_percent"`
	Status              RecoveryStatus  `json:"status"`
	RevenueBreakEven    bool            `json:"revenue_break_even"`
	TotalValueBreakEven bool            `json:"total_value_break_even"`
	HerdSize            int             `json:"herd_size"`
}

// BracketValue is the herd's holding in one valuation bracket
type BracketValue struct {
	Label      string          `json:"label"`
	Count      int             `json:"count"`
	UnitValue  decimal.Decimal `json:"unit_value"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// AssetBreakdown is the herd valuation by age bracket at the end of a simulation year
type AssetBreakdown struct {
	Year       int             `json:"year"`
	MonthIndex int             `json:"month_index"`
	Label      string          `json:"label"`
	Brackets   []BracketValue  `json:"brackets"`
	Total      decimal.Decimal `json:"total"`
}

// BreakEvenPoint records the first month a threshold was crossed
type BreakEvenPoint struct {
	MonthIndex int             `json:"month_index"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Date       time.Time       `json:"date"` // last day of the month
	Value      decimal.Decimal `json:"value"`
}

// BreakEvenAnalysis holds both break-even points; a nil point was not reached in the horizon
type BreakEvenAnalysis struct {
	InitialInvestment      decimal.Decimal `json:"initial_investment"`
	RevenueBreakEven       *BreakEvenPoint `json:"revenue_break_even,omitempty"`
	TotalValueBreakEven    *BreakEvenPoint `json:"total_value_break_even,omitempty"`
	FinalCumulativeNet     decimal.Decimal `json:"final_cumulative_net"`
	FinalAssetValue        decimal.Decimal `json:"final_asset_value"`
	FinalTotalValue        decimal.Decimal `json:"final_total_value"`
	RevenueRecoveryPercent decimal.Decimal `json:"revenue_recovery_percent"`
	TotalRecoveryPercent   decimal.Decimal `json:"total_recovery_percent"`
	Status                 RecoveryStatus  `json:"status"`
}

// ProjectionResult is everything one run derives from its parameters
type ProjectionResult struct {
	Parameters      SimulationParameters `json:"parameters"`
	Rules           Rules                `json:"rules"`
	Roster          []Animal             `json:"roster"` // representative unit only
	Ledger          []MonthlyLedgerEntry `json:"ledger,omitempty"`
	Monthly         []MonthlySummary     `json:"monthly"`
	Yearly          []YearlyAggregate    `json:"yearly"`
	AssetBreakdowns []AssetBreakdown     `json:"asset_breakdowns"`
	BreakEven       BreakEvenAnalysis    `json:"break_even"`
}

// RepresentativeHerd returns the animals of unit 1, the unit the ledger is computed on
func (r *ProjectionResult) RepresentativeHerd() []Animal {
	herd := make([]Animal, 0, len(r.Roster))
	for _, a := range r.Roster {
		if a.Unit == 1 {
			herd = append(herd, a)
		}
	}
	return herd
}

// TotalRevenue sums revenue over the whole horizon
func (r *ProjectionResult) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, y := range r.Yearly {
		total = total.Add(y.Revenue)
	}
	return total
}

// FinalHerdSize is the number of animals alive in the last simulated month, all units
func (r *ProjectionResult) FinalHerdSize() int {
	if len(r.Monthly) == 0 {
		return 0
	}
	return r.Monthly[len(r.Monthly)-1].HerdSize
}
