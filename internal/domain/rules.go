package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RevenueTier pays Amount per month for cycle months FromCycleMonth..ToCycleMonth inclusive
type RevenueTier struct {
	Label          string          `yaml:"label" json:"label"`
	FromCycleMonth int             `yaml:"from_cycle_month" json:"from_cycle_month"`
	ToCycleMonth   int             `yaml:"to_cycle_month" json:"to_cycle_month"`
	Amount         decimal.Decimal `yaml:"amount" json:"amount"`
}

// AgeBracket maps an inclusive age range in months to an amount. A nil MaxAge is open ended.
type AgeBracket struct {
	Label  string          `yaml:"label" json:"label"`
	MinAge int             `yaml:"min_age" json:"min_age"`
	MaxAge *int            `yaml:"max_age,omitempty" json:"max_age,omitempty"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// Contains reports whether age falls inside the bracket
func (b AgeBracket) Contains(age int) bool {
	if age < b.MinAge {
		return false
	}
	return b.MaxAge == nil || age <= *b.MaxAge
}

// Rules holds every constant of the projection so the schedule can be audited
// and overridden from a config file.
type Rules struct {
	// Lactation
	FounderLactationOffset   int           `yaml:"founder_lactation_offset" json:"founder_lactation_offset"`
	OffspringLactationOffset int           `yaml:"offspring_lactation_offset" json:"offspring_lactation_offset"`
	CycleLength              int           `yaml:"cycle_length" json:"cycle_length"`
	LactationCycle           []RevenueTier `yaml:"lactation_cycle" json:"lactation_cycle"`

	// Reproduction
	MaturationAge int `yaml:"maturation_age" json:"maturation_age"`
	BirthInterval int `yaml:"birth_interval" json:"birth_interval"`

	// Cattle Protection Fund
	CPFAnnualFee           decimal.Decimal `yaml:"cpf_annual_fee" json:"cpf_annual_fee"`
	FirstFounderFreeMonths int             `yaml:"first_founder_free_months" json:"first_founder_free_months"`
	SecondFounderFreeFrom  int             `yaml:"second_founder_free_from" json:"second_founder_free_from"`
	SecondFounderFreeUntil int             `yaml:"second_founder_free_until" json:"second_founder_free_until"`
	OffspringCPFAge        int             `yaml:"offspring_cpf_age" json:"offspring_cpf_age"`

	// Cattle Growing Fund
	CGFBrackets []AgeBracket `yaml:"cgf_brackets" json:"cgf_brackets"`

	// Valuation
	AssetBrackets            []AgeBracket    `yaml:"asset_brackets" json:"asset_brackets"`
	FirstYearNewbornOverride bool            `yaml:"first_year_newborn_override" json:"first_year_newborn_override"`
	NewbornMaxAge            int             `yaml:"newborn_max_age" json:"newborn_max_age"`
	FounderPrice             decimal.Decimal `yaml:"founder_price" json:"founder_price"`

	MaxDurationMonths int `yaml:"max_duration_months" json:"max_duration_months"`
	MaxUnitCount      int `yaml:"max_unit_count" json:"max_unit_count"`
}

func intPtr(v int) *int { return &v }

func bracket(label string, minAge int, maxAge *int, amount int64) AgeBracket {
	return AgeBracket{Label: label, MinAge: minAge, MaxAge: maxAge, Amount: decimal.NewFromInt(amount)}
}

// DefaultRules returns the published scheme schedule
func DefaultRules() Rules {
	return Rules{
		FounderLactationOffset:   2,
		OffspringLactationOffset: 34,
		CycleLength:              12,
		LactationCycle: []RevenueTier{
			{Label: "peak", FromCycleMonth: 0, ToCycleMonth: 4, Amount: decimal.NewFromInt(9000)},
			{Label: "declining", FromCycleMonth: 5, ToCycleMonth: 7, Amount: decimal.NewFromInt(6000)},
			{Label: "dry", FromCycleMonth: 8, ToCycleMonth: 11, Amount: decimal.Zero},
		},

		MaturationAge: 34,
		BirthInterval: 12,

		CPFAnnualFee:           decimal.NewFromInt(15000),
		FirstFounderFreeMonths: 12,
		SecondFounderFreeFrom:  6,
		SecondFounderFreeUntil: 18,
		OffspringCPFAge:        24,

		CGFBrackets: []AgeBracket{
			bracket("13-18 months", 13, intPtr(18), 1000),
			bracket("19-24 months", 19, intPtr(24), 1400),
			bracket("25-30 months", 25, intPtr(30), 1800),
			bracket("31-36 months", 31, intPtr(36), 2500),
		},

		AssetBrackets: []AgeBracket{
			bracket("0-12 months", 0, intPtr(12), 10000),
			bracket("13-18 months", 13, intPtr(18), 25000),
			bracket("19-24 months", 19, intPtr(24), 40000),
			bracket("25-34 months", 25, intPtr(34), 100000),
			bracket("35-40 months", 35, intPtr(40), 150000),
			bracket("41+ months", 41, nil, 175000),
		},
		FirstYearNewbornOverride: true,
		NewbornMaxAge:            12,
		FounderPrice:             decimal.NewFromInt(175000),

		MaxDurationMonths: 120,
		MaxUnitCount:      1000,
	}
}

// MonthlyCPF is the CPF charged for one applicable animal-month
func (r Rules) MonthlyCPF() decimal.Decimal {
	return r.CPFAnnualFee.Div(decimal.NewFromInt(12))
}

// InitialInvestment is the founders' purchase price plus one year of CPF per unit
func (r Rules) InitialInvestment(units int) decimal.Decimal {
	u := decimal.NewFromInt(int64(units))
	founders := r.FounderPrice.Mul(decimal.NewFromInt(FoundersPerUnit))
	return founders.Add(r.CPFAnnualFee).Mul(u)
}

// Validate rejects rule tables the engine cannot apply
func (r Rules) Validate() error {
	if r.FounderLactationOffset < 0 || r.OffspringLactationOffset < 0 {
		return invalid("rules.lactation_offset", "offsets cannot be negative")
	}
	if r.CycleLength < 1 {
		return invalid("rules.cycle_length", "must be at least 1, got %d", r.CycleLength)
	}
	for i, tier := range r.LactationCycle {
		if tier.FromCycleMonth < 0 || tier.ToCycleMonth >= r.CycleLength || tier.FromCycleMonth > tier.ToCycleMonth {
			return invalid(fmt.Sprintf("rules.lactation_cycle[%d]", i),
				"range %d-%d does not fit a %d-month cycle", tier.FromCycleMonth, tier.ToCycleMonth, r.CycleLength)
		}
		if tier.Amount.IsNegative() {
			return invalid(fmt.Sprintf("rules.lactation_cycle[%d]", i), "amount cannot be negative")
		}
	}
	if r.MaturationAge < 1 {
		return invalid("rules.maturation_age", "must be at least 1, got %d", r.MaturationAge)
	}
	if r.BirthInterval < 1 {
		return invalid("rules.birth_interval", "must be at least 1, got %d", r.BirthInterval)
	}
	if r.CPFAnnualFee.IsNegative() {
		return invalid("rules.cpf_annual_fee", "cannot be negative")
	}
	if r.SecondFounderFreeFrom > r.SecondFounderFreeUntil {
		return invalid("rules.second_founder_free_from", "free window starts after it ends")
	}
	if err := validateBrackets("rules.cgf_brackets", r.CGFBrackets); err != nil {
		return err
	}
	if len(r.AssetBrackets) == 0 {
		return invalid("rules.asset_brackets", "at least one bracket is required")
	}
	if err := validateBrackets("rules.asset_brackets", r.AssetBrackets); err != nil {
		return err
	}
	if r.FounderPrice.IsNegative() {
		return invalid("rules.founder_price", "cannot be negative")
	}
	if r.MaxDurationMonths < 1 {
		return invalid("rules.max_duration_months", "must be at least 1, got %d", r.MaxDurationMonths)
	}
	if r.MaxUnitCount < 1 {
		return invalid("rules.max_unit_count", "must be at least 1, got %d", r.MaxUnitCount)
	}
	return nil
}

func validateBrackets(field string, brackets []AgeBracket) error {
	for i, b := range brackets {
		name := fmt.Sprintf("%s[%d]", field, i)
		if b.MinAge < 0 {
			return invalid(name, "min_age cannot be negative")
		}
		if b.MaxAge != nil && *b.MaxAge < b.MinAge {
			return invalid(name, "max_age %d is below min_age %d", *b.MaxAge, b.MinAge)
		}
		if b.Amount.IsNegative() {
			return invalid(name, "amount cannot be negative")
		}
		if i > 0 {
			prev := brackets[i-1]
			if prev.MaxAge == nil || *prev.MaxAge >= b.MinAge {
				return invalid(name, "overlaps the previous bracket")
			}
		}
	}
	return nil
}

// FindBracket returns the first bracket containing age
func FindBracket(brackets []AgeBracket, age int) (AgeBracket, bool) {
	for _, b := range brackets {
		if b.Contains(age) {
			return b, true
		}
	}
	return AgeBracket{}, false
}
