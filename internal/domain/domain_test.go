package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulationParameters_Validate(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name   string
		mutate func(p *SimulationParameters)
		field  string
	}{
		{"zero units", func(p *SimulationParameters) { p.UnitCount = 0 }, "unit_count"},
		{"negative units", func(p *SimulationParameters) { p.UnitCount = -3 }, "unit_count"},
		{"month too large", func(p *SimulationParameters) { p.StartMonth = 12 }, "start_month"},
		{"negative month", func(p *SimulationParameters) { p.StartMonth = -1 }, "start_month"},
		{"year zero", func(p *SimulationParameters) { p.StartYear = 0 }, "start_year"},
		{"day zero", func(p *SimulationParameters) { p.StartDay = 0 }, "start_day"},
		{"feb 30", func(p *SimulationParameters) { p.StartMonth = 1; p.StartDay = 30 }, "start_day"},
		{"zero duration", func(p *SimulationParameters) { p.DurationMonths = 0 }, "duration_months"},
		{"past max horizon", func(p *SimulationParameters) { p.DurationMonths = 121 }, "duration_months"},
		{"past max units", func(p *SimulationParameters) { p.UnitCount = 1001 }, "unit_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParameters()
			tt.mutate(&p)
			err := p.Validate(rules)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameters))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, DefaultParameters().Validate(rules))
	})

	t.Run("leap day accepted", func(t *testing.T) {
		p := DefaultParameters()
		p.StartYear, p.StartMonth, p.StartDay = 2028, 1, 29
		assert.NoError(t, p.Validate(rules))
	})
}

func TestSimulationParameters_Window(t *testing.T) {
	p := SimulationParameters{UnitCount: 1, StartYear: 2026, StartMonth: 3, StartDay: 1, DurationMonths: 36}
	assert.Equal(t, 2026*12+3, p.StartAbs())
	assert.Equal(t, p.StartAbs()+35, p.EndAbs())
	assert.Equal(t, 3, p.Years())

	p.DurationMonths = 40
	assert.Equal(t, 4, p.Years())
}

func TestAnimal_AgeInMonths(t *testing.T) {
	a := Animal{ID: "A-1", Generation: 1, BirthYear: 2028, BirthMonth: 10, AbsoluteBirthMonth: 2028*12 + 10}

	assert.Equal(t, 0, a.AgeInMonths(2028, 10))
	assert.Equal(t, 14, a.AgeInMonths(2029, 12))
	assert.Equal(t, 0, a.AgeInMonths(2027, 0), "age before birth clamps to zero")
	assert.Equal(t, 34, a.AgeAtAbs(a.AbsoluteBirthMonth+34))

	assert.False(t, a.AliveAt(a.AbsoluteBirthMonth-1))
	assert.True(t, a.AliveAt(a.AbsoluteBirthMonth))
	assert.False(t, a.IsFounder())
}

func TestRules_Defaults(t *testing.T) {
	rules := DefaultRules()
	require.NoError(t, rules.Validate())

	assert.True(t, decimal.NewFromInt(1250).Equal(rules.MonthlyCPF()))
	assert.True(t, decimal.NewFromInt(365000).Equal(rules.InitialInvestment(1)))
	assert.True(t, decimal.NewFromInt(1095000).Equal(rules.InitialInvestment(3)))
}

func TestFindBracket(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		age    int
		amount int64
		found  bool
	}{
		{0, 10000, true},
		{12, 10000, true},
		{13, 25000, true},
		{24, 40000, true},
		{34, 100000, true},
		{40, 150000, true},
		{41, 175000, true},
		{240, 175000, true},
	}
	for _, tt := range tests {
		b, ok := FindBracket(rules.AssetBrackets, tt.age)
		assert.Equal(t, tt.found, ok, "age %d", tt.age)
		assert.True(t, decimal.NewFromInt(tt.amount).Equal(b.Amount), "age %d got %s", tt.age, b.Amount)
	}

	_, ok := FindBracket(rules.CGFBrackets, 12)
	assert.False(t, ok)
	_, ok = FindBracket(rules.CGFBrackets, 37)
	assert.False(t, ok)
}

func TestRules_ValidateRejectsBadTables(t *testing.T) {
	overlapping := DefaultRules()
	overlapping.AssetBrackets[1].MinAge = 10

	badTier := DefaultRules()
	badTier.LactationCycle[2].ToCycleMonth = 12

	noAssets := DefaultRules()
	noAssets.AssetBrackets = nil

	window := DefaultRules()
	window.SecondFounderFreeFrom = 20

	noUnits := DefaultRules()
	noUnits.MaxUnitCount = 0

	for name, r := range map[string]Rules{
		"overlapping brackets": overlapping,
		"tier outside cycle":   badTier,
		"no asset brackets":    noAssets,
		"inverted free window": window,
		"no unit allowance":    noUnits,
	} {
		t.Run(name, func(t *testing.T) {
			err := r.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParameters)
		})
	}
}

func TestConfiguration_Validate(t *testing.T) {
	cfg := DefaultConfiguration()
	cfg.Scenarios = []Scenario{
		{Name: "two units", Parameters: SimulationParameters{UnitCount: 2, StartYear: 2026, StartDay: 1, DurationMonths: 60}},
	}
	require.NoError(t, cfg.Validate())

	s, ok := cfg.FindScenario("two units")
	assert.True(t, ok)
	assert.Equal(t, 2, s.Parameters.UnitCount)

	cfg.Scenarios = append(cfg.Scenarios, cfg.Scenarios[0])
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidParameters)

	cfg.Scenarios = []Scenario{{Name: "broken"}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "broken"`)
}

func TestRecoveryStatus(t *testing.T) {
	assert.True(t, StatusBreakEven.IsBreakEven())
	assert.False(t, StatusRecovered75.IsBreakEven())
}
