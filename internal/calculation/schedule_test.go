package calculation

import (
	"testing"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/stretchr/testify/assert"
)

func founder(role domain.FounderRole, p domain.SimulationParameters) *domain.Animal {
	return &domain.Animal{
		ID:                 "A",
		BirthYear:          p.StartYear,
		BirthMonth:         p.StartMonth,
		AbsoluteBirthMonth: p.StartAbs(),
		FounderRole:        role,
	}
}

func offspring(p domain.SimulationParameters, bornAt int) *domain.Animal {
	abs := p.StartAbs() + bornAt
	return &domain.Animal{
		ID:                 "A-1",
		Generation:         1,
		ParentID:           "A",
		BirthYear:          abs / 12,
		BirthMonth:         abs % 12,
		AbsoluteBirthMonth: abs,
	}
}

func TestMonthlyRevenue_FounderSchedule(t *testing.T) {
	rules := domain.DefaultRules()
	p := params(120, false)
	a := founder(domain.FounderFirst, p)

	want := map[int]int64{
		0: 0, 1: 0,
		2: 9000, 3: 9000, 4: 9000, 5: 9000, 6: 9000,
		7: 6000, 8: 6000, 9: 6000,
		10: 0, 11: 0, 12: 0, 13: 0,
		14: 9000, 19: 6000, 22: 0,
	}
	for month, amount := range want {
		assertDecimal(t, amount, MonthlyRevenue(a, p.StartAbs()+month, rules), "month %d", month)
	}

	assert.Equal(t, PhasePreProduction, LactationPhase(a, p.StartAbs()+1, rules))
	assert.Equal(t, "peak", LactationPhase(a, p.StartAbs()+2, rules))
	assert.Equal(t, "declining", LactationPhase(a, p.StartAbs()+7, rules))
	assert.Equal(t, "dry", LactationPhase(a, p.StartAbs()+10, rules))
}

func TestMonthlyRevenue_OffspringMaturation(t *testing.T) {
	rules := domain.DefaultRules()
	p := params(120, false)
	kid := offspring(p, 34)

	for age := 0; age < 34; age++ {
		assert.True(t, MonthlyRevenue(kid, kid.AbsoluteBirthMonth+age, rules).IsZero(), "age %d", age)
	}
	assertDecimal(t, 9000, MonthlyRevenue(kid, kid.AbsoluteBirthMonth+34, rules))
	assertDecimal(t, 6000, MonthlyRevenue(kid, kid.AbsoluteBirthMonth+39, rules))
	assertDecimal(t, 0, MonthlyRevenue(kid, kid.AbsoluteBirthMonth+42, rules))
}

func TestCPF_FirstFounder(t *testing.T) {
	rules := domain.DefaultRules()
	p := params(120, false)
	a := founder(domain.FounderFirst, p)

	for m := 0; m < 12; m++ {
		assert.False(t, CPFApplicable(a, p.StartAbs()+m, p, rules), "month %d", m)
	}
	assert.True(t, CPFApplicable(a, p.StartAbs()+12, p, rules))
	assertDecimal(t, 1250, CPFCost(a, p.StartAbs()+12, p, rules))
	assert.False(t, CPFApplicable(a, p.EndAbs()+1, p, rules), "nothing accrues past the horizon")
}

func TestCPF_SecondFounderFreeWindow(t *testing.T) {
	rules := domain.DefaultRules()
	p := params(120, false)
	b := founder(domain.FounderSecond, p)

	for m := 0; m < 6; m++ {
		assertDecimal(t, 1250, CPFCost(b, p.StartAbs()+m, p, rules), "month %d", m)
	}
	for m := 6; m < 18; m++ {
		assertDecimal(t, 0, CPFCost(b, p.StartAbs()+m, p, rules), "month %d", m)
	}
	assertDecimal(t, 1250, CPFCost(b, p.StartAbs()+18, p, rules))
	assert.False(t, CPFApplicable(b, p.StartAbs()-1, p, rules))
}

func TestCPF_Offspring(t *testing.T) {
	rules := domain.DefaultRules()
	p := params(120, false)
	kid := offspring(p, 34)

	assert.False(t, CPFApplicable(kid, kid.AbsoluteBirthMonth-1, p, rules))
	assert.False(t, CPFApplicable(kid, kid.AbsoluteBirthMonth+23, p, rules))
	assert.True(t, CPFApplicable(kid, kid.AbsoluteBirthMonth+24, p, rules))
	assert.True(t, CPFApplicable(kid, kid.AbsoluteBirthMonth+60, p, rules))
}

func TestCGF_Brackets(t *testing.T) {
	rules := domain.DefaultRules()
	p := params(120, true)
	kid := offspring(p, 34)

	// CGF age counts the birth month as 1, so abs offset = age - 1
	want := map[int]int64{1: 0, 12: 0, 13: 1000, 18: 1000, 19: 1400, 24: 1400, 25: 1800, 30: 1800, 31: 2500, 36: 2500, 37: 0}
	for age, amount := range want {
		cost, applicable := CGFCost(kid, kid.AbsoluteBirthMonth+age-1, p, rules)
		assertDecimal(t, amount, cost, "age %d", age)
		assert.Equal(t, amount > 0, applicable, "age %d", age)
	}

	a := founder(domain.FounderFirst, p)
	cost, applicable := CGFCost(a, p.StartAbs()+20, p, rules)
	assert.True(t, cost.IsZero(), "founders never pay the growing fund")
	assert.False(t, applicable)

	p.CGFEnabled = false
	cost, applicable = CGFCost(kid, kid.AbsoluteBirthMonth+14, p, rules)
	assert.True(t, cost.IsZero())
	assert.False(t, applicable)
}

func TestAssetValue_FirstYearOverride(t *testing.T) {
	rules := domain.DefaultRules()
	p := params(120, false)
	a := founder(domain.FounderFirst, p)

	assertDecimal(t, 0, AssetValue(a, p.StartAbs(), p, rules))
	assertDecimal(t, 0, AssetValue(a, p.StartAbs()+11, p, rules), "last month of year one")
	assertDecimal(t, 10000, AssetValue(a, p.StartAbs()+12, p, rules), "override ends with year one")

	// a later-born animal still in the newborn bracket is valued normally
	kid := offspring(p, 34)
	assertDecimal(t, 10000, AssetValue(kid, kid.AbsoluteBirthMonth, p, rules))
	assertDecimal(t, 0, AssetValue(kid, kid.AbsoluteBirthMonth-1, p, rules), "not yet born")

	rules.FirstYearNewbornOverride = false
	assertDecimal(t, 10000, AssetValue(a, p.StartAbs()+3, p, rules))
}

func TestAssetValue_Brackets(t *testing.T) {
	rules := domain.DefaultRules()
	p := params(120, false)
	a := founder(domain.FounderFirst, p)

	want := map[int]int64{13: 25000, 18: 25000, 19: 40000, 24: 40000, 25: 100000, 34: 100000, 35: 150000, 40: 150000, 41: 175000, 119: 175000}
	for age, amount := range want {
		assertDecimal(t, amount, AssetValue(a, p.StartAbs()+age, p, rules), "age %d", age)
	}
}

func TestBreakdown(t *testing.T) {
	rules := domain.DefaultRules()
	p := params(120, false)
	p.UnitCount = 2
	herd := UnitHerd(BuildPopulation(p, rules), 1)

	b := Breakdown(herd, p.StartAbs()+47, p, rules)
	assert.Equal(t, 4, b.Year)
	assert.Equal(t, 47, b.MonthIndex)
	assert.Equal(t, "Dec 2029", b.Label)
	assert.Len(t, b.Brackets, len(rules.AssetBrackets))

	counts := map[string]int{}
	for _, br := range b.Brackets {
		counts[br.Label] = br.Count
	}
	assert.Equal(t, 4, counts["0-12 months"])
	assert.Equal(t, 4, counts["13-18 months"])
	assert.Equal(t, 4, counts["41+ months"])
	assertDecimal(t, 840000, b.Total)
	assert.True(t, HerdValue(herd, p.StartAbs()+47, p, rules).Equal(b.Total))

	first := Breakdown(herd, p.StartAbs()+11, p, rules)
	assert.True(t, first.Brackets[0].UnitValue.IsZero(), "newborn bracket shows the year-one override")
	assertDecimal(t, 0, first.Total)
}
