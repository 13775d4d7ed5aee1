package calculation

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func params(months int, cgf bool) domain.SimulationParameters {
	return domain.SimulationParameters{
		UnitCount:      1,
		StartYear:      2026,
		StartMonth:     0,
		StartDay:       1,
		DurationMonths: months,
		CGFEnabled:     cgf,
	}
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func assertDecimal(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Equal(t, dec(want).String(), got.String(), msgAndArgs...)
}

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.Equal(t, 120, engine.Rules.MaxDurationMonths)
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestEngine_ProjectLogs(t *testing.T) {
	engine := NewEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	_, err := engine.Project(params(36, false))
	require.NoError(t, err)
	assert.Contains(t, logger.messages, "DEBUG: population: %d animals in the representative unit, scaled to %d units")
	assert.NotContains(t, logger.messages, "INFO: break-even not reached within %d months")

	_, err = engine.Project(params(12, false))
	require.NoError(t, err)
	assert.Contains(t, logger.messages, "INFO: break-even not reached within %d months")
}

func TestEngine_ProjectRejectsInvalidParameters(t *testing.T) {
	engine := NewEngine()

	bad := params(0, false)
	result, err := engine.Project(bad)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidParameters))

	bad = params(36, false)
	bad.UnitCount = 0
	_, err = engine.Project(bad)
	assert.ErrorIs(t, err, domain.ErrInvalidParameters)
}

func TestEngine_Determinism(t *testing.T) {
	engine := NewEngine()
	p := params(120, true)
	p.UnitCount = 2

	first, err := engine.Project(p)
	require.NoError(t, err)
	second, err := engine.Project(p)
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestEngine_ThirtySixMonthScenario(t *testing.T) {
	result, err := NewEngine().Project(params(36, false))
	require.NoError(t, err)

	assertDecimal(t, 365000, result.BreakEven.InitialInvestment)

	// founders plus one offspring each, born at month 34
	require.Len(t, result.Roster, 4)
	for _, a := range result.Roster[2:] {
		assert.Equal(t, 1, a.Generation)
		assert.Equal(t, result.Parameters.StartAbs()+34, a.AbsoluteBirthMonth)
	}

	for _, e := range result.Ledger {
		if e.AnimalID == "A-1" || e.AnimalID == "B-1" {
			assert.True(t, e.Revenue.IsZero(), "offspring earn nothing before age 34")
		}
	}

	assert.True(t, result.Monthly[0].Revenue.IsZero())
	assert.True(t, result.Monthly[1].Revenue.IsZero())
	assertDecimal(t, 18000, result.Monthly[2].Revenue, "both founders start lactating at month 2")

	require.Len(t, result.Yearly, 3)
	assertDecimal(t, 126000, result.Yearly[0].Revenue)
	assertDecimal(t, 7500, result.Yearly[0].CPFCost, "second founder pays months 0-5 only")
	assertDecimal(t, 118500, result.Yearly[0].CumulativeNet)
	assertDecimal(t, 0, result.Yearly[0].AssetValue, "founders are in the newborn bracket during year one")
	assertDecimal(t, 22500, result.Yearly[1].CPFCost)
	assertDecimal(t, 302000, result.Yearly[1].CumulativeTotal)
	assertDecimal(t, 638000, result.Yearly[2].CumulativeTotal)

	assert.Nil(t, result.BreakEven.RevenueBreakEven)
	require.NotNil(t, result.BreakEven.TotalValueBreakEven)
	assert.Equal(t, 25, result.BreakEven.TotalValueBreakEven.MonthIndex)
	assert.Equal(t, time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC), result.BreakEven.TotalValueBreakEven.Date)

	assert.Equal(t, domain.StatusRecovered25, result.Yearly[0].Status)
	assert.Equal(t, domain.StatusRecovered75, result.Yearly[1].Status)
	assert.Equal(t, domain.StatusBreakEven, result.Yearly[2].Status)
	assert.False(t, result.Yearly[1].TotalValueBreakEven)
	assert.True(t, result.Yearly[2].TotalValueBreakEven)
	assert.False(t, result.Yearly[2].RevenueBreakEven)
}

func TestEngine_FortyMonthScenario(t *testing.T) {
	result, err := NewEngine().Project(params(40, false))
	require.NoError(t, err)

	ids := make([]string, 0, len(result.Roster))
	for _, a := range result.Roster {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"A", "B", "A-1", "B-1"}, ids)

	require.Len(t, result.Yearly, 4)
	assert.Equal(t, 4, result.Yearly[3].Months, "the last year is partial")
	assertDecimal(t, 36000, result.Yearly[3].Revenue)
	assertDecimal(t, 664000, result.Yearly[3].CumulativeTotal)
	assert.Equal(t, 4, result.FinalHerdSize())
}

func TestEngine_TenYearHorizon(t *testing.T) {
	result, err := NewEngine().Project(params(120, false))
	require.NoError(t, err)

	assert.Len(t, result.Roster, 56)
	assert.Len(t, result.Yearly, 10)
	assert.Len(t, result.AssetBreakdowns, 10)

	require.NotNil(t, result.BreakEven.RevenueBreakEven)
	assert.Equal(t, 41, result.BreakEven.RevenueBreakEven.MonthIndex)
	assert.Equal(t, time.Date(2029, time.June, 30, 0, 0, 0, 0, time.UTC), result.BreakEven.RevenueBreakEven.Date)

	assertDecimal(t, 2382000, result.BreakEven.FinalCumulativeNet)
	assertDecimal(t, 4280000, result.BreakEven.FinalAssetValue)
	assertDecimal(t, 6662000, result.BreakEven.FinalTotalValue)

	withCGF, err := NewEngine().Project(params(120, true))
	require.NoError(t, err)
	assertDecimal(t, 1525200, withCGF.BreakEven.FinalCumulativeNet)
	assertDecimal(t, 4000, withCGF.Yearly[3].CGFCost)
	assertDecimal(t, 0, result.Yearly[3].CGFCost, "disabled fund charges nothing")
}

func TestEngine_BreakEvenOrdering(t *testing.T) {
	engine := NewEngine()
	for _, months := range []int{36, 60, 90, 120} {
		for _, cgf := range []bool{false, true} {
			result, err := engine.Project(params(months, cgf))
			require.NoError(t, err)

			be := result.BreakEven
			if be.RevenueBreakEven != nil {
				require.NotNil(t, be.TotalValueBreakEven)
				assert.LessOrEqual(t, be.TotalValueBreakEven.MonthIndex, be.RevenueBreakEven.MonthIndex)
			}

			for i := 1; i < len(result.Monthly); i++ {
				prev, cur := result.Monthly[i-1], result.Monthly[i]
				if !cur.NetRevenue.IsNegative() {
					assert.True(t, cur.CumulativeNet.GreaterThanOrEqual(prev.CumulativeNet))
				}
			}
		}
	}
}

func TestEngine_ScalingLaw(t *testing.T) {
	engine := NewEngine()
	one, err := engine.Project(params(120, true))
	require.NoError(t, err)

	for _, units := range []int{2, 3, 7} {
		p := params(120, true)
		p.UnitCount = units
		n, err := engine.Project(p)
		require.NoError(t, err)

		factor := dec(int64(units))
		assert.True(t, one.BreakEven.InitialInvestment.Mul(factor).Equal(n.BreakEven.InitialInvestment))
		assert.Len(t, n.Roster, len(one.Roster), "the roster holds one representative unit")

		for i := range one.Monthly {
			a, b := one.Monthly[i], n.Monthly[i]
			assert.True(t, a.Revenue.Mul(factor).Equal(b.Revenue))
			assert.True(t, a.CPFCost.Mul(factor).Equal(b.CPFCost))
			assert.True(t, a.CGFCost.Mul(factor).Equal(b.CGFCost))
			assert.True(t, a.CumulativeNet.Mul(factor).Equal(b.CumulativeNet))
			assert.True(t, a.AssetValue.Mul(factor).Equal(b.AssetValue))
			assert.Equal(t, a.HerdSize*units, b.HerdSize)
		}
		for i := range one.Yearly {
			assert.True(t, one.Yearly[i].CumulativeTotal.Mul(factor).Equal(n.Yearly[i].CumulativeTotal))
			assert.True(t, one.Yearly[i].RecoveryPercent.Equal(n.Yearly[i].RecoveryPercent))
		}
		assert.Equal(t, one.BreakEven.TotalValueBreakEven.MonthIndex, n.BreakEven.TotalValueBreakEven.MonthIndex)
	}
}

func TestEngine_OffsetStartMonth(t *testing.T) {
	p := params(24, false)
	p.StartYear, p.StartMonth = 2026, 6

	result, err := NewEngine().Project(p)
	require.NoError(t, err)

	require.Len(t, result.Yearly, 2)
	assert.Equal(t, "Year 1 (Jul 2026 - Jun 2027)", result.Yearly[0].Label)
	assert.Equal(t, 2027, result.Monthly[6].Year)
	assert.Equal(t, 0, result.Monthly[6].Month)
}

func TestEngine_RulesOverride(t *testing.T) {
	rules := domain.DefaultRules()
	rules.FounderPrice = dec(100000)
	engine := NewEngineWithRules(rules)

	result, err := engine.Project(params(12, false))
	require.NoError(t, err)
	assertDecimal(t, 215000, result.BreakEven.InitialInvestment)

	rules.CycleLength = 0
	_, err = NewEngineWithRules(rules).Project(params(12, false))
	assert.ErrorIs(t, err, domain.ErrInvalidParameters)
}

func TestProjectionResult_RepresentativeHerd(t *testing.T) {
	p := params(40, false)
	p.UnitCount = 3
	result, err := NewEngine().Project(p)
	require.NoError(t, err)

	herd := result.RepresentativeHerd()
	assert.Len(t, herd, 4)
	for _, a := range herd {
		assert.Equal(t, 1, a.Unit)
	}
	assert.Len(t, result.Roster, 4)
}

func TestEngine_RosterIndependentOfUnitCount(t *testing.T) {
	engine := NewEngine()
	one, err := engine.Project(params(120, false))
	require.NoError(t, err)

	p := params(120, false)
	p.UnitCount = domain.DefaultRules().MaxUnitCount
	many, err := engine.Project(p)
	require.NoError(t, err)

	assert.Len(t, many.Roster, len(one.Roster))
	assert.Len(t, many.Ledger, len(one.Ledger))
	assert.Equal(t, one.FinalHerdSize()*p.UnitCount, many.FinalHerdSize())
}

func TestEngine_UnitAnimalRevenueScalesToRevenue(t *testing.T) {
	p := params(60, true)
	p.UnitCount = 3
	result, err := NewEngine().Project(p)
	require.NoError(t, err)

	earning := 0
	for _, m := range result.Monthly {
		perUnit := decimal.Zero
		for _, a := range m.UnitAnimalRevenue {
			perUnit = perUnit.Add(a.Amount)
		}
		if !perUnit.IsZero() {
			earning++
		}
		assert.True(t, perUnit.Mul(dec(3)).Equal(m.Revenue), "month %d: %s x 3 != %s", m.MonthIndex, perUnit, m.Revenue)
	}
	assert.Positive(t, earning)
}

func TestEngine_RejectsTooManyUnits(t *testing.T) {
	p := params(12, false)
	p.UnitCount = domain.DefaultRules().MaxUnitCount + 1

	_, err := NewEngine().Project(p)
	require.ErrorIs(t, err, domain.ErrInvalidParameters)
	assert.ErrorContains(t, err, "unit_count")
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
