package breakeven

import (
	"errors"
	"testing"
	"time"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRecovery(t *testing.T) {
	tests := []struct {
		percent string
		want    domain.RecoveryStatus
	}{
		{"0", domain.StatusInProgress},
		{"24.99", domain.StatusInProgress},
		{"25", domain.StatusRecovered25},
		{"49.99", domain.StatusRecovered25},
		{"50", domain.StatusRecovered50},
		{"75", domain.StatusRecovered75},
		{"99.99", domain.StatusRecovered75},
		{"100", domain.StatusBreakEven},
		{"182.47", domain.StatusBreakEven},
		{"-10", domain.StatusInProgress},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyRecovery(decimal.RequireFromString(tt.percent)), tt.percent)
	}
}

func TestRecoveryPercent(t *testing.T) {
	assert.Equal(t, "32.47", RecoveryPercent(decimal.NewFromInt(118500), decimal.NewFromInt(365000)).StringFixed(2))
	assert.True(t, RecoveryPercent(decimal.NewFromInt(5), decimal.Zero).IsZero())
}

func month(idx int, cumulative, asset int64) domain.MonthlySummary {
	year, m := 2026+idx/12, idx%12
	return domain.MonthlySummary{
		MonthIndex:    idx,
		Year:          year,
		Month:         m,
		CumulativeNet: decimal.NewFromInt(cumulative),
		AssetValue:    decimal.NewFromInt(asset),
		TotalValue:    decimal.NewFromInt(cumulative + asset),
	}
}

func TestDetect(t *testing.T) {
	investment := decimal.NewFromInt(1000)
	monthly := []domain.MonthlySummary{
		month(0, 100, 0),
		month(1, 300, 500),
		month(2, 600, 500),
		month(3, 1000, 600),
		month(4, 1200, 600),
	}

	a := Detect(monthly, investment)
	require.NotNil(t, a.TotalValueBreakEven)
	require.NotNil(t, a.RevenueBreakEven)
	assert.Equal(t, 2, a.TotalValueBreakEven.MonthIndex)
	assert.Equal(t, 3, a.RevenueBreakEven.MonthIndex, "equality counts as recovered")
	assert.Equal(t, time.Date(2026, time.April, 30, 0, 0, 0, 0, time.UTC), a.RevenueBreakEven.Date)
	assert.Equal(t, "1800", a.FinalTotalValue.String())
	assert.Equal(t, "120.00", a.RevenueRecoveryPercent.StringFixed(2))
	assert.Equal(t, domain.StatusBreakEven, a.Status)

	assert.True(t, ReachedBy(a.RevenueBreakEven, 3))
	assert.False(t, ReachedBy(a.RevenueBreakEven, 2))
	assert.False(t, ReachedBy(nil, 100))
}

func TestDetect_NotReached(t *testing.T) {
	a := Detect([]domain.MonthlySummary{month(0, 10, 20)}, decimal.NewFromInt(1000))
	assert.Nil(t, a.RevenueBreakEven)
	assert.Nil(t, a.TotalValueBreakEven)
	assert.Equal(t, domain.StatusInProgress, a.Status)
	assert.Equal(t, domain.NotProjected, Describe(a.RevenueBreakEven))

	empty := Detect(nil, decimal.NewFromInt(1000))
	assert.True(t, empty.FinalTotalValue.IsZero())
}

func TestDescribe(t *testing.T) {
	p := &domain.BreakEvenPoint{MonthIndex: 25, Year: 2028, Month: 1}
	assert.Equal(t, "Feb 2028 (month 26)", Describe(p))
}

type stubProjector struct {
	calls  int
	result *domain.ProjectionResult
	err    error
}

func (s *stubProjector) Project(params domain.SimulationParameters) (*domain.ProjectionResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	r := *s.result
	r.Parameters = params
	return &r, nil
}

func baseResult(months int, analysis domain.BreakEvenAnalysis) *domain.ProjectionResult {
	return &domain.ProjectionResult{
		Parameters: domain.SimulationParameters{UnitCount: 1, StartYear: 2026, StartDay: 1, DurationMonths: months},
		Rules:      domain.DefaultRules(),
		BreakEven:  analysis,
	}
}

func TestExtend(t *testing.T) {
	point := &domain.BreakEvenPoint{MonthIndex: 41, Year: 2029, Month: 5}
	stub := &stubProjector{result: &domain.ProjectionResult{
		BreakEven: domain.BreakEvenAnalysis{RevenueBreakEven: point, TotalValueBreakEven: point},
	}}

	t.Run("reruns when a point is missing", func(t *testing.T) {
		ext, err := Extend(stub, baseResult(36, domain.BreakEvenAnalysis{TotalValueBreakEven: point}))
		require.NoError(t, err)
		assert.True(t, ext.Rerun)
		assert.Equal(t, 120, ext.HorizonMonths)
		assert.Equal(t, 36, ext.BaseMonths)
		assert.Equal(t, point, ext.Analysis.RevenueBreakEven)
		assert.False(t, ext.NeverRecovered)
		assert.Equal(t, 1, stub.calls)
	})

	t.Run("keeps a complete base", func(t *testing.T) {
		stub.calls = 0
		ext, err := Extend(stub, baseResult(60, domain.BreakEvenAnalysis{RevenueBreakEven: point, TotalValueBreakEven: point}))
		require.NoError(t, err)
		assert.False(t, ext.Rerun)
		assert.Equal(t, 0, stub.calls)
	})

	t.Run("cannot grow past the maximum", func(t *testing.T) {
		ext, err := Extend(stub, baseResult(120, domain.BreakEvenAnalysis{}))
		require.NoError(t, err)
		assert.False(t, ext.Rerun)
		assert.True(t, ext.NeverRecovered)
	})

	t.Run("propagates projector errors", func(t *testing.T) {
		failing := &stubProjector{err: errors.New("boom")}
		_, err := Extend(failing, baseResult(12, domain.BreakEvenAnalysis{}))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extend break-even to 120 months")
	})

	_, err := Extend(stub, nil)
	assert.Error(t, err)
}

func TestTableFormatter(t *testing.T) {
	point := &domain.BreakEvenPoint{MonthIndex: 25, Year: 2028, Month: 1, Date: time.Date(2028, time.February, 29, 0, 0, 0, 0, time.UTC)}
	result := baseResult(36, domain.BreakEvenAnalysis{
		InitialInvestment:   decimal.NewFromInt(365000),
		TotalValueBreakEven: point,
		FinalTotalValue:     decimal.NewFromInt(638000),
		Status:              domain.StatusBreakEven,
	})

	tf := &TableFormatter{}
	out := tf.Format(result)
	assert.Contains(t, out, "BREAK-EVEN ANALYSIS")
	assert.Contains(t, out, "₹3,65,000")
	assert.Contains(t, out, "Revenue only:          Not Projected")
	assert.Contains(t, out, "Feb 2028 (month 26) (29 Feb 2028)")
	assert.Contains(t, out, "✔ Break-Even")

	ext := &Extension{Rerun: true, HorizonMonths: 120, Analysis: domain.BreakEvenAnalysis{RevenueBreakEven: point}}
	assert.Contains(t, tf.FormatExtension(ext), "Projected to:          120 months")

	jf := &JSONFormatter{Pretty: true}
	js, err := jf.Format(result.BreakEven)
	require.NoError(t, err)
	assert.Contains(t, js, `"total_value_break_even"`)
	assert.NotContains(t, js, `"revenue_break_even"`)
}
