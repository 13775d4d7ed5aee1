package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/herdsim/internal/breakeven"
	"github.com/rgehrsitz/herdsim/internal/calculation"
	"github.com/rgehrsitz/herdsim/internal/compare"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/internal/output"
	"github.com/rgehrsitz/herdsim/internal/transform"
)

// TestBasicIntegration tests basic end-to-end functionality
func TestBasicIntegration(t *testing.T) {
	t.Run("default_projection", func(t *testing.T) {
		result, err := calculation.NewEngine().Project(domain.DefaultParameters())
		require.NoError(t, err)

		assert.Len(t, result.Monthly, 120)
		assert.Len(t, result.Yearly, 10)
		assert.Len(t, result.AssetBreakdowns, 10)
		assert.NotNil(t, result.BreakEven.RevenueBreakEven)
		assert.NotNil(t, result.BreakEven.TotalValueBreakEven)
	})

	t.Run("template_comparison", func(t *testing.T) {
		cfg := loadExample(t)
		ce := compare.NewCompareEngine(calculation.NewEngineWithRules(cfg.Rules))

		set, err := ce.Compare(context.Background(), cfg.Simulation, compare.CompareOptions{
			BaseScenarioName: cfg.Name,
			Templates:        []string{"add_unit", "without_cgf", "horizon_5yr"},
		})
		require.NoError(t, err)
		require.Len(t, set.AlternativeResults, 3)
		assert.Equal(t, "family herd_add_unit", set.AlternativeResults[0].ScenarioName)
		assert.Equal(t, 3, set.AlternativeResults[0].Parameters.UnitCount)
		assert.False(t, set.AlternativeResults[1].Parameters.CGFEnabled)
		assert.Equal(t, 60, set.AlternativeResults[2].Parameters.DurationMonths)

		table := (&compare.TableFormatter{}).Format(set)
		assert.Contains(t, table, "family herd_add_unit")
	})

	t.Run("custom_transform_comparison", func(t *testing.T) {
		cfg := loadExample(t)
		tr, err := transform.NewTransformRegistry().ParseTransformSpec("add_units:units=3")
		require.NoError(t, err)

		params, err := tr.Apply(cfg.Simulation)
		require.NoError(t, err)
		assert.Equal(t, 5, params.UnitCount)
	})

	t.Run("break_even_extension", func(t *testing.T) {
		engine := calculation.NewEngine()
		p := domain.DefaultParameters()
		p.DurationMonths = 12

		short, err := engine.Project(p)
		require.NoError(t, err)
		ext, err := breakeven.Extend(engine, short)
		require.NoError(t, err)

		assert.True(t, ext.Rerun)
		assert.Equal(t, 12, ext.BaseMonths)
		assert.Equal(t, short.Rules.MaxDurationMonths, ext.HorizonMonths)
		assert.False(t, ext.NeverRecovered)
		require.NotNil(t, ext.Analysis.TotalValueBreakEven)

		text := (&breakeven.TableFormatter{}).FormatExtension(ext)
		assert.NotEmpty(t, text)
	})

	t.Run("roster", func(t *testing.T) {
		cfg := loadExample(t)
		result, err := calculation.NewEngineWithRules(cfg.Rules).Project(cfg.Simulation)
		require.NoError(t, err)

		roster := output.FormatRoster(result, true)
		assert.Equal(t, 2, strings.Count(roster, "herd value"))
		assert.Len(t, output.RosterLines(result, 2), len(result.RepresentativeHerd()))
	})
}
