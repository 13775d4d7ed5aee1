package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/herdsim/internal/calculation"
	"github.com/rgehrsitz/herdsim/internal/domain"
)

func TestRosterLines(t *testing.T) {
	result := project(t, 120)
	lines := RosterLines(result, 1)
	require.Len(t, lines, len(result.RepresentativeHerd()))

	assert.Equal(t, "A", lines[0].Animal.ID)
	assert.Empty(t, lines[0].Prefix)
	assert.Equal(t, "A-1", lines[1].Animal.ID)
	assert.Equal(t, "├─ ", lines[1].Prefix)

	total := lines[0].Value
	for _, l := range lines[1:] {
		total = total.Add(l.Value)
	}
	final := result.AssetBreakdowns[len(result.AssetBreakdowns)-1]
	assert.True(t, total.Equal(final.Total), "roster values %s sum to the closing herd value %s", total, final.Total)
}

func TestRosterLines_FoundersOnly(t *testing.T) {
	lines := RosterLines(project(t, 12), 1)
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.True(t, l.Animal.IsFounder())
		assert.Contains(t, l.Describe(), "founder")
	}
}

func TestFormatRoster(t *testing.T) {
	result, err := calculation.NewEngine().Project(domain.SimulationParameters{
		UnitCount:      3,
		StartYear:      2026,
		StartDay:       1,
		DurationMonths: 48,
	})
	require.NoError(t, err)

	one := FormatRoster(result, false)
	assert.Contains(t, one, "HERD ROSTER AT DEC 2029")
	assert.Contains(t, one, "Unit 1:")
	assert.NotContains(t, one, "Unit 2:")
	assert.Contains(t, one, "Units 2-3 follow the same lineage")

	all := FormatRoster(result, true)
	assert.Equal(t, 3, strings.Count(all, "herd value"))
	assert.Contains(t, all, "Unit 3:")
	assert.NotContains(t, all, "--all")
}
