package calculation

import (
	"testing"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFounderLabel(t *testing.T) {
	tests := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 51: "AZ", 52: "BA", 701: "ZZ", 702: "AAA"}
	for n, want := range tests {
		assert.Equal(t, want, FounderLabel(n), "index %d", n)
	}
}

func TestFounderRoleFor(t *testing.T) {
	assert.Equal(t, domain.FounderFirst, FounderRoleFor(0))
	assert.Equal(t, domain.FounderSecond, FounderRoleFor(1))
	assert.Equal(t, domain.FounderFirst, FounderRoleFor(2))
}

func TestBuildPopulation_FoundersOnlyBeforeMaturation(t *testing.T) {
	rules := domain.DefaultRules()
	for _, months := range []int{1, 12, 34} {
		roster := BuildPopulation(params(months, false), rules)
		require.Len(t, roster, 2, "horizon %d", months)
		assert.Equal(t, "A", roster[0].ID)
		assert.Equal(t, "B", roster[1].ID)
	}

	roster := BuildPopulation(params(35, false), rules)
	assert.Len(t, roster, 4, "first offspring lands on month 34")
}

func TestBuildPopulation_RepresentativeUnitOnly(t *testing.T) {
	one := BuildPopulation(params(120, false), domain.DefaultRules())

	p := params(120, false)
	p.UnitCount = 500
	many := BuildPopulation(p, domain.DefaultRules())

	assert.Equal(t, one, many)
	for _, a := range many {
		assert.Equal(t, 1, a.Unit)
	}
}

func TestUnitHerd_Relabels(t *testing.T) {
	p := params(48, false)
	roster := BuildPopulation(p, domain.DefaultRules())

	want := []struct {
		unit int
		ids  []string
		role domain.FounderRole
	}{
		{1, []string{"A", "B"}, domain.FounderFirst},
		{2, []string{"C", "D"}, domain.FounderFirst},
		{3, []string{"E", "F"}, domain.FounderFirst},
		{14, []string{"AA", "AB"}, domain.FounderFirst},
	}
	for _, w := range want {
		herd := UnitHerd(roster, w.unit)
		require.Len(t, herd, len(roster))
		assert.Equal(t, w.ids, []string{herd[0].ID, herd[1].ID}, "unit %d", w.unit)
		assert.Equal(t, w.role, herd[0].FounderRole)
		assert.Equal(t, domain.FounderSecond, herd[1].FounderRole)

		byID := make(map[string]domain.Animal, len(herd))
		for _, a := range herd {
			assert.Equal(t, w.unit, a.Unit)
			byID[a.ID] = a
		}
		for _, a := range herd {
			for _, c := range a.Children {
				child, ok := byID[c]
				require.True(t, ok, "child %s of %s", c, a.ID)
				assert.Equal(t, a.ID, child.ParentID)
			}
		}
	}

	assert.Equal(t, "C-2", UnitHerd(roster, 2)[len(roster)-2].ID)
	assert.Equal(t, "A", roster[0].ID, "relabelling leaves the roster untouched")
}

func TestBuildPopulation_Lineage(t *testing.T) {
	p := params(120, false)
	roster := BuildPopulation(p, domain.DefaultRules())

	byID := make(map[string]domain.Animal, len(roster))
	for _, a := range roster {
		byID[a.ID] = a
	}

	a := byID["A"]
	assert.Equal(t, []string{"A-1", "A-2", "A-3", "A-4", "A-5", "A-6", "A-7", "A-8"}, a.Children)

	for _, animal := range roster {
		if animal.IsFounder() {
			assert.Empty(t, animal.ParentID)
			continue
		}
		parent, ok := byID[animal.ParentID]
		require.True(t, ok, "parent of %s", animal.ID)
		assert.Equal(t, parent.Generation+1, animal.Generation)
		assert.GreaterOrEqual(t, animal.AbsoluteBirthMonth, parent.AbsoluteBirthMonth+34)
		assert.Equal(t, 0, (animal.AbsoluteBirthMonth-parent.AbsoluteBirthMonth-34)%12)
		assert.LessOrEqual(t, animal.AbsoluteBirthMonth, p.EndAbs())
		assert.Contains(t, parent.Children, animal.ID)
	}

	grand := byID["A-1-1"]
	assert.Equal(t, 2, grand.Generation)
	assert.Equal(t, p.StartAbs()+68, grand.AbsoluteBirthMonth)
	assert.Equal(t, 2031, grand.BirthYear)
	assert.Equal(t, 8, grand.BirthMonth)

	for i := 1; i < len(roster); i++ {
		assert.LessOrEqual(t, roster[i-1].AbsoluteBirthMonth, roster[i].AbsoluteBirthMonth)
	}
}

func TestUnitHerdAndLivingCount(t *testing.T) {
	p := params(48, false)
	roster := BuildPopulation(p, domain.DefaultRules())

	herd := UnitHerd(roster, 2)
	require.Len(t, herd, 6)
	for _, a := range herd {
		assert.Equal(t, 2, a.Unit)
	}
	assert.Equal(t, 2, LivingCount(herd, p.StartAbs()+33))
	assert.Equal(t, 4, LivingCount(herd, p.StartAbs()+34))
	assert.Equal(t, 6, LivingCount(herd, p.StartAbs()+46))
}
