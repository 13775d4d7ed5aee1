package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/herdsim/internal/calculation"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
)

// RosterLine is one animal of a family tree with the branch drawn before it
type RosterLine struct {
	Prefix string
	Animal *domain.Animal
	Age    int
	Value  decimal.Decimal
}

// RosterLines walks the lineage of one unit depth first: each founder, then every
// calf under its mother in birth order. Age and value are taken at the end of the horizon.
func RosterLines(result *domain.ProjectionResult, unit int) []RosterLine {
	herd := calculation.UnitHerd(result.Roster, unit)
	byID := make(map[string]*domain.Animal, len(herd))
	var founders []*domain.Animal
	for i := range herd {
		a := &herd[i]
		byID[a.ID] = a
		if a.IsFounder() {
			founders = append(founders, a)
		}
	}

	end := result.Parameters.EndAbs()
	var lines []RosterLine

	var walk func(a *domain.Animal, prefix, childPrefix string)
	walk = func(a *domain.Animal, prefix, childPrefix string) {
		lines = append(lines, RosterLine{
			Prefix: prefix,
			Animal: a,
			Age:    a.AgeAtAbs(end),
			Value:  calculation.AssetValue(a, end, result.Parameters, result.Rules),
		})

		var children []*domain.Animal
		for _, id := range a.Children {
			if c, ok := byID[id]; ok {
				children = append(children, c)
			}
		}
		for i, c := range children {
			if i == len(children)-1 {
				walk(c, childPrefix+"└─ ", childPrefix+"   ")
			} else {
				walk(c, childPrefix+"├─ ", childPrefix+"│  ")
			}
		}
	}

	for _, f := range founders {
		walk(f, "", "")
	}
	return lines
}

// Describe renders the animal part of a roster line without the branch prefix
func (l RosterLine) Describe() string {
	a := l.Animal
	if a.IsFounder() {
		return fmt.Sprintf("%s  founder (%s)  acquired %s  %s",
			a.ID, a.FounderRole, dateutil.LabelAbs(a.AbsoluteBirthMonth), FormatCurrency(l.Value))
	}
	return fmt.Sprintf("%s  gen %d  born %s  age %dm  %s",
		a.ID, a.Generation, dateutil.LabelAbs(a.AbsoluteBirthMonth), l.Age, FormatCurrency(l.Value))
}

// FormatRoster prints the family tree of unit 1, or of every unit when allUnits is set
func FormatRoster(result *domain.ProjectionResult, allUnits bool) string {
	var b strings.Builder
	p := result.Parameters

	units := 1
	if allUnits {
		units = p.UnitCount
	}

	fmt.Fprintf(&b, "HERD ROSTER AT %s\n", strings.ToUpper(dateutil.LabelAbs(p.EndAbs())))
	for unit := 1; unit <= units; unit++ {
		lines := RosterLines(result, unit)
		total := decimal.Zero
		for _, l := range lines {
			total = total.Add(l.Value)
		}

		fmt.Fprintln(&b, strings.Repeat("-", 72))
		fmt.Fprintf(&b, "Unit %d: %d animals, herd value %s\n", unit, len(lines), FormatCurrency(total))
		fmt.Fprintln(&b, strings.Repeat("-", 72))
		for _, l := range lines {
			fmt.Fprintf(&b, "%s%s\n", l.Prefix, l.Describe())
		}
	}

	switch {
	case allUnits || p.UnitCount == 1:
	case p.UnitCount == 2:
		fmt.Fprintln(&b, "\nUnit 2 follows the same lineage. Use --all to list it.")
	default:
		fmt.Fprintf(&b, "\nUnits 2-%d follow the same lineage. Use --all to list them.\n", p.UnitCount)
	}
	return b.String()
}
