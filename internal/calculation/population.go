package calculation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
)

// FounderLabel returns the spreadsheet-style label for the n-th founder (0 = A, 25 = Z, 26 = AA)
func FounderLabel(n int) string {
	label := ""
	for n >= 0 {
		label = string(rune('A'+n%26)) + label
		n = n/26 - 1
	}
	return label
}

// FounderRoleFor returns the CPF role of the n-th founder; even indices open a pair
func FounderRoleFor(n int) domain.FounderRole {
	if n%2 == 0 {
		return domain.FounderFirst
	}
	return domain.FounderSecond
}

// founderIndex is the inverse of FounderLabel
func founderIndex(label string) int {
	n := 0
	for _, r := range label {
		n = n*26 + int(r-'A') + 1
	}
	return n - 1
}

// BuildPopulation builds the representative unit: founders A and B and every descendant
// born inside the horizon. Every unit shares this lineage, so the roster size does not
// depend on the unit count. The result is ordered by birth month, then ID.
func BuildPopulation(params domain.SimulationParameters, rules domain.Rules) []domain.Animal {
	startAbs := params.StartAbs()
	endAbs := params.EndAbs()
	startYear, startMonth := dateutil.FromAbs(startAbs)

	var animals []*domain.Animal
	var queue []*domain.Animal

	for n := 0; n < domain.FoundersPerUnit; n++ {
		founder := &domain.Animal{
			ID:                 FounderLabel(n),
			Generation:         0,
			Unit:               1,
			BirthYear:          startYear,
			BirthMonth:         startMonth,
			AbsoluteBirthMonth: startAbs,
			FounderRole:        FounderRoleFor(n),
		}
		animals = append(animals, founder)
		queue = append(queue, founder)
	}

	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]

		for seq := 1; ; seq++ {
			birthAbs := parent.AbsoluteBirthMonth + rules.MaturationAge + (seq-1)*rules.BirthInterval
			if birthAbs > endAbs {
				break
			}
			year, month := dateutil.FromAbs(birthAbs)
			child := &domain.Animal{
				ID:                 fmt.Sprintf("%s-%d", parent.ID, seq),
				Generation:         parent.Generation + 1,
				ParentID:           parent.ID,
				Unit:               1,
				BirthYear:          year,
				BirthMonth:         month,
				AbsoluteBirthMonth: birthAbs,
			}
			parent.Children = append(parent.Children, child.ID)
			animals = append(animals, child)
			queue = append(queue, child)
		}
	}

	roster := make([]domain.Animal, len(animals))
	for i, a := range animals {
		roster[i] = *a
	}
	sort.SliceStable(roster, func(i, j int) bool {
		a, b := roster[i], roster[j]
		if a.AbsoluteBirthMonth != b.AbsoluteBirthMonth {
			return a.AbsoluteBirthMonth < b.AbsoluteBirthMonth
		}
		return a.ID < b.ID
	})
	return roster
}

// UnitHerd returns the animals of one unit, keeping roster order. Unit n is the
// representative roster relabelled onto founders 2(n-1) and 2(n-1)+1, so unit 2
// starts from C and D.
func UnitHerd(roster []domain.Animal, unit int) []domain.Animal {
	herd := make([]domain.Animal, len(roster))
	copy(herd, roster)
	if unit <= 1 {
		return herd
	}

	relabel := func(id string) string {
		if id == "" {
			return ""
		}
		head, rest, _ := strings.Cut(id, "-")
		n := (unit-1)*domain.FoundersPerUnit + founderIndex(head)%domain.FoundersPerUnit
		if rest == "" {
			return FounderLabel(n)
		}
		return FounderLabel(n) + "-" + rest
	}

	for i := range herd {
		a := &herd[i]
		a.Unit = unit
		a.ID = relabel(a.ID)
		a.ParentID = relabel(a.ParentID)
		if len(a.Children) > 0 {
			children := make([]string, len(a.Children))
			for j, c := range a.Children {
				children[j] = relabel(c)
			}
			a.Children = children
		}
	}
	return herd
}

// LivingCount counts the animals present at an absolute month
func LivingCount(herd []domain.Animal, abs int) int {
	n := 0
	for i := range herd {
		if herd[i].AliveAt(abs) {
			n++
		}
	}
	return n
}
