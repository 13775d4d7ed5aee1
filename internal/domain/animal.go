package domain

import "github.com/rgehrsitz/herdsim/pkg/dateutil"

// FounderRole distinguishes the two founders of a unit, which follow different CPF schedules
type FounderRole string

const (
	FounderFirst  FounderRole = "first"
	FounderSecond FounderRole = "second"
)

// Animal is one buffalo in the simulated herd. Founders use their acquisition
// month as the birth-equivalent anchor.
type Animal struct {
	ID                 string      `json:"id"`
	Generation         int         `json:"generation"`
	ParentID           string      `json:"parent_id,omitempty"`
	Unit               int         `json:"unit"`
	BirthYear          int         `json:"birth_year"`
	BirthMonth         int         `json:"birth_month"`
	AbsoluteBirthMonth int         `json:"absolute_birth_month"`
	FounderRole        FounderRole `json:"founder_role,omitempty"`
	Children           []string    `json:"children,omitempty"`
}

// IsFounder reports whether the animal was acquired rather than born in the simulation
func (a *Animal) IsFounder() bool {
	return a.Generation == 0
}

// AgeInMonths returns the age at the given zero-based calendar month, never negative
func (a *Animal) AgeInMonths(year, month int) int {
	age := (year-a.BirthYear)*12 + (month - a.BirthMonth)
	if age < 0 {
		return 0
	}
	return age
}

// AgeAtAbs is AgeInMonths for an absolute month
func (a *Animal) AgeAtAbs(abs int) int {
	y, m := dateutil.FromAbs(abs)
	return a.AgeInMonths(y, m)
}

// AliveAt reports whether the animal exists at the absolute month
func (a *Animal) AliveAt(abs int) bool {
	return a.AbsoluteBirthMonth <= abs
}
