package domain

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/herdsim/pkg/dateutil"
)

// FoundersPerUnit is the number of founder animals bought with every unit
const FoundersPerUnit = 2

// ErrInvalidParameters is matched by every parameter or rules validation failure
var ErrInvalidParameters = errors.New("invalid parameters")

// ValidationError reports a single rejected field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidParameters.Error(), e.Field, e.Message)
}

// Is lets errors.Is(err, ErrInvalidParameters) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidParameters
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// SimulationParameters is the complete input of one projection run.
// It is a comparable value so it can key a memo cache directly.
type SimulationParameters struct {
	UnitCount      int  `yaml:"unit_count" json:"unit_count"`
	StartYear      int  `yaml:"start_year" json:"start_year"`
	StartMonth     int  `yaml:"start_month" json:"start_month"` // 0 = January
	StartDay       int  `yaml:"start_day" json:"start_day"`
	DurationMonths int  `yaml:"duration_months" json:"duration_months"`
	CGFEnabled     bool `yaml:"cgf_enabled" json:"cgf_enabled"`
}

// DefaultParameters returns a one-unit, ten-year run starting January 2026
func DefaultParameters() SimulationParameters {
	return SimulationParameters{
		UnitCount:      1,
		StartYear:      2026,
		StartMonth:     0,
		StartDay:       1,
		DurationMonths: 120,
		CGFEnabled:     true,
	}
}

// Validate rejects parameters the engine cannot project
func (p SimulationParameters) Validate(rules Rules) error {
	if p.UnitCount < 1 {
		return invalid("unit_count", "must be at least 1, got %d", p.UnitCount)
	}
	if rules.MaxUnitCount > 0 && p.UnitCount > rules.MaxUnitCount {
		return invalid("unit_count", "must not exceed %d, got %d", rules.MaxUnitCount, p.UnitCount)
	}
	if p.StartYear < 1 || p.StartYear > 9999 {
		return invalid("start_year", "must be between 1 and 9999, got %d", p.StartYear)
	}
	if p.StartMonth < 0 || p.StartMonth > 11 {
		return invalid("start_month", "must be between 0 and 11, got %d", p.StartMonth)
	}
	if days := dateutil.DaysInMonth(p.StartYear, p.StartMonth); p.StartDay < 1 || p.StartDay > days {
		return invalid("start_day", "must be between 1 and %d for %s, got %d",
			days, dateutil.Label(p.StartYear, p.StartMonth), p.StartDay)
	}
	if p.DurationMonths < 1 {
		return invalid("duration_months", "must be at least 1, got %d", p.DurationMonths)
	}
	if rules.MaxDurationMonths > 0 && p.DurationMonths > rules.MaxDurationMonths {
		return invalid("duration_months", "must not exceed %d, got %d", rules.MaxDurationMonths, p.DurationMonths)
	}
	return nil
}

// StartAbs is the first simulated month as months since year zero
func (p SimulationParameters) StartAbs() int {
	return dateutil.AbsMonth(p.StartYear, p.StartMonth)
}

// EndAbs is the last simulated month (inclusive)
func (p SimulationParameters) EndAbs() int {
	return p.StartAbs() + p.DurationMonths - 1
}

// Years returns the number of 12-month simulation years, counting a partial last year
func (p SimulationParameters) Years() int {
	return (p.DurationMonths + 11) / 12
}
