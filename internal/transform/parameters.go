package transform

import (
	"fmt"

	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
)

// AddUnits buys additional units on top of the base investment.
type AddUnits struct {
	Units int // Number of units to add (may be negative to sell)
}

func (t *AddUnits) Name() string { return "add_units" }

func (t *AddUnits) Description() string {
	return fmt.Sprintf("Add %d unit(s)", t.Units)
}

func (t *AddUnits) Validate(base domain.SimulationParameters) error {
	if base.UnitCount+t.Units < 1 {
		return NewTransformError(t.Name(), "validate",
			fmt.Sprintf("resulting unit count %d must be at least 1", base.UnitCount+t.Units), domain.ErrInvalidParameters)
	}
	return nil
}

func (t *AddUnits) Apply(base domain.SimulationParameters) (domain.SimulationParameters, error) {
	base.UnitCount += t.Units
	return base, nil
}

// ScaleUnits multiplies the unit count.
type ScaleUnits struct {
	Factor int
}

func (t *ScaleUnits) Name() string { return "scale_units" }

func (t *ScaleUnits) Description() string {
	return fmt.Sprintf("Multiply the unit count by %d", t.Factor)
}

func (t *ScaleUnits) Validate(base domain.SimulationParameters) error {
	if t.Factor < 1 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("factor must be at least 1, got %d", t.Factor), domain.ErrInvalidParameters)
	}
	return nil
}

func (t *ScaleUnits) Apply(base domain.SimulationParameters) (domain.SimulationParameters, error) {
	base.UnitCount *= t.Factor
	return base, nil
}

// SetHorizon replaces the projection horizon.
type SetHorizon struct {
	Months int
}

func (t *SetHorizon) Name() string { return "set_horizon" }

func (t *SetHorizon) Description() string {
	return fmt.Sprintf("Project over %d months", t.Months)
}

func (t *SetHorizon) Validate(base domain.SimulationParameters) error {
	if t.Months < 1 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("months must be at least 1, got %d", t.Months), domain.ErrInvalidParameters)
	}
	return nil
}

func (t *SetHorizon) Apply(base domain.SimulationParameters) (domain.SimulationParameters, error) {
	base.DurationMonths = t.Months
	return base, nil
}

// ExtendHorizon lengthens (or with negative Months shortens) the horizon.
type ExtendHorizon struct {
	Months int
}

func (t *ExtendHorizon) Name() string { return "extend_horizon" }

func (t *ExtendHorizon) Description() string {
	return fmt.Sprintf("Extend the horizon by %d months", t.Months)
}

func (t *ExtendHorizon) Validate(base domain.SimulationParameters) error {
	if base.DurationMonths+t.Months < 1 {
		return NewTransformError(t.Name(), "validate",
			fmt.Sprintf("resulting horizon %d must be at least 1 month", base.DurationMonths+t.Months), domain.ErrInvalidParameters)
	}
	return nil
}

func (t *ExtendHorizon) Apply(base domain.SimulationParameters) (domain.SimulationParameters, error) {
	base.DurationMonths += t.Months
	return base, nil
}

// ShiftStart moves the acquisition date by whole months. The start day is clamped
// to the length of the new month.
type ShiftStart struct {
	Months int
}

func (t *ShiftStart) Name() string { return "shift_start" }

func (t *ShiftStart) Description() string {
	if t.Months < 0 {
		return fmt.Sprintf("Start %d months earlier", -t.Months)
	}
	return fmt.Sprintf("Delay the start by %d months", t.Months)
}

func (t *ShiftStart) Validate(base domain.SimulationParameters) error {
	year, _ := dateutil.FromAbs(base.StartAbs() + t.Months)
	if year < 1 || year > 9999 {
		return NewTransformError(t.Name(), "validate", fmt.Sprintf("shifted start year %d is out of range", year), domain.ErrInvalidParameters)
	}
	return nil
}

func (t *ShiftStart) Apply(base domain.SimulationParameters) (domain.SimulationParameters, error) {
	base.StartYear, base.StartMonth = dateutil.FromAbs(base.StartAbs() + t.Months)
	if days := dateutil.DaysInMonth(base.StartYear, base.StartMonth); base.StartDay > days {
		base.StartDay = days
	}
	return base, nil
}

// SetCGF switches the Cattle Growing Fund on or off.
type SetCGF struct {
	Enabled bool
}

func (t *SetCGF) Name() string { return "set_cgf" }

func (t *SetCGF) Description() string {
	if t.Enabled {
		return "Include the Cattle Growing Fund"
	}
	return "Exclude the Cattle Growing Fund"
}

func (t *SetCGF) Validate(base domain.SimulationParameters) error { return nil }

func (t *SetCGF) Apply(base domain.SimulationParameters) (domain.SimulationParameters, error) {
	base.CGFEnabled = t.Enabled
	return base, nil
}
