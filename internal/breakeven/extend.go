package breakeven

import (
	"fmt"

	"github.com/rgehrsitz/herdsim/internal/domain"
)

// Projector runs one projection
type Projector interface {
	Project(params domain.SimulationParameters) (*domain.ProjectionResult, error)
}

// Extension holds the break-even analysis of a run alongside the analysis of the
// same parameters projected out to the longest allowed horizon.
type Extension struct {
	Base           domain.BreakEvenAnalysis `json:"base"`
	BaseMonths     int                      `json:"base_months"`
	Analysis       domain.BreakEvenAnalysis `json:"analysis"`
	HorizonMonths  int                      `json:"horizon_months"`
	Rerun          bool                     `json:"rerun"`
	NeverRecovered bool                     `json:"never_recovered"`
}

// Extend reruns the projection at the maximum horizon when the base run did not reach
// both break-even points. The base result is reused when nothing is missing or the
// horizon cannot grow.
func Extend(p Projector, base *domain.ProjectionResult) (*Extension, error) {
	if base == nil {
		return nil, fmt.Errorf("extend break-even: no base projection")
	}

	ext := &Extension{
		Base:          base.BreakEven,
		BaseMonths:    base.Parameters.DurationMonths,
		Analysis:      base.BreakEven,
		HorizonMonths: base.Parameters.DurationMonths,
	}

	complete := base.BreakEven.RevenueBreakEven != nil && base.BreakEven.TotalValueBreakEven != nil
	maxMonths := base.Rules.MaxDurationMonths
	if complete || maxMonths <= base.Parameters.DurationMonths {
		ext.NeverRecovered = base.BreakEven.TotalValueBreakEven == nil
		return ext, nil
	}

	params := base.Parameters
	params.DurationMonths = maxMonths
	extended, err := p.Project(params)
	if err != nil {
		return nil, fmt.Errorf("extend break-even to %d months: %w", maxMonths, err)
	}

	ext.Analysis = extended.BreakEven
	ext.HorizonMonths = maxMonths
	ext.Rerun = true
	ext.NeverRecovered = extended.BreakEven.TotalValueBreakEven == nil
	return ext, nil
}
