package calculation

import (
	"fmt"

	"github.com/rgehrsitz/herdsim/internal/breakeven"
	"github.com/rgehrsitz/herdsim/internal/domain"
)

// Projector runs the projection pipeline for one parameter set
type Projector interface {
	Project(params domain.SimulationParameters) (*domain.ProjectionResult, error)
}

// Engine runs the full projection pipeline: population, revenue, fees,
// valuation, then break-even detection and the yearly roll-up.
type Engine struct {
	Rules  domain.Rules
	Logger Logger
}

// NewEngine creates an engine using the published schedule
func NewEngine() *Engine {
	return NewEngineWithRules(domain.DefaultRules())
}

// NewEngineWithRules creates an engine with an overridden rules table
func NewEngineWithRules(rules domain.Rules) *Engine {
	return &Engine{
		Rules:  rules,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Validate checks the rules table and the parameters before a run
func (e *Engine) Validate(params domain.SimulationParameters) error {
	if err := e.Rules.Validate(); err != nil {
		return err
	}
	return params.Validate(e.Rules)
}

// Project derives the roster, ledger, summaries, yearly aggregates and break-even
// analysis from params. It is deterministic and holds no state between calls.
func (e *Engine) Project(params domain.SimulationParameters) (*domain.ProjectionResult, error) {
	if err := e.Validate(params); err != nil {
		return nil, fmt.Errorf("project: %w", err)
	}
	rules := e.Rules

	herd := BuildPopulation(params, rules)
	e.Logger.Debugf("population: %d animals in the representative unit, scaled to %d units",
		len(herd), params.UnitCount)

	ledger := BuildLedger(herd, params, rules)
	monthly := Summarize(ledger, params)
	investment := rules.InitialInvestment(params.UnitCount)
	analysis := breakeven.Detect(monthly, investment)
	yearly := AggregateYears(monthly, analysis, params)
	breakdowns := YearEndBreakdowns(herd, params, rules)

	e.Logger.Debugf("ledger: %d entries over %d months, final total value %s against investment %s",
		len(ledger), params.DurationMonths, analysis.FinalTotalValue.StringFixed(0), investment.StringFixed(0))
	if analysis.TotalValueBreakEven == nil {
		e.Logger.Infof("break-even not reached within %d months", params.DurationMonths)
	}

	return &domain.ProjectionResult{
		Parameters:      params,
		Rules:           rules,
		Roster:          herd,
		Ledger:          ledger,
		Monthly:         monthly,
		Yearly:          yearly,
		AssetBreakdowns: breakdowns,
		BreakEven:       analysis,
	}, nil
}
