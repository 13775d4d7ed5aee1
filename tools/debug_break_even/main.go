package main

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/herdsim/internal/breakeven"
	"github.com/rgehrsitz/herdsim/internal/calculation"
	"github.com/rgehrsitz/herdsim/internal/config"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
)

// Dumps the monthly cumulative net and total value of the base simulation and every
// scenario of a config file side by side, for checking break-even detection by hand.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	cfg, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}

	runs := append([]domain.Scenario{{Name: "base", Parameters: cfg.Simulation}}, cfg.Scenarios...)
	engine := calculation.NewEngineWithRules(cfg.Rules)

	results := make([]*domain.ProjectionResult, len(runs))
	for i, s := range runs {
		res, err := engine.Project(s.Parameters)
		if err != nil {
			panic(fmt.Errorf("%s: %w", s.Name, err))
		}
		results[i] = res
	}

	// Find the shortest horizon across runs
	minLen := -1
	for _, r := range results {
		if minLen == -1 || len(r.Monthly) < minLen {
			minLen = len(r.Monthly)
		}
	}

	header := "Index"
	for i := range results {
		header += fmt.Sprintf(",S%d_Month,S%d_Net,S%d_CumNet,S%d_Asset,S%d_Total", i+1, i+1, i+1, i+1, i+1)
	}
	fmt.Println(header)

	for idx := 0; idx < minLen; idx++ {
		row := fmt.Sprintf("%d", idx)
		for _, r := range results {
			m := r.Monthly[idx]
			row += fmt.Sprintf(",%s,%s,%s,%s,%s",
				dateutil.Label(m.Year, m.Month),
				m.NetRevenue.StringFixed(0),
				m.CumulativeNet.StringFixed(0),
				m.AssetValue.StringFixed(0),
				m.TotalValue.StringFixed(0),
			)
		}
		fmt.Println(row)
	}

	fmt.Println()
	for i, r := range results {
		be := r.BreakEven
		fmt.Printf("S%d %s: investment=%s revenue=%s total=%s\n",
			i+1, runs[i].Name,
			be.InitialInvestment.StringFixed(0),
			describe(be.RevenueBreakEven),
			describe(be.TotalValueBreakEven))
	}
}

func describe(p *domain.BreakEvenPoint) string {
	if p == nil {
		return domain.NotProjected
	}
	return breakeven.Describe(p)
}
