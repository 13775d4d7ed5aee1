package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rgehrsitz/herdsim/internal/calculation"
	"github.com/rgehrsitz/herdsim/internal/domain"
	"github.com/rgehrsitz/herdsim/pkg/dateutil"
)

// Prints the month-by-month revenue, fee and value schedule of one animal of the
// default one-unit herd.
//
//	go run ./tools/print_schedule [animal-id] [months]
func main() {
	id := "A"
	if len(os.Args) > 1 {
		id = os.Args[1]
	}
	months := 48
	if len(os.Args) > 2 {
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Println("usage: print_schedule [animal-id] [months]")
			os.Exit(1)
		}
		months = n
	}

	params := domain.DefaultParameters()
	params.DurationMonths = months
	params.CGFEnabled = true
	rules := domain.DefaultRules()
	if err := params.Validate(rules); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	herd := calculation.UnitHerd(calculation.BuildPopulation(params, rules), 1)
	var animal *domain.Animal
	for i := range herd {
		if herd[i].ID == id {
			animal = &herd[i]
		}
	}
	if animal == nil {
		fmt.Printf("no animal %s within %d months\n", id, months)
		os.Exit(1)
	}

	fmt.Printf("%s: generation %d, anchor %s, lactation offset %d\n",
		animal.ID, animal.Generation, dateutil.LabelAbs(animal.AbsoluteBirthMonth), calculation.LactationOffset(animal, rules))
	fmt.Println("Index,Month,Age,Phase,CycleMonth,Revenue,CPF,CGF,Value")

	for i := 0; i < months; i++ {
		abs := params.StartAbs() + i
		if !animal.AliveAt(abs) {
			continue
		}
		cycle, ok := calculation.CycleMonth(animal, abs, rules)
		cycleText := "-"
		if ok {
			cycleText = strconv.Itoa(cycle)
		}
		cgf, _ := calculation.CGFCost(animal, abs, params, rules)

		fmt.Printf("%d,%s,%d,%s,%s,%s,%s,%s,%s\n",
			i,
			dateutil.LabelAbs(abs),
			animal.AgeAtAbs(abs),
			calculation.LactationPhase(animal, abs, rules),
			cycleText,
			calculation.MonthlyRevenue(animal, abs, rules).StringFixed(0),
			calculation.CPFCost(animal, abs, params, rules).StringFixed(0),
			cgf.StringFixed(0),
			calculation.AssetValue(animal, abs, params, rules).StringFixed(0),
		)
	}
}
