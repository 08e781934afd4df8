package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/mattphotonman/Financial/internal/calculation"
	"github.com/mattphotonman/Financial/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	res, err := calc.NewHorizonEngine().RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Longest schedule across scenarios
	maxLen := 0
	for _, s := range res.Scenarios {
		if len(s.Schedule) > maxLen {
			maxLen = len(s.Schedule)
		}
	}

	// Header
	header := "Year"
	for i := range res.Scenarios {
		header += fmt.Sprintf(",S%d_Begin,S%d_Growth,S%d_End", i+1, i+1, i+1)
	}
	fmt.Println(header)

	// Beginning balance, growth and ending balance side by side; blank once a scenario is depleted
	for idx := 0; idx < maxLen; idx++ {
		row := fmt.Sprintf("%d", idx+1)
		for _, s := range res.Scenarios {
			if idx >= len(s.Schedule) {
				row += ",,,"
				continue
			}
			y := s.Schedule[idx]
			row += fmt.Sprintf(",%s,%s,%s", y.BeginningBalance.StringFixed(0), y.Growth.StringFixed(0), y.EndingBalance.StringFixed(0))
		}
		fmt.Println(row)
	}

	// Contribution each scenario would need to match the longest horizon
	var target int
	for _, s := range res.Scenarios {
		if s.Name == res.LongestHorizon {
			target = s.YearsSustained
		}
	}
	fmt.Printf("\nLongest horizon: %s (%d years)\n", res.LongestHorizon, target)
	for i, s := range res.Scenarios {
		be, err := calc.RequiredContribution(s.Plan, cfg.ResolveAssumptions(&cfg.Scenarios[i]), target)
		fmt.Printf("BreakEven %s: contribution=%s (current %s), err=%v\n", s.Name, be.StringFixed(2), s.Plan.YearlyContribution.StringFixed(2), err)
	}
}
