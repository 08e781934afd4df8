package output

import (
	"sort"

	"github.com/mattphotonman/Financial/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName   string
	YearsSustained int
	ReachedCap     bool
	MarginYears    int // lead over the runner-up
	FinalBalance   decimal.Decimal
}

// AnalyzeScenarios determines the scenario sustaining withdrawals the longest.
// Ties are broken by the larger final balance.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	ranks := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].YearsSustained != ranks[j].YearsSustained {
			return ranks[i].YearsSustained > ranks[j].YearsSustained
		}
		return ranks[i].FinalBalance.GreaterThan(ranks[j].FinalBalance)
	})
	best := ranks[0]
	rec := Recommendation{
		ScenarioName:   best.Name,
		YearsSustained: best.YearsSustained,
		ReachedCap:     best.ReachedCap,
		FinalBalance:   best.FinalBalance,
	}
	if len(ranks) > 1 {
		rec.MarginYears = best.YearsSustained - ranks[1].YearsSustained
	}
	return rec
}
