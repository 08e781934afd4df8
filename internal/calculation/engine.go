package calculation

import (
	"context"
	"fmt"

	"github.com/mattphotonman/Financial/internal/domain"
	"github.com/shopspring/decimal"
)

// HorizonEngine runs savings scenarios and assembles their summaries
type HorizonEngine struct {
	Debug  bool // Log the accumulation and every withdrawal year
	Logger Logger
}

// NewHorizonEngine creates a new engine with a no-op logger
func NewHorizonEngine() *HorizonEngine {
	return &HorizonEngine{
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (he *HorizonEngine) SetLogger(l Logger) {
	if l == nil {
		he.Logger = NopLogger{}
		return
	}
	he.Logger = l
}

// RunScenario projects a single scenario using the assumptions resolved from config.
func (he *HorizonEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario) (*domain.ScenarioSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	assumptions := config.ResolveAssumptions(scenario)
	projection := ProjectHorizon(scenario.Plan, assumptions)

	if he.Debug {
		he.Logger.Debugf("Scenario %q", scenario.Name)
		he.Logger.Debugf("  Real growth multiplier: %.10f", projection.Multiplier)
		he.Logger.Debugf("  Contributing %s for %d years", scenario.Plan.YearlyContribution.StringFixed(2), scenario.Plan.YearsContributing)
		he.Logger.Debugf("  Accumulated balance: $%.2f", projection.AccumulatedBalance)
		for _, year := range projection.Schedule {
			he.Logger.Debugf("  Year %3d: begin=$%s withdraw=$%s growth=$%s end=$%s",
				year.Year,
				year.BeginningBalance.StringFixed(2),
				year.Withdrawal.StringFixed(2),
				year.Growth.StringFixed(2),
				year.EndingBalance.StringFixed(2))
		}
	}

	if projection.ReachedCap {
		he.Logger.Infof("Scenario %q was not depleted within %d years", scenario.Name, assumptions.MaxYears)
	}

	summary := &domain.ScenarioSummary{
		Name:                 scenario.Name,
		Plan:                 scenario.Plan,
		Assumptions:          assumptions,
		RealGrowthMultiplier: decimalFromFloat(projection.Multiplier),
		AccumulatedBalance:   decimalFromFloat(projection.AccumulatedBalance),
		YearsSustained:       projection.YearsSustained,
		ReachedCap:           projection.ReachedCap,
		FinalBalance:         decimalFromFloat(projection.AccumulatedBalance),
		Schedule:             projection.Schedule,
	}
	if n := len(projection.Schedule); n > 0 {
		summary.FinalBalance = projection.Schedule[n-1].EndingBalance
	}

	return summary, nil
}

// RunScenarios runs all scenarios and returns a comparison
func (he *HorizonEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := make([]domain.ScenarioSummary, len(config.Scenarios))

	for i := range config.Scenarios {
		summary, err := he.RunScenario(ctx, config, &config.Scenarios[i])
		if err != nil {
			return nil, fmt.Errorf("scenario %q failed: %w", config.Scenarios[i].Name, err)
		}
		scenarios[i] = *summary
	}

	comparison := &domain.ScenarioComparison{
		Scenarios:      scenarios,
		LongestHorizon: longestHorizon(scenarios),
		Assumptions:    config.ResolveAssumptions(nil).GenerateAssumptions(),
	}

	return comparison, nil
}

// longestHorizon names the scenario sustaining the most years. Ties go to the larger
// final balance, then to the earlier scenario.
func longestHorizon(scenarios []domain.ScenarioSummary) string {
	var best string
	bestYears := -1
	bestBalance := decimal.Zero
	for _, scenario := range scenarios {
		if scenario.YearsSustained > bestYears ||
			(scenario.YearsSustained == bestYears && scenario.FinalBalance.GreaterThan(bestBalance)) {
			best = scenario.Name
			bestYears = scenario.YearsSustained
			bestBalance = scenario.FinalBalance
		}
	}
	return best
}
