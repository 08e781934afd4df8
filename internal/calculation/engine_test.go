package calculation

import (
	"context"
	"testing"

	"github.com/mattphotonman/Financial/internal/domain"
	"github.com/neilotoole/slogt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfiguration() *domain.Configuration {
	maxYears := 50
	inflation := decimal.NewFromFloat(0.02)
	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name: "Baseline",
				Plan: domain.SavingsPlan{
					YearsContributing:  30,
					YearlyContribution: decimal.NewFromInt(60000),
					YearlyWithdrawal:   decimal.NewFromInt(90000),
				},
			},
			{
				Name: "Frugal",
				Plan: domain.SavingsPlan{
					YearsContributing:  30,
					YearlyContribution: decimal.NewFromInt(60000),
					YearlyWithdrawal:   decimal.NewFromInt(60000),
				},
			},
			{
				Name: "Low Inflation",
				Plan: domain.SavingsPlan{
					YearsContributing:  30,
					YearlyContribution: decimal.NewFromInt(60000),
					YearlyWithdrawal:   decimal.NewFromInt(90000),
				},
				Assumptions: &domain.AssumptionOverrides{InflationRate: &inflation, MaxYears: &maxYears},
			},
		},
	}
}

func TestNewHorizonEngine(t *testing.T) {
	engine := NewHorizonEngine()
	require.NotNil(t, engine)
	assert.IsType(t, NopLogger{}, engine.Logger)

	engine.SetLogger(NewSlogLogger(slogt.New(t)))
	assert.IsType(t, &SlogLogger{}, engine.Logger)

	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}

func TestHorizonEngine_RunScenario(t *testing.T) {
	engine := NewHorizonEngine()
	engine.Debug = true
	engine.SetLogger(NewSlogLogger(slogt.New(t)))

	cfg := testConfiguration()
	summary, err := engine.RunScenario(context.Background(), cfg, &cfg.Scenarios[0])
	require.NoError(t, err)

	assert.Equal(t, "Baseline", summary.Name)
	assert.Equal(t, 22, summary.YearsSustained)
	assert.False(t, summary.ReachedCap)
	assert.Equal(t, 100, summary.Assumptions.MaxYears)
	assert.InDelta(t, 1941295.32, summary.AccumulatedBalance.InexactFloat64(), 0.01)
	assert.InDelta(t, 1.00483092, summary.RealGrowthMultiplier.InexactFloat64(), 1e-8)
	require.Len(t, summary.Schedule, 23)
	assert.True(t, summary.FinalBalance.Equal(summary.Schedule[22].EndingBalance))
	assert.True(t, summary.FinalBalance.IsNegative())
}

func TestHorizonEngine_RunScenario_ScenarioOverrides(t *testing.T) {
	engine := NewHorizonEngine()
	cfg := testConfiguration()

	summary, err := engine.RunScenario(context.Background(), cfg, &cfg.Scenarios[2])
	require.NoError(t, err)

	assert.Equal(t, 50, summary.Assumptions.MaxYears)
	assert.Equal(t, "0.02", summary.Assumptions.InflationRate.String())
	expected := NumYearsFromSavings(30, 60000, 90000, 0.04, 0.02, 50)
	assert.Equal(t, expected, summary.YearsSustained)
	assert.Greater(t, summary.YearsSustained, 22)
}

func TestHorizonEngine_RunScenario_CanceledContext(t *testing.T) {
	engine := NewHorizonEngine()
	cfg := testConfiguration()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	summary, err := engine.RunScenario(ctx, cfg, &cfg.Scenarios[0])
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHorizonEngine_RunScenarios(t *testing.T) {
	engine := NewHorizonEngine()
	cfg := testConfiguration()

	results, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results.Scenarios, 3)

	assert.Equal(t, "Baseline", results.Scenarios[0].Name)
	assert.Equal(t, 22, results.Scenarios[0].YearsSustained)
	assert.Equal(t, 35, results.Scenarios[1].YearsSustained)
	assert.Equal(t, NumYearsFromSavings(30, 60000, 90000, 0.04, 0.02, 50), results.Scenarios[2].YearsSustained)
	assert.Equal(t, 38, results.Scenarios[2].YearsSustained)
	assert.Equal(t, "Low Inflation", results.LongestHorizon)
	assert.NotEmpty(t, results.Assumptions)
}

func TestHorizonEngine_RunScenarios_CanceledContext(t *testing.T) {
	engine := NewHorizonEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := engine.RunScenarios(ctx, testConfiguration())
	assert.Nil(t, results)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "Baseline")
}

func TestLongestHorizon_TieBreaksOnFinalBalance(t *testing.T) {
	scenarios := []domain.ScenarioSummary{
		{Name: "A", YearsSustained: 99, FinalBalance: decimal.NewFromInt(100)},
		{Name: "B", YearsSustained: 99, FinalBalance: decimal.NewFromInt(500)},
		{Name: "C", YearsSustained: 10, FinalBalance: decimal.NewFromInt(900)},
	}
	assert.Equal(t, "B", longestHorizon(scenarios))
	assert.Equal(t, "", longestHorizon(nil))
}
