package integration

import (
	"context"
	"testing"

	"github.com/mattphotonman/Financial/internal/calculation"
	"github.com/mattphotonman/Financial/internal/config"
	"github.com/mattphotonman/Financial/internal/domain"
	"github.com/neilotoole/slogt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadExample(t *testing.T) *domain.Configuration {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	return cfg
}

func TestEndToEndCalculation(t *testing.T) {
	cfg := loadExample(t)
	require.Len(t, cfg.Scenarios, 4)

	engine := calculation.NewHorizonEngine()
	engine.SetLogger(calculation.NewSlogLogger(slogt.New(t)))
	engine.Debug = true

	results, err := engine.RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, results.Scenarios, 4)

	want := map[string]struct {
		years      int
		reachedCap bool
	}{
		"Baseline":               {22, false},
		"Frugal Retirement":      {35, false},
		"Late Start High Return": {99, true},
		"Short Saver":            {1, false},
	}
	for _, sc := range results.Scenarios {
		w, ok := want[sc.Name]
		require.True(t, ok, "unexpected scenario %q", sc.Name)
		assert.Equal(t, w.years, sc.YearsSustained, sc.Name)
		assert.Equal(t, w.reachedCap, sc.ReachedCap, sc.Name)
	}
	assert.Equal(t, "Late Start High Return", results.LongestHorizon)
	assert.NotEmpty(t, results.Assumptions)
}

func TestEngineAgreesWithCoreFunction(t *testing.T) {
	cfg := loadExample(t)
	results, err := calculation.NewHorizonEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)

	for i, sc := range results.Scenarios {
		a := cfg.ResolveAssumptions(&cfg.Scenarios[i])
		years := calculation.NumYearsFromSavings(
			sc.Plan.YearsContributing,
			sc.Plan.YearlyContribution.InexactFloat64(),
			sc.Plan.YearlyWithdrawal.InexactFloat64(),
			a.MarketReturn.InexactFloat64(),
			a.InflationRate.InexactFloat64(),
			a.MaxYears,
		)
		assert.Equal(t, years, sc.YearsSustained, sc.Name)
	}
}

func TestScenarioAssumptionsOverrideGlobals(t *testing.T) {
	cfg := loadExample(t)
	late := cfg.ResolveAssumptions(&cfg.Scenarios[2])
	assert.True(t, late.MarketReturn.Equal(decimal.NewFromFloat(0.07)))
	assert.True(t, late.InflationRate.Equal(decimal.NewFromFloat(0.03)))
	assert.Equal(t, 100, late.MaxYears)

	baseline := cfg.ResolveAssumptions(&cfg.Scenarios[0])
	assert.True(t, baseline.MarketReturn.Equal(decimal.NewFromFloat(0.04)))
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	_, err := parser.Parse([]byte(`
scenarios:
  - name: "Negative"
    plan:
      years_contributing: -3
      yearly_contribution: 1000
      yearly_withdrawal: 1000
`))
	assert.ErrorIs(t, err, config.ErrInvalidInput)

	_, err = parser.Parse([]byte(`
global_assumptions:
  max_years: 0
scenarios:
  - name: "Capless"
    plan:
      years_contributing: 3
      yearly_contribution: 1000
      yearly_withdrawal: 1000
`))
	assert.ErrorIs(t, err, config.ErrInvalidInput)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := calculation.NewHorizonEngine().RunScenarios(ctx, loadExample(t))
	assert.ErrorIs(t, err, context.Canceled)
}
