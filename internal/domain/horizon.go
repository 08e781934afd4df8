package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Default assumptions used when neither the configuration nor the scenario sets a value.
var (
	DefaultMarketReturn  = decimal.NewFromFloat(0.04)
	DefaultInflationRate = decimal.NewFromFloat(0.035)
)

// DefaultMaxYears is the default cap on the number of withdrawal years simulated.
const DefaultMaxYears = 100

// SavingsPlan describes the contribution phase and the withdrawal that follows it.
// Amounts are in present-day currency units.
type SavingsPlan struct {
	YearsContributing  int             `yaml:"years_contributing" json:"years_contributing"`
	YearlyContribution decimal.Decimal `yaml:"yearly_contribution" json:"yearly_contribution"`
	YearlyWithdrawal   decimal.Decimal `yaml:"yearly_withdrawal" json:"yearly_withdrawal"`
}

// HorizonAssumptions holds the market assumptions applied to a savings plan
type HorizonAssumptions struct {
	MarketReturn  decimal.Decimal `yaml:"market_return" json:"market_return"`
	InflationRate decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	MaxYears      int             `yaml:"max_years" json:"max_years"`
}

// DefaultHorizonAssumptions returns 4% nominal return, 3.5% inflation and a 100 year cap.
func DefaultHorizonAssumptions() HorizonAssumptions {
	return HorizonAssumptions{
		MarketReturn:  DefaultMarketReturn,
		InflationRate: DefaultInflationRate,
		MaxYears:      DefaultMaxYears,
	}
}

// RealGrowthMultiplier returns (1 + market return) / (1 + inflation) as a float.
func (ha HorizonAssumptions) RealGrowthMultiplier() float64 {
	return (1. + ha.MarketReturn.InexactFloat64()) / (1. + ha.InflationRate.InexactFloat64())
}

// GenerateAssumptions renders the assumptions as report lines
func (ha HorizonAssumptions) GenerateAssumptions() []string {
	hundred := decimal.NewFromInt(100)
	return []string{
		fmt.Sprintf("Nominal market return: %s%% annually", ha.MarketReturn.Mul(hundred).StringFixed(2)),
		fmt.Sprintf("Inflation: %s%% annually", ha.InflationRate.Mul(hundred).StringFixed(2)),
		fmt.Sprintf("Real growth multiplier: %.6f", ha.RealGrowthMultiplier()),
		fmt.Sprintf("Withdrawal years simulated: at most %d", ha.MaxYears),
		"Amounts are in present-day currency; no taxes or fees are modeled",
	}
}

// AssumptionOverrides carries optional assumption values. Unset fields inherit.
type AssumptionOverrides struct {
	MarketReturn  *decimal.Decimal `yaml:"market_return,omitempty" json:"market_return,omitempty"`
	InflationRate *decimal.Decimal `yaml:"inflation_rate,omitempty" json:"inflation_rate,omitempty"`
	MaxYears      *int             `yaml:"max_years,omitempty" json:"max_years,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for AssumptionOverrides
func (ao *AssumptionOverrides) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		MarketReturn  *string `yaml:"market_return,omitempty"`
		InflationRate *string `yaml:"inflation_rate,omitempty"`
		MaxYears      *int    `yaml:"max_years,omitempty"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	ao.MaxYears = aux.MaxYears

	if aux.MarketReturn != nil {
		val, err := decimal.NewFromString(*aux.MarketReturn)
		if err != nil {
			return fmt.Errorf("market_return: %w", err)
		}
		ao.MarketReturn = &val
	}

	if aux.InflationRate != nil {
		val, err := decimal.NewFromString(*aux.InflationRate)
		if err != nil {
			return fmt.Errorf("inflation_rate: %w", err)
		}
		ao.InflationRate = &val
	}

	return nil
}

// Apply returns base with every set override replacing the corresponding field.
func (ao *AssumptionOverrides) Apply(base HorizonAssumptions) HorizonAssumptions {
	if ao == nil {
		return base
	}
	if ao.MarketReturn != nil {
		base.MarketReturn = *ao.MarketReturn
	}
	if ao.InflationRate != nil {
		base.InflationRate = *ao.InflationRate
	}
	if ao.MaxYears != nil {
		base.MaxYears = *ao.MaxYears
	}
	return base
}

// Scenario is a named savings plan with optional per-scenario assumptions
type Scenario struct {
	Name        string               `yaml:"name" json:"name"`
	Plan        SavingsPlan          `yaml:"plan" json:"plan"`
	Assumptions *AssumptionOverrides `yaml:"assumptions,omitempty" json:"assumptions,omitempty"`
}

// Configuration is the top-level input file
type Configuration struct {
	GlobalAssumptions AssumptionOverrides `yaml:"global_assumptions" json:"global_assumptions"`
	Scenarios         []Scenario          `yaml:"scenarios" json:"scenarios"`
}

// ResolveAssumptions layers defaults, global assumptions and the scenario's own overrides.
func (c *Configuration) ResolveAssumptions(scenario *Scenario) HorizonAssumptions {
	resolved := c.GlobalAssumptions.Apply(DefaultHorizonAssumptions())
	if scenario != nil {
		resolved = scenario.Assumptions.Apply(resolved)
	}
	return resolved
}

// HorizonYear is one withdrawal year of a projected schedule
type HorizonYear struct {
	Year             int             `json:"year" yaml:"year"`
	BeginningBalance decimal.Decimal `json:"beginning_balance" yaml:"beginning_balance"`
	Withdrawal       decimal.Decimal `json:"withdrawal" yaml:"withdrawal"`
	Growth           decimal.Decimal `json:"growth" yaml:"growth"`
	EndingBalance    decimal.Decimal `json:"ending_balance" yaml:"ending_balance"`
	Depleted         bool            `json:"depleted" yaml:"depleted"`
}

// ScenarioSummary provides the horizon and schedule for a single scenario
type ScenarioSummary struct {
	Name                 string             `json:"name" yaml:"name"`
	Plan                 SavingsPlan        `json:"plan" yaml:"plan"`
	Assumptions          HorizonAssumptions `json:"assumptions" yaml:"assumptions"`
	RealGrowthMultiplier decimal.Decimal    `json:"real_growth_multiplier" yaml:"real_growth_multiplier"`
	AccumulatedBalance   decimal.Decimal    `json:"accumulated_balance" yaml:"accumulated_balance"`
	YearsSustained       int                `json:"years_sustained" yaml:"years_sustained"`
	ReachedCap           bool               `json:"reached_cap" yaml:"reached_cap"` // never depleted within MaxYears
	FinalBalance         decimal.Decimal    `json:"final_balance" yaml:"final_balance"`
	Schedule             []HorizonYear      `json:"schedule" yaml:"schedule"`
}

// ScenarioComparison collects the summaries of every scenario in a configuration
type ScenarioComparison struct {
	Scenarios      []ScenarioSummary `json:"scenarios" yaml:"scenarios"`
	LongestHorizon string            `json:"longest_horizon" yaml:"longest_horizon"`
	Assumptions    []string          `json:"assumptions" yaml:"assumptions"`
}

// SweepPoint is the horizon obtained for one withdrawal amount
type SweepPoint struct {
	YearlyWithdrawal decimal.Decimal `json:"yearly_withdrawal" yaml:"yearly_withdrawal"`
	YearsSustained   int             `json:"years_sustained" yaml:"years_sustained"`
	ReachedCap       bool            `json:"reached_cap" yaml:"reached_cap"`
}
