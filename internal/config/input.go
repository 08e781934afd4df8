package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattphotonman/Financial/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput is wrapped by every validation failure.
var ErrInvalidInput = errors.New("invalid input")

// maxHorizonYears bounds max_years so a typo cannot request an enormous schedule.
const maxHorizonYears = 1000

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data)
}

// Parse decodes and validates a configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ValidateAssumptions(config.ResolveAssumptions(nil)); err != nil {
		return fmt.Errorf("global assumptions validation failed: %w", err)
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("%w: no scenarios provided", ErrInvalidInput)
	}

	seen := make(map[string]struct{}, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(config, scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if _, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("%w: duplicate scenario name %q", ErrInvalidInput, scenario.Name)
		}
		seen[scenario.Name] = struct{}{}
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(config *domain.Configuration, scenario *domain.Scenario) error {
	if scenario.Name == "" {
		return fmt.Errorf("%w: scenario name is required", ErrInvalidInput)
	}
	if err := ValidatePlan(scenario.Plan); err != nil {
		return fmt.Errorf("%s: %w", scenario.Name, err)
	}
	if err := ValidateAssumptions(config.ResolveAssumptions(scenario)); err != nil {
		return fmt.Errorf("%s: %w", scenario.Name, err)
	}
	return nil
}

// ValidatePlan checks a savings plan for values the calculation cannot interpret.
// Zero contribution years are allowed and produce an empty balance.
func ValidatePlan(plan domain.SavingsPlan) error {
	if plan.YearsContributing < 0 {
		return fmt.Errorf("%w: years contributing cannot be negative", ErrInvalidInput)
	}
	if plan.YearlyContribution.IsNegative() {
		return fmt.Errorf("%w: yearly contribution cannot be negative", ErrInvalidInput)
	}
	if plan.YearlyWithdrawal.IsNegative() {
		return fmt.Errorf("%w: yearly withdrawal cannot be negative", ErrInvalidInput)
	}
	return nil
}

// ValidateAssumptions rejects rates that would make the growth multiplier
// non-positive or undefined, and caps outside 1..1000 years.
func ValidateAssumptions(assumptions domain.HorizonAssumptions) error {
	minusOne := decimal.NewFromInt(-1)
	if assumptions.MarketReturn.LessThanOrEqual(minusOne) {
		return fmt.Errorf("%w: market return must be greater than -100%%", ErrInvalidInput)
	}
	if assumptions.InflationRate.LessThanOrEqual(minusOne) {
		return fmt.Errorf("%w: inflation rate must be greater than -100%%", ErrInvalidInput)
	}
	if assumptions.MaxYears < 1 || assumptions.MaxYears > maxHorizonYears {
		return fmt.Errorf("%w: max years must be between 1 and %d", ErrInvalidInput, maxHorizonYears)
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	marketReturn := decimal.NewFromFloat(0.04)
	inflationRate := decimal.NewFromFloat(0.035)
	maxYears := domain.DefaultMaxYears
	optimisticReturn := decimal.NewFromFloat(0.06)

	return &domain.Configuration{
		GlobalAssumptions: domain.AssumptionOverrides{
			MarketReturn:  &marketReturn,
			InflationRate: &inflationRate,
			MaxYears:      &maxYears,
		},
		Scenarios: []domain.Scenario{
			{
				Name: "Thirty Years at 60k",
				Plan: domain.SavingsPlan{
					YearsContributing:  30,
					YearlyContribution: decimal.NewFromInt(60000),
					YearlyWithdrawal:   decimal.NewFromInt(90000),
				},
			},
			{
				Name: "Twenty Five Years at 40k",
				Plan: domain.SavingsPlan{
					YearsContributing:  25,
					YearlyContribution: decimal.NewFromInt(40000),
					YearlyWithdrawal:   decimal.NewFromInt(50000),
				},
			},
			{
				Name: "Optimistic Market",
				Plan: domain.SavingsPlan{
					YearsContributing:  30,
					YearlyContribution: decimal.NewFromInt(60000),
					YearlyWithdrawal:   decimal.NewFromInt(90000),
				},
				Assumptions: &domain.AssumptionOverrides{MarketReturn: &optimisticReturn},
			},
		},
	}
}
