package cmd

import (
	"github.com/mattphotonman/Financial/internal/config"
	"github.com/mattphotonman/Financial/internal/domain"
	money "github.com/mattphotonman/Financial/pkg/decimal"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func addPlanFlags(fs *pflag.FlagSet) {
	fs.Int("years-contributing", 30, "Years of contributions before retirement")
	fs.String("contribution", "60000", "Yearly contribution in present-day currency")
	fs.String("withdrawal", "90000", "Yearly withdrawal in present-day currency")
}

// planFromFlags reads and validates the savings plan flags.
func planFromFlags(v *viper.Viper) (domain.SavingsPlan, error) {
	contribution, err := money.NewMoneyFromString(v.GetString("contribution"))
	if err != nil {
		return domain.SavingsPlan{}, err
	}
	withdrawal, err := money.NewMoneyFromString(v.GetString("withdrawal"))
	if err != nil {
		return domain.SavingsPlan{}, err
	}
	plan := domain.SavingsPlan{
		YearsContributing:  v.GetInt("years-contributing"),
		YearlyContribution: contribution.Decimal,
		YearlyWithdrawal:   withdrawal.Decimal,
	}
	if err := config.ValidatePlan(plan); err != nil {
		return domain.SavingsPlan{}, err
	}
	return plan, nil
}

// assumptionsFromFlags layers the assumption flags over the defaults.
func assumptionsFromFlags(v *viper.Viper) (domain.HorizonAssumptions, error) {
	overrides, err := assumptionOverrides(v)
	if err != nil {
		return domain.HorizonAssumptions{}, err
	}
	assumptions := overrides.Apply(domain.DefaultHorizonAssumptions())
	if err := config.ValidateAssumptions(assumptions); err != nil {
		return domain.HorizonAssumptions{}, err
	}
	return assumptions, nil
}
