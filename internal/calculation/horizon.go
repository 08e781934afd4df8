package calculation

import (
	"math"

	"github.com/mattphotonman/Financial/internal/domain"
	"github.com/shopspring/decimal"
)

// RealGrowthMultiplier returns the inflation-adjusted yearly growth factor
// (1 + marketReturn) / (1 + inflationRate).
func RealGrowthMultiplier(marketReturn, inflationRate float64) float64 {
	return (1. + marketReturn) / (1. + inflationRate)
}

// AccumulatedSavings returns the balance at the end of the contribution phase in
// present-day currency: contribution * sum(multiplier^i) for i = 1..years.
// The contribution made in year i is grown by multiplier^i. A non-positive number
// of years is an empty sum.
func AccumulatedSavings(yearsContributing int, yearlyContribution, multiplier float64) float64 {
	var sum float64
	for i := 1; i <= yearsContributing; i++ {
		sum += math.Pow(multiplier, float64(i))
	}
	return yearlyContribution * sum
}

// decumulate withdraws and grows the balance once per year for at most maxYears years,
// stopping after the first year whose ending balance is negative. visit is called for
// every simulated year. It returns the last simulated year, or 0 if none was simulated.
func decumulate(balance, yearlyWithdrawal, multiplier float64, maxYears int, visit func(year int, beginning, ending float64)) int {
	lastYear := 0
	for year := 1; year <= maxYears; year++ {
		lastYear = year
		beginning := balance
		balance -= yearlyWithdrawal
		balance *= multiplier
		if visit != nil {
			visit(year, beginning, balance)
		}
		if balance < 0 {
			break
		}
	}
	return lastYear
}

// yearsSustained converts the last simulated year into the reported horizon.
func yearsSustained(lastYear int) int {
	if lastYear == 0 {
		return 0
	}
	return lastYear - 1
}

// NumYearsFromSavings returns how many full years a fund built by contributing
// yearlyContribution for yearsContributing years can sustain a yearlyWithdrawal,
// with every amount in present-day currency and growth at the real rate implied by
// marketReturn and inflationRate.
//
// The year in which the balance first goes negative is not counted. If the balance
// never goes negative the result is maxYears-1. Inputs are not validated; NaN and
// infinite values propagate through the arithmetic. maxYears below 1 yields 0.
func NumYearsFromSavings(yearsContributing int, yearlyContribution, yearlyWithdrawal, marketReturn, inflationRate float64, maxYears int) int {
	multiplier := RealGrowthMultiplier(marketReturn, inflationRate)
	investments := AccumulatedSavings(yearsContributing, yearlyContribution, multiplier)
	return yearsSustained(decumulate(investments, yearlyWithdrawal, multiplier, maxYears, nil))
}

// YearsFromSavings is NumYearsFromSavings for domain values.
func YearsFromSavings(plan domain.SavingsPlan, assumptions domain.HorizonAssumptions) int {
	return NumYearsFromSavings(
		plan.YearsContributing,
		plan.YearlyContribution.InexactFloat64(),
		plan.YearlyWithdrawal.InexactFloat64(),
		assumptions.MarketReturn.InexactFloat64(),
		assumptions.InflationRate.InexactFloat64(),
		assumptions.MaxYears,
	)
}

// HorizonProjection is the result of projecting a plan: the growth multiplier, the
// balance at retirement, the horizon and the year-by-year withdrawal schedule.
type HorizonProjection struct {
	Multiplier         float64
	AccumulatedBalance float64
	YearsSustained     int
	ReachedCap         bool
	Schedule           []domain.HorizonYear
}

// ProjectHorizon runs the same computation as YearsFromSavings and records every
// simulated withdrawal year, including the year in which the balance is depleted.
func ProjectHorizon(plan domain.SavingsPlan, assumptions domain.HorizonAssumptions) HorizonProjection {
	multiplier := RealGrowthMultiplier(assumptions.MarketReturn.InexactFloat64(), assumptions.InflationRate.InexactFloat64())
	withdrawal := plan.YearlyWithdrawal.InexactFloat64()
	investments := AccumulatedSavings(plan.YearsContributing, plan.YearlyContribution.InexactFloat64(), multiplier)

	capacity := assumptions.MaxYears
	if capacity < 0 {
		capacity = 0
	}
	schedule := make([]domain.HorizonYear, 0, min(capacity, 128))
	depleted := false
	lastYear := decumulate(investments, withdrawal, multiplier, assumptions.MaxYears, func(year int, beginning, ending float64) {
		afterWithdrawal := beginning - withdrawal
		schedule = append(schedule, domain.HorizonYear{
			Year:             year,
			BeginningBalance: decimalFromFloat(beginning),
			Withdrawal:       plan.YearlyWithdrawal,
			Growth:           decimalFromFloat(ending - afterWithdrawal),
			EndingBalance:    decimalFromFloat(ending),
			Depleted:         ending < 0,
		})
		depleted = ending < 0
	})

	return HorizonProjection{
		Multiplier:         multiplier,
		AccumulatedBalance: investments,
		YearsSustained:     yearsSustained(lastYear),
		ReachedCap:         lastYear > 0 && !depleted,
		Schedule:           schedule,
	}
}

// decimalFromFloat converts a balance for reporting. NaN becomes zero and infinities
// saturate at the largest finite float so that degenerate inputs cannot panic.
func decimalFromFloat(f float64) decimal.Decimal {
	switch {
	case math.IsNaN(f):
		return decimal.Zero
	case math.IsInf(f, 1):
		return decimal.NewFromFloat(math.MaxFloat64)
	case math.IsInf(f, -1):
		return decimal.NewFromFloat(-math.MaxFloat64)
	}
	return decimal.NewFromFloat(f)
}
