package calculation

import (
	"errors"
	"fmt"
	"math"

	"github.com/mattphotonman/Financial/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrUnreachableTarget is returned when no contribution can sustain the requested horizon.
var ErrUnreachableTarget = errors.New("target horizon is unreachable")

// RequiredContribution finds the smallest yearly contribution, to the cent, for which
// plan sustains at least targetYears of withdrawals. The plan's own contribution is
// ignored. The horizon is non-decreasing in the contribution, so a bisection over the
// contribution converges on the break-even amount.
func RequiredContribution(plan domain.SavingsPlan, assumptions domain.HorizonAssumptions, targetYears int) (decimal.Decimal, error) {
	if targetYears < 0 || targetYears > assumptions.MaxYears-1 {
		return decimal.Zero, fmt.Errorf("%w: target %d years is outside 0..%d", ErrUnreachableTarget, targetYears, assumptions.MaxYears-1)
	}

	years := func(contribution float64) int {
		return NumYearsFromSavings(
			plan.YearsContributing,
			contribution,
			plan.YearlyWithdrawal.InexactFloat64(),
			assumptions.MarketReturn.InexactFloat64(),
			assumptions.InflationRate.InexactFloat64(),
			assumptions.MaxYears,
		)
	}

	if years(0) >= targetYears {
		return decimal.Zero, nil
	}
	if plan.YearsContributing <= 0 {
		return decimal.Zero, fmt.Errorf("%w: no contribution years to build a balance", ErrUnreachableTarget)
	}

	// Grow the upper bound until it sustains the target
	high := math.Max(plan.YearlyWithdrawal.InexactFloat64(), 1)
	maxDoublings := 64
	for i := 0; years(high) < targetYears; i++ {
		if i == maxDoublings {
			return decimal.Zero, fmt.Errorf("%w: no contribution up to $%.0f sustains %d years", ErrUnreachableTarget, high, targetYears)
		}
		high *= 2
	}

	// Bisect on whole cents: lo never sustains the target, hi always does
	lo, hi := int64(0), int64(math.Ceil(high*100))
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if years(float64(mid)/100) >= targetYears {
			hi = mid
		} else {
			lo = mid
		}
	}
	return decimal.NewFromInt(hi).Shift(-2), nil
}
