package calculation

import (
	"errors"
	"fmt"

	"github.com/mattphotonman/Financial/internal/domain"
	money "github.com/mattphotonman/Financial/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ErrInvalidSweep is returned when a sweep range cannot be iterated.
var ErrInvalidSweep = errors.New("invalid sweep range")

// maxSweepPoints bounds the size of a sweep table.
const maxSweepPoints = 10000

// SweepWithdrawals evaluates the horizon of plan for every withdrawal amount from
// `from` to `to` inclusive in increments of step. The plan's own withdrawal is ignored.
func SweepWithdrawals(plan domain.SavingsPlan, assumptions domain.HorizonAssumptions, from, to, step decimal.Decimal) ([]domain.SweepPoint, error) {
	if !step.IsPositive() {
		return nil, fmt.Errorf("%w: step must be positive, got %s", ErrInvalidSweep, step)
	}
	if to.LessThan(from) {
		return nil, fmt.Errorf("%w: end %s is below start %s", ErrInvalidSweep, to, from)
	}
	start, increment := money.NewMoneyFromDecimal(from), money.NewMoneyFromDecimal(step)
	span := money.NewMoneyFromDecimal(to).Sub(start)
	count := span.Div(step).Floor().IntPart() + 1
	if count > maxSweepPoints {
		return nil, fmt.Errorf("%w: %d points exceeds the limit of %d", ErrInvalidSweep, count, maxSweepPoints)
	}

	points := make([]domain.SweepPoint, 0, count)
	for withdrawal := start; withdrawal.LessThanOrEqual(to); withdrawal = withdrawal.Add(increment) {
		p := plan
		p.YearlyWithdrawal = withdrawal.Decimal
		projection := ProjectHorizon(p, assumptions)
		points = append(points, domain.SweepPoint{
			YearlyWithdrawal: withdrawal.Decimal,
			YearsSustained:   projection.YearsSustained,
			ReachedCap:       projection.ReachedCap,
		})
	}
	return points, nil
}
