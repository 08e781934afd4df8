package calculation

import (
	"testing"

	"github.com/mattphotonman/Financial/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oneCent = decimal.New(1, -2)

func breakEvenPlan() domain.SavingsPlan {
	return domain.SavingsPlan{
		YearsContributing: 30,
		YearlyWithdrawal:  decimal.NewFromInt(90000),
	}
}

// sustains reports the horizon of plan funded with contribution.
func sustains(plan domain.SavingsPlan, assumptions domain.HorizonAssumptions, contribution decimal.Decimal) int {
	plan.YearlyContribution = contribution
	return YearsFromSavings(plan, assumptions)
}

func TestRequiredContribution_BreakEven(t *testing.T) {
	assumptions := domain.DefaultHorizonAssumptions()
	plan := breakEvenPlan()

	got, err := RequiredContribution(plan, assumptions, 22)
	require.NoError(t, err)
	assert.InDelta(t, 58203.82, got.InexactFloat64(), 0.011)
	assert.Equal(t, int32(-2), got.Exponent())

	assert.GreaterOrEqual(t, sustains(plan, assumptions, got), 22)
	assert.Less(t, sustains(plan, assumptions, got.Sub(oneCent)), 22)
}

func TestRequiredContribution_SmallestToTheCent(t *testing.T) {
	assumptions := domain.DefaultHorizonAssumptions()
	plan := breakEvenPlan()

	for w := int64(10000); w <= 150000; w += 777 {
		plan.YearlyWithdrawal = decimal.NewFromInt(w)
		for target := 1; target <= 60; target++ {
			got, err := RequiredContribution(plan, assumptions, target)
			require.NoError(t, err, "withdrawal=%d target=%d", w, target)
			require.GreaterOrEqual(t, sustains(plan, assumptions, got), target,
				"withdrawal=%d target=%d contribution=%s", w, target, got.StringFixed(2))
			require.Less(t, sustains(plan, assumptions, got.Sub(oneCent)), target,
				"withdrawal=%d target=%d contribution=%s is not minimal", w, target, got.StringFixed(2))
		}
	}
}

func TestRequiredContribution_ZeroContributionSuffices(t *testing.T) {
	noWithdrawal := breakEvenPlan()
	noWithdrawal.YearlyWithdrawal = decimal.Zero

	tests := []struct {
		name   string
		plan   domain.SavingsPlan
		target int
	}{
		{"zero target", breakEvenPlan(), 0},
		{"no withdrawal", noWithdrawal, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequiredContribution(tt.plan, domain.DefaultHorizonAssumptions(), tt.target)
			require.NoError(t, err)
			assert.True(t, got.IsZero(), "expected zero contribution, got %s", got)
		})
	}
}

func TestRequiredContribution_Unreachable(t *testing.T) {
	assumptions := domain.DefaultHorizonAssumptions()

	tests := []struct {
		name   string
		plan   domain.SavingsPlan
		target int
	}{
		{"beyond the cap", breakEvenPlan(), 100},
		{"negative target", breakEvenPlan(), -1},
		{"no contribution years", domain.SavingsPlan{YearsContributing: 0, YearlyWithdrawal: decimal.NewFromInt(1000)}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RequiredContribution(tt.plan, assumptions, tt.target)
			assert.ErrorIs(t, err, ErrUnreachableTarget)
		})
	}
}
