package output

import (
	"sort"
	"strconv"

	"facette.io/natsort"
	"github.com/mattphotonman/Financial/internal/domain"
	money "github.com/mattphotonman/Financial/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with grouping and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.035) as a percentage ("3.50%").
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

var decimalHundred = decimal.NewFromInt(100)

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// sortedScenarios returns a copy of the scenarios in natural name order ("Plan 2" before "Plan 10").
func sortedScenarios(results *domain.ScenarioComparison) []domain.ScenarioSummary {
	scenarios := append([]domain.ScenarioSummary(nil), results.Scenarios...)
	sort.SliceStable(scenarios, func(i, j int) bool { return natsort.Compare(scenarios[i].Name, scenarios[j].Name) })
	return scenarios
}

// horizonLabel renders the sustained years, marking results that hit the cap.
func horizonLabel(sc domain.ScenarioSummary) string {
	if sc.ReachedCap {
		return intToString(sc.YearsSustained) + "+ (cap)"
	}
	return intToString(sc.YearsSustained)
}
