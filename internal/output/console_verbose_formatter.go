package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/mattphotonman/Financial/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report with each scenario's schedule.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "RETIREMENT HORIZON ANALYSIS")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	if len(results.Assumptions) > 0 {
		fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
		for _, a := range results.Assumptions {
			fmt.Fprintf(&buf, "• %s\n", a)
		}
		fmt.Fprintln(&buf)
	}

	for i, sc := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintf(&buf, "  Contribution:          %s/yr for %d years\n", FormatCurrency(sc.Plan.YearlyContribution), sc.Plan.YearsContributing)
		fmt.Fprintf(&buf, "  Withdrawal:            %s/yr\n", FormatCurrency(sc.Plan.YearlyWithdrawal))
		fmt.Fprintf(&buf, "  Market return:         %s\n", FormatRate(sc.Assumptions.MarketReturn))
		fmt.Fprintf(&buf, "  Inflation:             %s\n", FormatRate(sc.Assumptions.InflationRate))
		fmt.Fprintf(&buf, "  Real growth multiplier: %s\n", sc.RealGrowthMultiplier.StringFixed(6))
		fmt.Fprintf(&buf, "  Accumulated balance:   %s\n", FormatCurrency(sc.AccumulatedBalance))
		fmt.Fprintf(&buf, "  Years sustained:       %s\n", horizonLabel(sc))
		fmt.Fprintln(&buf)
		writeSchedule(&buf, sc.Schedule)
		fmt.Fprintln(&buf)
	}

	if results.LongestHorizon != "" && len(results.Scenarios) > 1 {
		fmt.Fprintf(&buf, "Longest horizon: %s\n", results.LongestHorizon)
	}
	return buf.Bytes(), nil
}

func writeSchedule(buf *bytes.Buffer, schedule []domain.HorizonYear) {
	if len(schedule) == 0 {
		fmt.Fprintln(buf, "  (no withdrawal years simulated)")
		return
	}
	fmt.Fprintf(buf, "  %4s  %18s  %14s  %16s  %18s\n", "Year", "Beginning", "Withdrawal", "Growth", "Ending")
	fmt.Fprintf(buf, "  %s\n", strings.Repeat("-", 78))
	for _, y := range schedule {
		marker := ""
		if y.Depleted {
			marker = "  depleted"
		}
		fmt.Fprintf(buf, "  %4d  %18s  %14s  %16s  %18s%s\n",
			y.Year,
			FormatCurrency(y.BeginningBalance),
			FormatCurrency(y.Withdrawal),
			FormatCurrency(y.Growth),
			FormatCurrency(y.EndingBalance),
			marker)
	}
}
