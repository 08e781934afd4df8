package output

import (
	"bytes"
	"fmt"

	"github.com/mattphotonman/Financial/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT HORIZON SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range sortedScenarios(results) {
		fmt.Fprintf(&buf, "%s: Years=%s Accumulated=%s Withdrawal=%s\n",
			sc.Name,
			horizonLabel(sc),
			FormatCurrency(sc.AccumulatedBalance),
			FormatCurrency(sc.Plan.YearlyWithdrawal),
		)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" && len(results.Scenarios) > 1 {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Longest horizon: %s (%d years, +%d over next best)\n", rec.ScenarioName, rec.YearsSustained, rec.MarginYears)
	}
	return buf.Bytes(), nil
}
