package output

import (
	"bytes"
	"encoding/csv"

	"github.com/mattphotonman/Financial/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "YearsContributing", "YearlyContribution", "YearlyWithdrawal", "MarketReturn", "InflationRate", "MaxYears", "RealGrowthMultiplier", "AccumulatedBalance", "YearsSustained", "ReachedCap", "FinalBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		row := []string{
			sc.Name,
			intToString(sc.Plan.YearsContributing),
			sc.Plan.YearlyContribution.StringFixed(2),
			sc.Plan.YearlyWithdrawal.StringFixed(2),
			sc.Assumptions.MarketReturn.String(),
			sc.Assumptions.InflationRate.String(),
			intToString(sc.Assumptions.MaxYears),
			sc.RealGrowthMultiplier.StringFixed(10),
			sc.AccumulatedBalance.StringFixed(2),
			intToString(sc.YearsSustained),
			boolToString(sc.ReachedCap),
			sc.FinalBalance.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
