package output

import (
	"bytes"
	"encoding/csv"

	"github.com/mattphotonman/Financial/internal/domain"
)

// CSVDetailedExporter provides the withdrawal schedule per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "BeginningBalance", "Withdrawal", "Growth", "EndingBalance", "Depleted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		for _, yr := range sc.Schedule {
			row := []string{
				sc.Name,
				intToString(yr.Year),
				yr.BeginningBalance.StringFixed(2),
				yr.Withdrawal.StringFixed(2),
				yr.Growth.StringFixed(2),
				yr.EndingBalance.StringFixed(2),
				boolToString(yr.Depleted),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
