package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/mattphotonman/Financial/internal/domain"
	"gopkg.in/yaml.v3"
)

// FormatSweep renders a withdrawal sweep table. Supported formats are console
// (and its aliases), csv, json and yaml.
func FormatSweep(points []domain.SweepPoint, format string) ([]byte, error) {
	switch n := NormalizeFormatName(format); n {
	case "console", "console-lite":
		var buf bytes.Buffer
		fmt.Fprintf(&buf, "%18s  %s\n", "Withdrawal", "Years sustained")
		fmt.Fprintf(&buf, "%18s  %s\n", "------------------", "---------------")
		for _, p := range points {
			years := intToString(p.YearsSustained)
			if p.ReachedCap {
				years += "+ (cap)"
			}
			fmt.Fprintf(&buf, "%18s  %s\n", FormatCurrency(p.YearlyWithdrawal), years)
		}
		return buf.Bytes(), nil
	case "csv", "detailed-csv":
		buf := &bytes.Buffer{}
		w := csv.NewWriter(buf)
		if err := w.Write([]string{"YearlyWithdrawal", "YearsSustained", "ReachedCap"}); err != nil {
			return nil, err
		}
		for _, p := range points {
			if err := w.Write([]string{p.YearlyWithdrawal.StringFixed(2), intToString(p.YearsSustained), boolToString(p.ReachedCap)}); err != nil {
				return nil, err
			}
		}
		w.Flush()
		return buf.Bytes(), w.Error()
	case "json":
		return json.MarshalIndent(points, "", "  ")
	case "yaml":
		return yaml.Marshal(points)
	default:
		return nil, fmt.Errorf("%w: %q for sweep", ErrUnsupportedFormat, format)
	}
}
