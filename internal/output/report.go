package output

import (
	"fmt"
	"os"

	"github.com/mattphotonman/Financial/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport writes results in the given format to a timestamped file in dir.
// The special format "all" writes the console report, both CSV exports and JSON.
func GenerateReport(results *domain.ScenarioComparison, format, dir string) ([]string, error) {
	var formatters []Formatter
	if NormalizeFormatName(format) == "all" {
		formatters = []Formatter{ConsoleVerboseFormatter{}, CSVSummarizer{}, CSVDetailedExporter{}, JSONFormatter{}}
	} else {
		f, err := Lookup(format)
		if err != nil {
			return nil, err
		}
		formatters = []Formatter{f}
	}

	files := make([]string, 0, len(formatters))
	for _, f := range formatters {
		name, err := WriteFormatted(f, results, dir)
		if err != nil {
			return files, fmt.Errorf("%s report: %w", f.Name(), err)
		}
		files = append(files, name)
	}
	return files, nil
}

// SaveConfiguration writes a configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
