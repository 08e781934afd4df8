package output

import (
	"encoding/json"

	"github.com/mattphotonman/Financial/internal/domain"
	"gopkg.in/yaml.v3"
)

// JSONFormatter serializes the scenario comparison as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}

// YAMLFormatter serializes the scenario comparison as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	return yaml.Marshal(results)
}
