package dict

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// FromJSON decodes a JSON object and shape-checks it via FromRaw.
func FromJSON(data []byte) (Dictionary, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse dictionary JSON: %w", err)
	}
	return FromRaw(raw)
}

// FromYAML decodes a YAML mapping and shape-checks it via FromRaw.
func FromYAML(data []byte) (Dictionary, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse dictionary YAML: %w", err)
	}
	return FromRaw(raw)
}
