package source

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML deserializes b into a raw value tree. yaml.v3 produces map[string]any
// for string-keyed mappings already; normalize covers the rest (merge keys,
// non-string keys) and nested sequences.
func YAML(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("source: malformed YAML payload: %w", err)
	}
	return normalize(v), nil
}
