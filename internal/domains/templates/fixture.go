package templates

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadFile reads extra template records from a YAML file. Records without an
// id get one assigned.
func LoadFile(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read templates file: %w", err)
	}

	var records []Template
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse templates file %s: %w", path, err)
	}

	for i := range records {
		if records[i].ID == "" {
			records[i].ID = "tmpl_" + uuid.New().String()
		}
	}

	return records, nil
}

// Merge overlays extra records on top of base: a record whose code already
// exists in base replaces it, anything else is appended.
func Merge(base, extra []Template) []Template {
	merged := make([]Template, len(base))
	copy(merged, base)

	index := make(map[string]int, len(merged))
	for i, tpl := range merged {
		index[tpl.Code] = i
	}

	for _, tpl := range extra {
		if i, ok := index[tpl.Code]; ok {
			merged[i] = tpl
		} else {
			index[tpl.Code] = len(merged)
			merged = append(merged, tpl)
		}
	}

	return merged
}
