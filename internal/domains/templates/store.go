package templates

import (
	"fmt"
	"regexp"

	"github.com/rs/zerolog/log"
)

// placeholderPattern matches {{name}} markers in template content.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_]+)\s*\}\}`)

// Store holds the fixed set of template records, keyed by code. It is built
// once at startup and never mutated afterwards, so request handlers share it
// without locking.
type Store struct {
	records map[string]Template
	codes   []string
}

// NewStore builds a store from the given records, rejecting malformed ones.
func NewStore(records []Template) (*Store, error) {
	byCode := make(map[string]Template, len(records))
	codes := make([]string, 0, len(records))

	for _, tpl := range records {
		if tpl.Code == "" {
			return nil, fmt.Errorf("template %q has an empty code", tpl.ID)
		}
		if tpl.Language == "" {
			return nil, fmt.Errorf("template %q has an empty language", tpl.Code)
		}
		if tpl.Version < 1 {
			return nil, fmt.Errorf("template %q has invalid version %d", tpl.Code, tpl.Version)
		}
		if _, exists := byCode[tpl.Code]; exists {
			return nil, fmt.Errorf("duplicate template code %q", tpl.Code)
		}

		warnUndeclaredVariables(tpl)

		byCode[tpl.Code] = tpl
		codes = append(codes, tpl.Code)
	}

	return &Store{records: byCode, codes: codes}, nil
}

// Get returns the template for the given code. Absence is an expected
// outcome, reported as a boolean rather than an error.
func (s *Store) Get(code string) (Template, bool) {
	tpl, ok := s.records[code]
	return tpl, ok
}

// Len returns the number of stored templates.
func (s *Store) Len() int {
	return len(s.records)
}

// Codes returns the template codes in insertion order.
func (s *Store) Codes() []string {
	out := make([]string, len(s.codes))
	copy(out, s.codes)
	return out
}

// warnUndeclaredVariables logs placeholders that appear in content but are
// missing from the variables list. Authoring convention only, not enforced.
func warnUndeclaredVariables(tpl Template) {
	declared := make(map[string]bool, len(tpl.Variables))
	for _, v := range tpl.Variables {
		declared[v] = true
	}

	matches := placeholderPattern.FindAllStringSubmatch(tpl.Content.Title+" "+tpl.Content.Body, -1)
	for _, match := range matches {
		if !declared[match[1]] {
			log.Warn().Str("code", tpl.Code).Str("variable", match[1]).Msg("placeholder not declared in variables")
		}
	}
}
