package templates

import "errors"

// Lookup failure modes. Both are expected, client-correctable conditions
// rather than system faults, so neither is retried or recovered internally.
var (
	ErrTemplateNotFound     = errors.New("template not found")
	ErrLanguageNotAvailable = errors.New("template not available in requested language")
)

// DefaultLanguage is assumed when a request does not specify one.
const DefaultLanguage = "en"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Lookup resolves a template code against the store and checks that the
// stored record matches the requested language exactly. No fallback between
// languages is attempted.
func (s *Service) Lookup(code, lang string) (Template, error) {
	tpl, ok := s.store.Get(code)
	if !ok {
		return Template{}, ErrTemplateNotFound
	}

	if tpl.Language != lang {
		return Template{}, ErrLanguageNotAvailable
	}

	return tpl, nil
}
