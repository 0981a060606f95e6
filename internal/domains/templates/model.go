package templates

// Template is a single notification template record. Field order matches the
// wire format consumers assert on.
type Template struct {
	ID        string   `json:"id" yaml:"id"`
	Code      string   `json:"code" yaml:"code"`
	Type      string   `json:"type" yaml:"type"`
	Language  string   `json:"language" yaml:"language"`
	Version   int      `json:"version" yaml:"version"`
	Content   Content  `json:"content" yaml:"content"`
	Variables []string `json:"variables" yaml:"variables"`
}

// Content holds the renderable parts of a template. Placeholders like
// {{name}} are returned uninterpolated; substitution is the consumer's job.
type Content struct {
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}
