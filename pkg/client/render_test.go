package client

import (
	"strings"
	"testing"
)

func welcomeTemplate() Template {
	return Template{
		ID:       "tmpl_001",
		Code:     "welcome_notification",
		Type:     "push",
		Language: "en",
		Version:  1,
		Content: Content{
			Title: "Welcome {{name}}!",
			Body:  "Hi {{name}}, thanks for joining us!",
		},
		Variables: []string{"name"},
	}
}

// TestRender_AllVariablesPresent tests rendering with every placeholder supplied
func TestRender_AllVariablesPresent(t *testing.T) {
	content, err := Render(welcomeTemplate(), map[string]interface{}{"name": "Alice"})
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if content.Title != "Welcome Alice!" {
		t.Errorf("Title = %q, want %q", content.Title, "Welcome Alice!")
	}
	if content.Body != "Hi Alice, thanks for joining us!" {
		t.Errorf("Body = %q, want %q", content.Body, "Hi Alice, thanks for joining us!")
	}
}

// TestRender_MissingVariable tests that an unsubstituted placeholder is an error
func TestRender_MissingVariable(t *testing.T) {
	_, err := Render(welcomeTemplate(), map[string]interface{}{})
	if err == nil {
		t.Fatal("Render() with no variables returned nil error")
	}
	if !strings.Contains(err.Error(), "{{name}}") {
		t.Errorf("error = %q, want it to name the missing {{name}} placeholder", err.Error())
	}
}

// TestRender_MultipleOccurrences tests that every occurrence of a placeholder
// is replaced
func TestRender_MultipleOccurrences(t *testing.T) {
	tpl := welcomeTemplate()
	tpl.Content.Body = "{{name}}, {{name}}, {{name}}!"

	content, err := Render(tpl, map[string]interface{}{"name": "Bob"})
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if content.Body != "Bob, Bob, Bob!" {
		t.Errorf("Body = %q, want %q", content.Body, "Bob, Bob, Bob!")
	}
}

// TestRender_NumericVariable tests integer and float substitution
func TestRender_NumericVariable(t *testing.T) {
	tpl := Template{
		Content: Content{
			Title: "Order {{order_id}}",
			Body:  "Total: {{amount}}",
		},
	}

	content, err := Render(tpl, map[string]interface{}{
		"order_id": 42,
		"amount":   19.99,
	})
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if content.Title != "Order 42" {
		t.Errorf("Title = %q, want %q", content.Title, "Order 42")
	}
	if content.Body != "Total: 19.99" {
		t.Errorf("Body = %q, want %q", content.Body, "Total: 19.99")
	}
}

// TestRender_BoolVariable tests boolean substitution
func TestRender_BoolVariable(t *testing.T) {
	tpl := Template{Content: Content{Body: "Active: {{active}}"}}

	content, err := Render(tpl, map[string]interface{}{"active": true})
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if content.Body != "Active: true" {
		t.Errorf("Body = %q, want %q", content.Body, "Active: true")
	}
}

// TestRender_NilVariable tests that a nil value becomes an empty string
func TestRender_NilVariable(t *testing.T) {
	tpl := Template{Content: Content{Body: "Note:{{note}}"}}

	content, err := Render(tpl, map[string]interface{}{"note": nil})
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if content.Body != "Note:" {
		t.Errorf("Body = %q, want %q", content.Body, "Note:")
	}
}

// TestRender_UnsupportedVariableType tests that complex values are rejected
func TestRender_UnsupportedVariableType(t *testing.T) {
	tpl := Template{Content: Content{Body: "Data: {{data}}"}}

	_, err := Render(tpl, map[string]interface{}{"data": []string{"a", "b"}})
	if err == nil {
		t.Error("Render() with a slice variable returned nil error")
	}
}

// TestRender_NoPlaceholders tests static content passing through untouched
func TestRender_NoPlaceholders(t *testing.T) {
	tpl := Template{Content: Content{Title: "Static title", Body: "Static body."}}

	content, err := Render(tpl, nil)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if content.Title != "Static title" {
		t.Errorf("Title = %q, want %q", content.Title, "Static title")
	}
	if content.Body != "Static body." {
		t.Errorf("Body = %q, want %q", content.Body, "Static body.")
	}
}

// TestRender_ExtraVariablesIgnored tests that unused variables are harmless
func TestRender_ExtraVariablesIgnored(t *testing.T) {
	content, err := Render(welcomeTemplate(), map[string]interface{}{
		"name":   "Carol",
		"unused": "whatever",
	})
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if content.Title != "Welcome Carol!" {
		t.Errorf("Title = %q, want %q", content.Title, "Welcome Carol!")
	}
}

// TestRender_EmptyContent tests rendering an empty template
func TestRender_EmptyContent(t *testing.T) {
	content, err := Render(Template{}, nil)
	if err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	if content.Title != "" || content.Body != "" {
		t.Errorf("content = %+v, want empty", content)
	}
}
