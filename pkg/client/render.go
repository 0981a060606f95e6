package client

import (
	"fmt"
	"strconv"
	"strings"
)

// Render substitutes {{name}} placeholders in the template content with the
// given variables. The service returns raw templates; substitution happens on
// the consumer side.
func Render(tpl Template, variables map[string]interface{}) (Content, error) {
	title, err := replaceVariables(tpl.Content.Title, variables)
	if err != nil {
		return Content{}, err
	}

	body, err := replaceVariables(tpl.Content.Body, variables)
	if err != nil {
		return Content{}, err
	}

	return Content{Title: title, Body: body}, nil
}

func replaceVariables(text string, variables map[string]interface{}) (string, error) {
	result := text

	for key, value := range variables {
		replacement, err := stringifyVariable(key, value)
		if err != nil {
			return "", err
		}
		result = strings.ReplaceAll(result, "{{"+key+"}}", replacement)
	}

	// Any marker left over means the caller did not supply a variable.
	if start := strings.Index(result, "{{"); start >= 0 {
		if end := strings.Index(result[start:], "}}"); end >= 0 {
			return "", fmt.Errorf("missing variable in template: %s", result[start:start+end+2])
		}
	}

	return result, nil
}

func stringifyVariable(key string, value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("unsupported variable type for key %q", key)
	}
}
