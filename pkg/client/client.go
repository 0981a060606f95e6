package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Template mirrors the service's wire format.
type Template struct {
	ID        string   `json:"id"`
	Code      string   `json:"code"`
	Type      string   `json:"type"`
	Language  string   `json:"language"`
	Version   int      `json:"version"`
	Content   Content  `json:"content"`
	Variables []string `json:"variables"`
}

type Content struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NotFoundError is returned when the service answers 404. It carries the
// service's error message and is never retried.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

type apiError struct {
	Error string `json:"error"`
}

// Client fetches templates from a template service instance.
type Client struct {
	httpClient *http.Client
	baseURL    string
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a client for the given base URL, e.g. http://localhost:8001
func NewClient(baseURL string) *Client {
	return NewClientWithRetry(baseURL, 3, 500*time.Millisecond)
}

// NewClientWithRetry creates a client with an explicit retry budget.
func NewClientWithRetry(baseURL string, maxRetries int, retryDelay time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

// FetchTemplate retrieves a template by code. An empty lang defaults to "en".
// Transport errors and 5xx responses are retried up to the retry budget; a
// 404 is returned immediately as *NotFoundError.
func (c *Client) FetchTemplate(ctx context.Context, code, lang string) (Template, error) {
	if lang == "" {
		lang = "en"
	}

	endpoint := fmt.Sprintf("%s/api/v1/templates/%s?lang=%s", c.baseURL, url.PathEscape(code), url.QueryEscape(lang))

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return Template{}, ctx.Err()
			case <-time.After(c.retryDelay):
			}
		}

		tpl, retryable, err := c.fetchOnce(ctx, endpoint)
		if err == nil {
			return tpl, nil
		}
		if !retryable {
			return Template{}, err
		}
		lastErr = err
	}

	return Template{}, fmt.Errorf("failed to fetch template %s after %d attempts: %w", code, c.maxRetries+1, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, endpoint string) (Template, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Template{}, false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Template{}, true, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var tpl Template
		if err := json.NewDecoder(resp.Body).Decode(&tpl); err != nil {
			return Template{}, false, fmt.Errorf("failed to parse template JSON: %w", err)
		}
		return tpl, false, nil
	case http.StatusNotFound:
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			apiErr.Error = "template not found"
		}
		return Template{}, false, &NotFoundError{Message: apiErr.Error}
	default:
		io.Copy(io.Discard, resp.Body)
		return Template{}, true, fmt.Errorf("template service returned status %d", resp.StatusCode)
	}
}
