package content

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Config describes the hosted content store the site reads from.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string // defaults to 2024-01-01
	Token      string // optional; published documents are readable anonymously
	BaseURL    string // optional override, used by tests
}

// Client issues read-only queries against the content store's HTTP query API.
// Every query runs against the published perspective; drafts never reach the
// rendered site.
type Client struct {
	queryURL   string
	token      string
	httpClient *http.Client
}

// NewClient creates a query client for the configured project and dataset.
func NewClient(cfg Config) *Client {
	version := cfg.APIVersion
	if version == "" {
		version = "2024-01-01"
	}

	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io", cfg.ProjectID)
	}

	return &Client{
		queryURL: fmt.Sprintf("%s/v%s/data/query/%s", base, version, cfg.Dataset),
		token:    cfg.Token,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HTTPError represents a non-2xx HTTP response from the content store.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// envelope is the query API response wrapper.
type envelope struct {
	Result json.RawMessage `json:"result"`
}

// Query runs a named projection with optional string parameters and decodes
// the result into out. A null result leaves out untouched, so pointer
// destinations stay nil for absent documents.
func (c *Client) Query(ctx context.Context, query string, params map[string]string, out any) error {
	values := url.Values{}
	values.Set("query", query)
	values.Set("perspective", "published")
	for name, value := range params {
		// GROQ parameters are JSON-encoded; ours are all strings.
		values.Set("$"+name, strconv.Quote(value))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.queryURL+"?"+values.Encode(), nil)
	if err != nil {
		return fmt.Errorf("building query request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("querying content store: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading query response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Message: snippet(body)}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decoding query envelope: %w", err)
	}

	if out == nil || len(env.Result) == 0 || bytes.Equal(env.Result, []byte("null")) {
		return nil
	}

	if err := json.Unmarshal(env.Result, out); err != nil {
		return fmt.Errorf("decoding query result: %w", err)
	}
	return nil
}

// snippet trims an error body down to something loggable.
func snippet(body []byte) string {
	const max = 200
	s := string(bytes.TrimSpace(body))
	if len(s) > max {
		return s[:max]
	}
	return s
}
