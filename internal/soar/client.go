// Package soar is the client side of the SOAR platform REST API: integration
// instance discovery, manual action execution and the case-management
// endpoints. Every call returns the backend JSON untouched.
package soar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// appKeyHeader carries the platform API key on every request
	appKeyHeader = "AppKey"

	// maxErrorBodySnippet bounds how much of a failed response body ends up in an error
	maxErrorBodySnippet = 512
)

// Config holds the connection settings for the SOAR backend
type Config struct {
	BaseURL string        // e.g. https://soar.example.com/api/external/v1
	AppKey  string        // API key sent in the AppKey header
	Timeout time.Duration // per-request timeout applied by the HTTP client (0 = none)
}

// Client talks to the SOAR REST API. It holds no per-call state and is safe
// for concurrent use.
type Client struct {
	baseURL    string
	appKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a backend client
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("SOAR base URL is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid SOAR base URL: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		appKey:  cfg.AppKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}, nil
}

// get issues a GET and returns the raw JSON body
func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// post issues a POST with a JSON body and returns the raw JSON body
func (c *Client) post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// patch issues a PATCH with a JSON body and returns the raw JSON body
func (c *Client) patch(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (json.RawMessage, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.appKey != "" {
		req.Header.Set(appKeyHeader, c.appKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.Debug("SOAR request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := strings.TrimSpace(string(respBody))
		if len(snippet) > maxErrorBodySnippet {
			snippet = snippet[:maxErrorBodySnippet] + "..."
		}
		if snippet == "" {
			return nil, fmt.Errorf("%s %s: http status %d", method, path, resp.StatusCode)
		}
		return nil, fmt.Errorf("%s %s: http status %d: %s", method, path, resp.StatusCode, snippet)
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(respBody) {
		return nil, fmt.Errorf("%s %s: response is not valid JSON", method, path)
	}

	return json.RawMessage(respBody), nil
}

// ListInstances returns the configured instances of an integration, in the
// order the backend reports them
func (c *Client) ListInstances(ctx context.Context, integrationName string) ([]Instance, error) {
	raw, err := c.get(ctx, "/integration-instances", url.Values{"integrationName": []string{integrationName}})
	if err != nil {
		return nil, err
	}

	var resp instanceListResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode integration instances: %w", err)
	}
	return resp.Instances, nil
}

// ExecuteManualAction posts an action envelope and returns the backend result verbatim
func (c *Client) ExecuteManualAction(ctx context.Context, req ActionRequest) (json.RawMessage, error) {
	return c.post(ctx, "/execute-manual-action", req)
}

// ListScopes fetches the set of predefined scope names the backend accepts
func (c *Client) ListScopes(ctx context.Context) ([]string, error) {
	raw, err := c.get(ctx, "/scopes", nil)
	if err != nil {
		return nil, err
	}

	var scopes []string
	if err := json.Unmarshal(raw, &scopes); err == nil {
		return scopes, nil
	}

	// Some deployments wrap the list in an object
	var wrapped struct {
		Scopes []string `json:"scopes"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode scopes: %w", err)
	}
	return wrapped.Scopes, nil
}
