package recipes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Dispatcher describes the three demo operations. It is implemented by
// *Client and can be faked in tests.
type Dispatcher interface {
	ListRecipes(ctx context.Context, base string) (json.RawMessage, error)
	CreateRecipe(ctx context.Context, base string, recipe Recipe) (json.RawMessage, error)
	WeeklyPlan(ctx context.Context, base string, date string) (json.RawMessage, error)
}

// Ensure Client implements Dispatcher at compile time.
var _ Dispatcher = (*Client)(nil)

// Client talks to a recipe-management backend over HTTP.
type Client struct {
	http      *http.Client
	userAgent string
}

const defaultUserAgent = "ladle/0.1"

// NewClient builds a Client. The underlying http.Client carries no timeout:
// requests are user triggered one at a time and a hung call is surfaced by
// the loading indicator rather than aborted.
func NewClient() *Client {
	return &Client{
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}
}

// StatusError reports a response whose status code fell outside the 2xx
// range. Body holds the raw response body text.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("status %d", e.Status)
	}
	return fmt.Sprintf("status %d: %s", e.Status, body)
}

// ListRecipes fetches all recipes from the backend at base.
func (c *Client) ListRecipes(ctx context.Context, base string) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodGet, NewEndpoints(base).Recipes(), nil)
}

// CreateRecipe posts one recipe to the backend at base.
func (c *Client) CreateRecipe(ctx context.Context, base string, recipe Recipe) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := json.Marshal(recipe)
	if err != nil {
		return nil, fmt.Errorf("encode recipe: %w", err)
	}
	return c.do(ctx, http.MethodPost, NewEndpoints(base).Recipes(), body)
}

// WeeklyPlan fetches the plan for the week containing date (YYYY-MM-DD).
func (c *Client) WeeklyPlan(ctx context.Context, base string, date string) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodGet, NewEndpoints(base).WeeklyPlan(date), nil)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body []byte) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: string(data)}
	}

	var payload json.RawMessage
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload, nil
}
