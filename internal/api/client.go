package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/teamupapp/teamup/internal/errors"
	"github.com/teamupapp/teamup/internal/log"
)

// ResponseHook is invoked for every HTTP response the client receives,
// regardless of which operation produced it. The 401 hook installed by the
// session manager implements the global sign-out-on-unauthorized behavior.
type ResponseHook func(resp *http.Response)

// Client is the TeamMaker API client
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	logger *log.Logger

	mu    sync.RWMutex
	token string
	hooks []ResponseHook
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithLogger sets the client's logger
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new TeamMaker API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken sets the bearer token attached to subsequent requests
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken removes the bearer token
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the currently attached bearer token, empty when anonymous
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// OnResponse registers a hook invoked for every response
func (c *Client) OnResponse(hook ResponseHook) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hooks = append(c.hooks, hook)
}

// errorResponse is the backend's error payload shape
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// message returns the human-readable reason, or empty when absent
func (e errorResponse) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

// do performs a request and decodes a 2xx response body into target.
// Failures are returned as coded errors per the client error taxonomy.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, target any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(errors.ErrCodeAPIDecode, "failed to encode request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	fullURL := c.BaseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAPINetwork, "failed to create request", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.logger.Debug("api request", "method", method, "path", path)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrap(errors.ErrCodeAPINetwork, "request could not complete", err).
			WithSuggestion("check your network connection and the configured API URL")
	}
	defer resp.Body.Close()

	c.runHooks(resp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.statusError(resp)
	}

	if target != nil {
		if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
			return errors.Wrap(errors.ErrCodeAPIDecode, "failed to decode response", err)
		}
	}

	return nil
}

func (c *Client) runHooks(resp *http.Response) {
	c.mu.RLock()
	hooks := make([]ResponseHook, len(c.hooks))
	copy(hooks, c.hooks)
	c.mu.RUnlock()

	for _, hook := range hooks {
		hook(resp)
	}
}

// statusError maps a non-2xx response to the error taxonomy:
// 401 unauthorized, 404 not found, other 4xx validation, 5xx server.
func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var payload errorResponse
	_ = json.Unmarshal(raw, &payload)
	msg := payload.message()

	c.logger.Debug("api error response", "status", resp.StatusCode, "message", msg)

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if msg == "" {
			msg = "authentication required"
		}
		return errors.New(errors.ErrCodeAPIUnauthorized, msg).
			WithSuggestion("run 'teamup auth login' to authenticate")
	case resp.StatusCode == http.StatusNotFound:
		if msg == "" {
			msg = "resource not found"
		}
		return errors.New(errors.ErrCodeAPINotFound, msg)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		if msg == "" {
			msg = fmt.Sprintf("request rejected with status %d", resp.StatusCode)
		}
		return errors.New(errors.ErrCodeAPIValidation, msg)
	default:
		if msg == "" {
			msg = fmt.Sprintf("server error with status %d", resp.StatusCode)
		}
		return errors.New(errors.ErrCodeAPIServer, msg)
	}
}
