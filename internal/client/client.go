// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// client.go - request plumbing, authentication, and error taxonomy.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the hub API client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeUnauthorized
	ErrTypeNotFound
	ErrTypeConflict
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrTimeout      = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrUnauthorized = &ClientError{Type: ErrTypeUnauthorized, Message: "authentication required"}
	ErrNotFound     = &ClientError{Type: ErrTypeNotFound, Message: "resource not found"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// Config holds configuration options for the hub client.
type Config struct {
	// BaseURL is the hub API base URL (e.g. "https://hub.example.com:8080")
	BaseURL string

	// Timeout for requests (default: 30s)
	Timeout time.Duration

	// CompletionRate limits autocomplete lookups per second (default: 5)
	CompletionRate float64

	// CompletionBurst is the autocomplete lookup burst size (default: 5)
	CompletionBurst int
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:         "http://localhost:8080",
		Timeout:         30 * time.Second,
		CompletionRate:  5,
		CompletionBurst: 5,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the hub resource API. It is safe for
// concurrent use once the token is set.
type Client struct {
	config     *Config
	httpClient *http.Client
	token      string

	// completionLimiter throttles Find* lookups issued while typing.
	completionLimiter *rate.Limiter
}

// New creates a hub client. A nil config uses defaults; zero fields are
// filled in.
func New(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:8080"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.CompletionRate == 0 {
		config.CompletionRate = 5
	}
	if config.CompletionBurst == 0 {
		config.CompletionBurst = 5
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		completionLimiter: rate.NewLimiter(rate.Limit(config.CompletionRate), config.CompletionBurst),
	}
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// AUTHENTICATION
// =============================================================================

// Login exchanges credentials for a bearer token and installs it.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{"username": username, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/login", nil, body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "login response carried no token"}
	}
	c.token = resp.Token
	return resp.Token, nil
}

// =============================================================================
// REQUEST PLUMBING
// =============================================================================

// do performs one JSON request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &ClientError{Type: ErrTypeUnknown, Message: "failed to encode request body", Cause: err}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log.Debug("hub request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return &ClientError{Type: ErrTypeConnection, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return &ClientError{Type: ErrTypeConflict, Message: "resource already exists"}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return &ClientError{Type: ErrTypeUnknown, Message: "unexpected status from hub: " + resp.Status}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// allowCompletion reports whether a completion-path lookup may proceed.
func (c *Client) allowCompletion() bool {
	if c.completionLimiter.Allow() {
		return true
	}
	log.Debug("completion lookup throttled")
	return false
}
