// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package remote fetches option values referenced by URL or file path.
//
// It backs the tokenizer's value substitution: when an option value starts
// with http://, https://, or file://, the tokenizer resolves it through a
// Source before the command ever sees it. Calls block the caller; the
// timeout bounds the HTTP case.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTimeout bounds a single value fetch.
const DefaultTimeout = 10 * time.Second

// maxBodySize caps fetched bodies. Option values are short text; anything
// bigger is a mistake, not data.
const maxBodySize = 1 << 20

// Source resolves URL and file references to their text contents.
type Source struct {
	httpClient *http.Client
}

// NewSource creates a source with the default timeout. A zero timeout uses
// DefaultTimeout.
func NewSource(timeout time.Duration) *Source {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Source{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch performs a blocking GET and returns the body as text.
func (s *Source) Fetch(url string) (string, error) {
	log.Debug("fetching option value", "url", url)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// ReadFile returns the contents of a local file as text.
func (s *Source) ReadFile(path string) (string, error) {
	log.Debug("reading option value", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
