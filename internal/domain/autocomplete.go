// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// autocomplete.go - value completion capabilities attached to options.
package domain

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/jeranaias/hubshell/internal/client"
	"github.com/jeranaias/hubshell/internal/shell"
)

// Bool suggests the two boolean literals.
func Bool(_ *shell.Tree, prefix string, _ []string) []string {
	var out []string
	for _, v := range []string{"true", "false"} {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}

// Completions bundles the server-backed value completions. The disabled
// switch is flipped live by config reload, hence the atomic.
type Completions struct {
	client   *client.Client
	disabled atomic.Bool
}

// NewCompletions creates the completion capabilities around a client.
func NewCompletions(c *client.Client) *Completions {
	return &Completions{client: c}
}

// SetDisabled turns server-backed completions off (or back on).
func (c *Completions) SetDisabled(disabled bool) {
	c.disabled.Store(disabled)
}

// Classes suggests class names starting with prefix.
func (c *Completions) Classes(_ *shell.Tree, prefix string, _ []string) []string {
	if c.disabled.Load() {
		return nil
	}
	log.Debug("autocompleting classes", "prefix", prefix)
	return c.client.FindClasses(context.Background(), prefix)
}

// Namespaces suggests namespace names starting with prefix.
func (c *Completions) Namespaces(_ *shell.Tree, prefix string, _ []string) []string {
	if c.disabled.Load() {
		return nil
	}
	log.Debug("autocompleting namespaces", "prefix", prefix)
	return c.client.FindNamespaces(context.Background(), prefix)
}

// Groups suggests group names starting with prefix.
func (c *Completions) Groups(_ *shell.Tree, prefix string, _ []string) []string {
	if c.disabled.Load() {
		return nil
	}
	log.Debug("autocompleting groups", "prefix", prefix)
	return c.client.FindGroups(context.Background(), prefix)
}

// Users suggests usernames starting with prefix.
func (c *Completions) Users(_ *shell.Tree, prefix string, _ []string) []string {
	if c.disabled.Load() {
		return nil
	}
	log.Debug("autocompleting users", "prefix", prefix)
	return c.client.FindUsers(context.Background(), prefix)
}
