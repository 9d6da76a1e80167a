// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package client provides the HTTP client for the hub resource API.
//
// The client is blocking and JSON-over-HTTP: every call performs one request
// and returns typed results or a structured *ClientError. Completion-path
// lookups (the Find* methods) are rate limited so that keystroke-driven
// suggestions cannot flood the server; when the limiter denies a request the
// lookup returns an empty result instead of blocking.
//
// # Usage
//
//	c := client.New(&client.Config{BaseURL: "https://hub.example.com"})
//	token, err := c.Login(ctx, "admin", password)
//	c.SetToken(token)
//	classes, err := c.ListClasses(ctx)
package client
