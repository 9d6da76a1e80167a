// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package domain holds the concrete hubshell commands.
//
// Each command is a small struct: a static option table built once at
// registration and an Execute body that talks to the hub through the client
// on the execution context. BuildCommands assembles the full command tree.
package domain
