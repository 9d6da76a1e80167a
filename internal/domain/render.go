// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// render.go - key/value rendering of hub resources onto the sink.
package domain

import (
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/hubshell/internal/client"
	"github.com/jeranaias/hubshell/internal/shell"
)

// defaultPadding is used when the context does not carry one.
const defaultPadding = 16

func padding(ctx *shell.Context) int {
	if ctx.Padding > 0 {
		return ctx.Padding
	}
	return defaultPadding
}

// renderRow appends one list row: a padded name column and a free column.
func renderRow(ctx *shell.Context, name, rest string) {
	ctx.Sink.AppendLine(runewidth.FillRight(name, padding(ctx)) + " " + rest)
}

func renderTimestamps(ctx *shell.Context, createdAt, updatedAt time.Time) {
	pad := padding(ctx)
	ctx.Sink.AppendKeyValue("Created", createdAt.Format(time.RFC3339), pad)
	ctx.Sink.AppendKeyValue("Updated", updatedAt.Format(time.RFC3339), pad)
}

func renderClass(ctx *shell.Context, class *client.Class) {
	pad := padding(ctx)
	ctx.Sink.AppendKeyValue("Name", class.Name, pad)
	ctx.Sink.AppendKeyValue("Namespace", strconv.Itoa(class.NamespaceID), pad)
	ctx.Sink.AppendKeyValue("Description", class.Description, pad)
	if len(class.JSONSchema) > 0 {
		ctx.Sink.AppendKeyValue("Schema", string(class.JSONSchema), pad)
		ctx.Sink.AppendKeyValue("Validate", strconv.FormatBool(class.ValidateSchema), pad)
	}
	renderTimestamps(ctx, class.CreatedAt, class.UpdatedAt)
}

func renderNamespace(ctx *shell.Context, namespace *client.Namespace) {
	pad := padding(ctx)
	ctx.Sink.AppendKeyValue("Name", namespace.Name, pad)
	ctx.Sink.AppendKeyValue("Description", namespace.Description, pad)
	renderTimestamps(ctx, namespace.CreatedAt, namespace.UpdatedAt)
}

func renderUser(ctx *shell.Context, user *client.User) {
	pad := padding(ctx)
	ctx.Sink.AppendKeyValue("Username", user.Username, pad)
	ctx.Sink.AppendKeyValue("Email", user.Email, pad)
	renderTimestamps(ctx, user.CreatedAt, user.UpdatedAt)
}

func renderGroup(ctx *shell.Context, group *client.Group) {
	pad := padding(ctx)
	ctx.Sink.AppendKeyValue("Group", group.Groupname, pad)
	ctx.Sink.AppendKeyValue("Description", group.Description, pad)
	renderTimestamps(ctx, group.CreatedAt, group.UpdatedAt)
}
