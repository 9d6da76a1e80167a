// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// namespace.go - commands under the "namespace" scope.
package domain

import (
	"context"
	"fmt"

	"github.com/jeranaias/hubshell/internal/client"
	"github.com/jeranaias/hubshell/internal/shell"
)

// =============================================================================
// NAMESPACE CREATE
// =============================================================================

// NamespaceCreate creates a new namespace owned by a group.
type NamespaceCreate struct {
	name, description, owner shell.Option

	opts []shell.Option
}

func NewNamespaceCreate(cpl *Completions) *NamespaceCreate {
	c := &NamespaceCreate{
		name:        shell.Option{Name: "name", Short: "-n", Long: "--name", Help: "Name of the namespace", Type: "string"},
		description: shell.Option{Name: "description", Short: "-d", Long: "--description", Help: "Description of the namespace", Type: "string"},
		owner:       shell.Option{Name: "owner", Short: "-o", Long: "--owner", Help: "Name of the group owning namespace", Type: "string", Autocomplete: cpl.Groups},
	}
	c.opts = shell.NewOptions(c.name, c.description, c.owner)
	return c
}

func (c *NamespaceCreate) Name() string      { return "create" }
func (c *NamespaceCreate) About() string     { return "Create a new namespace" }
func (c *NamespaceCreate) LongAbout() string { return "" }
func (c *NamespaceCreate) Examples() string {
	return "-n namespace_1 -d \"My namespace\" -o admins"
}
func (c *NamespaceCreate) Options() []shell.Option { return c.opts }

func (c *NamespaceCreate) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	name, _ := tokens.StringOption(c.name)
	description, _ := tokens.StringOption(c.description)
	owner, _ := tokens.StringOption(c.owner)

	group, err := ctx.Client.GetGroup(context.Background(), owner)
	if err != nil {
		return err
	}

	namespace, err := ctx.Client.CreateNamespace(context.Background(), client.NamespacePost{
		Name:        name,
		Description: description,
		GroupID:     group.ID,
	})
	if err != nil {
		return err
	}
	renderNamespace(ctx, namespace)
	return nil
}

// =============================================================================
// NAMESPACE LIST
// =============================================================================

// NamespaceList lists namespaces, optionally filtered.
type NamespaceList struct {
	name, description, rawJSON shell.Option

	opts []shell.Option
}

func NewNamespaceList(cpl *Completions) *NamespaceList {
	c := &NamespaceList{
		name:        shell.Option{Name: "name", Short: "-n", Long: "--name", Help: "Name of the namespace", Type: "string", Optional: true, Autocomplete: cpl.Namespaces},
		description: shell.Option{Name: "description", Short: "-d", Long: "--description", Help: "Description of the namespace", Type: "string", Optional: true},
		rawJSON:     shell.Option{Name: "json", Short: "-j", Long: "--json", Help: "Output in JSON format", Type: "bool", Flag: true, Optional: true},
	}
	c.opts = shell.NewOptions(c.name, c.description, c.rawJSON)
	return c
}

func (c *NamespaceList) Name() string            { return "list" }
func (c *NamespaceList) About() string           { return "List namespaces" }
func (c *NamespaceList) LongAbout() string       { return "" }
func (c *NamespaceList) Examples() string        { return "-n prod" }
func (c *NamespaceList) Options() []shell.Option { return c.opts }

func (c *NamespaceList) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	var filters []client.Filter
	if name, ok := tokens.StringOption(c.name); ok {
		filters = append(filters, client.Filter{Key: "name", Operator: "contains", Value: name})
	}
	if description, ok := tokens.StringOption(c.description); ok {
		filters = append(filters, client.Filter{Key: "description", Operator: "contains", Value: description})
	}

	namespaces, err := ctx.Client.ListNamespaces(context.Background(), filters...)
	if err != nil {
		return err
	}

	if tokens.FlagSet(c.rawJSON) {
		return ctx.Sink.AppendJSON(namespaces)
	}
	for _, namespace := range namespaces {
		renderRow(ctx, namespace.Name, namespace.Description)
	}
	return nil
}

// =============================================================================
// NAMESPACE DELETE
// =============================================================================

// NamespaceDelete deletes a namespace by name.
type NamespaceDelete struct {
	name shell.Option

	opts []shell.Option
}

func NewNamespaceDelete(cpl *Completions) *NamespaceDelete {
	c := &NamespaceDelete{
		name: shell.Option{Name: "name", Short: "-n", Long: "--name", Help: "Name of the namespace", Type: "string", Optional: true, Autocomplete: cpl.Namespaces},
	}
	c.opts = shell.NewOptions(c.name)
	return c
}

func (c *NamespaceDelete) Name() string            { return "delete" }
func (c *NamespaceDelete) About() string           { return "Delete a namespace" }
func (c *NamespaceDelete) LongAbout() string       { return "" }
func (c *NamespaceDelete) Examples() string        { return "-n namespace_1\nnamespace_1" }
func (c *NamespaceDelete) Options() []shell.Option { return c.opts }

func (c *NamespaceDelete) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	name, err := nameOrPositional(tokens, c.name)
	if err != nil {
		return err
	}
	if err := ctx.Client.DeleteNamespace(context.Background(), name); err != nil {
		return err
	}
	ctx.Sink.AppendLine(fmt.Sprintf("Namespace '%s' deleted", name))
	return nil
}

// =============================================================================
// NAMESPACE INFO
// =============================================================================

// NamespaceInfo shows one namespace in detail.
type NamespaceInfo struct {
	name, rawJSON shell.Option

	opts []shell.Option
}

func NewNamespaceInfo(cpl *Completions) *NamespaceInfo {
	c := &NamespaceInfo{
		name:    shell.Option{Name: "name", Short: "-n", Long: "--name", Help: "Name of the namespace", Type: "string", Optional: true, Autocomplete: cpl.Namespaces},
		rawJSON: shell.Option{Name: "json", Short: "-j", Long: "--json", Help: "Output in JSON format", Type: "bool", Flag: true, Optional: true},
	}
	c.opts = shell.NewOptions(c.name, c.rawJSON)
	return c
}

func (c *NamespaceInfo) Name() string            { return "info" }
func (c *NamespaceInfo) About() string           { return "Show a namespace" }
func (c *NamespaceInfo) LongAbout() string       { return "" }
func (c *NamespaceInfo) Examples() string        { return "-n namespace_1\nnamespace_1 -j" }
func (c *NamespaceInfo) Options() []shell.Option { return c.opts }

func (c *NamespaceInfo) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	name, err := nameOrPositional(tokens, c.name)
	if err != nil {
		return err
	}
	namespace, err := ctx.Client.GetNamespace(context.Background(), name)
	if err != nil {
		return err
	}

	if tokens.FlagSet(c.rawJSON) {
		return ctx.Sink.AppendJSON(namespace)
	}
	renderNamespace(ctx, namespace)
	return nil
}
