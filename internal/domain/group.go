// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// group.go - commands under the "group" scope.
package domain

import (
	"context"

	"github.com/jeranaias/hubshell/internal/client"
	"github.com/jeranaias/hubshell/internal/shell"
)

// =============================================================================
// GROUP CREATE
// =============================================================================

// GroupCreate creates a new group.
type GroupCreate struct {
	groupname, description shell.Option

	opts []shell.Option
}

func NewGroupCreate() *GroupCreate {
	c := &GroupCreate{
		groupname:   shell.Option{Name: "groupname", Short: "-g", Long: "--groupname", Help: "Name of the group", Type: "string"},
		description: shell.Option{Name: "description", Short: "-d", Long: "--description", Help: "Description of the group", Type: "string"},
	}
	c.opts = shell.NewOptions(c.groupname, c.description)
	return c
}

func (c *GroupCreate) Name() string            { return "create" }
func (c *GroupCreate) About() string           { return "Create a new group" }
func (c *GroupCreate) LongAbout() string       { return "" }
func (c *GroupCreate) Examples() string        { return "-g admins -d \"Administrators\"" }
func (c *GroupCreate) Options() []shell.Option { return c.opts }

func (c *GroupCreate) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	groupname, _ := tokens.StringOption(c.groupname)
	description, _ := tokens.StringOption(c.description)

	group, err := ctx.Client.CreateGroup(context.Background(), client.GroupPost{
		Groupname:   groupname,
		Description: description,
	})
	if err != nil {
		return err
	}
	renderGroup(ctx, group)
	return nil
}

// =============================================================================
// GROUP LIST
// =============================================================================

// GroupList lists groups, optionally filtered.
type GroupList struct {
	groupname, startsWith, endsWith, description, rawJSON shell.Option

	opts []shell.Option
}

func NewGroupList(cpl *Completions) *GroupList {
	c := &GroupList{
		groupname:   shell.Option{Name: "groupname", Short: "-g", Long: "--groupname", Help: "Name of the group", Type: "string", Optional: true, Autocomplete: cpl.Groups},
		startsWith:  shell.Option{Name: "groupname__startswith", Short: "-gs", Long: "--groupname__startswith", Help: "Name of the group starts with", Type: "string", Optional: true},
		endsWith:    shell.Option{Name: "groupname__endswith", Short: "-ge", Long: "--groupname__endswith", Help: "Name of the group ends with", Type: "string", Optional: true},
		description: shell.Option{Name: "description", Short: "-d", Long: "--description", Help: "Description of the group", Type: "string", Optional: true},
		rawJSON:     shell.Option{Name: "json", Short: "-j", Long: "--json", Help: "Output as JSON", Type: "bool", Flag: true, Optional: true},
	}
	c.opts = shell.NewOptions(c.groupname, c.startsWith, c.endsWith, c.description, c.rawJSON)
	return c
}

func (c *GroupList) Name() string            { return "list" }
func (c *GroupList) About() string           { return "List groups" }
func (c *GroupList) LongAbout() string       { return "" }
func (c *GroupList) Examples() string        { return "-gs adm" }
func (c *GroupList) Options() []shell.Option { return c.opts }

func (c *GroupList) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	var filters []client.Filter
	if groupname, ok := tokens.StringOption(c.groupname); ok {
		filters = append(filters, client.Filter{Key: "groupname", Operator: "icontains", Value: groupname})
	}
	if prefix, ok := tokens.StringOption(c.startsWith); ok {
		filters = append(filters, client.Filter{Key: "groupname", Operator: "startswith", Value: prefix})
	}
	if suffix, ok := tokens.StringOption(c.endsWith); ok {
		filters = append(filters, client.Filter{Key: "groupname", Operator: "endswith", Value: suffix})
	}
	if description, ok := tokens.StringOption(c.description); ok {
		filters = append(filters, client.Filter{Key: "description", Operator: "icontains", Value: description})
	}

	groups, err := ctx.Client.ListGroups(context.Background(), filters...)
	if err != nil {
		return err
	}

	if tokens.FlagSet(c.rawJSON) {
		return ctx.Sink.AppendJSON(groups)
	}
	for _, group := range groups {
		renderRow(ctx, group.Groupname, group.Description)
	}
	return nil
}
