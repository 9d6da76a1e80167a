// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// class.go - commands under the "class" scope.
package domain

import (
	"context"
	"fmt"

	"github.com/jeranaias/hubshell/internal/client"
	"github.com/jeranaias/hubshell/internal/shell"
)

// nameOrPositional returns the value supplied for opt, falling back to the
// first positional word. Several info/delete commands accept their target
// either way.
func nameOrPositional(tokens *shell.Tokens, opt shell.Option) (string, error) {
	if v, ok := tokens.StringOption(opt); ok {
		return v, nil
	}
	if v, ok := tokens.Positional(0); ok {
		return v, nil
	}
	return "", &shell.MissingOptionsError{Options: []string{opt.Name}}
}

// =============================================================================
// CLASS CREATE
// =============================================================================

// ClassCreate creates a new class.
type ClassCreate struct {
	name, namespace, description, schema, validate shell.Option

	opts []shell.Option
}

func NewClassCreate(cpl *Completions) *ClassCreate {
	c := &ClassCreate{
		name:        shell.Option{Name: "name", Short: "-n", Long: "--name", Help: "Name of the class", Type: "string"},
		namespace:   shell.Option{Name: "namespace", Short: "-N", Long: "--namespace", Help: "Namespace name", Type: "string", Autocomplete: cpl.Namespaces},
		description: shell.Option{Name: "description", Short: "-d", Long: "--description", Help: "Description of the class", Type: "string"},
		schema:      shell.Option{Name: "schema", Short: "-s", Long: "--schema", Help: "JSON schema for the class", Type: "json", Optional: true},
		validate:    shell.Option{Name: "validate", Short: "-v", Long: "--validate", Help: "Validate against schema, requires schema to be set", Type: "bool", Optional: true, Autocomplete: Bool},
	}
	c.opts = shell.NewOptions(c.name, c.namespace, c.description, c.schema, c.validate)
	return c
}

func (c *ClassCreate) Name() string  { return "create" }
func (c *ClassCreate) About() string { return "Create a new class" }
func (c *ClassCreate) LongAbout() string {
	return "Create a new class with the specified properties."
}
func (c *ClassCreate) Examples() string {
	return "-n MyClass -N namespace_1 -d \"My class description\"\n" +
		"--name MyClass --namespace namespace_1 --description 'My class' --schema '{\"type\": \"object\"}'"
}
func (c *ClassCreate) Options() []shell.Option { return c.opts }

func (c *ClassCreate) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	name, _ := tokens.StringOption(c.name)
	namespaceName, _ := tokens.StringOption(c.namespace)
	description, _ := tokens.StringOption(c.description)

	schema, _, err := tokens.JSONOption(c.schema)
	if err != nil {
		return err
	}
	validate, hasValidate, err := tokens.BoolOption(c.validate)
	if err != nil {
		return err
	}

	namespace, err := ctx.Client.GetNamespace(context.Background(), namespaceName)
	if err != nil {
		return err
	}

	post := client.ClassPost{
		Name:        name,
		NamespaceID: namespace.ID,
		Description: description,
		JSONSchema:  schema,
	}
	if hasValidate {
		post.ValidateSchema = &validate
	}

	created, err := ctx.Client.CreateClass(context.Background(), post)
	if err != nil {
		return err
	}
	renderClass(ctx, created)
	return nil
}

// =============================================================================
// CLASS LIST
// =============================================================================

// ClassList lists classes, optionally filtered by name or description.
type ClassList struct {
	name, description, rawJSON shell.Option

	opts []shell.Option
}

func NewClassList(cpl *Completions) *ClassList {
	c := &ClassList{
		name:        shell.Option{Name: "name", Short: "-n", Long: "--name", Help: "Name of the class", Type: "string", Optional: true, Autocomplete: cpl.Classes},
		description: shell.Option{Name: "description", Short: "-d", Long: "--description", Help: "Description of the class", Type: "string", Optional: true},
		rawJSON:     shell.Option{Name: "json", Short: "-j", Long: "--json", Help: "Output in JSON format", Type: "bool", Flag: true, Optional: true},
	}
	c.opts = shell.NewOptions(c.name, c.description, c.rawJSON)
	return c
}

func (c *ClassList) Name() string            { return "list" }
func (c *ClassList) About() string           { return "List classes" }
func (c *ClassList) LongAbout() string       { return "" }
func (c *ClassList) Examples() string        { return "-n My" }
func (c *ClassList) Options() []shell.Option { return c.opts }

func (c *ClassList) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	var filters []client.Filter
	if name, ok := tokens.StringOption(c.name); ok {
		filters = append(filters, client.Filter{Key: "name", Operator: "icontains", Value: name})
	}
	if description, ok := tokens.StringOption(c.description); ok {
		filters = append(filters, client.Filter{Key: "description", Operator: "icontains", Value: description})
	}

	classes, err := ctx.Client.ListClasses(context.Background(), filters...)
	if err != nil {
		return err
	}

	if tokens.FlagSet(c.rawJSON) {
		return ctx.Sink.AppendJSON(classes)
	}
	for _, class := range classes {
		renderRow(ctx, class.Name, class.Description)
	}
	return nil
}

// =============================================================================
// CLASS DELETE
// =============================================================================

// ClassDelete deletes a class by name.
type ClassDelete struct {
	name shell.Option

	opts []shell.Option
}

func NewClassDelete(cpl *Completions) *ClassDelete {
	c := &ClassDelete{
		name: shell.Option{Name: "name", Short: "-n", Long: "--name", Help: "Name of the class", Type: "string", Optional: true, Autocomplete: cpl.Classes},
	}
	c.opts = shell.NewOptions(c.name)
	return c
}

func (c *ClassDelete) Name() string            { return "delete" }
func (c *ClassDelete) About() string           { return "Delete a class" }
func (c *ClassDelete) LongAbout() string       { return "" }
func (c *ClassDelete) Examples() string        { return "-n MyClass\nMyClass" }
func (c *ClassDelete) Options() []shell.Option { return c.opts }

func (c *ClassDelete) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	name, err := nameOrPositional(tokens, c.name)
	if err != nil {
		return err
	}
	if err := ctx.Client.DeleteClass(context.Background(), name); err != nil {
		return err
	}
	ctx.Sink.AppendLine(fmt.Sprintf("Class '%s' deleted", name))
	return nil
}

// =============================================================================
// CLASS INFO
// =============================================================================

// ClassInfo shows one class in detail.
type ClassInfo struct {
	name, rawJSON shell.Option

	opts []shell.Option
}

func NewClassInfo(cpl *Completions) *ClassInfo {
	c := &ClassInfo{
		name:    shell.Option{Name: "name", Short: "-n", Long: "--name", Help: "Name of the class", Type: "string", Optional: true, Autocomplete: cpl.Classes},
		rawJSON: shell.Option{Name: "json", Short: "-j", Long: "--json", Help: "Output in JSON format", Type: "bool", Flag: true, Optional: true},
	}
	c.opts = shell.NewOptions(c.name, c.rawJSON)
	return c
}

func (c *ClassInfo) Name() string            { return "info" }
func (c *ClassInfo) About() string           { return "Show a class" }
func (c *ClassInfo) LongAbout() string       { return "" }
func (c *ClassInfo) Examples() string        { return "-n MyClass\nMyClass -j" }
func (c *ClassInfo) Options() []shell.Option { return c.opts }

func (c *ClassInfo) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	name, err := nameOrPositional(tokens, c.name)
	if err != nil {
		return err
	}
	class, err := ctx.Client.GetClass(context.Background(), name)
	if err != nil {
		return err
	}

	if tokens.FlagSet(c.rawJSON) {
		return ctx.Sink.AppendJSON(class)
	}
	renderClass(ctx, class)
	return nil
}
