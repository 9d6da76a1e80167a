// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// user.go - commands under the "user" scope.
package domain

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/jeranaias/hubshell/internal/client"
	"github.com/jeranaias/hubshell/internal/shell"
)

// passwordAlphabet excludes characters that are easy to misread when a
// generated password is copied by hand.
const passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generatePassword creates a random password of the given length.
func generatePassword(length int) (string, error) {
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", err
		}
		password[i] = passwordAlphabet[n.Int64()]
	}
	return string(password), nil
}

// =============================================================================
// USER CREATE
// =============================================================================

// UserCreate creates a new user with a generated password.
type UserCreate struct {
	username, email shell.Option

	opts []shell.Option
}

func NewUserCreate() *UserCreate {
	c := &UserCreate{
		username: shell.Option{Name: "username", Short: "-u", Long: "--username", Help: "Username of the user", Type: "string"},
		email:    shell.Option{Name: "email", Short: "-e", Long: "--email", Help: "Email address for the user", Type: "string", Optional: true},
	}
	c.opts = shell.NewOptions(c.username, c.email)
	return c
}

func (c *UserCreate) Name() string  { return "create" }
func (c *UserCreate) About() string { return "Create a new user" }
func (c *UserCreate) LongAbout() string {
	return "Create a new user. The initial password is generated and printed once."
}
func (c *UserCreate) Examples() string        { return "-u alice -e alice@example.com" }
func (c *UserCreate) Options() []shell.Option { return c.opts }

func (c *UserCreate) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	username, _ := tokens.StringOption(c.username)
	email, _ := tokens.StringOption(c.email)

	password, err := generatePassword(20)
	if err != nil {
		return err
	}

	user, err := ctx.Client.CreateUser(context.Background(), client.UserPost{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	renderUser(ctx, user)
	ctx.Sink.AppendKeyValue("Password", password, padding(ctx))
	return nil
}

// =============================================================================
// USER LIST
// =============================================================================

// UserList lists users, optionally filtered.
type UserList struct {
	username, email, rawJSON shell.Option

	opts []shell.Option
}

func NewUserList(cpl *Completions) *UserList {
	c := &UserList{
		username: shell.Option{Name: "username", Short: "-u", Long: "--username", Help: "Username of the user", Type: "string", Optional: true, Autocomplete: cpl.Users},
		email:    shell.Option{Name: "email", Short: "-e", Long: "--email", Help: "Email address for the user", Type: "string", Optional: true},
		rawJSON:  shell.Option{Name: "json", Short: "-j", Long: "--json", Help: "Output in JSON format", Type: "bool", Flag: true, Optional: true},
	}
	c.opts = shell.NewOptions(c.username, c.email, c.rawJSON)
	return c
}

func (c *UserList) Name() string            { return "list" }
func (c *UserList) About() string           { return "List users" }
func (c *UserList) LongAbout() string       { return "" }
func (c *UserList) Examples() string        { return "-u ali" }
func (c *UserList) Options() []shell.Option { return c.opts }

func (c *UserList) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	var filters []client.Filter
	if username, ok := tokens.StringOption(c.username); ok {
		filters = append(filters, client.Filter{Key: "username", Operator: "icontains", Value: username})
	}
	if email, ok := tokens.StringOption(c.email); ok {
		filters = append(filters, client.Filter{Key: "email", Operator: "icontains", Value: email})
	}

	users, err := ctx.Client.ListUsers(context.Background(), filters...)
	if err != nil {
		return err
	}

	if tokens.FlagSet(c.rawJSON) {
		return ctx.Sink.AppendJSON(users)
	}
	for _, user := range users {
		renderRow(ctx, user.Username, user.Email)
	}
	return nil
}

// =============================================================================
// USER DELETE
// =============================================================================

// UserDelete deletes a user by username.
type UserDelete struct {
	username shell.Option

	opts []shell.Option
}

func NewUserDelete(cpl *Completions) *UserDelete {
	c := &UserDelete{
		username: shell.Option{Name: "username", Short: "-u", Long: "--username", Help: "Username of the user", Type: "string", Optional: true, Autocomplete: cpl.Users},
	}
	c.opts = shell.NewOptions(c.username)
	return c
}

func (c *UserDelete) Name() string            { return "delete" }
func (c *UserDelete) About() string           { return "Delete a user" }
func (c *UserDelete) LongAbout() string       { return "" }
func (c *UserDelete) Examples() string        { return "-u alice\nalice" }
func (c *UserDelete) Options() []shell.Option { return c.opts }

func (c *UserDelete) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	username, err := nameOrPositional(tokens, c.username)
	if err != nil {
		return err
	}
	if err := ctx.Client.DeleteUser(context.Background(), username); err != nil {
		return err
	}
	ctx.Sink.AppendLine(fmt.Sprintf("User '%s' deleted", username))
	return nil
}

// =============================================================================
// USER INFO
// =============================================================================

// UserInfo shows one user in detail.
type UserInfo struct {
	username, rawJSON shell.Option

	opts []shell.Option
}

func NewUserInfo(cpl *Completions) *UserInfo {
	c := &UserInfo{
		username: shell.Option{Name: "username", Short: "-u", Long: "--username", Help: "Username of the user", Type: "string", Optional: true, Autocomplete: cpl.Users},
		rawJSON:  shell.Option{Name: "json", Short: "-j", Long: "--json", Help: "Output in JSON format", Type: "bool", Flag: true, Optional: true},
	}
	c.opts = shell.NewOptions(c.username, c.rawJSON)
	return c
}

func (c *UserInfo) Name() string            { return "info" }
func (c *UserInfo) About() string           { return "Show a user" }
func (c *UserInfo) LongAbout() string       { return "" }
func (c *UserInfo) Examples() string        { return "-u alice\nalice -j" }
func (c *UserInfo) Options() []shell.Option { return c.opts }

func (c *UserInfo) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	username, err := nameOrPositional(tokens, c.username)
	if err != nil {
		return err
	}
	user, err := ctx.Client.GetUser(context.Background(), username)
	if err != nil {
		return err
	}

	if tokens.FlagSet(c.rawJSON) {
		return ctx.Sink.AppendJSON(user)
	}
	renderUser(ctx, user)
	return nil
}
