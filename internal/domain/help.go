// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// help.go - the root help command.
package domain

import (
	"strings"

	"github.com/jeranaias/hubshell/internal/shell"
)

// Help prints the command tree. The tree pointer is installed by
// BuildCommands after the tree is assembled.
type Help struct {
	tree *shell.Tree

	treeOpt shell.Option
	opts    []shell.Option
}

func NewHelp() *Help {
	c := &Help{
		treeOpt: shell.Option{Name: "tree", Short: "-t", Long: "--tree", Help: "Command tree", Type: "bool", Flag: true, Optional: true},
	}
	c.opts = shell.NewOptions(c.treeOpt)
	return c
}

func (c *Help) Name() string            { return "help" }
func (c *Help) About() string           { return "Show available commands" }
func (c *Help) LongAbout() string       { return "" }
func (c *Help) Examples() string        { return "--tree" }
func (c *Help) Options() []shell.Option { return c.opts }

func (c *Help) Execute(ctx *shell.Context, tokens *shell.Tokens) error {
	if c.tree == nil {
		return nil
	}
	if tokens.FlagSet(c.treeOpt) {
		rendered := strings.TrimRight(c.tree.ShowTree(), "\n")
		ctx.Sink.AppendLines(strings.Split(rendered, "\n"))
		return nil
	}
	ctx.Sink.AppendLine("Type '<command> --help' for command help, or 'help --tree' for the full command tree.")
	return nil
}
