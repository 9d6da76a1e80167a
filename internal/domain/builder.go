// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// builder.go - assembles the command tree.
package domain

import "github.com/jeranaias/hubshell/internal/shell"

// BuildCommands assembles the full command tree. Registration happens once at
// startup; after BuildCommands returns the tree is only read.
func BuildCommands(cpl *Completions) *shell.Tree {
	tree := shell.NewTree()

	addClassCommands(tree, cpl)
	addNamespaceCommands(tree, cpl)
	addUserCommands(tree, cpl)
	addGroupCommands(tree, cpl)

	help := NewHelp()
	tree.AddCommand("help", help)
	help.tree = tree

	return tree
}

func addClassCommands(tree *shell.Tree, cpl *Completions) {
	tree.AddScope("class").
		AddCommand("create", NewClassCreate(cpl)).
		AddCommand("list", NewClassList(cpl)).
		AddCommand("delete", NewClassDelete(cpl)).
		AddCommand("info", NewClassInfo(cpl))
}

func addNamespaceCommands(tree *shell.Tree, cpl *Completions) {
	tree.AddScope("namespace").
		AddCommand("create", NewNamespaceCreate(cpl)).
		AddCommand("list", NewNamespaceList(cpl)).
		AddCommand("delete", NewNamespaceDelete(cpl)).
		AddCommand("info", NewNamespaceInfo(cpl))
}

func addUserCommands(tree *shell.Tree, cpl *Completions) {
	tree.AddScope("user").
		AddCommand("create", NewUserCreate()).
		AddCommand("list", NewUserList(cpl)).
		AddCommand("delete", NewUserDelete(cpl)).
		AddCommand("info", NewUserInfo(cpl))
}

func addGroupCommands(tree *shell.Tree, cpl *Completions) {
	tree.AddScope("group").
		AddCommand("create", NewGroupCreate()).
		AddCommand("list", NewGroupList(cpl))
}
