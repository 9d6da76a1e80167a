// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tree.go - the hierarchical registry of scopes and commands.
package shell

import (
	"sort"
	"strings"
)

// =============================================================================
// COMMAND TREE
// =============================================================================

// Tree is one level of the command hierarchy: leaf commands and child scopes,
// each keyed by unique name. The root node has no name. Children are owned by
// exactly one parent, so the tree is acyclic by construction.
//
// A Tree is built once at startup and read-only afterwards; after the
// registration phase it may be shared across goroutines without
// synchronization.
type Tree struct {
	commands map[string]Command
	scopes   map[string]*Tree
}

// NewTree creates an empty tree node.
func NewTree() *Tree {
	return &Tree{
		commands: make(map[string]Command),
		scopes:   make(map[string]*Tree),
	}
}

// AddCommand registers a leaf command under this node and returns the node
// for chaining. Re-registering a command name overwrites it. Registering a
// name already held by a scope at this level panics: ambiguous shadowing
// between a command and a scope would make dispatch order-dependent, and
// registration runs once at startup where a panic is an immediate,
// attributable failure.
func (t *Tree) AddCommand(name string, cmd Command) *Tree {
	if _, clash := t.scopes[name]; clash {
		panic("shell: name already registered as a scope: " + name)
	}
	t.commands[name] = cmd
	return t
}

// AddScope returns the child scope with the given name, creating an empty one
// if absent. Returning the child enables fluent nested registration:
//
//	tree.AddScope("class").AddCommand("create", cmd)
//
// Registering a name already held by a command at this level panics, for the
// same reason as AddCommand.
func (t *Tree) AddScope(name string) *Tree {
	if _, clash := t.commands[name]; clash {
		panic("shell: name already registered as a command: " + name)
	}
	scope, ok := t.scopes[name]
	if !ok {
		scope = NewTree()
		t.scopes[name] = scope
	}
	return scope
}

// GetCommand returns the leaf command registered under name, or nil.
func (t *Tree) GetCommand(name string) Command {
	return t.commands[name]
}

// GetScope returns the child scope registered under name, or nil.
func (t *Tree) GetScope(name string) *Tree {
	return t.scopes[name]
}

// commandNames returns the registered command names in sorted order.
func (t *Tree) commandNames() []string {
	names := make([]string, 0, len(t.commands))
	for name := range t.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scopeNames returns the registered scope names in sorted order.
func (t *Tree) scopeNames() []string {
	names := make([]string, 0, len(t.scopes))
	for name := range t.scopes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// DISPATCH WALK
// =============================================================================

// Find walks the split words of a submitted line: words naming child scopes
// descend, the first word naming a command resolves it and stops. It returns
// the command, the word that named it, and the scope path walked to reach it.
// A word matching neither, or a line that never names a command, yields a
// CommandNotFoundError.
func (t *Tree) Find(words []string) (Command, string, []string, error) {
	scope := t
	var scopePath []string

	for _, word := range words {
		if child := scope.GetScope(word); child != nil {
			scopePath = append(scopePath, word)
			scope = child
			continue
		}
		if cmd := scope.GetCommand(word); cmd != nil {
			return cmd, word, scopePath, nil
		}
		return nil, "", scopePath, &CommandNotFoundError{Name: word}
	}

	return nil, "", scopePath, &CommandNotFoundError{Name: strings.Join(words, " ")}
}

// =============================================================================
// TREE RENDERING
// =============================================================================

// ShowTree renders the hierarchy with connector glyphs, commands before
// scopes at each level, names sorted. It returns the rendering as a string;
// the host decides where it goes.
func (t *Tree) ShowTree() string {
	return t.renderTree("", true)
}

func (t *Tree) renderTree(prefix string, last bool) string {
	var out strings.Builder

	indent := ""
	if prefix != "" {
		indent = "  "
	}
	branch := "├─ "
	if last {
		branch = "└─ "
	}

	commands := t.commandNames()
	scopes := t.scopeNames()

	for i, name := range commands {
		out.WriteString(prefix + indent + branch + name + "\n")
		if i < len(commands)-1 || len(scopes) > 0 {
			out.WriteString(prefix + indent + "│\n")
		}
	}

	for i, name := range scopes {
		out.WriteString(prefix + indent + branch + name + "\n")
		connector := "│"
		if i == len(scopes)-1 {
			connector = " "
		}
		out.WriteString(t.scopes[name].renderTree(prefix+indent+connector, i == len(scopes)-1))
	}

	return out.String()
}
