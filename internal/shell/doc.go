// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell implements the command core of hubshell: the hierarchical
// command tree, the line tokenizer, and the tab-completion engine.
//
// This package is deliberately domain-agnostic. Concrete commands (class,
// namespace, user, group operations) live in internal/domain and plug in
// through the Command interface; the resource client, output sink, and
// configuration are collaborators passed in by the host.
//
// # Key Types
//
//   - Tree: registry of nested scopes and leaf commands
//   - Command: the contract a leaf command must satisfy
//   - Option: static metadata for one option of a command
//   - Tokens: a tokenized input line (scope path, command, options, positionals)
//   - Completer: turns a line and cursor position into ranked candidates
//
// # Usage
//
// Build a tree at startup, then dispatch or complete:
//
//	tree := shell.NewTree()
//	tree.AddScope("class").AddCommand("info", &classInfo{})
//
//	cmd, name, scopes, err := tree.Find(parts)
//	tokens, err := shell.Tokenize(line, name, source)
//
//	completer := shell.NewCompleter(tree)
//	start, candidates := completer.Complete(line, pos)
//
// The tree is mutable only during startup registration. After that it is
// read-only and safe to share without synchronization.
//
// This package never prints and never logs; every operation returns data and
// errors for the host to render.
package shell
