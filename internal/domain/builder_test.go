// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package domain

import (
	"strings"
	"testing"

	"github.com/jeranaias/hubshell/internal/shell"
)

func TestBuildCommandsRegistersAll(t *testing.T) {
	tree := BuildCommands(NewCompletions(nil))

	paths := []string{
		"help",
		"class create", "class list", "class delete", "class info",
		"namespace create", "namespace list", "namespace delete", "namespace info",
		"user create", "user list", "user delete", "user info",
		"group create", "group list",
	}
	for _, path := range paths {
		cmd, _, _, err := tree.Find(strings.Fields(path))
		if err != nil {
			t.Errorf("Find(%q) error: %v", path, err)
			continue
		}
		if cmd == nil {
			t.Errorf("Find(%q) returned no command", path)
		}
	}
}

func TestBuildCommandsTreeRendering(t *testing.T) {
	tree := BuildCommands(NewCompletions(nil))
	rendered := tree.ShowTree()

	for _, name := range []string{"help", "class", "namespace", "user", "group", "create", "list", "delete", "info"} {
		if !strings.Contains(rendered, name) {
			t.Errorf("ShowTree missing %q:\n%s", name, rendered)
		}
	}
}

func TestHelpTree(t *testing.T) {
	tree := BuildCommands(NewCompletions(nil))
	ctx, sink := newLocalContext()

	if err := runLine(t, tree, ctx, "help --tree"); err != nil {
		t.Fatalf("help --tree error: %v", err)
	}
	out := strings.Join(sink.Lines(), "\n")
	if !strings.Contains(out, "└─ class") {
		t.Errorf("help --tree output missing class scope:\n%s", out)
	}
}

func TestHelpHint(t *testing.T) {
	tree := BuildCommands(NewCompletions(nil))
	ctx, sink := newLocalContext()

	if err := runLine(t, tree, ctx, "help"); err != nil {
		t.Fatalf("help error: %v", err)
	}
	lines := sink.Lines()
	if len(lines) != 1 || !strings.Contains(lines[0], "help --tree") {
		t.Errorf("help output = %#v", lines)
	}
}

func TestCommandHelpText(t *testing.T) {
	tree := BuildCommands(NewCompletions(nil))

	cmd, name, scopePath, err := tree.Find([]string{"class", "create"})
	if err != nil {
		t.Fatal(err)
	}
	text := shell.HelpText(cmd, name, scopePath)
	for _, fragment := range []string{"class create", "Create a new class", "--namespace", "-s", "Examples:"} {
		if !strings.Contains(text, fragment) {
			t.Errorf("help text missing %q:\n%s", fragment, text)
		}
	}
}
