// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func buildTestTree() *Tree {
	tree := NewTree()
	tree.AddCommand("help", &fakeCommand{name: "help", opts: NewOptions()})
	tree.AddScope("class").
		AddCommand("create", &fakeCommand{name: "create", opts: testOptions()}).
		AddCommand("list", &fakeCommand{name: "list", opts: NewOptions()})
	tree.AddScope("namespace").
		AddCommand("create", &fakeCommand{name: "create", opts: NewOptions()})
	return tree
}

func TestTreeRegistration(t *testing.T) {
	tree := buildTestTree()

	if tree.GetCommand("help") == nil {
		t.Error("root command missing")
	}
	if tree.GetCommand("missing") != nil {
		t.Error("GetCommand on unknown name should be nil")
	}

	class := tree.GetScope("class")
	if class == nil {
		t.Fatal("class scope missing")
	}
	if class.GetCommand("create") == nil || class.GetCommand("list") == nil {
		t.Error("class commands missing")
	}
	if tree.GetScope("help") != nil {
		t.Error("command name must not resolve as scope")
	}
}

func TestTreeAddScopeIsIdempotent(t *testing.T) {
	tree := NewTree()
	first := tree.AddScope("class")
	first.AddCommand("create", &fakeCommand{name: "create", opts: NewOptions()})

	second := tree.AddScope("class")
	if first != second {
		t.Error("AddScope should return the existing scope")
	}
	if second.GetCommand("create") == nil {
		t.Error("existing scope lost its commands")
	}
}

func TestTreeCollisionPanics(t *testing.T) {
	t.Run("command over scope", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic registering command over scope")
			}
		}()
		tree := NewTree()
		tree.AddScope("class")
		tree.AddCommand("class", &fakeCommand{name: "class", opts: NewOptions()})
	})

	t.Run("scope over command", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic registering scope over command")
			}
		}()
		tree := NewTree()
		tree.AddCommand("class", &fakeCommand{name: "class", opts: NewOptions()})
		tree.AddScope("class")
	})
}

func TestTreeFind(t *testing.T) {
	tree := buildTestTree()

	tests := []struct {
		name      string
		words     []string
		cmdName   string
		scopePath []string
	}{
		{"root command", []string{"help"}, "help", nil},
		{"scoped command", []string{"class", "create"}, "create", []string{"class"}},
		{"command stops the walk", []string{"class", "list", "extra"}, "list", []string{"class"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, name, scopePath, err := tree.Find(tt.words)
			if err != nil {
				t.Fatalf("Find(%v) error: %v", tt.words, err)
			}
			if cmd == nil || name != tt.cmdName {
				t.Errorf("Find(%v) = %q, want %q", tt.words, name, tt.cmdName)
			}
			if !reflect.DeepEqual(scopePath, tt.scopePath) {
				t.Errorf("scope path = %#v, want %#v", scopePath, tt.scopePath)
			}
		})
	}
}

func TestTreeFindNotFound(t *testing.T) {
	tree := buildTestTree()

	_, _, _, err := tree.Find([]string{"class", "nope"})
	var notFound *CommandNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want CommandNotFoundError", err)
	}
	if notFound.Name != "nope" {
		t.Errorf("Name = %q, want %q", notFound.Name, "nope")
	}

	// A walk that only descends scopes never names a command.
	_, _, _, err = tree.Find([]string{"class"})
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want CommandNotFoundError", err)
	}
	if notFound.Name != "class" {
		t.Errorf("Name = %q, want %q", notFound.Name, "class")
	}
}

func TestShowTree(t *testing.T) {
	tree := NewTree()
	tree.AddCommand("help", &fakeCommand{name: "help", opts: NewOptions()})
	tree.AddScope("class").
		AddCommand("create", &fakeCommand{name: "create", opts: NewOptions()}).
		AddCommand("list", &fakeCommand{name: "list", opts: NewOptions()})

	want := "└─ help\n" +
		"│\n" +
		"└─ class\n" +
		"   └─ create\n" +
		"   │\n" +
		"   └─ list\n"

	if got := tree.ShowTree(); got != want {
		t.Errorf("ShowTree:\n%s\nwant:\n%s", got, want)
	}
}

func TestShowTreeScopeOrdering(t *testing.T) {
	tree := NewTree()
	tree.AddScope("zeta").AddCommand("one", &fakeCommand{name: "one", opts: NewOptions()})
	tree.AddScope("alpha").AddCommand("two", &fakeCommand{name: "two", opts: NewOptions()})

	rendered := tree.ShowTree()
	alphaIdx := strings.Index(rendered, "alpha")
	zetaIdx := strings.Index(rendered, "zeta")
	if alphaIdx < 0 || zetaIdx < 0 || alphaIdx > zetaIdx {
		t.Errorf("scopes not sorted:\n%s", rendered)
	}
}
