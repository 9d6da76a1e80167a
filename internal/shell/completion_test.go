// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"reflect"
	"strings"
	"testing"
)

// classNames is a canned autocomplete capability.
func classNames(_ *Tree, prefix string, _ []string) []string {
	var out []string
	for _, name := range []string{"acme", "acme2", "other"} {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}

func buildCompletionTree() *Tree {
	infoOpts := NewOptions(
		Option{Name: "name", Short: "-n", Long: "--name", Help: "Name of the class", Type: "string", Optional: true, Autocomplete: classNames},
		Option{Name: "json", Short: "-j", Long: "--json", Help: "Output in JSON format", Type: "bool", Flag: true, Optional: true},
		Option{Name: "secret", Short: "-x", Long: "--secret", Help: "Value option without suggestions", Type: "string", Optional: true},
	)

	tree := NewTree()
	tree.AddCommand("help", &fakeCommand{name: "help", opts: NewOptions()})
	tree.AddScope("class").
		AddCommand("info", &fakeCommand{name: "info", opts: infoOpts}).
		AddCommand("list", &fakeCommand{name: "list", opts: NewOptions()})
	return tree
}

func replacements(candidates []Candidate) []string {
	if len(candidates) == 0 {
		return nil
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Replacement
	}
	return out
}

func TestCompleteTreeWalk(t *testing.T) {
	completer := NewCompleter(buildCompletionTree())

	tests := []struct {
		name  string
		line  string
		pos   int
		start int
		want  []string
	}{
		{
			name:  "scope prefix at line start",
			line:  "cla",
			pos:   3,
			start: 0,
			want:  []string{"class"},
		},
		{
			name:  "empty line offers everything at root",
			line:  "",
			pos:   0,
			start: 0,
			want:  []string{"help", "class"},
		},
		{
			name:  "inside scope offers its commands",
			line:  "class ",
			pos:   6,
			start: 6,
			want:  []string{"info", "list"},
		},
		{
			name:  "command prefix inside scope",
			line:  "class li",
			pos:   8,
			start: 6,
			want:  []string{"list"},
		},
		{
			name:  "unknown word stops the walk at the deepest resolved scope",
			line:  "bogus ",
			pos:   6,
			start: 6,
			want:  []string{"help", "class"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, candidates := completer.Complete(tt.line, tt.pos)
			if start != tt.start {
				t.Errorf("start = %d, want %d", start, tt.start)
			}
			if got := replacements(candidates); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("candidates = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCompleteOptionValues(t *testing.T) {
	completer := NewCompleter(buildCompletionTree())

	tests := []struct {
		name  string
		line  string
		start int
		want  []string
	}{
		{
			name:  "value prefix after option with capability",
			line:  "class info --name ac",
			start: 18,
			want:  []string{"acme", "acme2"},
		},
		{
			name:  "all values right after the option",
			line:  "class info --name ",
			start: 18,
			want:  []string{"acme", "acme2", "other"},
		},
		{
			name:  "filled value slot moves on to remaining options",
			line:  "class info --name acme ",
			start: 23,
			want:  []string{"--json", "--secret", "--help"},
		},
		{
			name:  "after a flag the next slot is another option",
			line:  "class info --json ",
			start: 18,
			want:  []string{"--name", "--secret", "--help"},
		},
		{
			name:  "value option without capability yields nothing",
			line:  "class info --secret ",
			start: 20,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, candidates := completer.Complete(tt.line, len(tt.line))
			if start != tt.start {
				t.Errorf("start = %d, want %d", start, tt.start)
			}
			if got := replacements(candidates); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("candidates = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCompleteOptionKeys(t *testing.T) {
	completer := NewCompleter(buildCompletionTree())

	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "long alias prefix",
			line: "class info --n",
			want: []string{"--name"},
		},
		{
			name: "bare dash offers every unseen option",
			line: "class info -",
			want: []string{"--name", "--json", "--secret", "--help"},
		},
		{
			name: "already supplied options are excluded",
			line: "class info --name acme --j",
			want: []string{"--json"},
		},
		{
			name: "short alias prefix matches too",
			line: "class info -x",
			want: []string{"--secret"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, candidates := completer.Complete(tt.line, len(tt.line))
			if got := replacements(candidates); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("candidates = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestCompleteOptionDisplayAligned(t *testing.T) {
	completer := NewCompleter(buildCompletionTree())

	_, candidates := completer.Complete("class info -", 12)
	if len(candidates) == 0 {
		t.Fatal("no candidates")
	}
	for _, c := range candidates {
		if !strings.Contains(c.Display, "<") || !strings.Contains(c.Display, ">") {
			t.Errorf("display misses type hint: %q", c.Display)
		}
		if strings.HasSuffix(c.Display, " ") {
			t.Errorf("display has trailing padding: %q", c.Display)
		}
	}
}

func TestCompleteReplacementFallsBackToShort(t *testing.T) {
	opts := NewOptions(Option{Name: "only", Short: "-o", Help: "Short-only option", Type: "string", Optional: true})
	tree := NewTree()
	tree.AddCommand("run", &fakeCommand{name: "run", opts: opts})

	completer := NewCompleter(tree)
	_, candidates := completer.Complete("run -", 5)
	if len(candidates) == 0 || candidates[0].Replacement != "-o" {
		t.Errorf("candidates = %#v, want short alias replacement", candidates)
	}
}

func TestCompleteTypedAliasCountsAsSeen(t *testing.T) {
	completer := NewCompleter(buildCompletionTree())

	// The fully typed alias under the cursor already counts as supplied.
	_, candidates := completer.Complete("class info --json", 17)
	for _, c := range candidates {
		if c.Replacement == "--json" {
			t.Errorf("fully typed alias still suggested: %#v", candidates)
		}
	}
}

func TestCompleteNeverErrors(t *testing.T) {
	completer := NewCompleter(buildCompletionTree())

	t.Run("mid quote degrades to empty", func(t *testing.T) {
		line := `class info -n "ac`
		start, candidates := completer.Complete(line, len(line))
		if start != 14 {
			t.Errorf("start = %d, want 14", start)
		}
		if candidates != nil {
			t.Errorf("candidates = %#v, want nil", candidates)
		}
	})

	t.Run("cursor clamped to line length", func(t *testing.T) {
		start, candidates := completer.Complete("cla", 99)
		if start != 0 {
			t.Errorf("start = %d, want 0", start)
		}
		if got := replacements(candidates); !reflect.DeepEqual(got, []string{"class"}) {
			t.Errorf("candidates = %#v", got)
		}
	})

	t.Run("negative cursor clamped to zero", func(t *testing.T) {
		start, _ := completer.Complete("class", -1)
		if start != 0 {
			t.Errorf("start = %d, want 0", start)
		}
	})
}
