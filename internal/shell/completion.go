// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// completion.go - the context-aware tab-completion engine.
//
// Completion is a read-only walk of the same tree the dispatch path uses,
// reusing the same word splitter. It never returns an error: every failure
// mode narrows or empties the candidate list, because a completion request
// must never crash or block the editor.
package shell

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// CANDIDATE
// =============================================================================

// Candidate is one suggested completion: a human-readable label and the
// machine replacement string that substitutes the current word.
type Candidate struct {
	Display     string
	Replacement string
}

// =============================================================================
// COMPLETER
// =============================================================================

// Completer serves completion requests against a command tree.
type Completer struct {
	tree *Tree
}

// NewCompleter creates a completer over the given tree.
func NewCompleter(tree *Tree) *Completer {
	return &Completer{tree: tree}
}

// Complete returns the byte offset the replacement starts at and the ranked
// candidates for the line at the given cursor position.
func (c *Completer) Complete(line string, pos int) (int, []Candidate) {
	if pos > len(line) {
		pos = len(line)
	}
	if pos < 0 {
		pos = 0
	}
	prefix := line[:pos]

	// The current word runs from the nearest whitespace boundary at or
	// before the cursor, to the cursor.
	start := 0
	if idx := strings.LastIndexFunc(prefix, unicode.IsSpace); idx >= 0 {
		_, size := utf8.DecodeRuneInString(prefix[idx:])
		start = idx + size
	}
	word := prefix[start:]

	// Mid-quote lines cannot be split; degrade to no candidates.
	parts, err := SplitWords(prefix)
	if err != nil {
		return start, nil
	}

	// Walk the tree: scopes descend, the first command resolves and stops,
	// anything else stops the walk at the deepest resolved scope.
	scope := c.tree
	var cmd Command
	optionsStart := 0
	for i, part := range parts {
		if child := scope.GetScope(part); child != nil {
			scope = child
			continue
		}
		if found := scope.GetCommand(part); found != nil {
			cmd = found
			optionsStart = i
			break
		}
		break
	}

	if cmd == nil {
		return start, scopeCandidates(scope, word)
	}

	opts := cmd.Options()
	seen := seenOptions(opts, parts[optionsStart:])

	if strings.HasPrefix(word, "-") {
		return start, optionCandidates(opts, word, seen)
	}

	// The word is not an option key; what comes next depends on the token
	// immediately preceding it.
	prev := precedingToken(parts, word)
	opt, known := findOption(opts, prev)
	switch {
	case known && opt.Flag:
		// A flag takes no value, so the next slot is another option.
		return start, optionCandidates(opts, word, seen)

	case known && opt.Autocomplete != nil:
		values := opt.Autocomplete(c.tree, word, parts)
		// A preceding token that already matches a suggestion means the
		// value slot is filled; move on to the remaining options.
		if slices.Contains(values, prev) {
			return start, optionCandidates(opts, word, seen)
		}
		return start, valueCandidates(values)

	case known:
		// Value-type option without an autocomplete capability.
		return start, nil

	default:
		return start, optionCandidates(opts, word, seen)
	}
}

// precedingToken returns the complete token immediately before the current
// word, or "".
func precedingToken(parts []string, word string) string {
	idx := len(parts) - 1
	if word != "" {
		idx--
	}
	if idx < 0 {
		return ""
	}
	return parts[idx]
}

// seenOptions collects the descriptors whose short or long alias appears
// among the already-typed tokens of this invocation.
func seenOptions(opts []Option, parts []string) map[string]bool {
	seen := make(map[string]bool)
	for _, part := range parts {
		if !strings.HasPrefix(part, "-") {
			continue
		}
		for _, opt := range opts {
			if opt.MatchesAlias(part) {
				seen[opt.Name] = true
			}
		}
	}
	return seen
}

// =============================================================================
// CANDIDATE CONSTRUCTION
// =============================================================================

// scopeCandidates suggests the child command and scope names starting with
// the current word, commands first, each group sorted.
func scopeCandidates(scope *Tree, word string) []Candidate {
	var candidates []Candidate
	for _, name := range scope.commandNames() {
		if strings.HasPrefix(name, word) {
			candidates = append(candidates, Candidate{Display: name, Replacement: name})
		}
	}
	for _, name := range scope.scopeNames() {
		if strings.HasPrefix(name, word) {
			candidates = append(candidates, Candidate{Display: name, Replacement: name})
		}
	}
	return candidates
}

// optionCandidates suggests the not-yet-seen options whose short or long
// alias starts with the current word. The display is column-aligned (short,
// long, type hint, help); alignment is cosmetic and never affects the
// replacement, which is the long alias or the short one if no long exists.
func optionCandidates(opts []Option, word string, seen map[string]bool) []Candidate {
	var matched []Option
	var shortWidth, longWidth, typeWidth int

	for _, opt := range opts {
		if seen[opt.Name] {
			continue
		}
		if word != "" && !strings.HasPrefix(opt.Short, word) && !strings.HasPrefix(opt.Long, word) {
			continue
		}
		matched = append(matched, opt)
		shortWidth = max(shortWidth, runewidth.StringWidth(opt.Short))
		longWidth = max(longWidth, runewidth.StringWidth(opt.Long))
		typeWidth = max(typeWidth, runewidth.StringWidth(opt.Type))
	}

	candidates := make([]Candidate, 0, len(matched))
	for _, opt := range matched {
		short := ""
		if opt.Short != "" {
			short = opt.Short + ","
		}
		display := runewidth.FillRight(short, shortWidth+1) + " " +
			runewidth.FillRight(opt.Long, longWidth) + " " +
			runewidth.FillRight("<"+opt.Type+">", typeWidth+2) + " " +
			opt.Help

		replacement := opt.Long
		if replacement == "" {
			replacement = opt.Short
		}
		candidates = append(candidates, Candidate{
			Display:     strings.TrimRight(display, " "),
			Replacement: replacement,
		})
	}
	return candidates
}

// valueCandidates wraps autocomplete capability results.
func valueCandidates(values []string) []Candidate {
	candidates := make([]Candidate, 0, len(values))
	for _, value := range values {
		candidates = append(candidates, Candidate{Display: value, Replacement: value})
	}
	return candidates
}
