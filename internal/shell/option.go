// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// option.go - static option metadata for commands.
//
// Commands declare their options as a literal table passed to NewOptions at
// startup. The table is built once per command type and never recomputed.
package shell

import "strings"

// =============================================================================
// AUTOCOMPLETE CAPABILITY
// =============================================================================

// AutocompleteFunc produces value suggestions for one option. It receives the
// command tree, the prefix of the value being typed, and the full token list
// of the line so far. Implementations that perform I/O must convert failures
// into an empty slice; the completion engine neither retries nor times them
// out.
type AutocompleteFunc func(tree *Tree, prefix string, parts []string) []string

// =============================================================================
// OPTION DESCRIPTOR
// =============================================================================

// Requirement is the tri-state required marker for an option. The zero value
// derives requiredness from the option's type: optional types are never
// required, everything else is required unless overridden.
type Requirement int

const (
	// RequiredByType derives requiredness from the Optional field.
	RequiredByType Requirement = iota
	// RequiredAlways marks the option required regardless of type.
	RequiredAlways
	// RequiredNever marks the option not required regardless of type.
	RequiredNever
)

// Option is the static descriptor for one configurable option of a command.
type Option struct {
	// Name is the unique identifier within one command's option list.
	Name string

	// Short is the single-dash alias including the dash (e.g. "-n").
	// Empty if the option has no short alias.
	Short string

	// Long is the double-dash alias including the dashes (e.g. "--name").
	// Empty if the option has no long alias.
	Long string

	// Help is the one-line description shown in help and completion.
	Help string

	// Type is the lowercase display name of the value's semantic type
	// (e.g. "string", "int", "bool", "json"). Used in help output and in
	// ParseError messages.
	Type string

	// Flag marks a boolean option that takes no value. In the token map a
	// flag is a key with an empty value.
	Flag bool

	// Optional marks an option whose semantic type permits absence. Optional
	// options are not required unless Required overrides.
	Optional bool

	// Required overrides the type-derived requiredness.
	Required Requirement

	// Autocomplete supplies value suggestions for this option, nil if none.
	Autocomplete AutocompleteFunc
}

// ShortKey returns the short alias without its dash, or "".
func (o Option) ShortKey() string {
	return strings.TrimPrefix(o.Short, "-")
}

// LongKey returns the long alias without its dashes, or "".
func (o Option) LongKey() string {
	return strings.TrimPrefix(o.Long, "--")
}

// IsRequired reports whether the option must be present in the input.
func (o Option) IsRequired() bool {
	switch o.Required {
	case RequiredAlways:
		return true
	case RequiredNever:
		return false
	default:
		return !o.Optional
	}
}

// MatchesAlias reports whether token (as typed, with dashes) is one of the
// option's aliases.
func (o Option) MatchesAlias(token string) bool {
	return token != "" && (token == o.Short || token == o.Long)
}

// helpOption is implicitly appended to every command's option table.
var helpOption = Option{
	Name:     "help",
	Short:    "-h",
	Long:     "--help",
	Help:     "Prints help information",
	Type:     "bool",
	Flag:     true,
	Required: RequiredNever,
}

// NewOptions assembles a command's option table. It appends the implicit help
// option and enforces name uniqueness. Registration happens once at startup,
// so a duplicate name is a programming error and panics.
func NewOptions(opts ...Option) []Option {
	table := make([]Option, 0, len(opts)+1)
	names := make(map[string]struct{}, len(opts)+1)
	for _, opt := range append(opts, helpOption) {
		if _, dup := names[opt.Name]; dup {
			panic("shell: duplicate option name: " + opt.Name)
		}
		names[opt.Name] = struct{}{}
		table = append(table, opt)
	}
	return table
}

// findOption returns the descriptor whose alias matches token (with dashes).
func findOption(opts []Option, token string) (Option, bool) {
	for _, opt := range opts {
		if opt.MatchesAlias(token) {
			return opt, true
		}
	}
	return Option{}, false
}
