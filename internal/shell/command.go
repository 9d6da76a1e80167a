// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// command.go - the contract a leaf command must satisfy, structural
// validation, and help rendering.
package shell

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/hubshell/internal/client"
	"github.com/jeranaias/hubshell/internal/output"
)

// =============================================================================
// EXECUTION CONTEXT
// =============================================================================

// Context carries the collaborators a command needs at execute time. It
// follows the dependency injection pattern: commands reach the resource
// client and the output sink through it instead of any process-wide state.
//
// Fields may be nil in tests; commands should check before use.
type Context struct {
	// Client is the resource API client.
	Client *client.Client

	// Sink receives the command's output lines.
	Sink *output.Sink

	// Padding is the key-column width for key/value output. Zero means the
	// command picks its own default.
	Padding int
}

// =============================================================================
// COMMAND CAPABILITY
// =============================================================================

// Command is implemented by every executable leaf in the tree. The tree and
// the completion engine treat all commands uniformly through this interface.
type Command interface {
	// Name is the command's own name (not its registered tree name).
	Name() string

	// About is a one-line description, "" if none.
	About() string

	// LongAbout is an extended description, "" if none.
	LongAbout() string

	// Examples holds example invocations, one per line, "" if none.
	Examples() string

	// Options returns the command's static option table, including the
	// implicit help option.
	Options() []Option

	// Execute runs the command body. Validation has already passed.
	Execute(ctx *Context, tokens *Tokens) error
}

// Validator is implemented by commands that replace the default structural
// validation. Most commands rely on Validate instead.
type Validator interface {
	Validate(tokens *Tokens) error
}

// ValidateCommand runs the command's structural validation: its own Validate
// method when it implements Validator, the default composition otherwise.
func ValidateCommand(cmd Command, tokens *Tokens) error {
	if v, ok := cmd.(Validator); ok {
		return v.Validate(tokens)
	}
	return Validate(cmd.Options(), tokens)
}

// =============================================================================
// STRUCTURAL VALIDATION
// =============================================================================

// Validate composes the three structural checks, in order: missing required
// options, options supplied under both aliases, and flags carrying a value.
// Each check collects every violation before failing; the first failing
// check's full list is returned.
func Validate(opts []Option, tokens *Tokens) error {
	if err := validateMissing(opts, tokens); err != nil {
		return err
	}
	if err := validateDuplicates(opts, tokens); err != nil {
		return err
	}
	return validateFlags(opts, tokens)
}

func validateMissing(opts []Option, tokens *Tokens) error {
	supplied := tokens.Options()
	var missing []string

	for _, opt := range opts {
		if !opt.IsRequired() {
			continue
		}
		if key := opt.ShortKey(); key != "" {
			if _, ok := supplied[key]; ok {
				continue
			}
		}
		if key := opt.LongKey(); key != "" {
			if _, ok := supplied[key]; ok {
				continue
			}
		}
		missing = append(missing, opt.Name)
	}

	if len(missing) > 0 {
		return &MissingOptionsError{Options: missing}
	}
	return nil
}

func validateDuplicates(opts []Option, tokens *Tokens) error {
	supplied := tokens.Options()
	var duplicates []string

	for _, opt := range opts {
		if opt.Short == "" || opt.Long == "" {
			continue
		}
		_, short := supplied[opt.ShortKey()]
		_, long := supplied[opt.LongKey()]
		if short && long {
			duplicates = append(duplicates, opt.Name)
		}
	}

	if len(duplicates) > 0 {
		return &DuplicateOptionsError{Options: duplicates}
	}
	return nil
}

func validateFlags(opts []Option, tokens *Tokens) error {
	supplied := tokens.Options()
	var populated []string

	for _, opt := range opts {
		if !opt.Flag {
			continue
		}
		for _, key := range []string{opt.ShortKey(), opt.LongKey()} {
			if key == "" {
				continue
			}
			if value, ok := supplied[key]; ok && value != "" {
				populated = append(populated, key)
			}
		}
	}

	if len(populated) > 0 {
		return &PopulatedFlagOptionsError{Options: populated}
	}
	return nil
}

// =============================================================================
// HELP RENDERING
// =============================================================================

// HelpText renders the command's help as a string: fully qualified name and
// about line, long description, a column-aligned option table, and examples.
// It returns data only; writing it anywhere is the host's job.
func HelpText(cmd Command, name string, context []string) string {
	var help strings.Builder

	fqName := strings.TrimSpace(strings.Join(append(append([]string{}, context...), name), " "))
	if about := cmd.About(); about != "" {
		fmt.Fprintf(&help, "%s - %s\n\n", fqName, about)
	} else {
		help.WriteString(fqName + "\n")
	}
	if longAbout := cmd.LongAbout(); longAbout != "" {
		help.WriteString(longAbout + "\n\n")
	}

	opts := cmd.Options()
	if len(opts) > 0 {
		help.WriteString("Options:\n")

		var shortWidth, longWidth, typeWidth int
		for _, opt := range opts {
			shortWidth = max(shortWidth, runewidth.StringWidth(opt.Short))
			longWidth = max(longWidth, runewidth.StringWidth(opt.Long))
			typeWidth = max(typeWidth, runewidth.StringWidth(opt.Type))
		}

		for _, opt := range opts {
			short := ""
			if opt.Short != "" {
				short = opt.Short + ","
			}
			long := ""
			if opt.Long != "" {
				long = opt.Long + ","
			}
			flag := ""
			if opt.Flag {
				flag = " (flag)"
			}

			fmt.Fprintf(&help, "  %s %s %s %s%s\n",
				runewidth.FillRight(short, shortWidth+1),
				runewidth.FillRight(long, longWidth+1),
				runewidth.FillRight("<"+opt.Type+">", typeWidth+2),
				opt.Help,
				flag,
			)
		}
		help.WriteString("\n")
	}

	if examples := cmd.Examples(); examples != "" {
		help.WriteString("Examples:\n")
		for _, line := range strings.Split(examples, "\n") {
			fmt.Fprintf(&help, "  %s %s\n", fqName, line)
		}
	}

	return help.String()
}
