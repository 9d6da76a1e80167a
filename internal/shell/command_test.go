// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// fakeCommand is a minimal Command for registry, validation, help, and
// completion tests.
type fakeCommand struct {
	name      string
	about     string
	longAbout string
	examples  string
	opts      []Option

	executed bool
	execErr  error
}

func (f *fakeCommand) Name() string      { return f.name }
func (f *fakeCommand) About() string     { return f.about }
func (f *fakeCommand) LongAbout() string { return f.longAbout }
func (f *fakeCommand) Examples() string  { return f.examples }
func (f *fakeCommand) Options() []Option { return f.opts }
func (f *fakeCommand) Execute(ctx *Context, tokens *Tokens) error {
	f.executed = true
	return f.execErr
}

func testOptions() []Option {
	return NewOptions(
		Option{Name: "name", Short: "-n", Long: "--name", Help: "Name of the class", Type: "string"},
		Option{Name: "description", Short: "-d", Long: "--description", Help: "Description of the class", Type: "string"},
		Option{Name: "schema", Short: "-s", Long: "--schema", Help: "JSON schema for the class", Type: "json", Optional: true},
		Option{Name: "json", Short: "-j", Long: "--json", Help: "Output in JSON format", Type: "bool", Flag: true, Optional: true},
	)
}

func mustTokenize(t *testing.T, line, command string) *Tokens {
	t.Helper()
	tokens, err := Tokenize(line, command, nil)
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", line, err)
	}
	return tokens
}

func TestValidateMissingOptions(t *testing.T) {
	opts := testOptions()
	tokens := mustTokenize(t, "create", "create")

	err := Validate(opts, tokens)
	var missing *MissingOptionsError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingOptionsError", err)
	}
	// Every missing required option is collected, in table order.
	want := []string{"name", "description"}
	if !reflect.DeepEqual(missing.Options, want) {
		t.Errorf("missing = %#v, want %#v", missing.Options, want)
	}
}

func TestValidateMissingAcceptsEitherAlias(t *testing.T) {
	opts := testOptions()
	tests := []string{
		"create -n x -d y",
		"create --name x --description y",
		"create -n x --description y",
	}
	for _, line := range tests {
		if err := Validate(opts, mustTokenize(t, line, "create")); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", line, err)
		}
	}
}

func TestValidateDuplicateOptions(t *testing.T) {
	opts := testOptions()
	tokens := mustTokenize(t, "create -n x --name y -d z", "create")

	err := Validate(opts, tokens)
	var duplicates *DuplicateOptionsError
	if !errors.As(err, &duplicates) {
		t.Fatalf("error = %v, want DuplicateOptionsError", err)
	}
	if !reflect.DeepEqual(duplicates.Options, []string{"name"}) {
		t.Errorf("duplicates = %#v", duplicates.Options)
	}
}

func TestValidatePopulatedFlags(t *testing.T) {
	opts := testOptions()
	tokens := mustTokenize(t, "create -n x -d y --json true", "create")

	err := Validate(opts, tokens)
	var populated *PopulatedFlagOptionsError
	if !errors.As(err, &populated) {
		t.Fatalf("error = %v, want PopulatedFlagOptionsError", err)
	}
	if !reflect.DeepEqual(populated.Options, []string{"json"}) {
		t.Errorf("populated = %#v", populated.Options)
	}
}

func TestValidateBareFlagPasses(t *testing.T) {
	opts := testOptions()
	// A trailing flag takes the empty value, which is legal.
	tokens := mustTokenize(t, "create -n x -d y --json", "create")
	if err := Validate(opts, tokens); err != nil {
		t.Errorf("Validate = %v, want nil", err)
	}
}

func TestValidateCheckOrder(t *testing.T) {
	opts := testOptions()

	// Missing wins over duplicates and flags: description is absent while
	// name is duplicated and json carries a value.
	tokens := mustTokenize(t, "create -n x --name y --json true", "create")
	err := Validate(opts, tokens)
	var missing *MissingOptionsError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingOptionsError first", err)
	}

	// Duplicates win over flags.
	tokens = mustTokenize(t, "create -n x --name y -d z --json true", "create")
	err = Validate(opts, tokens)
	var duplicates *DuplicateOptionsError
	if !errors.As(err, &duplicates) {
		t.Fatalf("error = %v, want DuplicateOptionsError before flag check", err)
	}
}

// sentinelValidator overrides the default structural validation.
type sentinelValidator struct {
	fakeCommand
	err error
}

func (s *sentinelValidator) Validate(tokens *Tokens) error { return s.err }

func TestValidateCommandOverride(t *testing.T) {
	sentinel := errors.New("custom validation")
	cmd := &sentinelValidator{
		fakeCommand: fakeCommand{name: "create", opts: testOptions()},
		err:         sentinel,
	}

	// Input that passes the default checks still hits the override.
	tokens := mustTokenize(t, "create -n x -d y", "create")
	if err := ValidateCommand(cmd, tokens); !errors.Is(err, sentinel) {
		t.Errorf("ValidateCommand = %v, want sentinel", err)
	}
}

func TestValidateCommandDefault(t *testing.T) {
	cmd := &fakeCommand{name: "create", opts: testOptions()}
	tokens := mustTokenize(t, "create", "create")
	var missing *MissingOptionsError
	if err := ValidateCommand(cmd, tokens); !errors.As(err, &missing) {
		t.Errorf("ValidateCommand = %v, want MissingOptionsError", err)
	}
}

func TestNewOptionsAppendsHelp(t *testing.T) {
	opts := NewOptions(Option{Name: "name", Short: "-n", Long: "--name", Type: "string"})
	last := opts[len(opts)-1]
	if last.Name != "help" || last.Short != "-h" || last.Long != "--help" || !last.Flag {
		t.Errorf("implicit help option = %+v", last)
	}
	if last.IsRequired() {
		t.Error("help option must never be required")
	}
}

func TestNewOptionsDuplicateNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate option name")
		}
	}()
	NewOptions(
		Option{Name: "name", Short: "-n", Type: "string"},
		Option{Name: "name", Short: "-m", Type: "string"},
	)
}

func TestRequirementOverrides(t *testing.T) {
	tests := []struct {
		opt  Option
		want bool
	}{
		{Option{Name: "a", Type: "string"}, true},
		{Option{Name: "b", Type: "string", Optional: true}, false},
		{Option{Name: "c", Type: "string", Optional: true, Required: RequiredAlways}, true},
		{Option{Name: "d", Type: "string", Required: RequiredNever}, false},
	}
	for _, tt := range tests {
		if got := tt.opt.IsRequired(); got != tt.want {
			t.Errorf("IsRequired(%s) = %v, want %v", tt.opt.Name, got, tt.want)
		}
	}
}

func TestHelpText(t *testing.T) {
	cmd := &fakeCommand{
		name:      "create",
		about:     "Create a new class",
		longAbout: "Create a new class with the specified properties.",
		examples:  "-n MyClass",
		opts:      testOptions(),
	}

	help := HelpText(cmd, "create", []string{"class"})

	if !strings.HasPrefix(help, "class create - Create a new class\n") {
		t.Errorf("help header:\n%s", help)
	}
	if !strings.Contains(help, "Create a new class with the specified properties.") {
		t.Errorf("help misses long about:\n%s", help)
	}
	for _, fragment := range []string{
		"Options:",
		"-n, --name,",
		"<string>",
		"Name of the class",
		"Output in JSON format (flag)",
		"-h, --help,",
		"Prints help information (flag)",
	} {
		if !strings.Contains(help, fragment) {
			t.Errorf("help misses %q:\n%s", fragment, help)
		}
	}
	if !strings.Contains(help, "Examples:\n  class create -n MyClass\n") {
		t.Errorf("help examples:\n%s", help)
	}
}

func TestHelpTextNoContext(t *testing.T) {
	cmd := &fakeCommand{name: "help", about: "Show available commands", opts: NewOptions()}
	help := HelpText(cmd, "help", nil)
	if !strings.HasPrefix(help, "help - Show available commands\n") {
		t.Errorf("help header:\n%s", help)
	}
}
