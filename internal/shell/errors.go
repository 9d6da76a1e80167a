// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - the error taxonomy of the command core.
//
// All errors here are plain data (kind + context). The core never prints or
// logs; rendering is the host's job. The completion path never returns any of
// these - it degrades to a narrower or empty candidate set instead.
package shell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput indicates a line that could not be split into words,
// typically an unterminated quote.
var ErrInvalidInput = errors.New("invalid input")

// InvalidOptionError indicates malformed option syntax.
type InvalidOptionError struct {
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return "invalid option: " + e.Reason
}

// MissingOptionsError lists every required option absent from the input.
type MissingOptionsError struct {
	Options []string
}

func (e *MissingOptionsError) Error() string {
	return "missing required options: " + strings.Join(e.Options, ", ")
}

// DuplicateOptionsError lists every option supplied through both its short
// and long alias at once.
type DuplicateOptionsError struct {
	Options []string
}

func (e *DuplicateOptionsError) Error() string {
	return "duplicate options: " + strings.Join(e.Options, ", ")
}

// PopulatedFlagOptionsError lists every flag alias that was given a value.
// Flags are boolean and carry an empty value in the token map.
type PopulatedFlagOptionsError struct {
	Options []string
}

func (e *PopulatedFlagOptionsError) Error() string {
	return "boolean flag options with value: " + strings.Join(e.Options, ", ")
}

// ParseError indicates a value that could not be coerced to its option's
// declared type.
type ParseError struct {
	Key   string // option key as typed, dash-stripped
	Value string // the supplied string
	Type  string // lowercase display name of the expected type
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("option '%s' has value '%s' (expected type: %s)", e.Key, e.Value, e.Type)
}

// HTTPError indicates a failed http:// or https:// value substitution.
type HTTPError struct {
	URL   string
	Cause error
}

func (e *HTTPError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("http error fetching %s: %v", e.URL, e.Cause)
	}
	return "http error fetching " + e.URL
}

func (e *HTTPError) Unwrap() error { return e.Cause }

// IOError indicates a failed file:// value substitution.
type IOError struct {
	Path  string
	Cause error
}

func (e *IOError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("io error reading %s: %v", e.Path, e.Cause)
	}
	return "io error reading " + e.Path
}

func (e *IOError) Unwrap() error { return e.Cause }

// CommandNotFoundError indicates a dispatch-time tree-walk miss. The
// completion path never produces this; an unresolved segment merely narrows
// the candidate set.
type CommandNotFoundError struct {
	Name string
}

func (e *CommandNotFoundError) Error() string {
	return "command not found: " + e.Name
}
