// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package output provides the line sink commands write through.
//
// A Sink is an explicit value handed to whoever emits lines; there is no
// process-wide buffer. Lines accumulate until Flush, which applies the
// optional regex filter and writes everything to the given writer. Warnings
// and errors bypass the filter.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// =============================================================================
// SINK
// =============================================================================

// Sink is an append-only line buffer with an optional display filter.
// It is owned by a single dispatch or render call and is not safe for
// concurrent use.
type Sink struct {
	lines    []string
	warnings []string
	errors   []string

	filter       *regexp.Regexp
	filterInvert bool
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// AppendLine appends one line to the buffer.
func (s *Sink) AppendLine(line string) {
	s.lines = append(s.lines, line)
}

// AppendLines appends each line in the slice.
func (s *Sink) AppendLines(lines []string) {
	s.lines = append(s.lines, lines...)
}

// AppendKeyValue appends a "key: value" line with the key column padded to
// the given display width.
func (s *Sink) AppendKeyValue(key, value string, padding int) {
	s.lines = append(s.lines, runewidth.FillRight(key+":", padding)+" "+value)
}

// AppendJSON pretty-prints the value as JSON, line by line.
func (s *Sink) AppendJSON(value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	s.lines = append(s.lines, strings.Split(string(data), "\n")...)
	return nil
}

// AddWarning records a warning shown on every flush regardless of filter.
func (s *Sink) AddWarning(message string) {
	s.warnings = append(s.warnings, message)
}

// AddError records an error shown on every flush regardless of filter.
func (s *Sink) AddError(message string) {
	s.errors = append(s.errors, message)
}

// SetFilter compiles and installs a display filter. When invert is true,
// matching lines are excluded instead of kept.
func (s *Sink) SetFilter(pattern string, invert bool) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	s.filter = re
	s.filterInvert = invert
	return nil
}

// ClearFilter removes the display filter.
func (s *Sink) ClearFilter() {
	s.filter = nil
	s.filterInvert = false
}

// Flush writes warnings, errors, and the (possibly filtered) buffered lines
// to w, then empties the sink. The filter persists across flushes until
// cleared.
func (s *Sink) Flush(w io.Writer) {
	for _, warning := range s.warnings {
		fmt.Fprintln(w, warningStyle.Render("Warning: "+warning))
	}
	s.warnings = nil

	for _, errMsg := range s.errors {
		fmt.Fprintln(w, errorStyle.Render("Error: "+errMsg))
	}
	s.errors = nil

	for _, line := range s.lines {
		if s.filter != nil && s.filter.MatchString(line) == s.filterInvert {
			continue
		}
		fmt.Fprintln(w, line)
	}
	s.lines = nil
}

// Len returns the number of buffered lines.
func (s *Sink) Len() int {
	return len(s.lines)
}

// Lines returns the buffered lines without flushing.
func (s *Sink) Lines() []string {
	return s.lines
}
