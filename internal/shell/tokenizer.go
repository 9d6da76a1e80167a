// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tokenizer.go - turns a raw line plus a resolved command name into
// structured tokens.
package shell

import (
	"encoding/json"
	"strconv"
	"strings"
)

// =============================================================================
// VALUE SOURCE
// =============================================================================

// ValueSource supplies the remote primitives used for option value
// substitution: a blocking HTTP GET returning text and a local file read.
// Both calls block the tokenizer for their duration; any latency budget is
// the implementation's concern.
type ValueSource interface {
	// Fetch performs a blocking GET of an http:// or https:// URL and
	// returns the response body as text.
	Fetch(url string) (string, error)

	// ReadFile returns the contents of a local file as text.
	ReadFile(path string) (string, error)
}

// =============================================================================
// TOKENS
// =============================================================================

// Tokens is the structured form of one submitted line: the scope path walked
// to reach the command, the command name, the dash-stripped option map, and
// the ordered positional list. A Tokens value is created fresh per line and
// discarded after the command's execute/validate/help path completes.
type Tokens struct {
	scopePath   []string
	command     string
	options     map[string]string
	positionals []string
}

// Tokenize splits line and classifies its words. The command name must
// already be resolved by the caller (a tree walk precedes tokenization on the
// dispatch path): leading words before the command's own token extend the
// scope path, and everything after it is options and positionals.
//
// An option key consumes exactly one following word as its value, even an
// empty string; a trailing key with no following word takes the empty value,
// which is the normal representation of a flag. Option values beginning with
// http://, https://, or file:// are eagerly substituted through source.
// Positionals are never substituted.
func Tokenize(line, command string, source ValueSource) (*Tokens, error) {
	words, err := SplitWords(line)
	if err != nil {
		return nil, err
	}

	t := &Tokens{
		command: command,
		options: make(map[string]string),
	}

	// Scope and command resolution over the leading words. Stops at the
	// command's own token or at the first option key.
	i := 0
	for i < len(words) {
		word := words[i]
		if strings.HasPrefix(word, "-") {
			break
		}
		i++
		if word == command {
			break
		}
		t.scopePath = append(t.scopePath, word)
	}

	// Options and positionals.
	for i < len(words) {
		word := words[i]
		i++

		if !strings.HasPrefix(word, "-") {
			t.positionals = append(t.positionals, word)
			continue
		}

		key := strings.TrimPrefix(strings.TrimPrefix(word, "-"), "-")
		if key == "" {
			return nil, &InvalidOptionError{Reason: "empty option key: " + word}
		}

		value := ""
		if i < len(words) {
			value = words[i]
			i++
		}

		value, err := substituteValue(value, source)
		if err != nil {
			return nil, err
		}
		t.options[key] = value
	}

	return t, nil
}

// substituteValue replaces URL- and file-prefixed values with the trimmed
// text they reference. The substitution happens at most once per value.
func substituteValue(value string, source ValueSource) (string, error) {
	if source == nil {
		return value, nil
	}

	switch {
	case strings.HasPrefix(value, "http://"), strings.HasPrefix(value, "https://"):
		text, err := source.Fetch(value)
		if err != nil {
			return "", &HTTPError{URL: value, Cause: err}
		}
		return strings.TrimRight(text, " \t\r\n"), nil

	case strings.HasPrefix(value, "file://"):
		path := strings.TrimPrefix(value, "file://")
		text, err := source.ReadFile(path)
		if err != nil {
			return "", &IOError{Path: path, Cause: err}
		}
		return strings.TrimRight(text, " \t\r\n"), nil
	}

	return value, nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// ScopePath returns the ordered scope names walked to reach the command.
func (t *Tokens) ScopePath() []string { return t.scopePath }

// Command returns the resolved command name.
func (t *Tokens) Command() string { return t.command }

// Options returns the dash-stripped key to value map.
func (t *Tokens) Options() map[string]string { return t.options }

// Positionals returns the ordered positional words.
func (t *Tokens) Positionals() []string { return t.positionals }

// Positional returns positional i, or "" if absent.
func (t *Tokens) Positional(i int) (string, bool) {
	if i < 0 || i >= len(t.positionals) {
		return "", false
	}
	return t.positionals[i], true
}

// HelpRequested reports whether the implicit help option was supplied.
func (t *Tokens) HelpRequested() bool {
	_, long := t.options["help"]
	_, short := t.options["h"]
	return long || short
}

// lookup finds the value supplied for opt under either alias. When both
// aliases are present the long alias wins; validation rejects that case
// before any command consumes the value.
func (t *Tokens) lookup(opt Option) (key, value string, ok bool) {
	if k := opt.LongKey(); k != "" {
		if v, present := t.options[k]; present {
			return k, v, true
		}
	}
	if k := opt.ShortKey(); k != "" {
		if v, present := t.options[k]; present {
			return k, v, true
		}
	}
	return "", "", false
}

// =============================================================================
// TYPED COERCION
// =============================================================================

// StringOption returns the raw value supplied for opt.
func (t *Tokens) StringOption(opt Option) (string, bool) {
	_, value, ok := t.lookup(opt)
	return value, ok
}

// FlagSet reports whether a flag option was supplied.
func (t *Tokens) FlagSet(opt Option) bool {
	_, _, ok := t.lookup(opt)
	return ok
}

// BoolOption parses the value supplied for opt as a boolean.
func (t *Tokens) BoolOption(opt Option) (value, ok bool, err error) {
	key, raw, present := t.lookup(opt)
	if !present {
		return false, false, nil
	}
	parsed, perr := strconv.ParseBool(raw)
	if perr != nil {
		return false, false, &ParseError{Key: key, Value: raw, Type: opt.Type}
	}
	return parsed, true, nil
}

// IntOption parses the value supplied for opt as an integer.
func (t *Tokens) IntOption(opt Option) (value int, ok bool, err error) {
	key, raw, present := t.lookup(opt)
	if !present {
		return 0, false, nil
	}
	parsed, perr := strconv.Atoi(raw)
	if perr != nil {
		return 0, false, &ParseError{Key: key, Value: raw, Type: opt.Type}
	}
	return parsed, true, nil
}

// JSONOption validates the value supplied for opt as JSON and returns it raw.
func (t *Tokens) JSONOption(opt Option) (value json.RawMessage, ok bool, err error) {
	key, raw, present := t.lookup(opt)
	if !present {
		return nil, false, nil
	}
	if !json.Valid([]byte(raw)) {
		return nil, false, &ParseError{Key: key, Value: raw, Type: opt.Type}
	}
	return json.RawMessage(raw), true, nil
}
