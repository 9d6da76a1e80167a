// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// split.go - POSIX-style word splitting shared by the tokenizer and the
// completion engine.
package shell

import (
	"strings"
	"unicode"
)

// SplitWords splits a line into words, respecting single quotes, double
// quotes, and backslash escaping. Quotes are stripped from the resulting
// words; a quoted empty string yields an empty word. Returns ErrInvalidInput
// if the line cannot be split (unterminated quote or trailing escape).
func SplitWords(line string) ([]string, error) {
	var words []string
	var current strings.Builder
	var inSingle, inDouble, quoted bool

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch {
		case inSingle:
			if ch == '\'' {
				inSingle = false
			} else {
				current.WriteRune(ch)
			}

		case inDouble:
			switch ch {
			case '"':
				inDouble = false
			case '\\':
				if i+1 >= len(runes) {
					return nil, ErrInvalidInput
				}
				next := runes[i+1]
				// Inside double quotes the backslash only escapes the
				// quote and itself; otherwise it is literal.
				if next == '"' || next == '\\' {
					current.WriteRune(next)
					i++
				} else {
					current.WriteRune(ch)
				}
			default:
				current.WriteRune(ch)
			}

		case ch == '\'':
			inSingle = true
			quoted = true

		case ch == '"':
			inDouble = true
			quoted = true

		case ch == '\\':
			if i+1 >= len(runes) {
				return nil, ErrInvalidInput
			}
			current.WriteRune(runes[i+1])
			i++

		case unicode.IsSpace(ch):
			if current.Len() > 0 || quoted {
				words = append(words, current.String())
				current.Reset()
				quoted = false
			}

		default:
			current.WriteRune(ch)
		}
	}

	if inSingle || inDouble {
		return nil, ErrInvalidInput
	}

	if current.Len() > 0 || quoted {
		words = append(words, current.String())
	}

	return words, nil
}

// QuoteWord wraps a word in double quotes if it contains whitespace, a quote
// character, or is empty, escaping embedded quotes and backslashes. Words
// that need no quoting are returned unchanged.
func QuoteWord(word string) string {
	needsQuoting := word == "" || strings.ContainsFunc(word, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == '\'' || r == '\\'
	})
	if !needsQuoting {
		return word
	}

	var quoted strings.Builder
	quoted.WriteByte('"')
	for _, r := range word {
		if r == '"' || r == '\\' {
			quoted.WriteByte('\\')
		}
		quoted.WriteRune(r)
	}
	quoted.WriteByte('"')
	return quoted.String()
}

// JoinWords reassembles words into a line that SplitWords parses back to the
// same word list.
func JoinWords(words []string) string {
	quoted := make([]string, len(words))
	for i, word := range words {
		quoted[i] = QuoteWord(word)
	}
	return strings.Join(quoted, " ")
}
