// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package repl hosts the interactive shell loop.
//
// The REPL owns the line editor, history, tab completion, and the dispatch of
// submitted lines: split, tree walk, tokenize, validate, execute. Command
// output goes through the sink and is flushed after every line. When stdin is
// not a terminal the loop degrades to plain line reading, which keeps piped
// scripts working.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/jeranaias/hubshell/internal/config"
	"github.com/jeranaias/hubshell/internal/shell"
)

// =============================================================================
// REPL
// =============================================================================

// REPL is the interactive shell host.
type REPL struct {
	line      *liner.State
	tree      *shell.Tree
	completer *shell.Completer
	ctx       *shell.Context
	source    shell.ValueSource

	prompt      string
	historyFile string
	out         io.Writer
}

// New creates a REPL over the given command tree. The source backs option
// value substitution and may be nil to disable it.
func New(tree *shell.Tree, ctx *shell.Context, source shell.ValueSource, prompt string) *REPL {
	r := &REPL{
		line:      liner.NewLiner(),
		tree:      tree,
		completer: shell.NewCompleter(tree),
		ctx:       ctx,
		source:    source,
		prompt:    prompt,
		out:       os.Stdout,
	}

	r.line.SetCtrlCAborts(true)
	r.line.SetWordCompleter(r.completeWord)

	if historyFile, err := config.HistoryPath(); err == nil {
		r.historyFile = historyFile
		r.loadHistory()
	}

	return r
}

// completeWord adapts the completion engine to liner's word completer: the
// text before the replacement start, the replacement candidates, and the text
// after the cursor.
func (r *REPL) completeWord(line string, pos int) (string, []string, string) {
	start, candidates := r.completer.Complete(line, pos)
	replacements := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		replacements = append(replacements, candidate.Replacement)
	}
	if pos > len(line) {
		pos = len(line)
	}
	return line[:start], replacements, line[pos:]
}

// =============================================================================
// HISTORY
// =============================================================================

func (r *REPL) loadHistory() {
	f, err := os.Open(r.historyFile)
	if err != nil {
		return
	}
	defer f.Close()
	r.line.ReadHistory(f)
}

func (r *REPL) saveHistory() {
	if r.historyFile == "" {
		return
	}
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	r.line.WriteHistory(f)
}

// Close saves history and releases the line editor.
func (r *REPL) Close() {
	r.saveHistory()
	r.line.Close()
}

// =============================================================================
// MAIN LOOP
// =============================================================================

// Run reads and dispatches lines until EOF. Ctrl+C aborts the current line,
// Ctrl+D exits.
func (r *REPL) Run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return r.runPiped()
	}

	for {
		input, err := r.line.Prompt(r.prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(r.out)
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			return err
		}

		if strings.TrimSpace(input) != "" {
			r.line.AppendHistory(input)
			r.saveHistory()
		}

		r.handleLine(input)
		r.ctx.Sink.Flush(r.out)
	}
}

// runPiped dispatches lines from stdin without the line editor.
func (r *REPL) runPiped() error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		r.handleLine(scanner.Text())
		r.ctx.Sink.Flush(r.out)
	}
	return scanner.Err()
}

// =============================================================================
// DISPATCH
// =============================================================================

// handleLine runs one submitted line end to end. Errors are rendered onto the
// sink rather than returned: a failed command never ends the session.
func (r *REPL) handleLine(line string) {
	line, err := r.processFilter(line)
	if err != nil {
		r.ctx.Sink.AddError(err.Error())
		return
	}

	words, err := shell.SplitWords(line)
	if err != nil {
		r.ctx.Sink.AddError(err.Error())
		return
	}
	if len(words) == 0 {
		return
	}

	cmd, name, scopePath, err := r.tree.Find(words)
	if err != nil {
		r.ctx.Sink.AddWarning(err.Error())
		return
	}

	log.Debug("executing command", "scope", strings.Join(scopePath, " "), "command", name)

	tokens, err := shell.Tokenize(line, name, r.source)
	if err != nil {
		r.ctx.Sink.AddError(err.Error())
		return
	}

	if tokens.HelpRequested() {
		help := strings.TrimRight(shell.HelpText(cmd, name, scopePath), "\n")
		r.ctx.Sink.AppendLines(strings.Split(help, "\n"))
		return
	}

	if err := shell.ValidateCommand(cmd, tokens); err != nil {
		r.ctx.Sink.AddError(err.Error())
		return
	}

	if err := cmd.Execute(r.ctx, tokens); err != nil {
		r.ctx.Sink.AddError(err.Error())
	}
}

// processFilter peels a trailing display filter off the line:
//
//	class list | pattern     keep lines matching pattern
//	class list | !pattern    drop lines matching pattern
//
// A line without a filter clears any filter installed by a previous line.
func (r *REPL) processFilter(line string) (string, error) {
	before, after, found := strings.Cut(line, "|")
	if !found {
		r.ctx.Sink.ClearFilter()
		return line, nil
	}

	filter := strings.TrimSpace(after)
	invert := false
	if strings.HasPrefix(filter, "!") {
		invert = true
		filter = strings.TrimSpace(strings.TrimPrefix(filter, "!"))
	}
	if err := r.ctx.Sink.SetFilter(filter, invert); err != nil {
		return "", err
	}
	return strings.TrimSpace(before), nil
}
