// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// hubshell is an interactive command shell for the hub resource API.
//
// It connects to a hub server, restores or establishes a login session, and
// drops into a REPL with tab completion over the command tree.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jeranaias/hubshell/internal/client"
	"github.com/jeranaias/hubshell/internal/config"
	"github.com/jeranaias/hubshell/internal/domain"
	"github.com/jeranaias/hubshell/internal/output"
	"github.com/jeranaias/hubshell/internal/remote"
	"github.com/jeranaias/hubshell/internal/repl"
	"github.com/jeranaias/hubshell/internal/shell"
	"github.com/jeranaias/hubshell/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath     string
		hostname       string
		port           int
		protocol       string
		username       string
		forceLogin     bool
		verbose        bool
		disableAPICmpl bool
	)

	pflag.StringVar(&configPath, "config", "", "path to the config file")
	pflag.StringVar(&hostname, "hostname", "", "hub server hostname")
	pflag.IntVar(&port, "port", 0, "hub server port")
	pflag.StringVar(&protocol, "protocol", "", "hub server protocol (http or https)")
	pflag.StringVar(&username, "username", "", "username to log in as")
	pflag.BoolVar(&forceLogin, "login", false, "force a fresh login even when a token is stored")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pflag.BoolVar(&disableAPICmpl, "completion-api-disable", false, "disable completions that query the server")
	pflag.Parse()

	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if hostname != "" {
		cfg.Server.Hostname = hostname
	}
	if port != 0 {
		cfg.Server.Port = port
	}
	if protocol != "" {
		cfg.Server.Protocol = protocol
	}
	if username != "" {
		cfg.Server.Username = username
	}
	if disableAPICmpl {
		cfg.Completion.DisableAPIRelated = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := config.EnsureConfigDir(); err != nil {
		return err
	}

	hub := client.New(&client.Config{BaseURL: cfg.BaseURL()})

	tokens, err := openTokenStore()
	if err != nil {
		return err
	}
	defer tokens.Close()

	if err := establishSession(cfg, hub, tokens, forceLogin); err != nil {
		return err
	}

	completions := domain.NewCompletions(hub)
	completions.SetDisabled(cfg.Completion.DisableAPIRelated)
	tree := domain.BuildCommands(completions)

	ctx := &shell.Context{
		Client:  hub,
		Sink:    output.NewSink(),
		Padding: cfg.Display.Padding,
	}

	stopWatch := watchConfig(configPath, completions)
	if stopWatch != nil {
		defer stopWatch()
	}

	prompt := fmt.Sprintf("%s@%s:%d > ", cfg.Server.Username, cfg.Server.Hostname, cfg.Server.Port)
	shellREPL := repl.New(tree, ctx, remote.NewSource(0), prompt)
	defer shellREPL.Close()

	return shellREPL.Run()
}

// openTokenStore opens the token database under the config directory.
func openTokenStore() (*store.TokenStore, error) {
	path, err := config.TokenDBPath()
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

// establishSession installs a bearer token on the client: a stored one when
// available, otherwise a fresh login.
func establishSession(cfg *config.Config, hub *client.Client, tokens *store.TokenStore, forceLogin bool) error {
	if cfg.Server.Username == "" {
		username, err := promptLine("Username: ")
		if err != nil {
			return err
		}
		cfg.Server.Username = username
	}

	if !forceLogin {
		token, err := tokens.LoadToken(hub.BaseURL(), cfg.Server.Username)
		if err == nil {
			hub.SetToken(token)
			log.Debug("restored stored session", "username", cfg.Server.Username)
			return nil
		}
		if !errors.Is(err, store.ErrNoToken) {
			return err
		}
	}

	password, err := promptPassword("Password: ")
	if err != nil {
		return err
	}

	token, err := hub.Login(context.Background(), cfg.Server.Username, password)
	if err != nil {
		return err
	}
	if err := tokens.SaveToken(hub.BaseURL(), cfg.Server.Username, token); err != nil {
		log.Warn("failed to store session token", "err", err)
	}
	return nil
}

// watchConfig reloads live-updatable settings when the config file changes.
// Returns nil when watching is unavailable; the shell runs fine without it.
func watchConfig(configPath string, completions *domain.Completions) func() {
	path := configPath
	if path == "" {
		defaultPath, err := config.ConfigPath()
		if err != nil {
			return nil
		}
		path = defaultPath
	}

	stop, err := config.Watch(path, func(cfg *config.Config) {
		completions.SetDisabled(cfg.Completion.DisableAPIRelated)
	})
	if err != nil {
		log.Debug("config watching disabled", "err", err)
		return nil
	}
	return stop
}

func promptLine(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return promptLine("")
	}
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(password), nil
}
