// fundus-chat - A terminal client for the FUNDus! assistant of the
// University of Hamburg.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/uhh-lt/fundus-chat-tui/internal/cli"
	"github.com/uhh-lt/fundus-chat-tui/internal/config"
	"github.com/uhh-lt/fundus-chat-tui/internal/logging"
	"github.com/uhh-lt/fundus-chat-tui/internal/ui/chat"
	"github.com/uhh-lt/fundus-chat-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	opts := cli.Parse()

	if opts.ShowHelp {
		cli.PrintUsage()
		return
	}
	if opts.ShowVersion {
		cli.PrintVersion()
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts cli.Options) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("fundus-chat needs an interactive terminal")
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	log, err := logging.New(logging.Options{
		Path:  cfg.Log.Path,
		Debug: cfg.Log.Debug,
	})
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer log.Sync()

	log.Info("starting fundus-chat",
		zap.String("version", Version),
		zap.String("api", cfg.API.BaseURL))

	theme := styles.NewTheme(cfg.UI.Theme)
	p := tea.NewProgram(
		chat.New(cfg, theme, log),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		log.Error("program failed", zap.Error(err))
		return err
	}
	return nil
}

// loadConfig loads the configuration and applies command line
// overrides on top of file and environment settings.
func loadConfig(opts cli.Options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.LoadFromPath(opts.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if opts.APIURL != "" {
		cfg.API.BaseURL = opts.APIURL
	}
	if opts.Model != "" {
		cfg.DefaultModel = opts.Model
	}
	if opts.Theme != "" {
		cfg.UI.Theme = opts.Theme
	}
	if opts.Debug {
		cfg.Log.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
