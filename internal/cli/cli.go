// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"
)

// Version information, synced from main at startup.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Options are the parsed command line options.
type Options struct {
	// ConfigPath loads configuration from an explicit file instead of
	// the default location.
	ConfigPath string

	// APIURL overrides the configured backend base URL.
	APIURL string

	// Model overrides the configured default chat model.
	Model string

	// Theme overrides the configured theme ("auto", "dark", "light").
	Theme string

	// Debug enables debug logging.
	Debug bool

	// ShowVersion prints version information and exits.
	ShowVersion bool

	// ShowHelp prints usage and exits.
	ShowHelp bool
}

// Parse parses the process arguments into Options.
func Parse() Options {
	args := NewArgParser(os.Args[1:])
	return Options{
		ConfigPath:  args.Flag("config", "c"),
		APIURL:      args.Flag("api", "api-url", "a"),
		Model:       args.Flag("model", "m"),
		Theme:       args.Flag("theme", "t"),
		Debug:       args.BoolFlag("debug", "d"),
		ShowVersion: args.BoolFlag("version", "v"),
		ShowHelp:    args.BoolFlag("help", "h"),
	}
}

// PrintVersion prints the version line.
func PrintVersion() {
	fmt.Printf("fundus-chat %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}

// PrintUsage prints the usage text.
func PrintUsage() {
	fmt.Print(`fundus-chat - terminal client for the FUNDus! assistant

Usage:
  fundus-chat [flags]

Flags:
  --api URL       FUNDus backend base URL (default http://127.0.0.1:8000)
  --model NAME    chat model, skips the model picker
  --theme MODE    auto, dark, or light
  --config PATH   load configuration from PATH
  --debug         debug logging
  --version       print version and exit
  --help          show this help

Environment:
  FUNDUS_API_URL, FUNDUS_MODEL, FUNDUS_THEME, FUNDUS_DEBUG
`)
}
