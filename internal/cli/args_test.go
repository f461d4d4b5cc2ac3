// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "testing"

func TestArgParserFormats(t *testing.T) {
	p := NewArgParser([]string{"--api", "http://x:8000", "--theme=dark", "--debug", "-m", "llama3", "extra"})

	if got := p.Flag("api"); got != "http://x:8000" {
		t.Errorf("Flag(api) = %q", got)
	}
	if got := p.Flag("theme"); got != "dark" {
		t.Errorf("Flag(theme) = %q", got)
	}
	if !p.BoolFlag("debug") {
		t.Error("BoolFlag(debug) = false")
	}
	if got := p.Flag("model", "m"); got != "llama3" {
		t.Errorf("Flag(model, m) = %q", got)
	}
	if len(p.Positional()) != 1 || p.Positional()[0] != "extra" {
		t.Errorf("Positional() = %v", p.Positional())
	}
}

func TestArgParserExplicitBool(t *testing.T) {
	p := NewArgParser([]string{"--debug=false", "--version=true"})
	if p.BoolFlag("debug") {
		t.Error("explicit --debug=false must stay false")
	}
	if !p.BoolFlag("version") {
		t.Error("explicit --version=true must be true")
	}
}

func TestArgParserMissingFlags(t *testing.T) {
	p := NewArgParser(nil)
	if p.Flag("api") != "" || p.BoolFlag("debug") {
		t.Error("missing flags must be zero-valued")
	}
}
