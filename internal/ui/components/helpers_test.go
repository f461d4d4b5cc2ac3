// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
)

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"short line untouched", "hello world", 20, "hello world"},
		{"breaks at word boundary", "one two three four", 9, "one two\nthree\nfour"},
		{"zero width untouched", "hello world", 0, "hello world"},
		{"keeps existing newlines", "a\nb", 10, "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wordWrap(tt.text, tt.width); got != tt.want {
				t.Errorf("wordWrap(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWordWrapRespectsWidth(t *testing.T) {
	wrapped := wordWrap(strings.Repeat("word ", 40), 30)
	for _, line := range strings.Split(wrapped, "\n") {
		if len(line) > 30 {
			t.Errorf("line %q exceeds width 30", line)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("a long museum label", 10); len(got) > 13 {
		t.Errorf("truncate returned %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(%q) = %q", "short", got)
	}
}

func TestMaxLineWidth(t *testing.T) {
	if got := maxLineWidth("a\nlonger line\nxy"); got != 11 {
		t.Errorf("maxLineWidth = %d, want 11", got)
	}
}
