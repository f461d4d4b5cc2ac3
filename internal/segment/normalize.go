// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package segment splits assistant reply text into displayable prose
// and ordered lists of referenced entity ids.
package segment

import (
	"regexp"
	"strings"
)

var (
	hspaceRuns   = regexp.MustCompile(`[ \t]{2,}`)
	newlineRuns  = regexp.MustCompile(`\n{3,}`)
	emptyBullets = regexp.MustCompile(`(?m)^[-*+•][ \t]+$\n?`)
)

// Normalize cleans up whitespace artifacts left behind by tag
// stripping: runs of horizontal whitespace collapse to one space, runs
// of three or more newlines collapse to two, list-item lines that hold
// only a bullet marker and trailing whitespace are deleted, and the
// ends are trimmed. A line that is a bare marker with nothing after it
// is left alone. The result is a fixpoint:
// Normalize(Normalize(x)) == Normalize(x).
func Normalize(text string) string {
	text = hspaceRuns.ReplaceAllString(text, " ")
	text = newlineRuns.ReplaceAllString(text, "\n\n")
	text = emptyBullets.ReplaceAllString(text, "")
	// Deleting a bullet line between two blank lines can reopen a
	// newline run, so the newline collapse runs once more.
	text = newlineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
