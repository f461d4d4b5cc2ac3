// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package segment

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text untouched", "hello world", "hello world"},
		{"double space collapsed", "hello  world", "hello world"},
		{"long space run collapsed", "a        b", "a b"},
		{"tabs collapse to one space", "a\t\tb", "a b"},
		{"single newlines kept", "a\nb", "a\nb"},
		{"double newlines kept", "a\n\nb", "a\n\nb"},
		{"triple newlines collapsed", "a\n\n\nb", "a\n\nb"},
		{"many newlines collapsed", "a\n\n\n\n\n\nb", "a\n\nb"},
		{"empty dash item deleted", "list:\n- \ndone", "list:\ndone"},
		{"empty star item deleted", "list:\n* \ndone", "list:\ndone"},
		{"empty plus item deleted", "list:\n+ \ndone", "list:\ndone"},
		{"empty bullet item deleted", "list:\n• \ndone", "list:\ndone"},
		{"populated item kept", "list:\n- entry\ndone", "list:\n- entry\ndone"},
		{"bare dash line kept", "a\n-\nb", "a\n-\nb"},
		{"bare star line kept", "a\n*\nb", "a\n*\nb"},
		{"trailing empty item deleted", "list:\n- ", "list:"},
		{"surrounding whitespace trimmed", "  \n\nanswer\n\n  ", "answer"},
		{"item emptied by wide run", "list:\n-   \ndone", "list:\ndone"},
		{"deleting item reopens newline run", "a\n\n- \n\nb", "a\n\nb"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"a  b   c\t\td",
		"a\n\n\n\nb",
		"list:\n- \n* \n+ \n• \ndone",
		"a\n\n- \n\nb",
		"mixed   \n\n\n- \n\n  text\t\there",
		"- only\n-  \n",
		"   leading and trailing   ",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
