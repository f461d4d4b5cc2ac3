// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tags implements the entity-reference tag grammar embedded in
// assistant replies.
//
// A reference tag is a self-closing marker naming a catalog entity:
//
//	<FundusRecord murag_id="3fae1e60-1c11-4c1a-8a2e-2b1a9c0f1234"/>
//	<FundusCollection murag_id='...'/>
//
// The attribute value must be a version-4 UUID and may be single- or
// double-quoted. Anything that does not match this exact shape is plain
// prose and is never recognized, not even partially.
package tags

import "regexp"

// Kind identifies which entity kind a tag references.
type Kind int

const (
	// KindRecord references a single cataloged item.
	KindRecord Kind = iota
	// KindCollection references a collection of records.
	KindCollection
)

// String returns the tag name used on the wire.
func (k Kind) String() string {
	switch k {
	case KindRecord:
		return "FundusRecord"
	case KindCollection:
		return "FundusCollection"
	default:
		return "unknown"
	}
}

const (
	attrName = "murag_id"

	// Version nibble fixed to 4, variant nibble in [89abAB].
	uuidV4 = `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-4[0-9a-fA-F]{3}-[89aAbB][0-9a-fA-F]{3}-[0-9a-fA-F]{12}`
)

// pattern builds the grammar for one tag kind. RE2 has no
// backreferences, so matching quote pairs are spelled out as two
// alternatives. Submatch 1 holds a double-quoted id, submatch 2 a
// single-quoted one; exactly one of them is non-empty per match.
func pattern(kind Kind) *regexp.Regexp {
	return regexp.MustCompile(
		`<` + kind.String() +
			`\s+` + attrName + `\s*=\s*` +
			`(?:"(` + uuidV4 + `)"|'(` + uuidV4 + `)')` +
			`\s*/>`,
	)
}

// Patterns are immutable after init; safe for concurrent use.
var (
	recordPattern     = pattern(KindRecord)
	collectionPattern = pattern(KindCollection)
)

func (k Kind) pattern() *regexp.Regexp {
	if k == KindCollection {
		return collectionPattern
	}
	return recordPattern
}

// Contains reports whether text holds at least one well-formed tag of
// the given kind.
func Contains(text string, kind Kind) bool {
	return kind.pattern().MatchString(text)
}

// ExtractIDs returns the murag_id of every well-formed tag of the given
// kind, in order of appearance. Duplicates are preserved: a reply may
// legitimately reference the same entity twice.
func ExtractIDs(text string, kind Kind) []string {
	matches := kind.pattern().FindAllStringSubmatch(text, -1)
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		if m[1] != "" {
			ids = append(ids, m[1])
		} else {
			ids = append(ids, m[2])
		}
	}
	return ids
}

// Strip removes every well-formed tag of the given kind from text,
// leaving the surrounding prose and whitespace untouched.
func Strip(text string, kind Kind) string {
	return kind.pattern().ReplaceAllString(text, "")
}
