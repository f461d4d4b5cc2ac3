// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package segment splits assistant reply text into displayable prose
// and ordered lists of referenced entity ids.
package segment

import "github.com/uhh-lt/fundus-chat-tui/internal/tags"

// Segmented is the result of segmenting one chat message. The id lists
// are always non-nil; their order is the order of appearance in the
// source text and fixes the placement of the rendered cards.
type Segmented struct {
	Prose         string
	RecordIDs     []string
	CollectionIDs []string
}

// HasReferences reports whether the message references any entity.
func (s Segmented) HasReferences() bool {
	return len(s.RecordIDs) > 0 || len(s.CollectionIDs) > 0
}

// Segment classifies a message and extracts its entity references.
//
// Messages typed by the user are never scanned: a user can type
// tag-shaped text without spoofing card rendering, and their prose is
// passed through verbatim. Assistant messages have record and
// collection tags extracted independently, stripped from the text, and
// the remainder whitespace-normalized. Prose may legitimately end up
// empty when a reply is nothing but references.
func Segment(text string, fromUser bool) Segmented {
	if fromUser {
		return Segmented{
			Prose:         text,
			RecordIDs:     []string{},
			CollectionIDs: []string{},
		}
	}

	recordIDs := tags.ExtractIDs(text, tags.KindRecord)
	collectionIDs := tags.ExtractIDs(text, tags.KindCollection)

	prose := tags.Strip(text, tags.KindRecord)
	prose = tags.Strip(prose, tags.KindCollection)
	prose = Normalize(prose)

	return Segmented{
		Prose:         prose,
		RecordIDs:     recordIDs,
		CollectionIDs: collectionIDs,
	}
}
