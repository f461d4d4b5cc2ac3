// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package segment

import (
	"reflect"
	"testing"
)

const (
	idA = "3fae1e60-1c11-4c1a-8a2e-2b1a9c0f1234"
	idB = "3fae1e60-1c11-4c1a-8a2e-2b1a9c0f5678"
)

func TestSegmentPlainProse(t *testing.T) {
	// No well-formed tags: prose is the normalized input, both lists empty.
	in := "The  Mineralogical Museum holds over\n\n\n1500 exhibits."
	got := Segment(in, false)

	if got.Prose != Normalize(in) {
		t.Errorf("Prose = %q, want %q", got.Prose, Normalize(in))
	}
	if len(got.RecordIDs) != 0 || len(got.CollectionIDs) != 0 {
		t.Errorf("id lists not empty: %v / %v", got.RecordIDs, got.CollectionIDs)
	}
	if got.RecordIDs == nil || got.CollectionIDs == nil {
		t.Error("id lists must be empty, never nil")
	}
	if got.HasReferences() {
		t.Error("HasReferences() = true for plain prose")
	}
}

func TestSegmentAssistantReply(t *testing.T) {
	in := "Here are two matches:\n\n" +
		`<FundusRecord murag_id="` + idA + `"/>` + "\n\n" +
		`<FundusRecord murag_id="` + idB + `"/>`

	got := Segment(in, false)

	if got.Prose != "Here are two matches:" {
		t.Errorf("Prose = %q, want %q", got.Prose, "Here are two matches:")
	}
	if want := []string{idA, idB}; !reflect.DeepEqual(got.RecordIDs, want) {
		t.Errorf("RecordIDs = %v, want %v", got.RecordIDs, want)
	}
	if len(got.CollectionIDs) != 0 {
		t.Errorf("CollectionIDs = %v, want empty", got.CollectionIDs)
	}
}

func TestSegmentMixedKinds(t *testing.T) {
	in := "A record <FundusRecord murag_id=\"" + idA + "\"/> and a collection " +
		"<FundusCollection murag_id='" + idB + "'/> in one reply."

	got := Segment(in, false)

	if want := []string{idA}; !reflect.DeepEqual(got.RecordIDs, want) {
		t.Errorf("RecordIDs = %v, want %v", got.RecordIDs, want)
	}
	if want := []string{idB}; !reflect.DeepEqual(got.CollectionIDs, want) {
		t.Errorf("CollectionIDs = %v, want %v", got.CollectionIDs, want)
	}
	if got.Prose != "A record and a collection in one reply." {
		t.Errorf("Prose = %q", got.Prose)
	}
}

func TestSegmentDuplicateReferences(t *testing.T) {
	in := `<FundusRecord murag_id="` + idA + `"/>` +
		`<FundusRecord murag_id="` + idB + `"/>` +
		`<FundusRecord murag_id="` + idA + `"/>`

	got := Segment(in, false)

	if want := []string{idA, idB, idA}; !reflect.DeepEqual(got.RecordIDs, want) {
		t.Errorf("RecordIDs = %v, want %v", got.RecordIDs, want)
	}
	if got.Prose != "" {
		t.Errorf("pure reference reply should have empty prose, got %q", got.Prose)
	}
	if !got.HasReferences() {
		t.Error("HasReferences() = false")
	}
}

func TestSegmentUserMessagesNeverScanned(t *testing.T) {
	// A user typing tag-shaped text must not trigger card rendering.
	in := `look at <FundusRecord murag_id="` + idA + `"/>  please`
	got := Segment(in, true)

	if got.Prose != in {
		t.Errorf("user prose modified: %q", got.Prose)
	}
	if len(got.RecordIDs) != 0 || len(got.CollectionIDs) != 0 {
		t.Errorf("user message extracted ids: %v / %v", got.RecordIDs, got.CollectionIDs)
	}
	if got.RecordIDs == nil || got.CollectionIDs == nil {
		t.Error("id lists must be empty, never nil")
	}
}

func TestSegmentMalformedIDStaysInProse(t *testing.T) {
	// Version nibble 3 instead of 4: not a v4 UUID, tag shape is prose.
	bad := `<FundusRecord murag_id="3fae1e60-1c11-3c1a-8a2e-2b1a9c0f1234"/>`
	got := Segment(bad, false)

	if len(got.RecordIDs) != 0 {
		t.Errorf("extracted ids from malformed tag: %v", got.RecordIDs)
	}
	if got.Prose != bad {
		t.Errorf("malformed tag not passed through verbatim: %q", got.Prose)
	}
}

func TestSegmentStripLeavesListClean(t *testing.T) {
	in := "Matches:\n- <FundusRecord murag_id=\"" + idA + "\"/>\n- <FundusRecord murag_id=\"" + idB + "\"/>\nDone."
	got := Segment(in, false)

	if got.Prose != "Matches:\nDone." {
		t.Errorf("Prose = %q, want %q", got.Prose, "Matches:\nDone.")
	}
	if want := []string{idA, idB}; !reflect.DeepEqual(got.RecordIDs, want) {
		t.Errorf("RecordIDs = %v, want %v", got.RecordIDs, want)
	}
}
