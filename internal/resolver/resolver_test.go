// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package resolver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/uhh-lt/fundus-chat-tui/internal/fundus"
	"github.com/uhh-lt/fundus-chat-tui/internal/lookup"
	"github.com/uhh-lt/fundus-chat-tui/internal/tags"
)

const (
	knownID   = "3fae1e60-1c11-4c1a-8a2e-2b1a9c0f1234"
	missingID = "3fae1e60-1c11-4c1a-8a2e-2b1a9c0f5678"
)

// fakeLookup serves one known record and one known collection; every
// other id is a 404.
func fakeLookup(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("murag_id") != knownID {
			http.NotFound(w, r)
			return
		}
		switch r.URL.Path {
		case "/api/data/lookup/records":
			json.NewEncoder(w).Encode(fundus.Record{MuragID: knownID, Title: "Amethyst Geode"})
		case "/api/data/lookup/records/image":
			json.NewEncoder(w).Encode(fundus.RecordImage{MuragID: knownID, Base64Image: "aW1hZ2U="})
		case "/api/data/lookup/collections":
			json.NewEncoder(w).Encode(fundus.Collection{MuragID: knownID, Title: "Mineralogical Museum"})
		default:
			http.NotFound(w, r)
		}
	}))
}

func newResolver(srvURL string) *Resolver {
	return New(lookup.NewClientWithConfig(&lookup.ClientConfig{BaseURL: srvURL}), nil)
}

func TestResolveRecord(t *testing.T) {
	srv := fakeLookup(t)
	defer srv.Close()

	res := newResolver(srv.URL).Resolve(context.Background(), tags.KindRecord, knownID)

	if res.NotFound {
		t.Fatalf("unexpected NotFound: %v", res.Err)
	}
	if res.Record == nil || res.Record.Title != "Amethyst Geode" {
		t.Errorf("Record = %+v", res.Record)
	}
	if res.Collection != nil {
		t.Error("record resolution should not carry a collection")
	}
}

func TestResolveCollection(t *testing.T) {
	srv := fakeLookup(t)
	defer srv.Close()

	res := newResolver(srv.URL).Resolve(context.Background(), tags.KindCollection, knownID)

	if res.NotFound {
		t.Fatalf("unexpected NotFound: %v", res.Err)
	}
	if res.Collection == nil || res.Collection.Title != "Mineralogical Museum" {
		t.Errorf("Collection = %+v", res.Collection)
	}
}

func TestResolveMiss(t *testing.T) {
	srv := fakeLookup(t)
	defer srv.Close()

	res := newResolver(srv.URL).Resolve(context.Background(), tags.KindRecord, missingID)

	if !res.NotFound {
		t.Fatal("expected NotFound")
	}
	if res.MuragID != missingID {
		t.Errorf("MuragID = %q, want %q (placeholder needs the id)", res.MuragID, missingID)
	}
}

func TestResolveTransportFailureIsNotFound(t *testing.T) {
	// Nothing listens here; a transport failure settles as NotFound
	// for this render, it never propagates as an error.
	res := newResolver("http://127.0.0.1:1").Resolve(context.Background(), tags.KindRecord, knownID)

	if !res.NotFound {
		t.Fatal("expected NotFound on transport failure")
	}
	if res.Err == nil {
		t.Error("cause should be preserved for logging")
	}
}

func TestResolveRecordImage(t *testing.T) {
	srv := fakeLookup(t)
	defer srv.Close()
	r := newResolver(srv.URL)

	if img := r.ResolveRecordImage(context.Background(), knownID); img == nil || img.Base64Image != "aW1hZ2U=" {
		t.Errorf("image = %+v", img)
	}

	// Image absence is tolerated, not an error.
	if img := r.ResolveRecordImage(context.Background(), missingID); img != nil {
		t.Errorf("expected nil image for missing id, got %+v", img)
	}
}

func TestSiblingResolutionsAreIndependent(t *testing.T) {
	srv := fakeLookup(t)
	defer srv.Close()
	r := newResolver(srv.URL)

	ids := []string{knownID, missingID, knownID}
	results := make([]Resolution, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i] = r.Resolve(context.Background(), tags.KindRecord, id)
		}(i, id)
	}
	wg.Wait()

	if results[0].NotFound || results[2].NotFound {
		t.Error("resolutions of the known id should succeed")
	}
	if !results[1].NotFound {
		t.Error("the missing id must settle NotFound without affecting siblings")
	}
}

func TestCardStateMachine(t *testing.T) {
	card := NewCard(tags.KindRecord, knownID)
	if card.State != CardLoading {
		t.Fatal("new card must start Loading")
	}

	// A result for a different id must not touch the card.
	card.Apply(Resolution{Kind: tags.KindRecord, MuragID: missingID, NotFound: true})
	if card.State != CardLoading {
		t.Error("result for another id corrupted the card")
	}

	card.Apply(Resolution{
		Kind:    tags.KindRecord,
		MuragID: knownID,
		Record:  &fundus.Record{MuragID: knownID, Title: "Amethyst Geode"},
	})
	if card.State != CardResolved || card.Record == nil {
		t.Errorf("card = %+v, want resolved with record", card)
	}

	missing := NewCard(tags.KindCollection, missingID)
	missing.Apply(Resolution{Kind: tags.KindCollection, MuragID: missingID, NotFound: true})
	if missing.State != CardNotFound {
		t.Errorf("State = %v, want CardNotFound", missing.State)
	}
	if missing.MuragID != missingID {
		t.Error("not-found card must keep the requested id")
	}
}
