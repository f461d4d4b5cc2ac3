// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lookup provides the HTTP client for the FUNDus! data API:
// catalog entity lookups and the user image store.
package lookup

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uhh-lt/fundus-chat-tui/internal/fundus"
)

const testID = "3fae1e60-1c11-4c1a-8a2e-2b1a9c0f1234"

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClientWithConfig(&ClientConfig{BaseURL: srv.URL}), srv
}

func TestGetRecord(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/data/lookup/records" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("murag_id"); got != testID {
			t.Errorf("murag_id = %q, want %q", got, testID)
		}
		json.NewEncoder(w).Encode(fundus.Record{
			MuragID:        testID,
			Title:          "Amethyst Geode",
			FundusID:       4711,
			CollectionName: "mineralogical-museum",
			Details:        map[string]string{"Material": "Quartz"},
		})
	}))
	defer srv.Close()

	record, err := client.GetRecord(context.Background(), testID)
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if record.Title != "Amethyst Geode" {
		t.Errorf("Title = %q", record.Title)
	}
	if record.WebURL() != "https://www.fundus.uni-hamburg.de/en/collection_records/4711" {
		t.Errorf("WebURL = %q", record.WebURL())
	}
}

func TestGetRecordNotFound(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := client.GetRecord(context.Background(), testID)
	if !IsNotFound(err) {
		t.Errorf("IsNotFound(%v) = false", err)
	}
}

func TestGetRecordImage(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/data/lookup/records/image" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(fundus.RecordImage{
			MuragID:     testID,
			ImageName:   "geode.jpg",
			Base64Image: "aW1hZ2U=",
		})
	}))
	defer srv.Close()

	image, err := client.GetRecordImage(context.Background(), testID)
	if err != nil {
		t.Fatalf("GetRecordImage: %v", err)
	}
	if image.Base64Image != "aW1hZ2U=" {
		t.Errorf("Base64Image = %q", image.Base64Image)
	}
}

func TestGetCollection(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/data/lookup/collections" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(fundus.Collection{
			MuragID:        testID,
			CollectionName: "mineralogical-museum",
			Title:          "Mineralogical Museum",
			Contacts: []fundus.CollectionContact{
				{ContactName: "Dr. Example", Email: "curator@example.org"},
			},
		})
	}))
	defer srv.Close()

	collection, err := client.GetCollection(context.Background(), testID)
	if err != nil {
		t.Fatalf("GetCollection: %v", err)
	}
	if collection.Title != "Mineralogical Museum" {
		t.Errorf("Title = %q", collection.Title)
	}
	if len(collection.Contacts) != 1 || collection.Contacts[0].Email != "curator@example.org" {
		t.Errorf("unexpected contacts: %+v", collection.Contacts)
	}
}

func TestStoreUserImage(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/data/user_image/store" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Fatalf("FormFile: %v", err)
		}
		defer file.Close()
		if header.Filename != "photo.jpg" {
			t.Errorf("Filename = %q", header.Filename)
		}
		json.NewEncoder(w).Encode("img-42")
	}))
	defer srv.Close()

	handle, err := client.StoreUserImage(context.Background(), "photo.jpg", []byte("jpegdata"))
	if err != nil {
		t.Fatalf("StoreUserImage: %v", err)
	}
	if handle != "img-42" {
		t.Errorf("handle = %q, want img-42", handle)
	}
}

func TestGetUserImage(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/data/user_image/img-42" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode("aW1hZ2U=")
	}))
	defer srv.Close()

	img, err := client.GetUserImage(context.Background(), "img-42")
	if err != nil {
		t.Fatalf("GetUserImage: %v", err)
	}
	if img != "aW1hZ2U=" {
		t.Errorf("image = %q", img)
	}
}

func TestLookupNonSuccessStatus(t *testing.T) {
	client, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := client.GetCollection(context.Background(), testID)
	if err == nil {
		t.Fatal("expected error on non-2xx status")
	}
	if IsNotFound(err) {
		t.Error("transport failure must not be conflated with not-found")
	}
}
