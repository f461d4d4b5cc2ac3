// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fundus defines the catalog entity types exchanged with the
// FUNDus! lookup API.
package fundus

import "strconv"

// Record is a single cataloged item from a FUNDus! collection.
type Record struct {
	MuragID        string            `json:"murag_id"`
	Title          string            `json:"title"`
	FundusID       int               `json:"fundus_id"`
	CatalogNo      string            `json:"catalogno"`
	CollectionName string            `json:"collection_name"`
	ImageName      string            `json:"image_name"`
	Details        map[string]string `json:"details"`
}

// WebURL returns the public FUNDus! page for the record.
func (r *Record) WebURL() string {
	return "https://www.fundus.uni-hamburg.de/en/collection_records/" + strconv.Itoa(r.FundusID)
}

// Collection groups many records and carries contact metadata.
type Collection struct {
	MuragID        string              `json:"murag_id"`
	CollectionName string              `json:"collection_name"`
	Title          string              `json:"title"`
	TitleDE        string              `json:"title_de"`
	Description    string              `json:"description"`
	DescriptionDE  string              `json:"description_de"`
	Contacts       []CollectionContact `json:"contacts"`
	TitleFields    []string            `json:"title_fields"`
	Fields         []RecordField       `json:"fields"`
}

// CollectionContact is a single contact entry of a collection.
type CollectionContact struct {
	City          string `json:"city"`
	ContactName   string `json:"contact_name"`
	Department    string `json:"department"`
	Email         string `json:"email"`
	Institution   string `json:"institution"`
	Position      string `json:"position"`
	Street        string `json:"street"`
	Tel           string `json:"tel"`
	WWWDepartment string `json:"www_department"`
	WWWName       string `json:"www_name"`
}

// RecordField describes a record detail field with localized labels.
type RecordField struct {
	Name    string `json:"name"`
	LabelEN string `json:"label_en"`
	LabelDE string `json:"label_de"`
}

// RecordImage is the image payload of a record, base64-encoded.
type RecordImage struct {
	MuragID     string `json:"murag_id"`
	FundusID    int    `json:"fundus_id"`
	ImageName   string `json:"image_name"`
	Base64Image string `json:"base64_image"`
}
