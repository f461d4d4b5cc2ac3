// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package resolver fetches referenced catalog entities for card
// rendering.
//
// Every entity reference found at segmentation time becomes one card.
// A card starts Loading and settles to Resolved or NotFound when its
// own fetch completes; sibling cards are independent and their
// completion order is irrelevant, because card placement is fixed by
// the segmenter's id lists. There are no retries here: a transient
// failure shows as NotFound for this render, and the next render
// re-issues the fetch from Loading.
package resolver

import (
	"context"

	"go.uber.org/zap"

	"github.com/uhh-lt/fundus-chat-tui/internal/fundus"
	"github.com/uhh-lt/fundus-chat-tui/internal/lookup"
	"github.com/uhh-lt/fundus-chat-tui/internal/tags"
)

// =============================================================================
// CARD STATE
// =============================================================================

// CardState is the per-reference state machine: Loading is entered when
// the id is discovered, Resolved and NotFound are terminal.
type CardState int

const (
	CardLoading CardState = iota
	CardResolved
	CardNotFound
)

// Card is the rendering state of one entity reference.
type Card struct {
	Kind    tags.Kind
	MuragID string
	State   CardState

	// Exactly one of these is set when State is CardResolved,
	// matching Kind.
	Record     *fundus.Record
	Collection *fundus.Collection

	// Image is the dependent second fetch of a record card; nil is
	// fine, the card renders without an image.
	Image *fundus.RecordImage
}

// NewCard creates a card in the Loading state.
func NewCard(kind tags.Kind, muragID string) *Card {
	return &Card{Kind: kind, MuragID: muragID, State: CardLoading}
}

// Apply settles the card with a resolution result. Results for another
// id are ignored so a mismatched completion can never corrupt a card.
func (c *Card) Apply(res Resolution) {
	if res.MuragID != c.MuragID || res.Kind != c.Kind {
		return
	}
	if res.NotFound {
		c.State = CardNotFound
		return
	}
	c.State = CardResolved
	c.Record = res.Record
	c.Collection = res.Collection
}

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolution is the settled outcome of resolving one reference.
type Resolution struct {
	Kind    tags.Kind
	MuragID string

	Record     *fundus.Record
	Collection *fundus.Collection

	// NotFound covers both a lookup miss and a transport failure;
	// the card layer does not distinguish them (no retry either way),
	// but Err keeps the cause for the log.
	NotFound bool
	Err      error
}

// =============================================================================
// RESOLVER
// =============================================================================

// Resolver resolves entity references against the lookup API.
type Resolver struct {
	client *lookup.Client
	log    *zap.Logger
}

// New creates a resolver. A nil logger disables logging.
func New(client *lookup.Client, log *zap.Logger) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{client: client, log: log}
}

// Resolve fetches the entity behind one reference. It never returns an
// error: any failure settles the reference as NotFound, which the UI
// renders as a placeholder carrying the id.
func (r *Resolver) Resolve(ctx context.Context, kind tags.Kind, muragID string) Resolution {
	res := Resolution{Kind: kind, MuragID: muragID}

	switch kind {
	case tags.KindRecord:
		record, err := r.client.GetRecord(ctx, muragID)
		if err != nil {
			return r.miss(res, err)
		}
		res.Record = record

	case tags.KindCollection:
		collection, err := r.client.GetCollection(ctx, muragID)
		if err != nil {
			return r.miss(res, err)
		}
		res.Collection = collection

	default:
		res.NotFound = true
	}

	return res
}

// ResolveRecordImage issues the dependent image fetch for a resolved
// record. Absence is tolerated: the caller renders the card without an
// image when nil is returned.
func (r *Resolver) ResolveRecordImage(ctx context.Context, muragID string) *fundus.RecordImage {
	image, err := r.client.GetRecordImage(ctx, muragID)
	if err != nil {
		r.log.Debug("record image unavailable",
			zap.String("murag_id", muragID),
			zap.Error(err))
		return nil
	}
	return image
}

func (r *Resolver) miss(res Resolution, err error) Resolution {
	res.NotFound = true
	res.Err = err
	if lookup.IsNotFound(err) {
		r.log.Info("entity not found",
			zap.String("kind", res.Kind.String()),
			zap.String("murag_id", res.MuragID))
	} else {
		r.log.Warn("entity resolution failed",
			zap.String("kind", res.Kind.String()),
			zap.String("murag_id", res.MuragID),
			zap.Error(err))
	}
	return res
}
