// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines all Bubble Tea message types used by the chat
// interface. Messages are organized into the following categories:
//   - Models: model list delivery and selection
//   - Sessions: backend session listing
//   - Sending: assistant round trips
//   - Resolution: entity reference and record image results
//   - Attachments: user image uploads
//   - UI State: resize and errors
//
// Async results carry the generation counter of the conversation that
// issued them; results from a generation that has since been reset are
// dropped in Update.
package chat

import (
	"github.com/uhh-lt/fundus-chat-tui/internal/assistant"
	"github.com/uhh-lt/fundus-chat-tui/internal/fundus"
	"github.com/uhh-lt/fundus-chat-tui/internal/resolver"
)

// =============================================================================
// MODEL MESSAGES
// =============================================================================

// ModelsLoadedMsg delivers the list of available chat models.
type ModelsLoadedMsg struct {
	Models []assistant.Model
	Err    error
}

// =============================================================================
// SESSION MESSAGES
// =============================================================================

// SessionsLoadedMsg delivers the sessions known to the backend for the
// /sessions overlay.
type SessionsLoadedMsg struct {
	Sessions []assistant.Session
	Err      error
}

// =============================================================================
// SENDING MESSAGES
// =============================================================================

// SendResultMsg delivers the assistant's reply for one send round trip.
type SendResultMsg struct {
	Gen      int
	Response *assistant.Response
	Err      error
}

// =============================================================================
// RESOLUTION MESSAGES
// =============================================================================

// EntityResolvedMsg delivers the settled resolution of one entity
// reference inside an assistant message.
type EntityResolvedMsg struct {
	Gen        int
	MessageID  string
	Resolution resolver.Resolution
}

// RecordImageResolvedMsg delivers the dependent image fetch of a
// resolved record card. Image is nil when no image is available.
type RecordImageResolvedMsg struct {
	Gen       int
	MessageID string
	MuragID   string
	Image     *fundus.RecordImage
}

// =============================================================================
// ATTACHMENT MESSAGES
// =============================================================================

// UserImageStoredMsg reports the outcome of uploading an image file.
// On success Handle is the stored-image id that travels with the next
// send.
type UserImageStoredMsg struct {
	Filename string
	Handle   string
	Err      error
}

// =============================================================================
// UI STATE MESSAGES
// =============================================================================

// ErrorMsg displays a dismissible error.
type ErrorMsg struct {
	Title string
	Err   error
}

// ErrorDismissMsg dismisses the current error.
type ErrorDismissMsg struct{}
