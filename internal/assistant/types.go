// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package assistant provides the HTTP client for the FUNDus! assistant API.
package assistant

// Model describes a language-model backend offered by the assistant.
type Model struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Session is the server-assigned conversation identifier, threaded into
// every request after the first successful send.
type Session struct {
	SessionID string `json:"session_id"`
	ModelName string `json:"model_name,omitempty"`

	// Unix timestamps assigned by the backend.
	Created int64 `json:"created"`
	Updated int64 `json:"updated,omitempty"`
	Expires int64 `json:"expires,omitempty"`
}

// UserMessageRequest is the payload of a send-message call.
//
// An attached image travels as a stored-image handle (user_image_id)
// obtained from the image store beforehand, so large payloads are never
// re-transmitted with the message.
type UserMessageRequest struct {
	Message     string `json:"message"`
	UserImageID string `json:"user_image_id,omitempty"`
	ModelName   string `json:"model_name"`
	SessionID   string `json:"session_id,omitempty"`
}

// Response is the assistant's reply to a send-message call. Message may
// embed entity-reference tags; see the tags package.
type Response struct {
	Message string  `json:"message"`
	Session Session `json:"session"`
}
