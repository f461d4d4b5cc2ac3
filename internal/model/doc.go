// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation log.
//
// This package defines the core domain types used throughout the
// application for representing the chat conversation and its messages.
//
// # Key Types
//
//   - Conversation: append-only message log, owner of display order
//   - Message: single immutable message with role, content, timestamp
//   - Role: message role enumeration (user, assistant)
//
// # Usage
//
// Create a new conversation and append messages:
//
//	conv := model.NewConversation("gemini-2.0-flash")
//	conv.AddUserMessage("Tell me about the Mineralogical Museum")
//	conv.AddAssistantMessage(reply)
package model
