// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the Bubble Tea model for the FUNDus! chat
// screen.
//
// The model moves through three states: picking a chat model, ready
// for input, and waiting for the assistant. Assistant replies are
// segmented on arrival into display prose and entity-reference id
// lists; each reference becomes a card that resolves asynchronously
// below the message while the prose renders immediately.
//
// All backend round trips run as commands (commands.go) and report
// back with the message types in messages.go. Results carry the
// conversation generation so replies and resolutions belonging to a
// conversation that was reset in the meantime are dropped.
package chat
