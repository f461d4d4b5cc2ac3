// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the
// fundus-chat TUI: message bubbles, entity cards, the header, the
// typing indicator, the welcome screen, and markdown rendering.
//
// Components hold no application state beyond what they display; the
// chat model owns the state and hands each component what it needs at
// render time.
package components
