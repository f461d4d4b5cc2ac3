// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the fundus-chat TUI.
//
// The Theme struct bundles every Lip Gloss style the UI renders with:
// message bubbles, entity cards, the model picker, input area, status
// bar, and error boxes. Colors are AdaptiveColor pairs so a single
// palette serves light and dark terminals; NewTheme can also force one
// mode from configuration.
package styles
