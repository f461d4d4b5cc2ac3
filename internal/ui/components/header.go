// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/uhh-lt/fundus-chat-tui/internal/ui/styles"
)

// =============================================================================
// HEADER COMPONENT
// =============================================================================

// Header is the top bar of the chat screen: application title on the
// left, active chat model on the right.
type Header struct {
	width     int
	modelName string
	theme     *styles.Theme
}

// NewHeader creates a new header.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{width: 80, theme: theme}
}

// SetWidth sets the header width.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetModel sets the displayed chat model name.
func (h *Header) SetModel(name string) {
	h.modelName = name
}

// View renders the header.
func (h *Header) View() string {
	title := h.theme.HeaderTitle.Render("FUNDus! Chat")
	subtitle := h.theme.HeaderSubtitle.Render("University of Hamburg collections assistant")

	right := ""
	if h.modelName != "" {
		right = h.theme.HeaderSubtitle.Render(truncate(h.modelName, 32))
	}

	left := title + "  " + subtitle
	gap := h.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		left = title
		gap = h.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
		if gap < 1 {
			gap = 1
		}
	}

	bar := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return h.theme.Header.Width(h.width - 2).Align(lipgloss.Left).Render(bar)
}
