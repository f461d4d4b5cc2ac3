// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uhh-lt/fundus-chat-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME / EXAMPLE PROMPTS
// =============================================================================

// ExamplePrompts are shown on an empty chat screen; selecting one sends
// it as the first message.
var ExamplePrompts = []string{
	"Which collections does the University of Hamburg have?",
	"Show me some minerals from the Mineralogical Museum.",
	"What can you tell me about plaster casts of ancient sculptures?",
	"Find records related to zoology.",
}

// Welcome renders the empty-chat greeting with selectable example
// prompts.
type Welcome struct {
	width    int
	selected int
	theme    *styles.Theme
}

// NewWelcome creates the welcome view with no prompt selected.
func NewWelcome(theme *styles.Theme) *Welcome {
	return &Welcome{width: 80, selected: -1, theme: theme}
}

// SetWidth sets the view width.
func (w *Welcome) SetWidth(width int) {
	w.width = width
}

// Selected returns the selected prompt index, -1 for none.
func (w *Welcome) Selected() int {
	return w.selected
}

// SelectedPrompt returns the selected example prompt text, empty for
// none.
func (w *Welcome) SelectedPrompt() string {
	if w.selected < 0 || w.selected >= len(ExamplePrompts) {
		return ""
	}
	return ExamplePrompts[w.selected]
}

// Next moves the selection down, wrapping around.
func (w *Welcome) Next() {
	w.selected = (w.selected + 1) % len(ExamplePrompts)
}

// Prev moves the selection up, wrapping around.
func (w *Welcome) Prev() {
	if w.selected <= 0 {
		w.selected = len(ExamplePrompts) - 1
		return
	}
	w.selected--
}

// ClearSelection removes the selection.
func (w *Welcome) ClearSelection() {
	w.selected = -1
}

// View renders the greeting and the example prompt boxes.
func (w *Welcome) View() string {
	greeting := w.theme.HeaderTitle.Render("Welcome to FUNDus! Chat") + "\n" +
		w.theme.HeaderSubtitle.Render("Ask about the scientific collections of the University of Hamburg.")

	boxWidth := minInt(w.width-8, 72)
	var boxes []string
	for i, prompt := range ExamplePrompts {
		style := w.theme.ExampleBox
		if i == w.selected {
			style = w.theme.ExampleSelected
		}
		boxes = append(boxes, style.Width(boxWidth).Render(wordWrap(prompt, boxWidth-2)))
	}

	hint := w.theme.ShortcutDesc.Render("tab to browse examples, enter to send, or just start typing")

	return lipgloss.JoinVertical(lipgloss.Left,
		greeting,
		"",
		strings.Join(boxes, "\n"),
		"",
		hint,
	)
}
