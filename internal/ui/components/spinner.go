// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/uhh-lt/fundus-chat-tui/internal/ui/styles"
)

// =============================================================================
// TYPING INDICATOR
// =============================================================================

// TypingIndicator shows that the assistant is working on a reply. It
// wraps the bubbles spinner so the chat model can forward tick
// messages to it.
type TypingIndicator struct {
	spinner spinner.Model
	theme   *styles.Theme
	active  bool
	started time.Time
}

// NewTypingIndicator creates an inactive typing indicator.
func NewTypingIndicator(theme *styles.Theme) TypingIndicator {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = theme.Spinner
	return TypingIndicator{spinner: s, theme: theme}
}

// Start activates the indicator and returns the first tick command.
func (t *TypingIndicator) Start() tea.Cmd {
	t.active = true
	t.started = time.Now()
	return t.spinner.Tick
}

// Stop deactivates the indicator.
func (t *TypingIndicator) Stop() {
	t.active = false
}

// Active reports whether the indicator is running.
func (t *TypingIndicator) Active() bool {
	return t.active
}

// Update forwards spinner ticks while active.
func (t *TypingIndicator) Update(msg tea.Msg) tea.Cmd {
	if !t.active {
		return nil
	}
	var cmd tea.Cmd
	t.spinner, cmd = t.spinner.Update(msg)
	return cmd
}

// View renders the indicator, or an empty string when inactive.
func (t *TypingIndicator) View() string {
	if !t.active {
		return ""
	}
	elapsed := time.Since(t.started).Round(time.Second)
	text := "Assistant is typing"
	if elapsed >= 5*time.Second {
		text += " (" + elapsed.String() + ")"
	}
	return t.spinner.View() + " " + t.theme.ThinkingText.Render(text)
}
