// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/uhh-lt/fundus-chat-tui/internal/model"
	"github.com/uhh-lt/fundus-chat-tui/internal/ui/components"
)

// =============================================================================
// VIEW
// =============================================================================

// View renders the full chat screen.
func (m Model) View() string {
	if m.state == StatePickingModel {
		return m.viewModelPicker()
	}

	sections := []string{
		m.header.View(),
		m.viewport.View(),
	}

	if m.typing.Active() {
		sections = append(sections, m.typing.View())
	}

	sections = append(sections, m.viewInput(), m.viewStatusBar())

	screen := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.lastError != nil {
		return m.overlay(screen, m.viewError())
	}
	if m.showHelp {
		return m.overlay(screen, m.viewHelp())
	}
	if m.showSessions {
		return m.overlay(screen, m.viewSessions())
	}
	return screen
}

// ==========================================================================
// MODEL PICKER
// ==========================================================================

func (m Model) viewModelPicker() string {
	var b strings.Builder
	b.WriteString(m.theme.PickerTitle.Render("Choose a chat model"))
	b.WriteString("\n\n")

	if len(m.models) == 0 {
		b.WriteString(m.theme.ThinkingText.Render("Loading models ..."))
	}
	for i, available := range m.models {
		label := available.DisplayName
		if label == "" {
			label = available.Name
		}
		style := m.theme.PickerItem
		prefix := "  "
		if i == m.pickerIndex {
			style = m.theme.PickerItemSelected
			prefix = "> "
		}
		b.WriteString(style.Render(prefix + label))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.ShortcutDesc.Render("up/down to choose, enter to confirm, ctrl+c to quit"))

	box := m.theme.PickerBox.Render(b.String())
	if m.lastError != nil {
		box = lipgloss.JoinVertical(lipgloss.Left, box, "", m.viewError())
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// ==========================================================================
// TRANSCRIPT
// ==========================================================================

// transcriptHeight is the viewport height: everything minus header,
// input, and status bar.
func (m Model) transcriptHeight() int {
	h := m.height - 8
	if h < 5 {
		h = 5
	}
	return h
}

// rebuildViewport re-renders the transcript into the viewport and
// follows the newest message.
func (m *Model) rebuildViewport() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m Model) renderTranscript() string {
	if m.conversation.IsEmpty() {
		return m.welcome.View()
	}

	var blocks []string
	for _, msg := range m.conversation.Messages {
		blocks = append(blocks, m.renderMessage(msg))
	}
	return strings.Join(blocks, "\n\n")
}

// renderMessage renders one transcript entry: the bubble, and for
// assistant messages the entity cards in segmenter order below it.
func (m Model) renderMessage(msg *model.Message) string {
	content := msg.Content
	if !msg.IsFromUser() {
		if seg, ok := m.segments[msg.ID]; ok {
			content = m.markdown.Render(seg.Prose)
		} else {
			content = m.markdown.Render(content)
		}
	}

	bubble := components.NewMessageBubble(msg, content, m.theme)
	bubble.SetWidth(m.width)
	bubble.ShowTimestamp = m.cfg.UI.ShowTimestamps
	parts := []string{bubble.View()}

	for _, card := range m.cards[msg.ID] {
		view := components.NewEntityCard(card, m.theme)
		view.SetWidth(m.width)
		parts = append(parts, view.View())
	}

	return strings.Join(parts, "\n")
}

// ==========================================================================
// INPUT AND STATUS
// ==========================================================================

func (m Model) viewInput() string {
	line := m.input.View()
	if m.pendingImageName != "" {
		line += "  " + m.theme.AttachmentChip.Render("[image: "+m.pendingImageName+"]")
	}
	return m.theme.InputContainer.Width(m.width - 2).Render(line)
}

func (m Model) viewStatusBar() string {
	shortcuts := []string{
		m.theme.ShortcutKey.Render("Enter") + m.theme.ShortcutDesc.Render(" send"),
		m.theme.ShortcutKey.Render("C-n") + m.theme.ShortcutDesc.Render(" new chat"),
		m.theme.ShortcutKey.Render("/help") + m.theme.ShortcutDesc.Render(" commands"),
		m.theme.ShortcutKey.Render("C-c") + m.theme.ShortcutDesc.Render(" quit"),
	}
	return m.theme.StatusBar.Width(m.width).Render(strings.Join(shortcuts, "  "))
}

// ==========================================================================
// OVERLAYS
// ==========================================================================

func (m Model) viewError() string {
	body := m.theme.ErrorTitle.Render(m.lastError.Title)
	if m.lastError.Err != nil {
		body += "\n" + m.theme.ErrorMessage.Render(m.lastError.Err.Error())
	}
	body += "\n\n" + m.theme.ShortcutDesc.Render("esc to dismiss")
	return m.theme.ErrorBox.Render(body)
}

func (m Model) viewHelp() string {
	rows := []string{
		m.theme.PickerTitle.Render("Commands"),
		"",
		m.theme.ShortcutKey.Render("/new") + m.theme.ShortcutDesc.Render("      start a new conversation"),
		m.theme.ShortcutKey.Render("/models") + m.theme.ShortcutDesc.Render("   pick another chat model"),
		m.theme.ShortcutKey.Render("/sessions") + m.theme.ShortcutDesc.Render(" list the sessions on the backend"),
		m.theme.ShortcutKey.Render("/image p") + m.theme.ShortcutDesc.Render("  attach an image file to the next message"),
		m.theme.ShortcutKey.Render("/quit") + m.theme.ShortcutDesc.Render("     exit"),
		"",
		m.theme.ShortcutDesc.Render("esc to close"),
	}
	return m.theme.PickerBox.Render(strings.Join(rows, "\n"))
}

// viewSessions lists the sessions the backend reported; the one this
// conversation runs on is marked.
func (m Model) viewSessions() string {
	rows := []string{m.theme.PickerTitle.Render("Sessions"), ""}

	if len(m.sessions) == 0 {
		rows = append(rows, m.theme.ShortcutDesc.Render("the backend knows no sessions"))
	}
	for _, s := range m.sessions {
		prefix := "  "
		if m.session != nil && m.session.SessionID == s.SessionID {
			prefix = "> "
		}
		when := s.Updated
		if when == 0 {
			when = s.Created
		}
		line := prefix + m.theme.ShortcutKey.Render(s.SessionID)
		if s.ModelName != "" {
			line += m.theme.ShortcutDesc.Render("  " + s.ModelName)
		}
		if when != 0 {
			line += m.theme.ShortcutDesc.Render("  " + time.Unix(when, 0).Format("2006-01-02 15:04"))
		}
		rows = append(rows, line)
	}

	rows = append(rows, "", m.theme.ShortcutDesc.Render("esc to close"))
	return m.theme.PickerBox.Render(strings.Join(rows, "\n"))
}

// overlay replaces the screen with a centered box until it is
// dismissed; the transcript state underneath is untouched.
func (m Model) overlay(_, box string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
