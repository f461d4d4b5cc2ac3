// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the
// fundus-chat TUI.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/uhh-lt/fundus-chat-tui/internal/model"
	"github.com/uhh-lt/fundus-chat-tui/internal/ui/styles"
)

// =============================================================================
// MESSAGE BUBBLE COMPONENT
// =============================================================================

// MessageBubble renders one transcript message. For assistant messages
// the content is the segmented prose, already markdown-rendered; entity
// cards are separate components placed below the bubble.
type MessageBubble struct {
	Message       *model.Message
	Content       string
	Width         int
	ShowTimestamp bool
	theme         *styles.Theme
}

// NewMessageBubble creates a bubble for a message. The content may
// differ from msg.Content when the caller pre-renders it.
func NewMessageBubble(msg *model.Message, content string, theme *styles.Theme) *MessageBubble {
	return &MessageBubble{
		Message: msg,
		Content: content,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth sets the bubble width.
func (b *MessageBubble) SetWidth(width int) {
	b.Width = width
}

// View renders the message bubble.
func (b *MessageBubble) View() string {
	if b.Message.IsFromUser() {
		return b.renderUserBubble()
	}
	return b.renderAssistantBubble()
}

func (b *MessageBubble) renderUserBubble() string {
	content := b.Content
	if content == "" {
		content = "..."
	}

	maxContentWidth := b.Width - 12
	if maxContentWidth < 20 {
		maxContentWidth = 20
	}
	wrapped := wordWrap(content, maxContentWidth)

	if b.Message.UserImageID != "" {
		wrapped += "\n" + b.theme.AttachmentChip.Render("[image attached]")
	}

	contentWidth := minInt(maxLineWidth(wrapped)+4, b.Width-8)
	bubble := b.theme.UserBubble.Width(contentWidth).Render(wrapped)

	header := b.theme.SenderName.Render(b.Message.Role.DisplayName())
	if ts := b.renderTimestamp(); ts != "" {
		header += " " + ts
	}

	return lipgloss.JoinVertical(lipgloss.Right, header, bubble)
}

func (b *MessageBubble) renderAssistantBubble() string {
	content := b.Content
	if strings.TrimSpace(content) == "" {
		content = "..."
	}

	contentWidth := minInt(b.Width-8, maxLineWidth(content)+4)
	if contentWidth < 24 {
		contentWidth = 24
	}
	bubble := b.theme.AssistantBubble.Width(contentWidth).Render(content)

	header := b.theme.SenderName.Render(b.Message.Role.DisplayName())
	if ts := b.renderTimestamp(); ts != "" {
		header += " " + ts
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, bubble)
}

func (b *MessageBubble) renderTimestamp() string {
	if !b.ShowTimestamp || b.Message.Timestamp.IsZero() {
		return ""
	}
	return b.theme.Timestamp.Render(b.Message.Timestamp.Format("15:04"))
}
