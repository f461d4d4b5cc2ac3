// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation log.
package model

import (
	"testing"
	"time"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage(t *testing.T) {
	msg := NewUserMessage("hello")

	if msg.ID == "" {
		t.Error("NewUserMessage() should generate an ID")
	}
	if msg.Role != RoleUser {
		t.Errorf("Role = %v, want %v", msg.Role, RoleUser)
	}
	if msg.Content != "hello" {
		t.Errorf("Content = %q, want %q", msg.Content, "hello")
	}
	if !msg.IsFromUser() {
		t.Error("IsFromUser() = false for user message")
	}
	if msg.UserImageID != "" {
		t.Errorf("UserImageID = %q, want empty", msg.UserImageID)
	}

	other := NewAssistantMessage("hi")
	if other.IsFromUser() {
		t.Error("IsFromUser() = true for assistant message")
	}
	if other.ID == msg.ID {
		t.Error("message IDs should be unique")
	}
}

func TestNewUserImageMessage(t *testing.T) {
	msg := NewUserImageMessage("find similar", "img-123")
	if msg.UserImageID != "img-123" {
		t.Errorf("UserImageID = %q, want %q", msg.UserImageID, "img-123")
	}
	if msg.Role != RoleUser {
		t.Errorf("Role = %v, want %v", msg.Role, RoleUser)
	}
}

func TestRoleDisplayName(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleUser, "You"},
		{RoleAssistant, "Assistant"},
		{Role("other"), "other"},
	}

	for _, tc := range tests {
		if got := tc.role.DisplayName(); got != tc.want {
			t.Errorf("DisplayName(%v) = %q, want %q", tc.role, got, tc.want)
		}
	}
}

// =============================================================================
// CONVERSATION TESTS
// =============================================================================

func TestConversationAppendOrder(t *testing.T) {
	conv := NewConversation("gemini-2.0-flash")

	if !conv.IsEmpty() {
		t.Error("new conversation should be empty")
	}
	if conv.ModelName != "gemini-2.0-flash" {
		t.Errorf("ModelName = %q", conv.ModelName)
	}

	conv.AddUserMessage("first")
	conv.AddAssistantMessage("second")
	conv.AddUserMessage("third")

	if conv.MessageCount() != 3 {
		t.Fatalf("MessageCount() = %d, want 3", conv.MessageCount())
	}

	// Append order is display order.
	wantContents := []string{"first", "second", "third"}
	for i, want := range wantContents {
		if conv.Messages[i].Content != want {
			t.Errorf("Messages[%d].Content = %q, want %q", i, conv.Messages[i].Content, want)
		}
	}

	last := conv.GetLastMessage()
	if last == nil || last.Content != "third" {
		t.Errorf("GetLastMessage() = %v, want content %q", last, "third")
	}
}

func TestConversationUpdatedAt(t *testing.T) {
	conv := NewConversation("m")
	before := conv.UpdatedAt

	time.Sleep(time.Millisecond)
	conv.AddUserMessage("hi")

	if !conv.UpdatedAt.After(before) {
		t.Error("AddMessage should advance UpdatedAt")
	}
}

func TestGetLastMessageEmpty(t *testing.T) {
	conv := NewConversation("m")
	if conv.GetLastMessage() != nil {
		t.Error("GetLastMessage() on empty conversation should be nil")
	}
}
