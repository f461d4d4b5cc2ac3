// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
//
// This file defines the command creators: every backend round trip runs
// as a tea.Cmd and reports back with one of the message types from
// messages.go.
package chat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uhh-lt/fundus-chat-tui/internal/assistant"
	"github.com/uhh-lt/fundus-chat-tui/internal/lookup"
	"github.com/uhh-lt/fundus-chat-tui/internal/resolver"
	"github.com/uhh-lt/fundus-chat-tui/internal/segment"
	"github.com/uhh-lt/fundus-chat-tui/internal/tags"
)

// errUsageImage is shown when /image is called without a path.
var errUsageImage = errors.New("usage: /image <path>")

func errUnknownCommand(cmd string) error {
	return fmt.Errorf("unknown command %q, try /help", cmd)
}

// =============================================================================
// COMMAND CREATORS
// =============================================================================

// listModelsCmd fetches the available chat models.
func listModelsCmd(client *assistant.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		models, err := client.ListModels(ctx)
		return ModelsLoadedMsg{Models: models, Err: err}
	}
}

// listSessionsCmd fetches the sessions known to the backend.
func listSessionsCmd(client *assistant.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		sessions, err := client.ListSessions(ctx)
		return SessionsLoadedMsg{Sessions: sessions, Err: err}
	}
}

// sendMessageCmd sends the user's message to the assistant.
func sendMessageCmd(client *assistant.Client, gen int, req assistant.UserMessageRequest, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		resp, err := client.SendMessage(ctx, req)
		return SendResultMsg{Gen: gen, Response: resp, Err: err}
	}
}

// resolveEntityCmds creates one resolution command per entity reference
// of an assistant message. Each command settles independently, so a
// slow or missing entity never blocks its siblings.
func resolveEntityCmds(r *resolver.Resolver, gen int, messageID string, seg segment.Segmented, timeout time.Duration) []tea.Cmd {
	var cmds []tea.Cmd
	for _, id := range seg.RecordIDs {
		cmds = append(cmds, resolveEntityCmd(r, gen, messageID, tags.KindRecord, id, timeout))
	}
	for _, id := range seg.CollectionIDs {
		cmds = append(cmds, resolveEntityCmd(r, gen, messageID, tags.KindCollection, id, timeout))
	}
	return cmds
}

func resolveEntityCmd(r *resolver.Resolver, gen int, messageID string, kind tags.Kind, muragID string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return EntityResolvedMsg{
			Gen:        gen,
			MessageID:  messageID,
			Resolution: r.Resolve(ctx, kind, muragID),
		}
	}
}

// resolveRecordImageCmd issues the dependent image fetch for a resolved
// record card.
func resolveRecordImageCmd(r *resolver.Resolver, gen int, messageID, muragID string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return RecordImageResolvedMsg{
			Gen:       gen,
			MessageID: messageID,
			MuragID:   muragID,
			Image:     r.ResolveRecordImage(ctx, muragID),
		}
	}
}

// storeUserImageCmd reads an image file and uploads it to the image
// store.
func storeUserImageCmd(client *lookup.Client, path string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		filename := filepath.Base(path)

		data, err := os.ReadFile(path)
		if err != nil {
			return UserImageStoredMsg{Filename: filename, Err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		handle, err := client.StoreUserImage(ctx, filename, data)
		return UserImageStoredMsg{Filename: filename, Handle: handle, Err: err}
	}
}
