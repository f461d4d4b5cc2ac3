// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/uhh-lt/fundus-chat-tui/internal/assistant"
	"github.com/uhh-lt/fundus-chat-tui/internal/resolver"
	"github.com/uhh-lt/fundus-chat-tui/internal/segment"
	"github.com/uhh-lt/fundus-chat-tui/internal/tags"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ModelsLoadedMsg:
		return m.handleModelsLoaded(msg)

	case SessionsLoadedMsg:
		return m.handleSessionsLoaded(msg)

	case SendResultMsg:
		return m.handleSendResult(msg)

	case EntityResolvedMsg:
		return m.handleEntityResolved(msg)

	case RecordImageResolvedMsg:
		return m.handleRecordImageResolved(msg)

	case UserImageStoredMsg:
		return m.handleUserImageStored(msg)

	case ErrorMsg:
		m.lastError = &msg
		return m, nil

	case ErrorDismissMsg:
		m.lastError = nil
		return m, nil
	}

	// Forward spinner ticks and anything else to the components.
	var cmds []tea.Cmd
	if cmd := m.typing.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// ==========================================================================
// RESIZE
// ==========================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.header.SetWidth(msg.Width)
	m.welcome.SetWidth(msg.Width)
	m.markdown.SetWidth(minWidth(msg.Width-12, 100))
	m.input.Width = msg.Width - 6

	m.viewport.Width = msg.Width
	m.viewport.Height = m.transcriptHeight()
	m.rebuildViewport()
	return m, nil
}

// ==========================================================================
// KEYS
// ==========================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMap.Quit) {
		return m, tea.Quit
	}

	if m.lastError != nil {
		if key.Matches(msg, m.keyMap.Cancel) || key.Matches(msg, m.keyMap.Submit) {
			m.lastError = nil
		}
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, m.keyMap.Cancel) || key.Matches(msg, m.keyMap.Submit) {
			m.showHelp = false
		}
		return m, nil
	}

	if m.showSessions {
		if key.Matches(msg, m.keyMap.Cancel) || key.Matches(msg, m.keyMap.Submit) {
			m.showSessions = false
		}
		return m, nil
	}

	if m.state == StatePickingModel {
		return m.handlePickerKey(msg)
	}

	switch {
	case key.Matches(msg, m.keyMap.Reset):
		m.reset()
		return m, nil

	case key.Matches(msg, m.keyMap.Examples):
		if m.conversation.IsEmpty() && m.state == StateReady {
			if msg.String() == "shift+tab" {
				m.welcome.Prev()
			} else {
				m.welcome.Next()
			}
			return m, nil
		}

	case key.Matches(msg, m.keyMap.Submit):
		return m.handleSubmit()

	case key.Matches(msg, m.keyMap.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keyMap.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keyMap.PageUp):
		m.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keyMap.PageDown):
		m.viewport.HalfViewDown()
		return m, nil
	}

	// Typing clears any example selection.
	m.welcome.ClearSelection()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.pickerIndex > 0 {
			m.pickerIndex--
		}
	case "down", "j":
		if m.pickerIndex < len(m.models)-1 {
			m.pickerIndex++
		}
	case "enter":
		if len(m.models) > 0 {
			m.selectModel(m.models[m.pickerIndex].Name)
		}
	}
	return m, nil
}

// ==========================================================================
// SUBMIT
// ==========================================================================

func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	if m.state != StateReady {
		return m, nil
	}

	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		if prompt := m.welcome.SelectedPrompt(); prompt != "" && m.conversation.IsEmpty() {
			text = prompt
		}
	}
	if text == "" {
		return m, nil
	}

	if strings.HasPrefix(text, "/") {
		return m.handleCommand(text)
	}

	return m.sendUserMessage(text)
}

// handleCommand dispatches slash commands typed into the input.
func (m Model) handleCommand(text string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(text)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/quit", "/q", "/exit":
		return m, tea.Quit

	case "/new", "/reset", "/clear":
		m.input.SetValue("")
		m.reset()
		return m, nil

	case "/models", "/model":
		m.input.SetValue("")
		m.state = StatePickingModel
		m.pickerIndex = 0
		return m, listModelsCmd(m.assistant)

	case "/sessions":
		m.input.SetValue("")
		return m, listSessionsCmd(m.assistant)

	case "/help", "/h", "/?":
		m.input.SetValue("")
		m.showHelp = true
		return m, nil

	case "/image", "/img":
		m.input.SetValue("")
		if len(args) != 1 {
			m.lastError = &ErrorMsg{Title: "Attach image", Err: errUsageImage}
			return m, nil
		}
		return m, storeUserImageCmd(m.lookup, args[0], m.cfg.LookupTimeout())

	default:
		m.lastError = &ErrorMsg{Title: "Unknown command", Err: errUnknownCommand(cmd)}
		return m, nil
	}
}

// sendUserMessage appends the user message and starts the assistant
// round trip. A pending image attachment is consumed by this send.
func (m Model) sendUserMessage(text string) (tea.Model, tea.Cmd) {
	if m.pendingImageID != "" {
		m.conversation.AddUserImageMessage(text, m.pendingImageID)
	} else {
		m.conversation.AddUserMessage(text)
	}

	req := assistant.UserMessageRequest{
		Message:     text,
		UserImageID: m.pendingImageID,
		ModelName:   m.modelName,
	}
	if m.session != nil {
		req.SessionID = m.session.SessionID
	}

	m.pendingImageID = ""
	m.pendingImageName = ""
	m.input.SetValue("")
	m.welcome.ClearSelection()
	m.state = StateWaiting
	m.rebuildViewport()

	return m, tea.Batch(
		m.typing.Start(),
		sendMessageCmd(m.assistant, m.gen, req, m.cfg.SendTimeout()),
	)
}

// ==========================================================================
// ASYNC RESULTS
// ==========================================================================

func (m Model) handleModelsLoaded(msg ModelsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.lastError = &ErrorMsg{Title: "Cannot reach the FUNDus! backend", Err: msg.Err}
		return m, nil
	}
	m.models = msg.Models
	m.pickerIndex = 0

	// A configured default model skips the picker when it is offered.
	if m.cfg.DefaultModel != "" && m.state == StatePickingModel {
		for _, available := range m.models {
			if available.Name == m.cfg.DefaultModel {
				m.selectModel(available.Name)
				return m, nil
			}
		}
	}
	return m, nil
}

func (m Model) handleSessionsLoaded(msg SessionsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.lastError = &ErrorMsg{Title: "Cannot list sessions", Err: msg.Err}
		return m, nil
	}
	m.sessions = msg.Sessions
	m.showSessions = true
	return m, nil
}

func (m Model) handleSendResult(msg SendResultMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}
	m.typing.Stop()
	m.state = StateReady

	if msg.Err != nil {
		m.log.Warn("send message failed", zap.Error(msg.Err))
		m.lastError = &ErrorMsg{Title: "The assistant did not answer", Err: msg.Err}
		m.rebuildViewport()
		return m, nil
	}

	m.session = &msg.Response.Session

	reply := m.conversation.AddAssistantMessage(msg.Response.Message)

	// Segment once on arrival; the prose and the id lists are fixed
	// from here on, only card states change.
	seg := segment.Segment(reply.Content, false)
	m.segments[reply.ID] = seg

	var cards []*resolver.Card
	for _, id := range seg.RecordIDs {
		cards = append(cards, resolver.NewCard(tags.KindRecord, id))
	}
	for _, id := range seg.CollectionIDs {
		cards = append(cards, resolver.NewCard(tags.KindCollection, id))
	}
	m.cards[reply.ID] = cards

	m.rebuildViewport()

	if !seg.HasReferences() {
		return m, nil
	}
	return m, tea.Batch(resolveEntityCmds(m.resolver, m.gen, reply.ID, seg, m.cfg.LookupTimeout())...)
}

func (m Model) handleEntityResolved(msg EntityResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen {
		return m, nil
	}

	var cmds []tea.Cmd
	imageRequested := false
	for _, card := range m.cards[msg.MessageID] {
		wasLoading := card.State == resolver.CardLoading
		card.Apply(msg.Resolution)

		// The image is a dependent second fetch, issued once per
		// resolved record id.
		if wasLoading && card.State == resolver.CardResolved &&
			card.Kind == tags.KindRecord && !imageRequested {
			cmds = append(cmds, resolveRecordImageCmd(
				m.resolver, m.gen, msg.MessageID, card.MuragID, m.cfg.LookupTimeout()))
			imageRequested = true
		}
	}

	m.rebuildViewport()
	return m, tea.Batch(cmds...)
}

func (m Model) handleRecordImageResolved(msg RecordImageResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || msg.Image == nil {
		return m, nil
	}
	for _, card := range m.cards[msg.MessageID] {
		if card.Kind == tags.KindRecord && card.MuragID == msg.MuragID {
			card.Image = msg.Image
		}
	}
	m.rebuildViewport()
	return m, nil
}

// similarImagesPrompt is sent automatically when an image is attached
// without any typed text.
const similarImagesPrompt = "Find FundusRecords with similar images to this one"

func (m Model) handleUserImageStored(msg UserImageStoredMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.lastError = &ErrorMsg{Title: "Image upload failed", Err: msg.Err}
		return m, nil
	}
	m.pendingImageID = msg.Handle
	m.pendingImageName = msg.Filename

	// An image attached with an empty input goes out right away with
	// the canned similarity prompt; typed text makes the image wait
	// for the user's own message.
	if strings.TrimSpace(m.input.Value()) == "" && m.state == StateReady {
		return m.sendUserMessage(similarImagesPrompt)
	}
	return m, nil
}

func minWidth(a, b int) int {
	if a < b {
		return a
	}
	return b
}
