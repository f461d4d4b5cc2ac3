// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat view component for the TUI.
package chat

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/uhh-lt/fundus-chat-tui/internal/assistant"
	"github.com/uhh-lt/fundus-chat-tui/internal/config"
	"github.com/uhh-lt/fundus-chat-tui/internal/lookup"
	"github.com/uhh-lt/fundus-chat-tui/internal/model"
	"github.com/uhh-lt/fundus-chat-tui/internal/resolver"
	"github.com/uhh-lt/fundus-chat-tui/internal/segment"
	"github.com/uhh-lt/fundus-chat-tui/internal/ui/components"
	"github.com/uhh-lt/fundus-chat-tui/internal/ui/styles"
)

// =============================================================================
// CHAT STATE
// =============================================================================

// State represents the current state of the chat view.
type State int

const (
	StatePickingModel State = iota // Choosing a chat model
	StateReady                     // Ready for input
	StateWaiting                   // Waiting for the assistant's reply
)

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat view.
type Model struct {
	// State
	state State

	// Generation counter; bumped on reset so stale async results from
	// the previous conversation are dropped.
	gen int

	// Styling
	theme *styles.Theme

	// Configuration and logging
	cfg *config.Config
	log *zap.Logger

	// Backend clients
	assistant *assistant.Client
	lookup    *lookup.Client
	resolver  *resolver.Resolver

	// Dimensions
	width  int
	height int

	// Conversation
	conversation *model.Conversation
	session      *assistant.Session

	// Backend session list for the /sessions overlay
	sessions     []assistant.Session
	showSessions bool

	// Model picking
	models      []assistant.Model
	pickerIndex int
	modelName   string

	// Segmentation and per-message entity cards, keyed by message ID.
	// Card order follows the segmenter's id lists: records first, then
	// collections, each in order of first appearance.
	segments map[string]segment.Segmented
	cards    map[string][]*resolver.Card

	// Pending image attachment for the next send
	pendingImageID   string
	pendingImageName string

	// UI Components
	viewport viewport.Model
	input    textinput.Model
	typing   components.TypingIndicator
	welcome  *components.Welcome
	header   *components.Header
	markdown *components.MarkdownRenderer

	// Key bindings
	keyMap KeyMap

	// Error state
	lastError *ErrorMsg

	// Help overlay
	showHelp bool
}

// New creates the chat model. The assistant and lookup clients share
// the configured backend.
func New(cfg *config.Config, theme *styles.Theme, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}

	assistantClient := assistant.NewClientWithConfig(&assistant.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.SendTimeout(),
	})
	lookupClient := lookup.NewClientWithConfig(&lookup.ClientConfig{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.LookupTimeout(),
	})

	input := textinput.New()
	input.Placeholder = "Ask about the FUNDus! collections..."
	input.Prompt = "> "
	input.PromptStyle = theme.InputPrompt
	input.PlaceholderStyle = theme.InputPlaceholder
	input.CharLimit = 4000
	input.Focus()

	vp := viewport.New(80, 20)

	return Model{
		state:        StatePickingModel,
		theme:        theme,
		cfg:          cfg,
		log:          log,
		assistant:    assistantClient,
		lookup:       lookupClient,
		resolver:     resolver.New(lookupClient, log),
		width:        80,
		height:       24,
		conversation: model.NewConversation(""),
		segments:     make(map[string]segment.Segmented),
		cards:        make(map[string][]*resolver.Card),
		viewport:     vp,
		input:        input,
		typing:       components.NewTypingIndicator(theme),
		welcome:      components.NewWelcome(theme),
		header:       components.NewHeader(theme),
		markdown:     components.NewMarkdownRenderer(76),
		keyMap:       DefaultKeyMap(),
	}
}

// Init starts the model list fetch.
func (m Model) Init() tea.Cmd {
	return listModelsCmd(m.assistant)
}

// ModelName returns the active chat model, empty while picking.
func (m Model) ModelName() string {
	return m.modelName
}

// State returns the current chat state.
func (m Model) State() State {
	return m.state
}

// reset drops the conversation and session and bumps the generation so
// in-flight async results are ignored.
func (m *Model) reset() {
	m.gen++
	m.conversation = model.NewConversation(m.modelName)
	m.session = nil
	m.segments = make(map[string]segment.Segmented)
	m.cards = make(map[string][]*resolver.Card)
	m.pendingImageID = ""
	m.pendingImageName = ""
	m.typing.Stop()
	m.lastError = nil
	if m.state != StatePickingModel {
		m.state = StateReady
	}
	m.welcome.ClearSelection()
	m.rebuildViewport()
}

// selectModel switches to the chat screen with the chosen model. It
// tears the current conversation down the same way reset does, so a
// mid-conversation model switch drops the old session and any results
// still in flight instead of leaking them into the new conversation.
func (m *Model) selectModel(name string) {
	m.modelName = name
	m.header.SetModel(name)
	m.reset()
	m.state = StateReady
}
