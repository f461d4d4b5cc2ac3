// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"sort"
	"strings"

	"github.com/uhh-lt/fundus-chat-tui/internal/resolver"
	"github.com/uhh-lt/fundus-chat-tui/internal/tags"
	"github.com/uhh-lt/fundus-chat-tui/internal/ui/styles"
)

// =============================================================================
// ENTITY CARD COMPONENT
// =============================================================================

// EntityCard renders one resolved entity reference beneath an assistant
// message. The card mirrors the resolver state machine: a loading
// placeholder, the resolved record or collection, or a not-found
// placeholder carrying the requested id.
type EntityCard struct {
	Card  *resolver.Card
	Width int
	theme *styles.Theme
}

// NewEntityCard creates a card view for one reference.
func NewEntityCard(card *resolver.Card, theme *styles.Theme) *EntityCard {
	return &EntityCard{
		Card:  card,
		Width: 80,
		theme: theme,
	}
}

// SetWidth sets the card width.
func (c *EntityCard) SetWidth(width int) {
	c.Width = width
}

// View renders the card for its current state.
func (c *EntityCard) View() string {
	switch c.Card.State {
	case resolver.CardLoading:
		return c.renderLoading()
	case resolver.CardNotFound:
		return c.renderNotFound()
	}

	switch c.Card.Kind {
	case tags.KindRecord:
		return c.renderRecord()
	case tags.KindCollection:
		return c.renderCollection()
	}
	return ""
}

func (c *EntityCard) contentWidth() int {
	w := c.Width - 10
	if w < 24 {
		w = 24
	}
	return w
}

func (c *EntityCard) renderLoading() string {
	label := "loading record ..."
	if c.Card.Kind == tags.KindCollection {
		label = "loading collection ..."
	}
	return c.theme.CardNotFound.
		BorderForeground(styles.Amber).
		Render(c.theme.CardLoading.Render(label))
}

func (c *EntityCard) renderNotFound() string {
	label := "record " + c.Card.MuragID + " could not be found"
	if c.Card.Kind == tags.KindCollection {
		label = "collection " + c.Card.MuragID + " could not be found"
	}
	return c.theme.CardNotFound.Render(label)
}

// ==========================================================================
// RECORD CARD
// ==========================================================================

func (c *EntityCard) renderRecord() string {
	record := c.Card.Record
	if record == nil {
		return c.renderNotFound()
	}
	width := c.contentWidth()

	var lines []string
	title := record.Title
	if title == "" {
		title = record.CatalogNo
	}
	lines = append(lines, c.theme.CardTitle.Render(truncate(title, width)))

	lines = append(lines, c.field("Collection", record.CollectionName, width)...)
	lines = append(lines, c.field("Catalog no", record.CatalogNo, width)...)

	// Details in stable order; the API hands them over as a map.
	keys := make([]string, 0, len(record.Details))
	for k := range record.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		lines = append(lines, c.field(k, record.Details[k], width)...)
	}

	if c.Card.Image != nil && c.Card.Image.ImageName != "" {
		lines = append(lines, c.theme.CardImageCamera.Render("[photo] "+truncate(c.Card.Image.ImageName, width-8)))
	}

	lines = append(lines, c.theme.CardLink.Render(record.WebURL()))

	return c.theme.RecordCard.Render(strings.Join(lines, "\n"))
}

// ==========================================================================
// COLLECTION CARD
// ==========================================================================

func (c *EntityCard) renderCollection() string {
	collection := c.Card.Collection
	if collection == nil {
		return c.renderNotFound()
	}
	width := c.contentWidth()

	var lines []string
	title := collection.Title
	if title == "" {
		title = collection.TitleDE
	}
	lines = append(lines, c.theme.CardTitle.Render(truncate(title, width)))

	if collection.TitleDE != "" && collection.TitleDE != title {
		lines = append(lines, c.theme.CardFieldValue.Render(truncate(collection.TitleDE, width)))
	}

	description := collection.Description
	if description == "" {
		description = collection.DescriptionDE
	}
	if description != "" {
		lines = append(lines, "", wordWrap(description, width))
	}

	for _, contact := range collection.Contacts {
		var parts []string
		if contact.ContactName != "" {
			parts = append(parts, contact.ContactName)
		}
		if contact.Institution != "" {
			parts = append(parts, contact.Institution)
		}
		if contact.Email != "" {
			parts = append(parts, contact.Email)
		}
		if len(parts) > 0 {
			lines = append(lines,
				c.theme.CardFieldLabel.Render("Contact ")+
					c.theme.CardFieldValue.Render(truncate(strings.Join(parts, ", "), width-8)))
		}
	}

	return c.theme.CollectionCard.Render(strings.Join(lines, "\n"))
}

func (c *EntityCard) field(label, value string, width int) []string {
	if value == "" {
		return nil
	}
	line := c.theme.CardFieldLabel.Render(padLabel(label)) +
		c.theme.CardFieldValue.Render(truncate(value, width-13))
	return []string{line}
}

// padLabel pads a field label to a fixed column so values line up.
func padLabel(label string) string {
	const column = 12
	if len(label) >= column {
		return label + " "
	}
	return label + strings.Repeat(" ", column-len(label)) + " "
}
