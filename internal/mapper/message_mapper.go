package mapper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ticketpilot.app/bridge/internal/domain"
	"ticketpilot.app/bridge/internal/markdown"
	"ticketpilot.app/bridge/internal/zaf"
)

// MapEntry normalizes one raw conversation entry into a canonical message.
// Entries without message content are dropped entirely (ok=false), never
// emitted as empty messages.
func MapEntry(entry zaf.ConversationEntry) (domain.Message, bool) {
	if entry.Message.Content == "" {
		return domain.Message{}, false
	}

	text := entry.Message.Content
	if entry.Channel.Name == "email" || entry.Message.ContentType == "text/html" {
		if converted, err := markdown.ToMarkdown(text); err == nil {
			text = converted
		}
		// On conversion failure the raw body stands in; a degraded
		// message beats a dropped one.
	}

	authorID := int64(-1)
	senderID := "unknown"
	if entry.Author.ID != nil {
		authorID = *entry.Author.ID
		senderID = strconv.FormatInt(*entry.Author.ID, 10)
	}

	createdAt := parseTimestamp(entry.Timestamp)

	return domain.Message{
		ID:        fmt.Sprintf("%d-%s", authorID, entry.Timestamp),
		Text:      text,
		Type:      classifyRole(entry.Author.Role),
		SenderID:  senderID,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, true
}

// classifyRole maps the backend author role to a canonical message type.
// Unknown and missing roles land on the agent side: system entries read as
// part of the agent's half of the conversation.
func classifyRole(role string) domain.MessageType {
	switch strings.ToLower(role) {
	case "admin", "agent":
		return domain.MessageTypeHumanAgent
	case "end-user":
		return domain.MessageTypeUser
	default:
		return domain.MessageTypeHumanAgent
	}
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Unparseable timestamps sort to the front rather than dropping
		// the message; the raw string still appears in the message ID.
		return time.Time{}
	}
	return t
}
