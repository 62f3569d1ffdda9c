package domain

import "time"

// MessageType classifies who a conversation message came from, in the
// vocabulary the Copilot component expects.
type MessageType string

const (
	MessageTypeUser       MessageType = "USER"
	MessageTypeHumanAgent MessageType = "HUMAN_AGENT"
	MessageTypeAIAgent    MessageType = "AI_AGENT"
)

// Message is one normalized conversation message. JSON field names follow the
// Copilot component contract, not Go conventions.
type Message struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Type      MessageType `json:"type"`
	SenderID  string      `json:"senderId"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
