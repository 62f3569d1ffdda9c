package zaf

import "fmt"

// Raw shapes as delivered by the Apps Framework. These mirror the backend's
// native JSON; normalization into the canonical model happens in the mapper.

// Ticket is the raw ticket record from Get("ticket").
type Ticket struct {
	ID           int64               `json:"id"`
	Subject      string              `json:"subject"`
	Description  string              `json:"description"`
	Status       string              `json:"status"`
	Priority     string              `json:"priority"`
	Tags         []string            `json:"tags"`
	Via          Via                 `json:"via"`
	Conversation []ConversationEntry `json:"conversation"`
	CreatedAt    string              `json:"createdAt"`
	UpdatedAt    string              `json:"updatedAt"`
}

// Validate rejects ticket payloads that do not carry the minimum shape the
// pipeline relies on.
func (t Ticket) Validate() error {
	if t.ID == 0 {
		return fmt.Errorf("ticket payload has no id")
	}
	return nil
}

// Via records how the ticket originated (mail, web form, ...).
type Via struct {
	Channel string    `json:"channel"`
	Source  ViaSource `json:"source"`
}

type ViaSource struct {
	From ViaAddress `json:"from"`
}

type ViaAddress struct {
	Address string `json:"address"`
}

// User is a Zendesk user record (requester or current agent).
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ConversationEntry is one raw conversation event: author, channel, body and
// a backend-local timestamp string.
type ConversationEntry struct {
	Author    Author      `json:"author"`
	Channel   Channel     `json:"channel"`
	Message   MessageBody `json:"message"`
	Timestamp string      `json:"timestamp"`
}

// Author of a conversation entry. ID is a pointer: system-generated entries
// arrive with a null author id.
type Author struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type Channel struct {
	Name string `json:"name"`
}

type MessageBody struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
}

// TicketField is one entry from Get("ticketFields") metadata.
type TicketField struct {
	Name      string `json:"name"`
	Type      string `json:"type"`
	IsEnabled bool   `json:"isEnabled"`
	Label     string `json:"label"`
}

// TicketFieldsResponse wraps the ticketFields lookup.
type TicketFieldsResponse struct {
	TicketFields []TicketField `json:"ticketFields"`
}

// Metadata is the app installation record. Settings carries the values the
// operator configured at install time.
type Metadata struct {
	AppID          int64    `json:"appId"`
	Name           string   `json:"name"`
	Version        string   `json:"version"`
	InstallationID int64    `json:"installationId"`
	Settings       Settings `json:"settings"`
}

type Settings struct {
	OrganizationID string `json:"organizationId"`
	AgentID        string `json:"agentId"`
}

// Validate rejects metadata without the Copilot wiring the page needs.
func (m Metadata) Validate() error {
	if m.Settings.OrganizationID == "" || m.Settings.AgentID == "" {
		return fmt.Errorf("metadata settings missing organizationId or agentId")
	}
	return nil
}

// AppContext is the host page context from client.context().
type AppContext struct {
	Account Account `json:"account"`
}

type Account struct {
	Subdomain string `json:"subdomain"`
}
