package mapper

import (
	"fmt"
	"sort"
	"strconv"

	"ticketpilot.app/bridge/internal/domain"
	"ticketpilot.app/bridge/internal/zaf"
)

// TicketParams carries everything the assembler needs. Every field except
// Ticket is optional and has a defined default; BuildTicket is total over
// well-typed input.
type TicketParams struct {
	Ticket           zaf.Ticket
	Requester        *zaf.User
	CustomFields     map[string]string
	Agent            *domain.UserInfo
	AccountSubdomain string
}

// BuildTicket composes classified messages, customer identity, custom fields
// and ticket metadata into one canonical ticket.
func BuildTicket(p TicketParams) domain.Ticket {
	messages := make([]domain.Message, 0, len(p.Ticket.Conversation))
	for _, entry := range p.Ticket.Conversation {
		if msg, ok := MapEntry(entry); ok {
			messages = append(messages, msg)
		}
	}
	// Stable: entries with equal timestamps keep their original relative order.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})

	tags := p.Ticket.Tags
	if tags == nil {
		tags = []string{}
	}

	ticketID := strconv.FormatInt(p.Ticket.ID, 10)

	url := ""
	if p.AccountSubdomain != "" {
		url = fmt.Sprintf("https://%s.zendesk.com/agent/tickets/%s", p.AccountSubdomain, ticketID)
	}

	return domain.Ticket{
		ID:           ticketID,
		Messages:     messages,
		Subject:      p.Ticket.Subject,
		Tags:         tags,
		CustomFields: p.CustomFields,
		Customer:     buildCustomer(p.Ticket, p.Requester),
		Agent:        p.Agent,
		URL:          url,
	}
}

// buildCustomer resolves the customer identity. For mail tickets the email
// comes from the via-source sender address, otherwise from the requester. An
// empty resolved email is represented as absent, not as "".
func buildCustomer(ticket zaf.Ticket, requester *zaf.User) *domain.UserInfo {
	if requester == nil {
		return nil
	}

	email := requester.Email
	if ticket.Via.Channel == "mail" {
		email = ticket.Via.Source.From.Address
	}

	var emailPtr *string
	if email != "" {
		emailPtr = &email
	}

	return &domain.UserInfo{
		ID:    strconv.FormatInt(requester.ID, 10),
		Name:  requester.Name,
		Email: emailPtr,
	}
}

// MapUser normalizes a raw user record into the identity shape the Copilot
// component expects.
func MapUser(u zaf.User) domain.UserInfo {
	var emailPtr *string
	if u.Email != "" {
		email := u.Email
		emailPtr = &email
	}
	return domain.UserInfo{
		ID:    strconv.FormatInt(u.ID, 10),
		Name:  u.Name,
		Email: emailPtr,
	}
}
