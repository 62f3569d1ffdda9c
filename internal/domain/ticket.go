package domain

// UserInfo identifies a person on either side of the conversation.
// Email is a pointer: the Copilot component distinguishes "no email" (null)
// from an empty string.
type UserInfo struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

// Ticket is the canonical ticket handed to the Copilot component: classified
// messages in ascending time order plus identity and account context.
//
// CustomFields is nil when no enabled text custom field applies, so callers
// can tell "no applicable fields" apart from "fields present but blank".
type Ticket struct {
	ID           string            `json:"id"`
	Messages     []Message         `json:"messages"`
	Subject      string            `json:"subject"`
	Tags         []string          `json:"tags"`
	CustomFields map[string]string `json:"customFields,omitempty"`
	Customer     *UserInfo         `json:"customer"`
	Agent        *UserInfo         `json:"agent"`
	URL          string            `json:"url"`
}
