package dto

// InsertReplyRequest is the drafted reply pushed into the ticket editor.
// Text is Markdown.
type InsertReplyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ConfigResponse exposes the installation settings the Copilot page needs.
type ConfigResponse struct {
	OrganizationID string `json:"organizationId"`
	AgentID        string `json:"agentId"`
}
