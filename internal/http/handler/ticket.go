package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketpilot.app/bridge/internal/http/dto"
	"ticketpilot.app/bridge/internal/service"
)

type TicketHandler struct {
	session *service.Session
}

func NewTicketHandler(session *service.Session) *TicketHandler {
	return &TicketHandler{session: session}
}

// Get returns the latest canonical ticket. 204 means the session has not
// published anything yet (empty conversation or no refresh so far); clients
// poll again.
func (h *TicketHandler) Get(c *gin.Context) {
	ticket := h.session.Ticket()
	if ticket == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// Config returns the installation settings once metadata has loaded. Before
// that the page gets a 503 and retries.
func (h *TicketHandler) Config(c *gin.Context) {
	settings := h.session.Settings()
	if settings == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "waiting for installation metadata"})
		return
	}
	c.JSON(http.StatusOK, dto.ConfigResponse{
		OrganizationID: settings.OrganizationID,
		AgentID:        settings.AgentID,
	})
}
