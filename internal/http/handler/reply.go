package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketpilot.app/bridge/internal/http/dto"
	"ticketpilot.app/bridge/internal/service"
)

type ReplyHandler struct {
	service service.ReplyService
}

func NewReplyHandler(service service.ReplyService) *ReplyHandler {
	return &ReplyHandler{service: service}
}

func (h *ReplyHandler) Insert(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.InsertReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid reply request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.Insert(ctx, req.Text); err != nil {
		slog.ErrorContext(ctx, "failed to insert reply", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to insert reply"})
		return
	}

	c.Status(http.StatusNoContent)
}
