package router

import (
	"github.com/gin-gonic/gin"

	"ticketpilot.app/bridge/internal/http/handler"
)

func TicketRouter(router *gin.RouterGroup, handler *handler.TicketHandler) {
	router.GET("/ticket", handler.Get)
	router.GET("/config", handler.Config)
}
