package router

import (
	"github.com/gin-gonic/gin"

	"ticketpilot.app/bridge/internal/http/handler"
)

func EmbedRouter(router *gin.Engine, handler *handler.EmbedHandler) {
	router.POST("/copilot", handler.Post)
	router.GET("/copilot", handler.Get)
}
