package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketpilot.app/bridge/core/config"
	"ticketpilot.app/bridge/internal/http/handler"
	"ticketpilot.app/bridge/internal/service"
)

type RouterConfig struct {
	Embed       config.EmbedConfig
	EmbedClient *http.Client
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	embedHandler := handler.NewEmbedHandler(cfg.Embed, cfg.EmbedClient)
	EmbedRouter(router, embedHandler)

	v1 := router.Group("/api/v1")
	{
		ticketHandler := handler.NewTicketHandler(services.Session)
		TicketRouter(v1, ticketHandler)

		replyHandler := handler.NewReplyHandler(services.Replies)
		ReplyRouter(v1, replyHandler)
	}
}
