package router

import (
	"github.com/gin-gonic/gin"

	"ticketpilot.app/bridge/internal/http/handler"
)

func ReplyRouter(router *gin.RouterGroup, handler *handler.ReplyHandler) {
	router.POST("/reply", handler.Insert)
}
