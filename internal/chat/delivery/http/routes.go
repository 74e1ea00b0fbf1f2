package http

import (
	"github.com/gin-gonic/gin"

	"conversational-task-assistant/internal/middleware"
)

// RegisterRoutes mounts the chat endpoints on the given group behind the
// rate limiter and identity middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit(), mw.Auth())

	rg.POST("/process", h.ProcessMessage)
	rg.POST("/start_session", h.StartSession)
	rg.GET("/session/:session_id", h.GetSession)
}
