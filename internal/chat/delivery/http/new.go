package http

import (
	"github.com/gin-gonic/gin"

	"conversational-task-assistant/internal/chat"
	pkgLog "conversational-task-assistant/pkg/log"
)

// Handler is the interface for the chat HTTP delivery handler.
type Handler interface {
	ProcessMessage(c *gin.Context)
	StartSession(c *gin.Context)
	GetSession(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc chat.UseCase
}

// New creates a new chat HTTP handler.
func New(l pkgLog.Logger, uc chat.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
