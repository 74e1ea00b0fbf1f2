package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"conversational-task-assistant/internal/chat"
	"conversational-task-assistant/internal/middleware"
	pkgResponse "conversational-task-assistant/pkg/response"
)

// ProcessMessage handles one conversational turn
// @Summary Process a chat message
// @Description Classify the message, execute the matching task operation, and return a localized reply
// @Tags Chat
// @Accept json
// @Produce json
// @Param body body processMessageRequest true "Message and optional session id"
// @Success 200 {object} response.Resp{data=processMessageResponse}
// @Failure 400 {object} response.Resp "EMPTY_MESSAGE"
// @Router /chat/process [post]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromGin(c)

	var req processMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "chat handler: failed to parse request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	out, err := h.uc.ProcessMessage(ctx, sc, chat.ProcessMessageInput{
		SessionID: req.SessionID,
		Message:   req.Message,
	})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			pkgResponse.BadRequest(c, "EMPTY_MESSAGE", "Message content is required")
			return
		}
		h.l.Errorf(ctx, "chat handler: process message: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, newProcessMessageResponse(out))
}

// StartSession creates a new conversation session
// @Summary Start a chat session
// @Description Create a fresh session id for a new conversation thread
// @Tags Chat
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp{data=startSessionResponse}
// @Router /chat/start_session [post]
func (h *handler) StartSession(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromGin(c)

	session, err := h.uc.StartSession(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "chat handler: start session: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, startSessionResponse{
		SessionID: session.ID,
		Message:   "New session started",
	})
}

// GetSession returns info about a live session
// @Summary Get session info
// @Description Retrieve turn count and timestamps for a session id
// @Tags Chat
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} response.Resp{data=sessionInfoResponse}
// @Failure 404 {object} response.Resp "Session not found"
// @Router /chat/session/{session_id} [get]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.ScopeFromGin(c)

	session, err := h.uc.GetSession(ctx, sc, c.Param("session_id"))
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			pkgResponse.NotFound(c, "Session not found")
			return
		}
		h.l.Errorf(ctx, "chat handler: get session: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, sessionInfoResponse{
		SessionID:  session.ID,
		UserID:     session.UserID,
		Status:     "active",
		TurnCount:  session.TurnCount,
		CreatedAt:  session.CreatedAt.Format(time.RFC3339),
		LastTurnAt: session.LastTurnAt.Format(time.RFC3339),
	})
}
