package middleware

import (
	"github.com/gin-gonic/gin"

	"conversational-task-assistant/internal/model"
	"conversational-task-assistant/pkg/response"
)

// Identity headers set by the API gateway. The gateway has already
// authenticated the caller, so the values are trusted as-is.
const (
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"
)

const scopeContextKey = "middleware.scope"

// Auth resolves the caller's identity from gateway headers into a
// model.Scope. Requests without a user id are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(HeaderUserID)
		if userID == "" {
			m.l.Warnf(c.Request.Context(), "middleware.Auth: missing %s header", HeaderUserID)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeContextKey, model.Scope{
			UserID:   userID,
			Username: c.GetHeader(HeaderUsername),
		})
		c.Next()
	}
}

// ScopeFromGin returns the scope Auth placed on the request. The zero
// scope means Auth did not run.
func ScopeFromGin(c *gin.Context) model.Scope {
	v, ok := c.Get(scopeContextKey)
	if !ok {
		return model.Scope{}
	}
	sc, ok := v.(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}
