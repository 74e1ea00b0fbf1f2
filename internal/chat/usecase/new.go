package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"conversational-task-assistant/internal/chat"
	"conversational-task-assistant/internal/orchestrator"
	pkgLog "conversational-task-assistant/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	orch     orchestrator.UseCase
	sessions *expirable.LRU[string, chat.Session]
}

// New creates a new chat UseCase instance. Sessions live in an expiring
// LRU: idle sessions fall out after ttl, and the oldest are evicted past
// maxSessions.
func New(l pkgLog.Logger, orch orchestrator.UseCase, maxSessions int, ttl time.Duration) *implUseCase {
	return &implUseCase{
		l:        l,
		orch:     orch,
		sessions: expirable.NewLRU[string, chat.Session](maxSessions, nil, ttl),
	}
}
