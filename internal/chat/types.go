package chat

import (
	"time"

	"conversational-task-assistant/internal/parser"
)

// Session is one conversation thread. Sessions are process-local and
// expire after the configured idle TTL.
type Session struct {
	ID         string
	UserID     string
	TurnCount  int
	CreatedAt  time.Time
	LastTurnAt time.Time
}

type ProcessMessageInput struct {
	SessionID string
	Message   string
}

type ProcessMessageOutput struct {
	Response    string
	SessionID   string
	Language    parser.Language
	ActionTaken string

	// TaskInfo echoes the extracted entities for task-producing turns so
	// clients can render structured context next to the reply.
	TaskInfo *parser.Entities
}
