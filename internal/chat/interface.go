package chat

import (
	"context"

	"conversational-task-assistant/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// ProcessMessage runs one conversational turn inside a session,
	// creating the session on first use.
	ProcessMessage(ctx context.Context, sc model.Scope, input ProcessMessageInput) (ProcessMessageOutput, error)

	// StartSession creates a fresh session for the user.
	StartSession(ctx context.Context, sc model.Scope) (Session, error)

	// GetSession returns a live session by id.
	GetSession(ctx context.Context, sc model.Scope, sessionID string) (Session, error)
}
