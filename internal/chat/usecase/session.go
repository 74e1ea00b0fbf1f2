package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"conversational-task-assistant/internal/chat"
	"conversational-task-assistant/internal/model"
	"conversational-task-assistant/internal/parser"
)

func (uc *implUseCase) ProcessMessage(ctx context.Context, sc model.Scope, input chat.ProcessMessageInput) (chat.ProcessMessageOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ProcessMessageOutput{}, chat.ErrEmptyMessage
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	uc.touchSession(sessionID, sc)

	turn := uc.orch.ProcessTurn(ctx, sc, message)

	uc.l.Infof(ctx, "%s: session=%s action=%s", LogPrefixProcessMessage, sessionID, turn.ActionTaken)

	out := chat.ProcessMessageOutput{
		Response:    turn.Response,
		SessionID:   sessionID,
		Language:    turn.Language,
		ActionTaken: turn.ActionTaken,
	}
	if echoesTaskInfo(turn.ActionTaken) {
		ent := turn.Entities
		out.TaskInfo = &ent
	}

	return out, nil
}

func (uc *implUseCase) StartSession(ctx context.Context, sc model.Scope) (chat.Session, error) {
	now := time.Now()
	session := chat.Session{
		ID:         uuid.NewString(),
		UserID:     sc.UserID,
		CreatedAt:  now,
		LastTurnAt: now,
	}
	uc.sessions.Add(session.ID, session)

	uc.l.Infof(ctx, "%s: session=%s user=%s", LogPrefixStartSession, session.ID, sc.UserID)
	return session, nil
}

func (uc *implUseCase) GetSession(ctx context.Context, sc model.Scope, sessionID string) (chat.Session, error) {
	session, ok := uc.sessions.Get(sessionID)
	if !ok {
		return chat.Session{}, chat.ErrSessionNotFound
	}
	if session.UserID != sc.UserID {
		// Not-found rather than forbidden, so session ids stay unguessable.
		return chat.Session{}, chat.ErrSessionNotFound
	}
	return session, nil
}

// touchSession records a turn against the session, creating it on first
// use so clients may send messages without calling start_session first.
func (uc *implUseCase) touchSession(sessionID string, sc model.Scope) {
	now := time.Now()

	session, ok := uc.sessions.Get(sessionID)
	if !ok {
		session = chat.Session{
			ID:        sessionID,
			UserID:    sc.UserID,
			CreatedAt: now,
		}
	}
	session.TurnCount++
	session.LastTurnAt = now
	uc.sessions.Add(sessionID, session)
}

// echoesTaskInfo reports whether the action's entities are echoed back in
// the HTTP payload.
func echoesTaskInfo(action string) bool {
	switch action {
	case string(parser.IntentAddTask), string(parser.IntentViewTasks), string(parser.IntentCompleteTask):
		return true
	default:
		return false
	}
}
