package http

import (
	"conversational-task-assistant/internal/chat"
	"conversational-task-assistant/internal/parser"
)

type processMessageRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type processMessageResponse struct {
	Response    string           `json:"response"`
	SessionID   string           `json:"session_id"`
	Language    string           `json:"language"`
	ActionTaken string           `json:"action_taken"`
	TaskInfo    *taskInfoPayload `json:"task_info,omitempty"`
}

// taskInfoPayload is the entity echo for task-producing turns.
type taskInfoPayload struct {
	TaskTitle  string `json:"task_title,omitempty"`
	TaskID     string `json:"task_id,omitempty"`
	Priority   int    `json:"priority,omitempty"`
	DueDate    string `json:"due_date,omitempty"`
	Recurrence string `json:"recurrence_pattern,omitempty"`
}

type startSessionResponse struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type sessionInfoResponse struct {
	SessionID  string `json:"session_id"`
	UserID     string `json:"user_id"`
	Status     string `json:"status"`
	TurnCount  int    `json:"turn_count"`
	CreatedAt  string `json:"created_at"`
	LastTurnAt string `json:"last_turn_at"`
}

func newProcessMessageResponse(out chat.ProcessMessageOutput) processMessageResponse {
	resp := processMessageResponse{
		Response:    out.Response,
		SessionID:   out.SessionID,
		Language:    string(out.Language),
		ActionTaken: out.ActionTaken,
	}
	if out.TaskInfo != nil {
		resp.TaskInfo = newTaskInfoPayload(*out.TaskInfo)
	}
	return resp
}

func newTaskInfoPayload(ent parser.Entities) *taskInfoPayload {
	return &taskInfoPayload{
		TaskTitle:  ent.TaskTitle,
		TaskID:     ent.TaskID,
		Priority:   ent.Priority,
		DueDate:    ent.DueDate,
		Recurrence: ent.Recurrence,
	}
}
