package repository

import (
	"context"

	"conversational-task-assistant/internal/model"
)

// Store is the interface to the external task store. Every operation is
// scoped to the user in sc; task identity and ownership are enforced by the
// backend, not here.
type Store interface {
	Create(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (model.Task, error)
	List(ctx context.Context, sc model.Scope, opt ListTasksOptions) ([]model.Task, error)
	SetCompleted(ctx context.Context, sc model.Scope, taskID string, completed bool) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, taskID string, opt UpdateTaskOptions) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, taskID string) error
	SetRecurrence(ctx context.Context, sc model.Scope, taskID string, pattern string) (model.Task, error)
}

// CreateTaskOptions defines a task to create. Zero-valued fields are omitted
// from the request (no null writes).
type CreateTaskOptions struct {
	Title       string
	Description string
	Priority    int
	DueDate     string
	Recurrence  string
}

// ListTasksOptions filters a task listing. Zero-valued fields mean no filter.
type ListTasksOptions struct {
	Status   string
	Priority int
	Keyword  string
}

// UpdateTaskOptions carries the changed fields of an update. Zero-valued
// fields are left untouched by the backend.
type UpdateTaskOptions struct {
	Title       string
	Description string
	Priority    int
	DueDate     string
	Recurrence  string
}
