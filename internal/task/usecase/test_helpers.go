package usecase

import (
	"context"

	"conversational-task-assistant/internal/model"
	"conversational-task-assistant/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock store recording every call for assertions. Configure err to force the
// execution-error path; tasks feeds List results.
type mockStore struct {
	err   error
	tasks []model.Task

	calls []string

	lastCreate    repository.CreateTaskOptions
	lastList      repository.ListTasksOptions
	lastUpdate    repository.UpdateTaskOptions
	lastTaskID    string
	lastCompleted bool
	lastPattern   string
}

func (m *mockStore) Create(ctx context.Context, sc model.Scope, opt repository.CreateTaskOptions) (model.Task, error) {
	m.calls = append(m.calls, "Create")
	m.lastCreate = opt
	if m.err != nil {
		return model.Task{}, m.err
	}
	return model.Task{ID: "1", Title: opt.Title, Priority: opt.Priority}, nil
}

func (m *mockStore) List(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]model.Task, error) {
	m.calls = append(m.calls, "List")
	m.lastList = opt
	if m.err != nil {
		return nil, m.err
	}
	return m.tasks, nil
}

func (m *mockStore) SetCompleted(ctx context.Context, sc model.Scope, taskID string, completed bool) (model.Task, error) {
	m.calls = append(m.calls, "SetCompleted")
	m.lastTaskID = taskID
	m.lastCompleted = completed
	if m.err != nil {
		return model.Task{}, m.err
	}
	return model.Task{ID: taskID, Title: "call mom", Completed: completed}, nil
}

func (m *mockStore) Update(ctx context.Context, sc model.Scope, taskID string, opt repository.UpdateTaskOptions) (model.Task, error) {
	m.calls = append(m.calls, "Update")
	m.lastTaskID = taskID
	m.lastUpdate = opt
	if m.err != nil {
		return model.Task{}, m.err
	}
	title := opt.Title
	if title == "" {
		title = "call mom"
	}
	return model.Task{ID: taskID, Title: title}, nil
}

func (m *mockStore) Delete(ctx context.Context, sc model.Scope, taskID string) error {
	m.calls = append(m.calls, "Delete")
	m.lastTaskID = taskID
	return m.err
}

func (m *mockStore) SetRecurrence(ctx context.Context, sc model.Scope, taskID string, pattern string) (model.Task, error) {
	m.calls = append(m.calls, "SetRecurrence")
	m.lastTaskID = taskID
	m.lastPattern = pattern
	if m.err != nil {
		return model.Task{}, m.err
	}
	return model.Task{ID: taskID, Title: "standup", Recurrence: model.Recurrence(pattern)}, nil
}
