package orchestrator

import (
	"context"

	"conversational-task-assistant/internal/model"
	"conversational-task-assistant/internal/parser"
	"conversational-task-assistant/internal/task"
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

// Mock task dispatcher recording every call for assertions
type mockTaskUseCase struct {
	result task.ToolResult

	calls        int
	lastIntent   parser.Intent
	lastEntities parser.Entities
}

func (m *mockTaskUseCase) Dispatch(ctx context.Context, sc model.Scope, intent parser.Intent, ent parser.Entities) task.ToolResult {
	m.calls++
	m.lastIntent = intent
	m.lastEntities = ent
	return m.result
}
