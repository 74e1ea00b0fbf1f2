package task

import (
	"context"

	"conversational-task-assistant/internal/model"
	"conversational-task-assistant/internal/parser"
)

// UseCase is the tool dispatcher: it maps a classified intent and its
// entities onto exactly one task-store operation. Failures never escape as
// errors; every outcome is a structured ToolResult.
type UseCase interface {
	Dispatch(ctx context.Context, sc model.Scope, intent parser.Intent, ent parser.Entities) ToolResult
}
