package orchestrator

import (
	"conversational-task-assistant/internal/parser"
	"conversational-task-assistant/internal/task"
	pkgLog "conversational-task-assistant/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	parser *parser.Parser
	tasks  task.UseCase
}

// New creates a new orchestrator UseCase instance.
func New(l pkgLog.Logger, p *parser.Parser, tasks task.UseCase) *implUseCase {
	return &implUseCase{
		l:      l,
		parser: p,
		tasks:  tasks,
	}
}
