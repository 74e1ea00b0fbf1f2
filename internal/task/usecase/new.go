package usecase

import (
	"conversational-task-assistant/internal/task/repository"
	pkgLog "conversational-task-assistant/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	store repository.Store
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, store repository.Store) *implUseCase {
	return &implUseCase{
		l:     l,
		store: store,
	}
}
