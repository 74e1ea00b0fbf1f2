package orchestrator

import (
	"context"

	"conversational-task-assistant/internal/model"
)

// UseCase runs one full conversational turn: parse, dispatch, format.
type UseCase interface {
	// ProcessTurn takes raw user input and produces the localized reply
	// for it. It never returns an error; every failure mode becomes a
	// structured reply in the output.
	ProcessTurn(ctx context.Context, sc model.Scope, input string) TurnOutput
}
