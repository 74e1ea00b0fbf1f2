package orchestrator

import (
	"conversational-task-assistant/internal/parser"
)

// TurnOutput is everything one conversational turn produced: the reply to
// show the user plus the classification details callers may want to echo.
type TurnOutput struct {
	Success     bool
	Response    string
	ActionTaken string
	Intent      parser.Intent
	Confidence  float64
	Entities    parser.Entities
	Language    parser.Language
}
