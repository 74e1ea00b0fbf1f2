package orchestrator

import (
	"context"
	"strings"

	"conversational-task-assistant/internal/model"
	"conversational-task-assistant/internal/parser"
	"conversational-task-assistant/internal/reply"
)

// ProcessTurn runs the full pipeline for one message. Stages are strictly
// sequential: parse, gate on confidence, dispatch, format. A turn that is
// empty, unauthenticated, or below the confidence gate never reaches the
// task store.
func (uc *implUseCase) ProcessTurn(ctx context.Context, sc model.Scope, input string) TurnOutput {
	if strings.TrimSpace(input) == "" {
		return TurnOutput{
			Success:     false,
			Response:    MsgEmptyInput,
			ActionTaken: ActionNone,
			Intent:      parser.IntentUnknown,
			Language:    parser.LanguageEnglish,
		}
	}

	if sc.UserID == "" {
		uc.l.Warnf(ctx, "%s: turn without user id", LogPrefixProcessTurn)
		return TurnOutput{
			Success:     false,
			Response:    MsgAuthRequired,
			ActionTaken: ActionAuthRequired,
			Intent:      parser.IntentUnknown,
			Language:    parser.LanguageEnglish,
		}
	}

	cmd := uc.parser.Parse(ctx, input)

	if cmd.Intent == parser.IntentUnknown || cmd.Confidence < minDispatchConfidence {
		return uc.handleUnknown(ctx, input, cmd)
	}

	res := uc.tasks.Dispatch(ctx, sc, cmd.Intent, cmd.Entities)

	return TurnOutput{
		Success:     res.Success,
		Response:    reply.Format(res, cmd.Intent, cmd.Entities, input, cmd.Language),
		ActionTaken: string(cmd.Intent),
		Intent:      cmd.Intent,
		Confidence:  cmd.Confidence,
		Entities:    cmd.Entities,
		Language:    cmd.Language,
	}
}

// handleUnknown answers low-confidence turns conversationally. Greetings
// and help requests get their dedicated replies; everything else gets the
// catch-all, all in the detected language.
func (uc *implUseCase) handleUnknown(ctx context.Context, input string, cmd parser.ParsedCommand) TurnOutput {
	lowered := strings.ToLower(input)

	response := reply.Fallback(cmd.Language)
	if containsAny(lowered, greetingKeywords) {
		response = reply.Greeting(cmd.Language)
	} else if containsAny(lowered, helpKeywords) {
		response = reply.Help(cmd.Language)
	}

	uc.l.Infof(ctx, "%s: handled without dispatch confidence=%.2f", LogPrefixProcessTurn, cmd.Confidence)

	return TurnOutput{
		Success:     true,
		Response:    response,
		ActionTaken: ActionUnknownHandled,
		Intent:      cmd.Intent,
		Confidence:  cmd.Confidence,
		Entities:    cmd.Entities,
		Language:    cmd.Language,
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
