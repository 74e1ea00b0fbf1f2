package orchestrator

// Log prefixes
const (
	LogPrefixProcessTurn = "internal.orchestrator.ProcessTurn"
)

// minDispatchConfidence gates tool dispatch. Classifications below it are
// handled conversationally instead of touching the store.
const minDispatchConfidence = 0.5

// ActionTaken values for turns that never reach the dispatcher.
const (
	ActionNone           = "none"
	ActionAuthRequired   = "auth_required"
	ActionUnknownHandled = "unknown_intent_handled"
)

const (
	MsgEmptyInput   = "I didn't receive any input. Could you please say something?"
	MsgAuthRequired = "User authentication required. Please log in."
)

var greetingKeywords = []string{"hello", "hi", "hey", "greetings", "morning", "afternoon", "evening"}

var helpKeywords = []string{"help", "what can you do", "how do i", "instructions", "guide"}
