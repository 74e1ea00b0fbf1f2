package task

// Stable error codes surfaced through ToolResult.Error. These are part of
// the formatter contract: every failure maps to a localized reply.
const (
	ErrCodeMissingTitle   = "MISSING_TITLE"
	ErrCodeMissingTaskID  = "MISSING_TASK_ID"
	ErrCodeMissingPattern = "MISSING_PATTERN"
	ErrCodeUnknownIntent  = "UNKNOWN_INTENT"
	ErrCodeExecution      = "EXECUTION_ERROR"
)
