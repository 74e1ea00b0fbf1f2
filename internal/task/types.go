package task

import "conversational-task-assistant/internal/model"

// ToolResult is the outcome of one dispatched task-store operation.
// Exactly one of the success fields is meaningful per intent; Error carries
// a stable code (see errors.go) when Success is false.
type ToolResult struct {
	Success bool
	Error   string // error code, empty on success
	Message string

	// Operation payload
	Title string       // title of the created/affected task
	Tasks []model.Task // VIEW_TASKS result
	Count int          // VIEW_TASKS result size
}
