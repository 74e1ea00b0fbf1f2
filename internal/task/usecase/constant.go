package usecase

// Log prefixes
const (
	LogPrefixDispatch = "internal.task.usecase.Dispatch"
)

// Default priority assigned when a new task carries none (1 = highest, 5 = lowest).
const DefaultPriority = 3

// User-facing messages carried on ToolResult. The formatter may surface
// these verbatim, so wording is part of the contract.
const (
	MsgMissingTitle      = "I couldn't find a task title in your message. Please specify what task you'd like to add."
	MsgMissingTaskID     = "Task ID is required to %s a task"
	MsgMissingRecurrence = "Recurrence pattern is required"

	MsgTaskCreated       = "Task created successfully"
	MsgTasksRetrieved    = "Retrieved %d tasks"
	MsgTaskCompleted     = "Task marked as complete"
	MsgTaskUpdated       = "Task updated successfully"
	MsgTaskDeleted       = "Task deleted successfully"
	MsgRecurrenceApplied = "Recurrence pattern set to %s"
)
