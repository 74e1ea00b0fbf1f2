package rest

// taskPayload is the wire shape of a task in the store API.
type taskPayload struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Completed   bool   `json:"completed"`
	Recurrence  string `json:"recurrence_pattern,omitempty"`
}

// createTaskRequest is the body of POST /{user_id}/tasks. Zero-valued
// optional fields are omitted so the backend never sees null writes.
type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Recurrence  string `json:"recurrence_pattern,omitempty"`
}

// updateTaskRequest is the body of PUT /{user_id}/tasks/{task_id}.
type updateTaskRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Priority    int    `json:"priority,omitempty"`
	DueDate     string `json:"due_date,omitempty"`
	Recurrence  string `json:"recurrence_pattern,omitempty"`
}

// completeTaskRequest is the body of PATCH /{user_id}/tasks/{task_id}/complete.
type completeTaskRequest struct {
	Completed bool `json:"completed"`
}

// recurrenceRequest is the body of PUT /{user_id}/tasks/{task_id}/recurrence.
type recurrenceRequest struct {
	Pattern string `json:"recurrence_pattern"`
}
