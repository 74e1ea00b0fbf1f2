package model

// Recurrence is a task repetition pattern.
type Recurrence string

const (
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// Task represents a task as returned by the external task store.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    int        `json:"priority,omitempty"` // 1 (highest) .. 5 (lowest)
	DueDate     string     `json:"due_date,omitempty"` // raw string, store owns the format
	Completed   bool       `json:"completed"`
	Recurrence  Recurrence `json:"recurrence_pattern,omitempty"`
}
