package parser

// Intent represents the classified user goal.
type Intent string

const (
	IntentAddTask      Intent = "ADD_TASK"
	IntentViewTasks    Intent = "VIEW_TASKS"
	IntentCompleteTask Intent = "COMPLETE_TASK"
	IntentUpdateTask   Intent = "UPDATE_TASK"
	IntentDeleteTask   Intent = "DELETE_TASK"
	IntentSetRecurring Intent = "SET_RECURRING"
	IntentUnknown      Intent = "UNKNOWN"
)

// Language is the detected input language.
type Language string

const (
	LanguageEnglish   Language = "en"
	LanguageUrdu      Language = "ur"     // Arabic/Urdu script
	LanguageRomanUrdu Language = "rom_ur" // Urdu transliterated into Latin script
)

// UpdateField hints which task field an UPDATE_TASK turn targets.
// Best-effort only; the dispatcher does not rely on it.
type UpdateField string

const (
	UpdateFieldTitle    UpdateField = "title"
	UpdateFieldPriority UpdateField = "priority"
	UpdateFieldDueDate  UpdateField = "due_date"
)

// Entities holds the typed values extracted from one user turn.
// Zero values mean "absent": the dispatcher's required-entity checks
// distinguish absent from set, so extraction never stores empty strings
// or a zero priority.
type Entities struct {
	TaskTitle  string
	TaskID     string
	Priority   int    // 1 (highest) .. 5 (lowest); 0 = absent
	DueDate    string // raw substring, deliberately unparsed
	Recurrence string // daily, weekly or monthly

	// Dispatcher hints derived during intent-specific post-processing.
	LookupByTitle            bool
	LookupByTitleForDeletion bool
	UpdateField              UpdateField
}

// ParsedCommand is the immutable result of parsing one user turn.
type ParsedCommand struct {
	Intent     Intent
	Confidence float64 // 0..1, heuristic, not a calibrated probability
	Entities   Entities
	Language   Language
	RawInput   string
}
