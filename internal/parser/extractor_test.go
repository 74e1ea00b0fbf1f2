package parser

import (
	"context"
	"testing"
)

func TestExtract_Title(t *testing.T) {
	t.Run("add task strips the connector", func(t *testing.T) {
		ent := Extract("add a task to buy groceries", IntentAddTask)
		if ent.TaskTitle != "buy groceries" {
			t.Errorf("expected title %q, got %q", "buy groceries", ent.TaskTitle)
		}
	})

	t.Run("roman urdu mujhe construction", func(t *testing.T) {
		ent := Extract("mujhe sabzi leni hai", IntentAddTask)
		if ent.TaskTitle != "sabzi" {
			t.Errorf("expected title %q, got %q", "sabzi", ent.TaskTitle)
		}
	})

	t.Run("verb phrase fallback", func(t *testing.T) {
		// No title pattern covers "kam banao", so the verb scan takes
		// everything after the matched "kam ban" prefix.
		ent := Extract("kam banao bartan dhona", IntentAddTask)
		if ent.TaskTitle != "ao bartan dhona" {
			t.Errorf("expected title %q, got %q", "ao bartan dhona", ent.TaskTitle)
		}
	})

	t.Run("unrecognized add verb yields no title", func(t *testing.T) {
		ent := Extract("task krdo bazar jana", IntentAddTask)
		if ent.TaskTitle != "" {
			t.Errorf("expected empty title, got %q", ent.TaskTitle)
		}
	})
}

func TestExtract_TaskID(t *testing.T) {
	t.Run("keyword adjacent digits", func(t *testing.T) {
		ent := Extract("complete task 2", IntentCompleteTask)
		if ent.TaskID != "2" {
			t.Errorf("expected id %q, got %q", "2", ent.TaskID)
		}
		if ent.LookupByTitle {
			t.Error("expected no title lookup hint when an id is present")
		}
	})

	t.Run("hash prefix", func(t *testing.T) {
		ent := Extract("delete #7", IntentDeleteTask)
		if ent.TaskID != "7" {
			t.Errorf("expected id %q, got %q", "7", ent.TaskID)
		}
	})
}

func TestExtract_LookupHints(t *testing.T) {
	t.Run("complete by title", func(t *testing.T) {
		ent := Extract("mark that call mom as done", IntentCompleteTask)
		if ent.TaskTitle != "call mom" {
			t.Errorf("expected title %q, got %q", "call mom", ent.TaskTitle)
		}
		if !ent.LookupByTitle {
			t.Error("expected LookupByTitle hint")
		}
	})

	t.Run("delete by title", func(t *testing.T) {
		ent := Extract("remove that old note", IntentDeleteTask)
		if ent.TaskTitle != "old note" {
			t.Errorf("expected title %q, got %q", "old note", ent.TaskTitle)
		}
		if !ent.LookupByTitleForDeletion {
			t.Error("expected LookupByTitleForDeletion hint")
		}
	})
}

func TestExtract_Priority(t *testing.T) {
	t.Run("numeric priority", func(t *testing.T) {
		ent := Extract("add a task to pay bills priority 2", IntentAddTask)
		if ent.Priority != 2 {
			t.Errorf("expected priority 2, got %d", ent.Priority)
		}
	})

	t.Run("urgency keyword maps to highest", func(t *testing.T) {
		ent := Extract("add a task to call plumber urgent", IntentAddTask)
		if ent.Priority != 1 {
			t.Errorf("expected priority 1, got %d", ent.Priority)
		}
	})

	t.Run("absent priority stays zero", func(t *testing.T) {
		ent := Extract("add a task to buy groceries", IntentAddTask)
		if ent.Priority != 0 {
			t.Errorf("expected priority 0, got %d", ent.Priority)
		}
	})
}

func TestExtract_DueDate(t *testing.T) {
	t.Run("iso date after keyword", func(t *testing.T) {
		ent := Extract("add a task to submit report by 2024-01-15", IntentAddTask)
		if ent.DueDate != "2024-01-15" {
			t.Errorf("expected due date %q, got %q", "2024-01-15", ent.DueDate)
		}
	})

	t.Run("relative day word is kept raw", func(t *testing.T) {
		ent := Extract("remind me to water plants tomorrow", IntentAddTask)
		if ent.DueDate != "tomorrow" {
			t.Errorf("expected due date %q, got %q", "tomorrow", ent.DueDate)
		}
		// The day word is not cut out of the captured title.
		if ent.TaskTitle != "water plants tomorrow" {
			t.Errorf("expected title %q, got %q", "water plants tomorrow", ent.TaskTitle)
		}
	})
}

func TestExtract_Recurrence(t *testing.T) {
	t.Run("english keyword", func(t *testing.T) {
		ent := Extract("make the standup repeat daily", IntentSetRecurring)
		if ent.Recurrence != "daily" {
			t.Errorf("expected recurrence %q, got %q", "daily", ent.Recurrence)
		}
	})

	t.Run("roman urdu keyword resolved by post-processing", func(t *testing.T) {
		ent := Extract("ye kam har roz dohrana", IntentSetRecurring)
		if ent.Recurrence != "daily" {
			t.Errorf("expected recurrence %q, got %q", "daily", ent.Recurrence)
		}
	})

	t.Run("roman urdu keyword outside SET_RECURRING is dropped", func(t *testing.T) {
		// The generic pass only maps English forms. Documented gap.
		ent := Extract("kaam dal parhna har roz", IntentAddTask)
		if ent.Recurrence != "" {
			t.Errorf("expected empty recurrence, got %q", ent.Recurrence)
		}
	})
}

func TestExtract_UpdateField(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected UpdateField
	}{
		{"title needs the literal field token", "change the task_title to pay rent", UpdateFieldTitle},
		{"plain title wording is not a hint", "change the task title to pay rent", ""},
		{"priority", "change the priority of task 4", UpdateFieldPriority},
		{"due date", "update the deadline of task 4", UpdateFieldDueDate},
		{"no hint", "update task 4", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ent := Extract(tc.text, IntentUpdateTask)
			if ent.UpdateField != tc.expected {
				t.Errorf("expected field %q, got %q", tc.expected, ent.UpdateField)
			}
		})
	}
}

func TestParse(t *testing.T) {
	p := New(&mockLogger{})

	t.Run("full pipeline", func(t *testing.T) {
		cmd := p.Parse(context.Background(), "Add a task to BUY GROCERIES")
		if cmd.Intent != IntentAddTask {
			t.Errorf("expected ADD_TASK, got %s", cmd.Intent)
		}
		if cmd.Entities.TaskTitle != "buy groceries" {
			t.Errorf("expected folded title %q, got %q", "buy groceries", cmd.Entities.TaskTitle)
		}
		if cmd.RawInput != "Add a task to BUY GROCERIES" {
			t.Errorf("raw input not preserved: %q", cmd.RawInput)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		cmd := p.Parse(context.Background(), "   ")
		if cmd.Intent != IntentUnknown || cmd.Confidence != 0 {
			t.Errorf("expected (UNKNOWN, 0), got (%s, %f)", cmd.Intent, cmd.Confidence)
		}
		if cmd.Language != LanguageEnglish {
			t.Errorf("expected en, got %s", cmd.Language)
		}
	})
}
