package parser

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Intent
	}{
		{"add task", "add a task to buy groceries", IntentAddTask},
		{"view tasks", "show my tasks", IntentViewTasks},
		{"view tasks with filler word", "show me my tasks", IntentViewTasks},
		{"complete task", "complete task 2", IntentCompleteTask},
		{"update task", "update the task title to pay rent", IntentUpdateTask},
		{"delete task", "delete task 3", IntentDeleteTask},
		{"set recurring", "make the standup repeat daily", IntentSetRecurring},
		{"roman urdu add", "task shamil karo sabzi kharidna", IntentAddTask},
		{"roman urdu view", "mera kam list karo", IntentViewTasks},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			intent, confidence := Classify(tc.text)
			if intent != tc.expected {
				t.Errorf("Classify(%q) = %s, expected %s", tc.text, intent, tc.expected)
			}
			if confidence < 0.5 || confidence > 0.9 {
				t.Errorf("Classify(%q) confidence = %f, expected within [0.5, 0.9]", tc.text, confidence)
			}
		})
	}

	t.Run("gibberish is unknown with zero confidence", func(t *testing.T) {
		intent, confidence := Classify("asdkjasdkj")
		if intent != IntentUnknown {
			t.Errorf("expected UNKNOWN, got %s", intent)
		}
		if confidence != 0 {
			t.Errorf("expected 0 confidence, got %f", confidence)
		}
	})

	t.Run("confidence is proportional to pattern length", func(t *testing.T) {
		// "repeat" matches only the bare recurrence alternation, whose
		// 26-byte source scores 0.5 + 26/100.
		intent, confidence := Classify("repeat")
		if intent != IntentSetRecurring {
			t.Errorf("expected SET_RECURRING, got %s", intent)
		}
		if math.Abs(confidence-0.76) > 1e-9 {
			t.Errorf("expected confidence 0.76, got %f", confidence)
		}
	})

	t.Run("trailing task keyword mid-sentence is an add", func(t *testing.T) {
		// The bare "(.+) task" alternation is unanchored, so "task" buried
		// in a sentence still counts. Its 30-byte source scores 0.80.
		intent, confidence := Classify("call mom task please")
		if intent != IntentAddTask {
			t.Errorf("expected ADD_TASK, got %s", intent)
		}
		if math.Abs(confidence-0.80) > 1e-9 {
			t.Errorf("expected confidence 0.80, got %f", confidence)
		}
	})

	t.Run("plural tasks outranks the bare add alternation", func(t *testing.T) {
		// "show me my tasks" matches both the bare add alternation (0.80)
		// and the longer "(all|everything|my) tasks" view pattern (0.85);
		// the view score wins.
		intent, confidence := Classify("show me my tasks")
		if intent != IntentViewTasks {
			t.Errorf("expected VIEW_TASKS, got %s", intent)
		}
		if math.Abs(confidence-0.85) > 1e-9 {
			t.Errorf("expected confidence 0.85, got %f", confidence)
		}
	})

	t.Run("keyword fallback scores 0.6", func(t *testing.T) {
		// "mark" alone matches no pattern; the fallback keyword table
		// routes it to COMPLETE_TASK.
		intent, confidence := Classify("mark")
		if intent != IntentCompleteTask {
			t.Errorf("expected COMPLETE_TASK, got %s", intent)
		}
		if math.Abs(confidence-0.6) > 1e-9 {
			t.Errorf("expected confidence 0.6, got %f", confidence)
		}
	})
}
