package usecase

import (
	"context"
	"errors"
	"testing"

	"conversational-task-assistant/internal/model"
	"conversational-task-assistant/internal/parser"
	"conversational-task-assistant/internal/task"
)

func newTestUseCase(store *mockStore) *implUseCase {
	return New(&mockLogger{}, store)
}

func TestDispatch_AddTask(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("missing title fails before the store", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentAddTask, parser.Entities{})

		if res.Success {
			t.Error("expected failure")
		}
		if res.Error != task.ErrCodeMissingTitle {
			t.Errorf("expected error %s, got %s", task.ErrCodeMissingTitle, res.Error)
		}
		if res.Message != MsgMissingTitle {
			t.Errorf("expected message %q, got %q", MsgMissingTitle, res.Message)
		}
		if len(store.calls) != 0 {
			t.Errorf("expected no store calls, got %v", store.calls)
		}
	})

	t.Run("unset priority defaults", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentAddTask, parser.Entities{
			TaskTitle: "buy groceries",
		})

		if !res.Success {
			t.Fatalf("expected success, got %s: %s", res.Error, res.Message)
		}
		if store.lastCreate.Priority != DefaultPriority {
			t.Errorf("expected priority %d, got %d", DefaultPriority, store.lastCreate.Priority)
		}
		if res.Title != "buy groceries" {
			t.Errorf("expected title %q, got %q", "buy groceries", res.Title)
		}
		if res.Message != MsgTaskCreated {
			t.Errorf("expected message %q, got %q", MsgTaskCreated, res.Message)
		}
	})

	t.Run("extracted fields reach the store", func(t *testing.T) {
		store := &mockStore{}
		newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentAddTask, parser.Entities{
			TaskTitle:  "submit report",
			Priority:   1,
			DueDate:    "2024-01-15",
			Recurrence: "weekly",
		})

		if store.lastCreate.Priority != 1 {
			t.Errorf("expected priority 1, got %d", store.lastCreate.Priority)
		}
		if store.lastCreate.DueDate != "2024-01-15" {
			t.Errorf("expected due date %q, got %q", "2024-01-15", store.lastCreate.DueDate)
		}
		if store.lastCreate.Recurrence != "weekly" {
			t.Errorf("expected recurrence %q, got %q", "weekly", store.lastCreate.Recurrence)
		}
	})
}

func TestDispatch_ViewTasks(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("filters pass through", func(t *testing.T) {
		store := &mockStore{tasks: []model.Task{
			{ID: "1", Title: "buy groceries"},
			{ID: "2", Title: "call mom", Completed: true},
		}}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentViewTasks, parser.Entities{
			TaskTitle: "groceries",
			Priority:  2,
		})

		if !res.Success {
			t.Fatalf("expected success, got %s: %s", res.Error, res.Message)
		}
		if store.lastList.Keyword != "groceries" {
			t.Errorf("expected keyword %q, got %q", "groceries", store.lastList.Keyword)
		}
		if store.lastList.Priority != 2 {
			t.Errorf("expected priority 2, got %d", store.lastList.Priority)
		}
		if res.Count != 2 || len(res.Tasks) != 2 {
			t.Errorf("expected 2 tasks, got count=%d len=%d", res.Count, len(res.Tasks))
		}
	})

	t.Run("empty listing is still a success", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentViewTasks, parser.Entities{})

		if !res.Success {
			t.Fatalf("expected success, got %s: %s", res.Error, res.Message)
		}
		if res.Count != 0 {
			t.Errorf("expected count 0, got %d", res.Count)
		}
	})
}

func TestDispatch_CompleteTask(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("missing id fails before the store", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentCompleteTask, parser.Entities{})

		if res.Success {
			t.Error("expected failure")
		}
		if res.Error != task.ErrCodeMissingTaskID {
			t.Errorf("expected error %s, got %s", task.ErrCodeMissingTaskID, res.Error)
		}
		if res.Message != "Task ID is required to complete a task" {
			t.Errorf("unexpected message %q", res.Message)
		}
		if len(store.calls) != 0 {
			t.Errorf("expected no store calls, got %v", store.calls)
		}
	})

	t.Run("title hint alone is not enough", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentCompleteTask, parser.Entities{
			TaskTitle:     "call mom",
			LookupByTitle: true,
		})

		if res.Error != task.ErrCodeMissingTaskID {
			t.Errorf("expected error %s, got %s", task.ErrCodeMissingTaskID, res.Error)
		}
		if len(store.calls) != 0 {
			t.Errorf("expected no store calls, got %v", store.calls)
		}
	})

	t.Run("marks the task complete", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentCompleteTask, parser.Entities{
			TaskID: "2",
		})

		if !res.Success {
			t.Fatalf("expected success, got %s: %s", res.Error, res.Message)
		}
		if store.lastTaskID != "2" || !store.lastCompleted {
			t.Errorf("expected SetCompleted(2, true), got (%s, %t)", store.lastTaskID, store.lastCompleted)
		}
		if res.Message != MsgTaskCompleted {
			t.Errorf("expected message %q, got %q", MsgTaskCompleted, res.Message)
		}
	})
}

func TestDispatch_UpdateTask(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("missing id fails before the store", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentUpdateTask, parser.Entities{
			TaskTitle: "pay rent",
		})

		if res.Error != task.ErrCodeMissingTaskID {
			t.Errorf("expected error %s, got %s", task.ErrCodeMissingTaskID, res.Error)
		}
		if len(store.calls) != 0 {
			t.Errorf("expected no store calls, got %v", store.calls)
		}
	})

	t.Run("changed fields pass through", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentUpdateTask, parser.Entities{
			TaskID:    "4",
			TaskTitle: "pay rent",
			Priority:  1,
		})

		if !res.Success {
			t.Fatalf("expected success, got %s: %s", res.Error, res.Message)
		}
		if store.lastTaskID != "4" {
			t.Errorf("expected task id 4, got %s", store.lastTaskID)
		}
		if store.lastUpdate.Title != "pay rent" || store.lastUpdate.Priority != 1 {
			t.Errorf("unexpected update options %+v", store.lastUpdate)
		}
	})
}

func TestDispatch_DeleteTask(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("missing id fails before the store", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentDeleteTask, parser.Entities{})

		if res.Error != task.ErrCodeMissingTaskID {
			t.Errorf("expected error %s, got %s", task.ErrCodeMissingTaskID, res.Error)
		}
		if res.Message != "Task ID is required to delete a task" {
			t.Errorf("unexpected message %q", res.Message)
		}
		if len(store.calls) != 0 {
			t.Errorf("expected no store calls, got %v", store.calls)
		}
	})

	t.Run("deletes by id", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentDeleteTask, parser.Entities{
			TaskID: "7",
		})

		if !res.Success {
			t.Fatalf("expected success, got %s: %s", res.Error, res.Message)
		}
		if store.lastTaskID != "7" {
			t.Errorf("expected task id 7, got %s", store.lastTaskID)
		}
		if res.Message != MsgTaskDeleted {
			t.Errorf("expected message %q, got %q", MsgTaskDeleted, res.Message)
		}
	})
}

func TestDispatch_SetRecurring(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("missing id is checked first", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentSetRecurring, parser.Entities{
			Recurrence: "daily",
		})

		if res.Error != task.ErrCodeMissingTaskID {
			t.Errorf("expected error %s, got %s", task.ErrCodeMissingTaskID, res.Error)
		}
		if res.Message != "Task ID is required to set recurrence for a task" {
			t.Errorf("unexpected message %q", res.Message)
		}
	})

	t.Run("missing pattern fails before the store", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentSetRecurring, parser.Entities{
			TaskID: "3",
		})

		if res.Error != task.ErrCodeMissingPattern {
			t.Errorf("expected error %s, got %s", task.ErrCodeMissingPattern, res.Error)
		}
		if res.Message != MsgMissingRecurrence {
			t.Errorf("expected message %q, got %q", MsgMissingRecurrence, res.Message)
		}
		if len(store.calls) != 0 {
			t.Errorf("expected no store calls, got %v", store.calls)
		}
	})

	t.Run("applies the pattern", func(t *testing.T) {
		store := &mockStore{}
		res := newTestUseCase(store).Dispatch(context.Background(), sc, parser.IntentSetRecurring, parser.Entities{
			TaskID:     "3",
			Recurrence: "daily",
		})

		if !res.Success {
			t.Fatalf("expected success, got %s: %s", res.Error, res.Message)
		}
		if store.lastTaskID != "3" || store.lastPattern != "daily" {
			t.Errorf("expected SetRecurrence(3, daily), got (%s, %s)", store.lastTaskID, store.lastPattern)
		}
		if res.Message != "Recurrence pattern set to daily" {
			t.Errorf("unexpected message %q", res.Message)
		}
	})
}

func TestDispatch_UnknownIntent(t *testing.T) {
	store := &mockStore{}
	res := newTestUseCase(store).Dispatch(context.Background(), model.Scope{UserID: "u1"}, parser.IntentUnknown, parser.Entities{})

	if res.Success {
		t.Error("expected failure")
	}
	if res.Error != task.ErrCodeUnknownIntent {
		t.Errorf("expected error %s, got %s", task.ErrCodeUnknownIntent, res.Error)
	}
	if res.Message != "Unknown intent: UNKNOWN" {
		t.Errorf("unexpected message %q", res.Message)
	}
	if len(store.calls) != 0 {
		t.Errorf("expected no store calls, got %v", store.calls)
	}
}

func TestDispatch_StoreFailure(t *testing.T) {
	store := &mockStore{err: errors.New("connection refused")}
	res := newTestUseCase(store).Dispatch(context.Background(), model.Scope{UserID: "u1"}, parser.IntentAddTask, parser.Entities{
		TaskTitle: "buy groceries",
	})

	if res.Success {
		t.Error("expected failure")
	}
	if res.Error != task.ErrCodeExecution {
		t.Errorf("expected error %s, got %s", task.ErrCodeExecution, res.Error)
	}
	if res.Message != "Error executing tool: connection refused" {
		t.Errorf("unexpected message %q", res.Message)
	}
}
