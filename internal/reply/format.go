package reply

import (
	"strconv"
	"strings"

	"conversational-task-assistant/internal/model"
	"conversational-task-assistant/internal/parser"
	"conversational-task-assistant/internal/task"
)

// Format turns a dispatch result into one user-facing string in the
// language detected for the turn. It is a pure function of its inputs;
// it never touches the store or any other external state.
func Format(res task.ToolResult, intent parser.Intent, ent parser.Entities, originalInput string, lang parser.Language) string {
	tpl := templatesFor(lang)

	if res.Success {
		return formatSuccess(tpl, res, intent, ent)
	}
	return formatFailure(tpl, res, intent, originalInput)
}

func formatSuccess(tpl map[string]string, res task.ToolResult, intent parser.Intent, ent parser.Entities) string {
	switch intent {
	case parser.IntentAddTask:
		title := res.Title
		if title == "" {
			title = ent.TaskTitle
		}
		return render(tpl["add_task_success"], map[string]string{
			"emoji": EmojiAdd,
			"title": title,
		})

	case parser.IntentViewTasks:
		return formatTaskList(tpl, res.Tasks, res.Count)

	case parser.IntentCompleteTask:
		return render(tpl["complete_task_success"], map[string]string{
			"emoji": EmojiComplete,
			"title": res.Title,
		})

	case parser.IntentUpdateTask:
		return render(tpl["update_task_success"], map[string]string{
			"emoji": EmojiUpdate,
		})

	case parser.IntentDeleteTask:
		return render(tpl["delete_task_success"], map[string]string{
			"emoji": EmojiDelete,
		})

	case parser.IntentSetRecurring:
		pattern := ent.Recurrence
		return render(tpl["set_recurring_success"], map[string]string{
			"emoji":   EmojiRecurring,
			"pattern": pattern,
		})

	default:
		return EmojiSuccess + " " + res.Message
	}
}

func formatTaskList(tpl map[string]string, tasks []model.Task, count int) string {
	switch {
	case count == 0:
		return render(tpl["list_tasks_empty"], map[string]string{
			"emoji": EmojiList,
		})

	case count == 1:
		return render(tpl["list_tasks_single"], map[string]string{
			"emoji":     EmojiList,
			"task_info": taskLine(tasks[0]),
		})

	default:
		shown := tasks
		if len(shown) > maxListedTasks {
			shown = shown[:maxListedTasks]
		}
		items := make([]string, 0, len(shown)+1)
		for _, t := range shown {
			items = append(items, taskLine(t))
		}
		if count > maxListedTasks {
			items = append(items, "... and "+strconv.Itoa(count-maxListedTasks)+" more")
		}
		return render(tpl["list_tasks_multiple"], map[string]string{
			"emoji":     EmojiList,
			"count":     strconv.Itoa(count),
			"task_list": strings.Join(items, ", "),
		})
	}
}

func taskLine(t model.Task) string {
	status := EmojiIncomplete
	if t.Completed {
		status = EmojiComplete
	}
	return status + " " + t.Title
}

func formatFailure(tpl map[string]string, res task.ToolResult, intent parser.Intent, originalInput string) string {
	switch {
	case res.Error == task.ErrCodeMissingTaskID || strings.Contains(strings.ToLower(res.Message), "task_id"):
		return render(tpl["clarification_needed"], map[string]string{
			"emoji":  EmojiInfo,
			"action": inferAction(originalInput),
		})

	case res.Error == task.ErrCodeUnknownIntent:
		return render(tpl["unknown_intent"], map[string]string{
			"emoji": EmojiWarning,
		})

	case res.Error == task.ErrCodeMissingTitle:
		return EmojiError + " " + res.Message
	}

	key := strings.ToLower(string(intent)) + "_error"
	if template, ok := tpl[key]; ok {
		return render(template, map[string]string{
			"emoji":   EmojiError,
			"message": res.Message,
		})
	}

	return render(tpl["error_generic"], map[string]string{
		"emoji":   EmojiError,
		"message": res.Message,
	})
}

// inferAction guesses what the user was trying to do from the raw input so
// a clarification question can name the action. First keyword family that
// matches wins.
func inferAction(originalInput string) string {
	lowered := strings.ToLower(originalInput)

	families := []struct {
		action   string
		keywords []string
	}{
		{"complete", []string{"complete", "finish", "done", "mark"}},
		{"update", []string{"update", "change", "modify", "edit"}},
		{"delete", []string{"delete", "remove", "kill", "trash"}},
		{"add", []string{"add", "create", "new"}},
	}

	for _, f := range families {
		for _, kw := range f.keywords {
			if strings.Contains(lowered, kw) {
				return f.action
			}
		}
	}
	return "manage"
}
