package parser

import (
	"regexp"
	"strings"
)

// connectorRe strips connector words from a captured title. It runs over the
// whole capture, not just the prefix, mirroring production output.
var connectorRe = regexp.MustCompile(`(?i)(to|that|is|for|about)\s+`)

// mujheTitleRe is the Roman-Urdu last-resort title capture for phrases like
// "mujhe sabzi leni hai".
var mujheTitleRe = regexp.MustCompile(`(?:mujhe|muj ko|mujhe|mjhe|mj ko)\s+(.*?)\s+(?:leni|lena|leni hai|karni|karna)\s+(?:hai|he|hy|ho|raha hai|rahi hai)`)

// addTaskVerbs is the ordered verb-phrase list scanned when ADD_TASK found no
// title via the catalog. English first, then Roman Urdu.
var addTaskVerbs = []string{
	"add", "create", "make", "new", "remind me to", "need to", "want to",
	"task add", "task shamil", "task dal", "task daal", "task ban",
	"kaam add", "kaam shamil", "kaam dal", "kaam daal", "kaam ban",
	"kam add", "kam shamil", "kam dal", "kam daal", "kam ban",
	"work add", "work create", "yaad kar", "yaad dilao", "mera task add",
}

// addTaskFillers are stripped from a verb-phrase title capture, in order.
// Removal is plain substring replacement everywhere in the capture.
var (
	addTaskArticleFillers    = []string{"a task", "a to-do", "a todo", "an item", "the task"}
	addTaskPossessiveFillers = []string{"mera", "meri", "ka", "ki", "ko"}
)

// Extract pulls typed entities out of normalized text. Each entity type is
// attempted independently in fixed order, first matching pattern wins, then
// intent-specific post-processing refines the result.
func Extract(text string, intent Intent) Entities {
	var ent Entities

	for _, p := range titlePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		title := groupOrWhole(p.re, m, "title")
		title = strings.TrimSpace(connectorRe.ReplaceAllString(title, ""))
		if title != "" {
			ent.TaskTitle = title
			break
		}
	}

	for _, p := range taskIDPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if id := firstDigitGroup(m); id != "" {
			ent.TaskID = id
			break
		}
	}

	for _, p := range priorityPatterns {
		m := p.re.FindString(text)
		if m == "" {
			continue
		}
		ent.Priority = mapPriority(m)
		break
	}

	for _, p := range dueDatePatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		date := groupOrWhole(p.re, m, "date")
		if date = strings.TrimSpace(date); date != "" {
			ent.DueDate = date
		}
		break
	}

	for _, p := range recurrencePatterns {
		m := p.re.FindString(text)
		if m == "" {
			continue
		}
		// Only the English forms map here; Roman-Urdu recurrence words are
		// resolved by the SET_RECURRING post-processing pass below.
		ent.Recurrence = mapRecurrence(m)
		break
	}

	switch intent {
	case IntentAddTask:
		postProcessAddTask(text, &ent)
	case IntentCompleteTask:
		if ent.TaskTitle != "" && ent.TaskID == "" {
			ent.LookupByTitle = true
		}
	case IntentUpdateTask:
		ent.UpdateField = inferUpdateField(text)
	case IntentDeleteTask:
		if ent.TaskTitle != "" && ent.TaskID == "" {
			ent.LookupByTitleForDeletion = true
		}
	case IntentSetRecurring:
		if rec := recurrenceFromKeywords(text); rec != "" {
			ent.Recurrence = rec
		}
	}

	return ent
}

// groupOrWhole returns the named capture if the pattern defines it and it
// matched, otherwise the whole match.
func groupOrWhole(re *regexp.Regexp, m []string, name string) string {
	if idx := re.SubexpIndex(name); idx >= 0 && idx < len(m) && m[idx] != "" {
		return m[idx]
	}
	return m[0]
}

// firstDigitGroup returns the first capture group that is a pure digit run.
func firstDigitGroup(m []string) string {
	for _, g := range m[1:] {
		if g != "" && isDigits(g) {
			return g
		}
	}
	return ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// mapPriority maps matched priority text to the 1..5 scale (1 = highest).
func mapPriority(text string) int {
	switch {
	case strings.Contains(text, "high") || strings.Contains(text, "important") ||
		strings.Contains(text, "very") || strings.Contains(text, "critical") ||
		strings.Contains(text, "urgent"):
		return 1
	case strings.Contains(text, "low"):
		return 5
	case strings.Contains(text, "medium"):
		return 3
	}
	for _, r := range text {
		if r >= '1' && r <= '5' {
			return int(r - '0')
		}
	}
	return 0
}

func mapRecurrence(text string) string {
	switch {
	case strings.Contains(text, "daily") || strings.Contains(text, "every day"):
		return "daily"
	case strings.Contains(text, "weekly") || strings.Contains(text, "every week"):
		return "weekly"
	case strings.Contains(text, "monthly") || strings.Contains(text, "every month"):
		return "monthly"
	}
	return ""
}

// postProcessAddTask fills in a task title when the catalog found none:
// first by scanning for a verb phrase and taking everything after it, then
// via the Roman-Urdu "mujhe ... leni hai" construction.
func postProcessAddTask(text string, ent *Entities) {
	if ent.TaskTitle != "" {
		return
	}

	for _, verb := range addTaskVerbs {
		idx := strings.Index(text, verb)
		if idx < 0 {
			continue
		}
		title := strings.TrimSpace(text[idx+len(verb):])
		for _, filler := range addTaskArticleFillers {
			title = strings.ReplaceAll(title, filler, "")
		}
		title = strings.TrimSpace(title)
		for _, filler := range addTaskPossessiveFillers {
			title = strings.ReplaceAll(title, filler, "")
		}
		title = strings.TrimSpace(title)
		if len(title) > 1 {
			ent.TaskTitle = title
			return
		}
	}

	if m := mujheTitleRe.FindStringSubmatch(text); m != nil {
		title := strings.TrimSpace(m[1])
		if len(title) > 1 {
			ent.TaskTitle = title
		}
	}
}

// inferUpdateField guesses which field an update targets. Best-effort hint
// only; empty when nothing recognizable is present. The title branch keys
// on the literal "task_title" token rather than plain "title", so it only
// fires when the client passes the field name through verbatim.
func inferUpdateField(text string) UpdateField {
	hasUpdateVerb := strings.Contains(text, "update") || strings.Contains(text, "change") ||
		strings.Contains(text, "badlo") || strings.Contains(text, "badal") ||
		strings.Contains(text, "bartan") || strings.Contains(text, "tazah")

	switch {
	case strings.Contains(text, "task_title") && hasUpdateVerb:
		return UpdateFieldTitle
	case strings.Contains(text, "priority") || strings.Contains(text, "important") ||
		strings.Contains(text, "aoliyat") || strings.Contains(text, "zarrori") ||
		strings.Contains(text, "zaroori"):
		return UpdateFieldPriority
	case strings.Contains(text, "due date") || strings.Contains(text, "deadline") ||
		strings.Contains(text, "tab tk") || strings.Contains(text, "jb tk"):
		return UpdateFieldDueDate
	}
	return ""
}

// recurrenceFromKeywords re-derives recurrence for SET_RECURRING from the
// raw text, including the Roman-Urdu forms. Takes precedence over the
// generic pass.
func recurrenceFromKeywords(text string) string {
	switch {
	case strings.Contains(text, "daily") || strings.Contains(text, "every day") ||
		strings.Contains(text, "har roz") || strings.Contains(text, "hr roz") ||
		strings.Contains(text, "rozana"):
		return "daily"
	case strings.Contains(text, "weekly") || strings.Contains(text, "every week") ||
		strings.Contains(text, "har hafta") || strings.Contains(text, "hr hafta") ||
		strings.Contains(text, "haftawar"):
		return "weekly"
	case strings.Contains(text, "monthly") || strings.Contains(text, "every month") ||
		strings.Contains(text, "har mahina") || strings.Contains(text, "hr mahina") ||
		strings.Contains(text, "mahinawar"):
		return "monthly"
	}
	return ""
}
