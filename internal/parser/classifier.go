package parser

import "strings"

// Fallback confidence levels. Pattern-based matches score
// min(0.9, 0.5 + len(pattern)/100): longer patterns are more specific and
// score higher. The formula is a fixed heuristic, not a tunable model.
const (
	fallbackConfidence = 0.6
	maxConfidence      = 0.9
	baseConfidence     = 0.5
)

// fallbackKeywords route inputs that match no catalog pattern. Checked in
// order; the first category with a keyword hit wins.
var fallbackKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentAddTask, []string{"add", "create", "new", "remind me to"}},
	{IntentViewTasks, []string{"show", "list", "view", "see", "what"}},
	{IntentCompleteTask, []string{"complete", "done", "finish", "mark"}},
	{IntentUpdateTask, []string{"update", "change", "modify", "edit"}},
	{IntentDeleteTask, []string{"delete", "remove", "kill", "trash"}},
	{IntentSetRecurring, []string{"repeat", "daily", "weekly", "monthly"}},
}

// Classify scores text against the intent catalog and returns the best
// (intent, confidence) pair. Ties keep the first intent in catalog order.
// Inputs matching nothing at all return (UNKNOWN, 0).
func Classify(text string) (Intent, float64) {
	bestIntent := IntentUnknown
	bestConfidence := 0.0

	for _, intent := range intentOrder {
		for _, p := range intentPatterns[intent] {
			if !p.re.MatchString(text) {
				continue
			}
			confidence := baseConfidence + float64(len(p.src))/100
			if confidence > maxConfidence {
				confidence = maxConfidence
			}
			if confidence > bestConfidence {
				bestConfidence = confidence
				bestIntent = intent
			}
		}
	}

	if bestIntent == IntentUnknown {
		for _, fb := range fallbackKeywords {
			for _, kw := range fb.keywords {
				if strings.Contains(text, kw) {
					return fb.intent, fallbackConfidence
				}
			}
		}
	}

	return bestIntent, bestConfidence
}
