package parser

import "regexp"

// The catalog mirrors the production rule tables exactly. Pattern source
// strings are kept verbatim because the classifier's confidence heuristic is
// proportional to the source length; editing a pattern changes its score.
// All tables are compiled once at init and never mutated, so they are safe
// to share across concurrent turns.

type pattern struct {
	src string
	re  *regexp.Regexp
}

func mustPattern(src string) pattern {
	return pattern{src: src, re: regexp.MustCompile(`(?i)` + src)}
}

func mustPatterns(srcs ...string) []pattern {
	out := make([]pattern, 0, len(srcs))
	for _, s := range srcs {
		out = append(out, mustPattern(s))
	}
	return out
}

// intentOrder fixes the iteration order for classification; ties between
// equal-scoring patterns keep the first intent encountered.
var intentOrder = []Intent{
	IntentAddTask,
	IntentViewTasks,
	IntentCompleteTask,
	IntentUpdateTask,
	IntentDeleteTask,
	IntentSetRecurring,
}

var intentPatterns = map[Intent][]pattern{
	IntentAddTask: mustPatterns(
		// English patterns
		`(add|create|make|new)\s+(a\s+|an\s+|the\s+)?(task|todo|to-do|item)\s+(.+)`,
		`(add|create|make|new)\s+(.+)\s+(as\s+a\s+task|to\s+my\s+list|to\s+do)`,
		`(remind\s+me\s+to|need\s+to|want\s+to)\s+(.+)`,
		`(.+)\s+(remind\s+me|task|todo)`,
		`(add|create|make|new)\s+(.+)`,

		// Roman Urdu patterns
		`(task|kaam|kam|work)\s+(add|shamil|dal|daal|add karo|kar do|kardo|krdo|kr dou|krdou|krdun|krdin|krdiyen)\s+(.+)`,
		`(task|kaam|kam|work)\s+(ban|bnay|banaye|create|create karo|banao|bnayen|bnaye)\s+(.+)`,
		`(yaad|yad|yaad dilao|remind)\s+(karo|karwana|krwana|kar do|kardo|krdo|kr dou|krdou|krdun|krdin|krdiyen)\s+(.+)`,
		`(mera|meri|my)\s+(task|kaam|kam|work)\s+(add|shamil|dal|daal|kar do|kardo|krdo|kr dou|krdou)\s+(.+)`,
		`(mera|meri|my)\s+(task|kaam|kam|work)\s+(add|shamil|dal|daal|kar do|kardo|krdo|kr dou|krdou)\s+(.+)\s+(karna|karni|karna hai|karni hai)`,
		`(mujhe|mjhe|menhe|ko|kko|koe)\s+(.+)\s+(leni|lena|leni hai|karni|karna|chaiye|chahiye)\s+(.+)?`,
		`(.+)\s+(add|kar|karo|do|dou|kardo|krdo|krdou)\s+(mera|meri|my)\s+(task|kaam|kam|work)`,
	),
	IntentViewTasks: mustPatterns(
		// English patterns
		`(show|list|display|view|see|get|fetch)\s+(my\s+)?(tasks|todos|to-dos|items|list)`,
		`(what|which)\s+(do\s+i\s+have|am\s+i\s+supposed\s+to\s+do|are\s+my\s+tasks)`,
		`my\s+(tasks|todos|to-dos)`,
		`(check|review)\s+(my\s+)?(tasks|todos)`,
		`(all|everything|my)\s+(tasks|todos)`,

		// Roman Urdu patterns
		`(show|dikha|dikhao|dikhaw|dekh|dekhao|dekho|show karo)\s+(my|mera|mere|meri)\s+(tasks|kaam|kam|works|list|lst)`,
		`(kya\s+kya\s+hai|konsa\s+konsa\s+kaam\s+hai|what|kya|kye)\s+(mera|meri|my)\s+(task|kaam|kam|work)`,
		`(mera|meri|my)\s+(task|kaam|kam|work)\s+(list|lst|list karo|list dikha|list dikhao)`,
		`(sab|sb|all|sara|saray|sari)\s+(tasks|kaam|kam|works|list|lst)`,
	),
	IntentCompleteTask: mustPatterns(
		// English patterns
		`(complete|finish|done|mark.*complete|check|tick|accomplish)\s+(a\s+|an\s+|the\s+)?(task|todo|to-do|item|it)\s*(.+)?`,
		`(mark|set)\s+(a\s+|an\s+|the\s+)?(task|todo|to-do|item)\s+(as\s+)?(complete|done|finished)`,
		`(.+)\s+(is\s+done|is\s+complete|is\s+finished|done|complete)`,
		`(complete|finish|done|mark)\s+(.+)`,

		// Roman Urdu patterns
		`(complete|ho\s+gya|hogya|ho\s+gye|hogye|done|khatam|khtm|finish|mkml|mukammal|poora|poori)\s+(.+)`,
		`(mark|naksh|nishan|nishaan|nishaan lag|mark karo)\s+(as\s+)?(complete|done|ho\s+gya|hogya|khatam|finish)`,
		`(mera|meri|my)\s+(task|kaam|kam|work)\s+(complete|ho\s+gya|hogya|done|khatam|finish)\s+(.+)`,
		`(kar\s+dio|kar dio|kardo|krdo|kr dio|done|complete)\s+(mera|meri|my)\s+(task|kaam|kam|work)`,
	),
	IntentUpdateTask: mustPatterns(
		// English patterns
		`(update|change|modify|edit|alter)\s+(a\s+|an\s+|the\s+)?(task|todo|to-do|item)\s+(.+)`,
		`(change|update|modify)\s+(.+)`,
		`(rename|retitle)\s+(.+)`,

		// Roman Urdu patterns
		`(update|badlo|badal|updte|bartan|bartan karo|tazah|tazah karo)\s+(.+)`,
		`(change|badlo|badal|chg|bartan|bartan karo)\s+(.+)`,
		`(mera|meri|my)\s+(task|kaam|kam|work)\s+(update|badlo|badal|chg|bartan|tazah)\s+(.+)`,
		`(modify|edit|mufta|mufta karo|taraqi|taraqi de|tarqi de)\s+(.+)`,
	),
	IntentDeleteTask: mustPatterns(
		// English patterns
		`(delete|remove|kill|trash|eliminate)\s+(a\s+|an\s+|the\s+)?(task|todo|to-do|item)\s*(.+)?`,
		`(remove|delete)\s+(.+)`,

		// Roman Urdu patterns
		`(delete|mita|mita do|mitado|mita|remove|htao|hatao|hata|delete karo)\s+(.+)`,
		`(remove|htao|hatao|hata|nikalo|nikal|delete|mita)\s+(.+)`,
		`(mera|meri|my)\s+(task|kaam|kam|work)\s+(delete|mita|remove|htao|hatao)\s+(.+)`,
		`(kill|khatam|khtm|khatam karo|khtm karo)\s+(.+)`,
	),
	IntentSetRecurring: mustPatterns(
		// English patterns
		`(set|make|configure)\s+(a\s+|an\s+|the\s+)?(task|todo|to-do|item)\s+to\s+repeat|recur|cycle`,
		`(.+)\s+(daily|weekly|monthly|every\s+day|every\s+week|every\s+month)`,
		`repeat|recurring|recurrent`,

		// Roman Urdu patterns
		`(repeat|dohra|dohrana|dohray|doobara|dobara|dobray|bar\s+bar|barbar|recurring|recurrent)\s+(.+)`,
		`(daily|har\s+roz|hr\s+roz|rozana|roz\s+roz|har\s+day|hr\s+day|daily)\s+(.+)`,
		`(weekly|har\s+hafta|hr\s+hafta|hafta\s+war|haftawar|har\s+week|hr\s+week|weekly)\s+(.+)`,
		`(monthly|har\s+mahina|hr\s+mahina|mahina\s+war|mahinawar|har\s+month|hr\s+month|monthly)\s+(.+)`,
	),
}

// Entity extraction tables. Within one entity type the order is significant:
// the first matching pattern wins.
var (
	titlePatterns = mustPatterns(
		// English patterns
		`(?:to|that|is|for|about)\s+(?P<title>[^.!?]+?)(?:\s+(?:as|in|on|at)\s+|$|[.!?])`,
		`(?:add|create|make|new|remind me to|need to|want to)\s+(?P<title>[^.!?]+?)(?:\s+(?:as|in|on|at)\s+|$|[.!?])`,

		// Roman Urdu patterns
		`(?:task|kaam|kam|work)\s+(?:add|shamil|dal|daal|ban|bnay|banaye|create)\s+(?P<title>[^.!?]+?)(?:\s+(?:ki|ke|ka|par|per)\s+|$|[.!?])`,
		`(?:mera|meri|my)\s+(?:task|kaam|kam|work)\s+(?:update|badlo|badal|change|chg|bartan|tazah)\s+(?P<title>[^.!?]+?)(?:\s+(?:ki|ke|ka|par|per)\s+|$|[.!?])`,
		`(?:karo|krwana|krwana|kar|kr|karna|kro)\s+(?P<title>[^.!?]+?)(?:\s+(?:ki|ke|ka|par|per)\s+|$|[.!?])`,
		`(?:mujhe|muj ko|mujhe|mjhe|mj ko)\s+(?P<title>[^.!?]+?)\s+(?:leni|lena|leni hai|karni|karna)\s+(?:hai|he|hy|ho|raha hai|rahi hai)`,
	)

	taskIDPatterns = mustPatterns(
		// English patterns
		`(task|number|id)\s+(\d+)`,
		`#(\d+)`,

		// Roman Urdu patterns
		`(task|kaam|kam|work|nmbr|number|id)\s+(\d+)`,
		`(\d+)\s+(?:ka|ke|ki)\s+(?:task|kaam|kam|work)`,
	)

	priorityPatterns = mustPatterns(
		// English patterns
		`(priority|high|higher|low|lower|medium|importance)\s+(?P<priority>\d|[1-5]|high|higher|low|lower|medium)`,
		`(important|very|critical|urgent)`,

		// Roman Urdu patterns
		`(aoliyat|aulawi|awli|awliyat|priority|zaida|ziada|zaida|ziada|kam|km|less|zarrori|zaroori|zruri|zaruri|zaroori|zarrori)\s+(?P<priority>\d|[1-5]|high|higher|low|lower|medium|aoli|aula|zaida|ziada|kam|km|zarrori|zaroori|zruri)`,
	)

	dueDatePatterns = mustPatterns(
		// English patterns
		`(by|on|before|deadline|due)\s+(?P<date>\w+\s+\d{1,2}(?:st|nd|rd|th)?(?:,\s*\d{4})?|\d{1,2}/\d{1,2}(?:/\d{4})?|\d{4}-\d{2}-\d{2})`,
		`(today|tomorrow|tonight|this week|next week|this weekend|monday|tuesday|wednesday|thursday|friday|saturday|sunday)`,

		// Roman Urdu patterns
		`(tab|jb|jab|tk|taak|tak|due|last date|last din|akhri|akri|last|final|khatam|khtm)\s+(?P<date>\w+\s+\d{1,2}(?:st|nd|rd|th)?(?:,\s*\d{4})?|\d{1,2}/\d{1,2}(?:/\d{4})?|\d{4}-\d{2}-\d{2}|aaj|kal|raat|iss week|agla week|iss hafte|agle hafte|iss saal|agle saal|monday|tuesday|wednesday|thursday|friday|saturday|sunday|somvar|mangalvar|budhvar|guruvar|shukrvar|shanivar|ravivar)`,
	)

	recurrencePatterns = mustPatterns(
		// English patterns
		`(daily|weekly|monthly|every day|every week|every month)`,

		// Roman Urdu patterns
		`(daily|har\s+roz|hr\s+roz|rozana|roz\s+roz|har\s+day|hr\s+day|har roz|hr roz|daily)`,
		`(weekly|har\s+hafta|hr\s+hafta|hafta\s+war|haftawar|har\s+week|hr\s+week|har hafta|hr hafta|weekly)`,
		`(monthly|har\s+mahina|hr\s+mahina|mahina\s+war|mahinawar|har\s+month|hr\s+month|har mahina|hr mahina|monthly)`,
	)
)
