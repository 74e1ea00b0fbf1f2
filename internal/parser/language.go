package parser

import (
	"strings"
	"unicode"
)

// romanUrduKeywords are common Roman-Urdu function words and particles.
// Matching is substring containment over the case-folded input, exactly as
// production behaves ("main" inside "maintain" counts, known quirk).
var romanUrduKeywords = []string{
	"mera", "meri", "meray", "tumhara", "tumhari", "tumhare", "humara", "humari", "humare",
	"kya", "kyun", "kab", "kahan", "kaise", "kim", "kaun", "kon",
	"hai", "hain", "tha", "thi", "they", "hogya", "hogye", "hoga", "hogi",
	"main", "tum", "wo", "ye", "vo", "hum", "aap", "ham",
	"ka", "ke", "ki", "kae", "kay", "gee", "ga", "gi", "raha", "rahi", "rahe", "tha", "thi", "the",
	"aur", "or", "lekin", "magar", "lakin", "par", "per", "kay", "ke", "ker", "kar", "karo", "krdo", "krdio",
	"task", "kaam", "kam", "work", "naam", "ism", "nam",
	"aaj", "kal", "raat", "din", "roz", "subah", "shaam",
	"haan", "nahi", "ji", "han", "ji han", "ji haan", "bilkul", "jaroor", "zaroor",
	"shukriya", "dhanyawaad", "thank you", "thanks", "meherbani", "madad", "help",
	"bura", "accha", "aala", "buland", "neeche", "upar", "agee", "peeche", "center", "bich",
	"din", "mahina", "saal", "time", "waqt", "date", "tarikh",
}

// DetectLanguage classifies text as Urdu script, Roman Urdu or English.
//
// Urdu script wins unconditionally on any Arabic-block codepoint. A
// Roman-Urdu keyword hit only counts as Roman Urdu when more than 70% of the
// letters are Latin; with a keyword hit but a lower Latin ratio the result is
// English. This tie-break favors English on mixed-script input and is
// deliberate.
func DetectLanguage(text string) Language {
	for _, r := range text {
		if isUrduScript(r) {
			return LanguageUrdu
		}
	}

	lower := strings.ToLower(text)
	keywordHit := false
	for _, kw := range romanUrduKeywords {
		if strings.Contains(lower, kw) {
			keywordHit = true
			break
		}
	}
	if !keywordHit {
		return LanguageEnglish
	}

	latin, total := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		total++
		if r < 128 {
			latin++
		}
	}
	if total > 0 && float64(latin)/float64(total) > 0.7 {
		return LanguageRomanUrdu
	}
	return LanguageEnglish
}

// isUrduScript reports whether r falls in the Arabic or Arabic Supplement
// Unicode blocks used by Urdu.
func isUrduScript(r rune) bool {
	return (r >= 0x0600 && r <= 0x06FF) || (r >= 0x0750 && r <= 0x077F)
}
