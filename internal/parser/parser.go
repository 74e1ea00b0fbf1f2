package parser

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
)

var foldCaser = cases.Fold()

// Normalize trims and case-folds input text. Classification, extraction and
// language detection all run over the normalized form; the raw input is kept
// on the ParsedCommand untouched.
func Normalize(text string) string {
	return foldCaser.String(strings.TrimSpace(text))
}

// Parse runs the full parsing stage: normalize, detect language, classify
// intent, extract entities. Pure except for logging; never fails.
func (p *Parser) Parse(ctx context.Context, rawInput string) ParsedCommand {
	normalized := Normalize(rawInput)

	if normalized == "" {
		return ParsedCommand{
			Intent:     IntentUnknown,
			Confidence: 0,
			Language:   LanguageEnglish,
			RawInput:   rawInput,
		}
	}

	intent, confidence := Classify(normalized)
	entities := Extract(normalized, intent)
	language := DetectLanguage(normalized)

	p.l.Infof(ctx, "%s: intent=%s confidence=%.2f language=%s", LogPrefixParse, intent, confidence, language)

	return ParsedCommand{
		Intent:     intent,
		Confidence: confidence,
		Entities:   entities,
		Language:   language,
		RawInput:   rawInput,
	}
}
