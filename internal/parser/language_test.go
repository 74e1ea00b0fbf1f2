package parser

import "testing"

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Language
	}{
		{
			name:     "urdu script",
			text:     "مجھے کام دکھائیں",
			expected: LanguageUrdu,
		},
		{
			name:     "single urdu codepoint wins over latin content",
			text:     "please دکھائیں my tasks",
			expected: LanguageUrdu,
		},
		{
			name:     "roman urdu",
			text:     "mera kam list karo",
			expected: LanguageRomanUrdu,
		},
		{
			// "task" sits on the Roman-Urdu keyword list, so English task
			// commands detect as Roman Urdu. Documented quirk.
			name:     "english with keyword overlap",
			text:     "add a task to buy groceries",
			expected: LanguageRomanUrdu,
		},
		{
			name:     "plain english",
			text:     "buy groceries",
			expected: LanguageEnglish,
		},
		{
			// Keyword hit with too few Latin letters falls back to English.
			name:     "mixed script below latin ratio",
			text:     "задача kam karna",
			expected: LanguageEnglish,
		},
		{
			name:     "empty input",
			text:     "",
			expected: LanguageEnglish,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetectLanguage(tc.text); got != tc.expected {
				t.Errorf("DetectLanguage(%q) = %s, expected %s", tc.text, got, tc.expected)
			}
		})
	}
}
