package domain

import (
	"strings"
	"unicode"
)

// DefaultAnswerMaxLength caps a sanitized answer, counted in runes.
const DefaultAnswerMaxLength = 50

// SanitizeAnswer keeps letters, digits, whitespace and the characters "_", "."
// and "/", trims surrounding whitespace and truncates to maxLen runes.
// A non-positive maxLen falls back to DefaultAnswerMaxLength.
func SanitizeAnswer(raw string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = DefaultAnswerMaxLength
	}

	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range strings.TrimSpace(raw) {
		if allowedAnswerRune(r) {
			b.WriteRune(r)
		}
	}

	out := strings.TrimSpace(b.String())
	runes := []rune(out)
	if len(runes) > maxLen {
		out = strings.TrimRightFunc(string(runes[:maxLen]), unicode.IsSpace)
	}
	return out
}

func allowedAnswerRune(r rune) bool {
	switch {
	case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r):
		return true
	case r == '_', r == '.', r == '/':
		return true
	default:
		return false
	}
}
