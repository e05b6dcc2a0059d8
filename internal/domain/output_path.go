package domain

import "strings"

// SanitizeOutputPath trims p and replaces every rune that is not a letter,
// digit or one of "_ . / -" with an underscore.
func SanitizeOutputPath(p string) string {
	p = strings.TrimSpace(p)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '_', r == '.', r == '/', r == '-':
			return r
		}
		return '_'
	}, p)
}
