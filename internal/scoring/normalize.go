package scoring

import "strings"

// Normalize canonicalizes a free-text answer so variant formats compare
// equal: "(5, 6)", "5,6" and "5.6" all normalize to "5.6", and "50%" to
// "50". Order matters: commas become periods after parentheses are gone.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		case '(', ')':
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, "%", "")
	return s
}
