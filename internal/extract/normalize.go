package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Attribution prefixes stripped from author candidates, checked in order;
// at most one is removed, case-insensitively.
var authorPrefixes = []string{
	"By ",
	"Author: ",
	"Written by ",
	"Reporter: ",
	"Journalist: ",
}

// Trailing separators stripped from author candidates. The last entry is the
// bullet character as it appears when a UTF-8 page is mis-decoded as Latin-1;
// it shows up verbatim in scraped bylines often enough to strip.
var authorSuffixes = []string{
	" |",
	" -",
	" â€¢",
}

// Normalize cleans a raw author candidate and returns the cleaned string, or
// "" when the candidate is unusable. Rejection is silent: callers treat ""
// as "try the next candidate". The gates, in order: non-empty after trim,
// one prefix strip, one suffix strip, whitespace collapse, length within
// 2..100, and at least one letter.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for _, p := range authorPrefixes {
		if len(s) >= len(p) && strings.EqualFold(s[:len(p)], p) {
			s = strings.TrimSpace(s[len(p):])
			break
		}
	}
	for _, suf := range authorSuffixes {
		if strings.HasSuffix(s, suf) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suf))
			break
		}
	}
	s = strings.Join(strings.Fields(s), " ")
	// Length is measured in characters, not bytes; non-ASCII bylines must
	// pass the same 2..100 window as ASCII ones.
	if n := utf8.RuneCountInString(s); n < 2 || n > 100 {
		return ""
	}
	if !containsLetter(s) {
		return ""
	}
	return s
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
