package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Field is the outcome for one article field: the chosen text plus the rule
// that produced it. Rule is empty when the field fell back to its default;
// it exists for diagnostics only.
type Field struct {
	Value string
	Rule  string
}

// ruleValue reads the candidate string for one matched element: the named
// attribute for meta-style rules, the rendered text otherwise. Always
// trimmed; "" means the element had nothing usable.
func ruleValue(r Rule, s *goquery.Selection) string {
	if r.Attr != "" {
		v, _ := s.Attr(r.Attr)
		return strings.TrimSpace(v)
	}
	return strings.TrimSpace(s.Text())
}

// matchFirst runs the fallback cascade: rules are tried in order, and within
// a rule every matched element is tried in document order. clean, when
// non-nil, validates each candidate and may reject it by returning "". A
// rule whose matches all yield empty or rejected text falls through to the
// next rule. Returns the first surviving candidate and the query that
// produced it, or ok=false when the whole cascade misses.
func matchFirst(doc *goquery.Document, rules []Rule, clean func(string) string) (value, query string, ok bool) {
	for _, r := range rules {
		var found string
		doc.Find(r.Query).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			c := ruleValue(r, s)
			if clean != nil {
				c = clean(c)
			}
			if c == "" {
				return true
			}
			found = c
			return false
		})
		if found != "" {
			return found, r.Query, true
		}
	}
	return "", "", false
}
