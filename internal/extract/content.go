package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// Content extracts the article body. Unlike the other fields, the first rule
// with any non-empty match contributes *all* of its matched elements: each
// is trimmed, empties are dropped, and the survivors are joined with single
// spaces in document order.
func Content(doc *goquery.Document) Field {
	for _, r := range contentRules {
		sel := doc.Find(r.Query)
		if sel.Length() == 0 {
			continue
		}
		var parts []string
		sel.Each(func(_ int, s *goquery.Selection) {
			if t := strings.TrimSpace(s.Text()); t != "" {
				parts = append(parts, t)
			}
		})
		if len(parts) > 0 {
			log.Debug().Str("rule", r.Query).Int("paragraphs", len(parts)).Msg("content extracted")
			return Field{Value: strings.Join(parts, " "), Rule: r.Query}
		}
	}
	log.Warn().Msg("no content paragraphs found")
	return Field{Value: NoContent}
}
