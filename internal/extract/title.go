package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// Title extracts the article headline. Candidates are taken as trimmed
// element text; no author-style normalization applies to titles.
func Title(doc *goquery.Document) Field {
	if v, q, ok := matchFirst(doc, titleRules, nil); ok {
		log.Debug().Str("rule", q).Msg("title extracted")
		return Field{Value: v, Rule: q}
	}
	log.Warn().Msg("no title found using any rule")
	return Field{Value: NoTitle}
}
