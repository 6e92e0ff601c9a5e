package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
)

// Author extracts the byline through a four-tier cascade. Each tier runs
// only when every previous tier failed to produce a normalized non-empty
// string:
//
//  1. the direct rule list (authorRules), every matched element in document
//     order, candidates validated by Normalize;
//  2. any element whose class attribute contains "author";
//  3. any element with any attribute value containing "author";
//  4. literal byline markers found in raw text nodes.
//
// Tier 4 results keep their own trim/split cleanup and deliberately skip
// Normalize. A total miss yields NoAuthor.
func Author(doc *goquery.Document) Field {
	if v, q, ok := matchFirst(doc, authorRules, Normalize); ok {
		log.Debug().Str("rule", q).Msg("author extracted")
		return Field{Value: v, Rule: q}
	}
	if v, ok := authorByClassScan(doc); ok {
		log.Debug().Msg("author found by class scan")
		return Field{Value: v, Rule: "class~author"}
	}
	if v, ok := authorByAttrScan(doc); ok {
		log.Debug().Msg("author found by attribute scan")
		return Field{Value: v, Rule: "attr~author"}
	}
	if v, m, ok := authorByTextPattern(doc); ok {
		log.Debug().Str("marker", m).Msg("author found by text pattern")
		return Field{Value: v, Rule: "pattern:" + m}
	}
	log.Warn().Msg("no author found using any method")
	return Field{Value: NoAuthor}
}

// authorByClassScan walks every element carrying a class attribute, in
// document order, and returns the first normalized text of one whose joined
// class string contains "author".
func authorByClassScan(doc *goquery.Document) (string, bool) {
	var found string
	doc.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		classes, _ := s.Attr("class")
		if !strings.Contains(strings.ToLower(classes), "author") {
			return true
		}
		if v := Normalize(s.Text()); v != "" {
			found = v
			return false
		}
		return true
	})
	return found, found != ""
}

// authorByAttrScan inspects every attribute of every element, in document
// order then attribute declaration order, for a value containing "author",
// and returns the first normalized element text found that way.
func authorByAttrScan(doc *goquery.Document) (string, bool) {
	var found string
	walkNodes(doc, func(n *html.Node) bool {
		if n.Type != html.ElementNode {
			return true
		}
		for _, a := range n.Attr {
			if !strings.Contains(strings.ToLower(a.Val), "author") {
				continue
			}
			if v := Normalize(nodeText(n)); v != "" {
				found = v
				return false
			}
		}
		return true
	})
	return found, found != ""
}

// authorByTextPattern searches all text nodes for each byline marker in
// order. The candidate is the text after the marker's first occurrence,
// truncated at the first newline and then the first pipe, trimmed. The
// result is returned as-is, without Normalize.
func authorByTextPattern(doc *goquery.Document) (value, marker string, ok bool) {
	for _, m := range authorMarkers {
		var found string
		walkNodes(doc, func(n *html.Node) bool {
			if n.Type != html.TextNode {
				return true
			}
			text := strings.TrimSpace(n.Data)
			if !strings.Contains(text, m) {
				return true
			}
			after := strings.SplitN(text, m, 2)[1]
			after, _, _ = strings.Cut(after, "\n")
			after, _, _ = strings.Cut(after, "|")
			if v := strings.TrimSpace(after); v != "" {
				found = v
				return false
			}
			return true
		})
		if found != "" {
			return found, m, true
		}
	}
	return "", "", false
}

// walkNodes visits the document tree depth-first in document order. visit
// returns false to stop the walk.
func walkNodes(doc *goquery.Document, visit func(*html.Node) bool) {
	var dfs func(*html.Node) bool
	dfs = func(n *html.Node) bool {
		if !visit(n) {
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !dfs(c) {
				return false
			}
		}
		return true
	}
	for _, root := range doc.Selection.Nodes {
		if !dfs(root) {
			return
		}
	}
}

// nodeText concatenates the text of all descendant text nodes.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var dfs func(*html.Node)
	dfs = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			dfs(c)
		}
	}
	dfs(n)
	return b.String()
}
