package extract

// Rule locates one candidate source for an article field. Query is a CSS
// selector evaluated against the whole document. Attr, when non-empty, names
// the attribute holding the value for elements without useful text content
// (meta tags); otherwise the element's rendered text is used.
type Rule struct {
	Query string
	Attr  string
}

// Default strings returned when no rule in a field's cascade produces a
// usable value. Callers must compare against these rather than expecting
// errors; extraction never fails.
const (
	NoTitle   = "No title found"
	NoContent = "No content available"
	NoAuthor  = "Author not found"
)

// titleRules go from the most common headline placement down to
// site-convention classes. Trying h1 before the title tag keeps page-name
// suffixes ("... - News Site") out of the result when a real headline exists.
var titleRules = []Rule{
	{Query: "h1"},
	{Query: "title"},
	{Query: `[data-testid="headline"]`},
	{Query: ".headline"},
	{Query: ".article-title"},
}

// contentRules range from highly specific article-body containers down to
// every paragraph in the document as a last resort.
var contentRules = []Rule{
	{Query: "div.zn-body__paragraph"},
	{Query: `div[data-testid="article-text"]`},
	{Query: "div.article-content p"},
	{Query: "article p"},
	{Query: "main p"},
	{Query: ".content p"},
	{Query: "p"},
}

// authorRules is the direct tier of the author cascade: byline classes,
// data attributes, structured data, rel attributes, tag+class combinations,
// and finally meta tags whose value lives in the content attribute.
var authorRules = []Rule{
	{Query: ".author"},
	{Query: ".author-name"},
	{Query: ".byline"},
	{Query: ".byline-author"},
	{Query: ".article-author"},
	{Query: ".writer"},
	{Query: ".journalist"},
	{Query: ".reporter"},
	{Query: ".by-author"},
	{Query: ".post-author"},
	{Query: ".story-author"},
	{Query: `[data-testid="author"]`},
	{Query: `[data-testid="byline"]`},
	{Query: "[data-author]"},
	{Query: `[itemprop="author"]`},
	{Query: `[itemprop="name"]`},
	{Query: `[rel="author"]`},
	{Query: "span.author"},
	{Query: "div.author"},
	{Query: "p.author"},
	{Query: "a.author"},
	{Query: "span.byline"},
	{Query: "div.byline"},
	{Query: `meta[name="author"]`, Attr: "content"},
	{Query: `meta[property="article:author"]`, Attr: "content"},
}

// authorMarkers drive the text-pattern tier: the literal byline prefixes
// searched for across all text nodes, in this order.
var authorMarkers = []string{
	"By ",
	"Written by ",
	"Author: ",
	"Reporter: ",
	"Journalist: ",
}
