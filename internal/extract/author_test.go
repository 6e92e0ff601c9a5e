package extract

import (
	"strings"
	"testing"
)

func TestAuthor_DirectRuleBeatsTextPattern(t *testing.T) {
	doc := mustDoc(t, `<html><body>
	  <span class="author">Jane Doe</span>
	  <p>By John Smith</p>
	</body></html>`)

	got := Author(doc)
	if got.Value != "Jane Doe" {
		t.Fatalf("expected direct rule to win, got %q", got.Value)
	}
	if got.Rule != ".author" {
		t.Fatalf("expected .author rule, got %q", got.Rule)
	}
}

func TestAuthor_DirectRuleNormalizesCandidates(t *testing.T) {
	doc := mustDoc(t, `<html><body>
	  <div class="byline"> By Jane Doe |</div>
	</body></html>`)

	if got := Author(doc); got.Value != "Jane Doe" {
		t.Fatalf("expected normalized byline, got %q", got.Value)
	}
}

func TestAuthor_SkipsRejectedCandidatesWithinRule(t *testing.T) {
	// The first .author element fails validation (digits only); the second
	// matched element must still be considered before moving on.
	doc := mustDoc(t, `<html><body>
	  <span class="author">12345</span>
	  <span class="author">Jane Doe</span>
	</body></html>`)

	if got := Author(doc); got.Value != "Jane Doe" {
		t.Fatalf("expected second element within rule, got %q", got.Value)
	}
}

func TestAuthor_KeepsNonASCIIByline(t *testing.T) {
	// A 60-character Cyrillic byline is well inside the character window even
	// though it is over 100 bytes; the cascade must not reject it.
	name := strings.Repeat("й", 60)
	doc := mustDoc(t, `<html><body><span class="author">`+name+`</span></body></html>`)

	got := Author(doc)
	if got.Value != name {
		t.Fatalf("expected non-ASCII byline to survive, got %q", got.Value)
	}
	if got.Rule != ".author" {
		t.Fatalf("expected .author rule, got %q", got.Rule)
	}
}

func TestAuthor_MetaTagContentAttribute(t *testing.T) {
	doc := mustDoc(t, `<html><head>
	  <meta name="author" content="Sam Reporter">
	</head><body></body></html>`)

	got := Author(doc)
	if got.Value != "Sam Reporter" {
		t.Fatalf("expected meta content value, got %q", got.Value)
	}
	if got.Rule != `meta[name="author"]` {
		t.Fatalf("unexpected rule: %q", got.Rule)
	}
}

func TestAuthor_ItempropAndRel(t *testing.T) {
	doc := mustDoc(t, `<html><body>
	  <span itemprop="author">Ada Byline</span>
	</body></html>`)
	if got := Author(doc); got.Value != "Ada Byline" {
		t.Fatalf("expected itemprop author, got %q", got.Value)
	}

	doc = mustDoc(t, `<html><body>
	  <a rel="author" href="/staff/lee">Lee Staff</a>
	</body></html>`)
	if got := Author(doc); got.Value != "Lee Staff" {
		t.Fatalf("expected rel author, got %q", got.Value)
	}
}

func TestAuthor_ClassSubstringScan(t *testing.T) {
	// "authored-by" is not an exact class any direct rule targets, so only
	// the class-substring tier can find it.
	doc := mustDoc(t, `<html><body>
	  <div class="authored-by">Jane Doe</div>
	</body></html>`)

	got := Author(doc)
	if got.Value != "Jane Doe" {
		t.Fatalf("expected class scan hit, got %q", got.Value)
	}
	if got.Rule != "class~author" {
		t.Fatalf("unexpected rule: %q", got.Rule)
	}
}

func TestAuthor_AttributeSubstringScan(t *testing.T) {
	doc := mustDoc(t, `<html><body>
	  <span data-module="authorbox">Jane Doe</span>
	</body></html>`)

	got := Author(doc)
	if got.Value != "Jane Doe" {
		t.Fatalf("expected attribute scan hit, got %q", got.Value)
	}
	if got.Rule != "attr~author" {
		t.Fatalf("unexpected rule: %q", got.Rule)
	}
}

func TestAuthor_TextPatternTier(t *testing.T) {
	doc := mustDoc(t, `<html><body>
	  <p>By John Smith | Senior Correspondent</p>
	</body></html>`)

	got := Author(doc)
	if got.Value != "John Smith" {
		t.Fatalf("expected pattern-sliced author, got %q", got.Value)
	}
	if got.Rule != "pattern:By " {
		t.Fatalf("unexpected rule: %q", got.Rule)
	}
}

func TestAuthor_TextPatternSkipsNormalizer(t *testing.T) {
	// The sliced value exceeds the normalizer's 100-char cap; the pattern
	// tier returns it anyway because its output is not normalized.
	long := strings.Repeat("A", 120)
	doc := mustDoc(t, `<html><body><p>Written by `+long+`</p></body></html>`)

	if got := Author(doc); got.Value != long {
		t.Fatalf("expected raw pattern result, got %q", got.Value)
	}
}

func TestAuthor_PatternOrderAcrossMarkers(t *testing.T) {
	// "By " is searched before "Author: " even when both appear.
	doc := mustDoc(t, `<html><body>
	  <p>Author: Second Choice</p>
	  <p>By First Choice</p>
	</body></html>`)

	if got := Author(doc); got.Value != "First Choice" {
		t.Fatalf("expected earlier marker to win, got %q", got.Value)
	}
}

func TestAuthor_DefaultOnMiss(t *testing.T) {
	doc := mustDoc(t, `<html><body><p>No byline anywhere here.</p></body></html>`)
	got := Author(doc)
	if got.Value != NoAuthor {
		t.Fatalf("expected %q, got %q", NoAuthor, got.Value)
	}
	if got.Rule != "" {
		t.Fatalf("expected empty rule on default, got %q", got.Rule)
	}
}

func TestExtractors_NeverEmptyOnEmptyDocument(t *testing.T) {
	doc := mustDoc(t, "")
	if got := Title(doc); got.Value != NoTitle {
		t.Fatalf("title default: got %q", got.Value)
	}
	if got := Content(doc); got.Value != NoContent {
		t.Fatalf("content default: got %q", got.Value)
	}
	if got := Author(doc); got.Value != NoAuthor {
		t.Fatalf("author default: got %q", got.Value)
	}
}
