package html_parser

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// articlePolicy is safe for concurrent use once built.
var articlePolicy = newArticlePolicy()

func newArticlePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements("p", "br", "strong", "em", "u", "a")
	p.AllowElements("ul", "ol", "li")
	p.AllowElements("blockquote", "code", "pre")
	p.AllowElements("h1", "h2", "h3", "h4", "h5", "h6")
	p.AllowElements("img", "figure", "figcaption")
	p.AllowElements("table", "thead", "tbody", "tr", "th", "td")

	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowAttrs("src", "alt").OnElements("img")
	p.AllowAttrs("title").Globally()

	// javascript:, data: and friends are dropped along with the attribute
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)
	p.RequireNoFollowOnLinks(false)
	p.RequireNoReferrerOnLinks(false)

	return p
}

// SanitizeHTML reduces feed-supplied HTML to the article allow-list. Scripts,
// styles, event handler attributes and unsafe URL schemes never survive.
func SanitizeHTML(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return strings.TrimSpace(articlePolicy.Sanitize(raw))
}
