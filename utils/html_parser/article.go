package html_parser

import (
	"net/url"
	"regexp"
	"strings"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/phareim/reader/domain"
)

// ArticleExcerptLimit caps the text excerpt stored for detected articles.
const ArticleExcerptLimit = 1000

var jsonLDArticleType = regexp.MustCompile(`"@type"\s*:\s*"(?:News|Blog)?Article"`)

const articleContainerSelector = `[class^="article"], [class^="post"], [class^="entry"], [id^="article"], [id^="post"], [id^="content"]`

// ExtractTitle returns the best available page title: og:title, twitter:title,
// <title>, then the first <h1>.
func ExtractTitle(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	return titleOf(doc)
}

func titleOf(doc *goquery.Document) string {
	if t := metaContent(doc, "og:title", "twitter:title"); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return normalizeWS(t)
	}
	return normalizeWS(doc.Find("h1").First().Text())
}

// ExtractArticleMetadata decides whether the page is a single article and,
// when it is, scrapes its metadata and a text excerpt.
func ExtractArticleMetadata(raw, pageURL string) domain.ArticleMetadata {
	meta := domain.ArticleMetadata{URL: pageURL}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return meta
	}

	meta.Title = titleOf(doc)
	if !isArticlePage(doc, raw) {
		return meta
	}

	meta.IsArticle = true
	meta.Description = metaContent(doc, "og:description", "twitter:description", "description")
	meta.Author = metaContent(doc, "article:author", "author")
	meta.PublishedAt = metaContent(doc, "article:published_time", "datePublished")

	base, _ := url.Parse(pageURL)
	meta.ImageURL = ResolveHTTPURL(metaContent(doc, "og:image", "twitter:image"), base)
	meta.Content = extractExcerpt(doc, raw, base)

	return meta
}

func isArticlePage(doc *goquery.Document, raw string) bool {
	if strings.EqualFold(metaContent(doc, "og:type"), "article") {
		return true
	}

	for _, name := range []string{"article:published_time", "article:author", "article:section"} {
		if metaContent(doc, name) != "" {
			return true
		}
	}

	isArticle := false
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if jsonLDArticleType.MatchString(s.Text()) {
			isArticle = true
			return false
		}
		return true
	})
	if isArticle {
		return true
	}

	if doc.Find("article").Length() > 0 {
		return true
	}

	return doc.Find(articleContainerSelector).Length() > 0
}

// extractExcerpt prefers readability's text and falls back to the <article> element.
func extractExcerpt(doc *goquery.Document, raw string, base *url.URL) string {
	if article, err := readability.FromReader(strings.NewReader(raw), base); err == nil {
		var buf strings.Builder
		if err := article.RenderText(&buf); err == nil {
			if text := normalizeWS(buf.String()); text != "" {
				return Truncate(text, ArticleExcerptLimit)
			}
		}
	}

	node := doc.Find("article").First()
	if node.Length() == 0 {
		return ""
	}
	node.Find("script, style, noscript").Remove()
	return Truncate(normalizeWS(node.Text()), ArticleExcerptLimit)
}

// metaContent returns the first non-empty content of a <meta> tag matched by
// property or name, trying keys in order.
func metaContent(doc *goquery.Document, keys ...string) string {
	for _, key := range keys {
		for _, attr := range []string{"property", "name", "itemprop"} {
			sel := doc.Find("meta[" + attr + "='" + key + "']").First()
			if v := strings.TrimSpace(sel.AttrOr("content", "")); v != "" {
				return v
			}
		}
	}
	return ""
}
