package html_parser

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// StripTags returns the visible text of an HTML fragment with whitespace
// collapsed. script, style and noscript bodies are skipped and entities decoded.
func StripTags(raw string) string {
	if raw == "" {
		return ""
	}
	return stripCore(strings.NewReader(raw))
}

func stripCore(r io.Reader) string {
	var b strings.Builder
	z := html.NewTokenizer(r)

	depthSkip := 0

	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			return normalizeWS(b.String())

		case html.StartTagToken:
			name, _ := z.TagName()
			if skipTag(name) {
				depthSkip++
			}
			b.WriteByte(' ')

		case html.EndTagToken:
			name, _ := z.TagName()
			if skipTag(name) && depthSkip > 0 {
				depthSkip--
			}
			b.WriteByte(' ')

		case html.SelfClosingTagToken:
			b.WriteByte(' ')

		case html.TextToken:
			if depthSkip == 0 {
				b.Write(z.Text())
			}
		}
	}
}

func skipTag(name []byte) bool {
	switch string(name) {
	case "script", "style", "noscript":
		return true
	default:
		return false
	}
}

func normalizeWS(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Truncate cuts s to at most limit characters without splitting a rune.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return strings.TrimSpace(string(runes[:limit]))
}

// PlainSummary strips markup from raw and truncates the text to limit characters.
func PlainSummary(raw string, limit int) string {
	return Truncate(StripTags(raw), limit)
}
