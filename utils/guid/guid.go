// Package guid derives the stable per-feed identity of an article.
package guid

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Derive returns the identifier used to deduplicate an article inside its feed.
// The explicit guid wins, then the article link, then a hash of title and the
// raw published string. The same inputs always yield the same value.
func Derive(explicitGUID, link, title, published string) string {
	if g := strings.TrimSpace(explicitGUID); g != "" {
		return g
	}
	if l := strings.TrimSpace(link); l != "" {
		return l
	}

	sum := sha256.Sum256([]byte(title + "|" + published))
	return hex.EncodeToString(sum[:])
}
