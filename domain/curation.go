package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// InboxTag selects saved articles that carry no tag.
	InboxTag = "__inbox__"

	MaxTagNameLength = 50
)

// Tag is a user-defined label attached to feeds and saved articles.
type Tag struct {
	ID                uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"userId" db:"user_id"`
	Name              string    `json:"name" db:"name"`
	Color             *string   `json:"color" db:"color"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	FeedCount         int       `json:"feedCount"`
	SavedArticleCount int       `json:"savedArticleCount"`
}

// TagPatch changes a tag. A nil Name keeps the name; Color is applied only
// when SetColor is true, and a nil Color then clears it.
type TagPatch struct {
	Name     *string
	Color    *string
	SetColor bool
}

// SavedArticleRef identifies a bookmark.
type SavedArticleRef struct {
	ID        uuid.UUID `json:"id"`
	ArticleID uuid.UUID `json:"articleId"`
	SavedAt   time.Time `json:"savedAt"`
}

// SavedArticle is a bookmarked article with the tags the user filed it under.
type SavedArticle struct {
	Article
	FeedTitle string    `json:"feedTitle"`
	SavedID   uuid.UUID `json:"savedId"`
	SavedAt   time.Time `json:"savedAt"`
	Tags      []string  `json:"tags"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// SavedCounts aggregates a user's bookmarks. ByTag holds InboxTag when some
// bookmarks are untagged; Tags lists the real tag names in order.
type SavedCounts struct {
	Total int                 `json:"total"`
	ByTag map[string]TagCount `json:"byTag"`
	Tags  []string            `json:"tags"`
}

// FeedDetail is a feed with its tag names and unread article count.
type FeedDetail struct {
	Feed
	Tags        []string `json:"tags"`
	UnreadCount int      `json:"unreadCount"`
}

// NormalizeTagName trims name and checks its length.
func NormalizeTagName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxTagNameLength {
		return "", ErrInvalidTagName
	}
	return name, nil
}

// NormalizeTagNames trims every name and drops repeats, keeping first-seen order.
func NormalizeTagNames(names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, raw := range names {
		name, err := NormalizeTagName(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}
