package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article represents one entry ingested from a Feed
type Article struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	FeedID      uuid.UUID  `json:"feedId" db:"feed_id"`
	GUID        string     `json:"guid" db:"guid"`
	Title       string     `json:"title" db:"title"`
	URL         string     `json:"url" db:"url"`
	Author      string     `json:"author,omitempty" db:"author"`
	Content     string     `json:"content,omitempty" db:"content"`
	ContentKey  string     `json:"-" db:"content_key"`
	Summary     string     `json:"summary,omitempty" db:"summary"`
	ImageURL    string     `json:"imageUrl,omitempty" db:"image_url"`
	PublishedAt *time.Time `json:"publishedAt,omitempty" db:"published_at"`
	IsRead      bool       `json:"isRead" db:"is_read"`
	ReadAt      *time.Time `json:"readAt,omitempty" db:"read_at"`
	IsStarred   bool       `json:"isStarred" db:"is_starred"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// InsertResult tells the caller whether InsertArticleIfNew created a row.
type InsertResult struct {
	Inserted bool
	ID       uuid.UUID
}

// ArticleFilter narrows article listings for one user.
type ArticleFilter struct {
	FeedID     *uuid.UUID
	UnreadOnly bool
	Limit      int
}

// ManualArticle is a user-submitted article stored in the Manual Additions pseudo-feed.
type ManualArticle struct {
	Title   string `json:"title" validate:"required,max=500"`
	URL     string `json:"url" validate:"required,http_url"`
	Content string `json:"content,omitempty"`
	Summary string `json:"summary,omitempty"`
	Author  string `json:"author,omitempty" validate:"max=200"`
}
