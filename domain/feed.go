package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// FeedErrorThreshold is the number of consecutive failed syncs after which a feed is deactivated.
	FeedErrorThreshold = 10

	ManualFeedURL   = "manual://additions"
	ManualFeedTitle = "Manual Additions"
)

// Feed represents a user's subscription to a remote RSS/Atom source
type Feed struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	UserID        uuid.UUID  `json:"userId" db:"user_id"`
	URL           string     `json:"url" db:"url"`
	Title         string     `json:"title" db:"title"`
	Description   string     `json:"description,omitempty" db:"description"`
	SiteURL       string     `json:"siteUrl,omitempty" db:"site_url"`
	FaviconURL    string     `json:"faviconUrl,omitempty" db:"favicon_url"`
	LastFetchedAt *time.Time `json:"lastFetchedAt,omitempty" db:"last_fetched_at"`
	LastError     string     `json:"lastError,omitempty" db:"last_error"`
	ErrorCount    int        `json:"errorCount" db:"error_count"`
	IsActive      bool       `json:"isActive" db:"is_active"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

// IsManual reports whether the feed is the per-user pseudo-feed holding manually added articles.
func (f Feed) IsManual() bool {
	return f.URL == ManualFeedURL
}

// FeedMetadata is the subset of feed fields refreshed by every successful sync.
type FeedMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	SiteURL     string `json:"siteUrl,omitempty"`
	FaviconURL  string `json:"faviconUrl,omitempty"`
}

// ParsedFeed is the normalized in-memory form of a fetched feed document.
type ParsedFeed struct {
	Title       string
	Description string
	SiteURL     string
	FaviconURL  string
	Items       []ParsedArticle
}

// Metadata returns the feed-level fields of the parsed document.
func (p *ParsedFeed) Metadata() FeedMetadata {
	return FeedMetadata{
		Title:       p.Title,
		Description: p.Description,
		SiteURL:     p.SiteURL,
		FaviconURL:  p.FaviconURL,
	}
}

// ParsedArticle is one candidate article produced by the parser, already identified and sanitized.
type ParsedArticle struct {
	GUID        string     `json:"guid"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Author      string     `json:"author,omitempty"`
	Content     string     `json:"content,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// FeedHealth is the error counter state after recording a failed sync.
type FeedHealth struct {
	ErrorCount int  `json:"errorCount"`
	IsActive   bool `json:"isActive"`
}
