package domain

import "github.com/google/uuid"

// ClassificationType names the next action for a user-submitted URL.
type ClassificationType string

const (
	ClassificationFeedAdded       ClassificationType = "feed_added"
	ClassificationFeedExists      ClassificationType = "feed_exists"
	ClassificationFeedsDiscovered ClassificationType = "feeds_discovered"
	ClassificationArticleDetected ClassificationType = "article_detected"
	ClassificationUnknown         ClassificationType = "unknown"
)

// FeedKind is the syndication format advertised by a discovered feed.
type FeedKind string

const (
	FeedKindRSS  FeedKind = "rss"
	FeedKindAtom FeedKind = "atom"
)

// DiscoveredFeed is a feed URL found on an HTML page or by probing conventional paths.
type DiscoveredFeed struct {
	URL   string   `json:"url"`
	Title string   `json:"title"`
	Type  FeedKind `json:"type"`
}

// FeedSummary is the short feed description returned after subscribing.
type FeedSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	URL        string    `json:"url"`
	SiteURL    string    `json:"siteUrl,omitempty"`
	FaviconURL string    `json:"faviconUrl,omitempty"`
}

// ArticleMetadata is scraped from a single article page.
type ArticleMetadata struct {
	IsArticle   bool   `json:"-"`
	Title       string `json:"title,omitempty"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Content     string `json:"content,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Suggestion is the best-effort fallback for pages that are neither feeds nor articles.
type Suggestion struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Classification is the result of running a URL through the discovery chain.
type Classification struct {
	Type          ClassificationType `json:"type"`
	Message       string             `json:"message"`
	Feed          *FeedSummary       `json:"feed,omitempty"`
	ArticlesAdded int                `json:"articlesAdded,omitempty"`
	Feeds         []DiscoveredFeed   `json:"feeds,omitempty"`
	Article       *ArticleMetadata   `json:"article,omitempty"`
	Suggestion    *Suggestion        `json:"suggestion,omitempty"`
}

// Page is a fetched web document used by discovery.
type Page struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        string
}
