package rest

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/phareim/reader/domain"
)

type urlRequest struct {
	URL string `json:"url" validate:"required,max=2048"`
}

type readRequest struct {
	IsRead *bool `json:"isRead" validate:"required"`
}

type starRequest struct {
	IsStarred *bool `json:"isStarred" validate:"required"`
}

type markAllReadRequest struct {
	FeedID *uuid.UUID `json:"feedId"`
}

type feedsResponse struct {
	Feeds []domain.Feed `json:"feeds"`
}

type subscribeResponse struct {
	Feed          *domain.Feed `json:"feed"`
	ArticlesAdded int          `json:"articlesAdded"`
}

type discoverResponse struct {
	Feeds []domain.DiscoveredFeed `json:"feeds"`
}

type deleteFeedResponse struct {
	Success         bool `json:"success"`
	DeletedArticles int  `json:"deletedArticles"`
}

type articlesResponse struct {
	Articles []domain.Article `json:"articles"`
}

type manualArticleResponse struct {
	Article *domain.Article `json:"article"`
	Created bool            `json:"created"`
}

type markAllReadResponse struct {
	MarkedCount int `json:"markedCount"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type tagsRequest struct {
	Tags []string `json:"tags" validate:"required,max=100"`
}

type createTagRequest struct {
	Name  string  `json:"name" validate:"required,max=50"`
	Color *string `json:"color" validate:"omitempty,max=32"`
}

// nullableString tells an absent JSON field apart from an explicit null.
type nullableString struct {
	Set   bool
	Value *string
}

func (n *nullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if string(data) == "null" {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

type updateTagRequest struct {
	Name  *string        `json:"name"`
	Color nullableString `json:"color"`
}

type saveArticleResponse struct {
	Success      bool                    `json:"success"`
	SavedArticle *domain.SavedArticleRef `json:"savedArticle"`
}

type savedArticlesResponse struct {
	Articles []domain.SavedArticle `json:"articles"`
}

type tagNamesResponse struct {
	Success bool     `json:"success"`
	Tags    []string `json:"tags"`
}

type tagsResponse struct {
	Tags []domain.Tag `json:"tags"`
}
