package domain

import (
	"errors"
	"fmt"
)

var (
	// Feed errors
	ErrFeedNotFound      = errors.New("feed not found")
	ErrFeedAlreadyExists = errors.New("feed already exists")
	ErrFeedHasNoTitle    = errors.New("Feed has no title")

	// Article errors
	ErrArticleNotFound    = errors.New("article not found")
	ErrNotManualArticle   = errors.New("can only delete manually added articles")
	ErrInvalidArticleData = errors.New("invalid article data")

	// Curation errors
	ErrTagNotFound          = errors.New("tag not found")
	ErrTagAlreadyExists     = errors.New("tag already exists")
	ErrSavedArticleNotFound = errors.New("saved article not found")
	ErrInvalidTagName       = errors.New("tag names must be 1 to 50 characters")

	// Discovery errors
	ErrUnsupportedContentType = errors.New("unsupported content type")
	ErrInvalidURL             = errors.New("invalid url")
	ErrNoFeedsFound           = errors.New("Could not discover any RSS or Atom feeds at this URL")
)

// FetchErrorKind classifies a failed feed or page retrieval.
type FetchErrorKind string

const (
	FetchErrorUnreachable   FetchErrorKind = "unreachable"
	FetchErrorTimeout       FetchErrorKind = "timeout"
	FetchErrorInvalidFormat FetchErrorKind = "invalid_format"
	FetchErrorHTTPStatus    FetchErrorKind = "http_status"
	FetchErrorTooLarge      FetchErrorKind = "too_large"
	FetchErrorUnknown       FetchErrorKind = "unknown"
)

// FetchError carries a user-legible message for a failed network read or parse.
// Error() returns only the message so it can be stored as a feed's last error.
type FetchError struct {
	Kind       FetchErrorKind
	Message    string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError builds a FetchError with the canonical message for its kind.
func NewFetchError(kind FetchErrorKind, cause error) *FetchError {
	fe := &FetchError{Kind: kind, Err: cause}
	switch kind {
	case FetchErrorUnreachable:
		fe.Message = "Unable to reach feed URL. Please check the URL and try again."
	case FetchErrorTimeout:
		fe.Message = "Feed request timed out. The server may be slow or unreachable."
	case FetchErrorInvalidFormat:
		fe.Message = "Invalid RSS/Atom feed format."
	case FetchErrorTooLarge:
		fe.Message = "Feed is too large to process."
	default:
		if cause != nil {
			fe.Message = fmt.Sprintf("Failed to parse feed: %s", cause.Error())
		} else {
			fe.Message = "Failed to parse feed"
		}
	}
	return fe
}

// NewHTTPStatusError builds a FetchError for a non-2xx response.
func NewHTTPStatusError(statusCode int) *FetchError {
	return &FetchError{
		Kind:       FetchErrorHTTPStatus,
		Message:    fmt.Sprintf("Feed server responded with HTTP %d", statusCode),
		StatusCode: statusCode,
	}
}

// IsFetchError reports whether err is a FetchError of the given kind.
func IsFetchError(err error, kind FetchErrorKind) bool {
	var fe *FetchError
	if !errors.As(err, &fe) {
		return false
	}
	return fe.Kind == kind
}

// ContentTypeError reports a fetched page that is neither a feed nor HTML.
// It matches ErrUnsupportedContentType under errors.Is.
type ContentTypeError struct {
	ContentType string
}

func (e *ContentTypeError) Error() string {
	return "Cannot handle content type: " + e.ContentType
}

func (e *ContentTypeError) Is(target error) bool {
	return target == ErrUnsupportedContentType
}

// TagExistsError names the tag that collided with an existing one.
// It matches ErrTagAlreadyExists under errors.Is.
type TagExistsError struct {
	Name string
}

func (e *TagExistsError) Error() string {
	return fmt.Sprintf("Tag %q already exists", e.Name)
}

func (e *TagExistsError) Is(target error) bool {
	return target == ErrTagAlreadyExists
}
