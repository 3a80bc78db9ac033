package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/utils/validator"
)

func TestAppContextError_Error(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseContextError("insert failed", "driver", "FeedDB", "InsertArticleIfNew", cause, nil)

	assert.Equal(t, "[driver:FeedDB:InsertArticleIfNew] DATABASE_ERROR: insert failed (caused by: connection reset)", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestAppContextError_SafeMessage(t *testing.T) {
	dbErr := NewDatabaseContextError("pq: relation feeds does not exist", "driver", "FeedDB", "op", nil, nil)
	assert.Equal(t, "internal server error", dbErr.ToHTTPResponse().Message)

	validation := NewValidationContextError("URL is required", "rest", "RESTHandler", "op", nil)
	assert.Equal(t, "URL is required", validation.ToHTTPResponse().Message)
	assert.Equal(t, http.StatusBadRequest, validation.HTTPStatusCode())
}

func TestFromDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"feed not found", fmt.Errorf("lookup: %w", domain.ErrFeedNotFound), CodeNotFound, http.StatusNotFound},
		{"no feeds discovered", domain.ErrNoFeedsFound, CodeNotFound, http.StatusNotFound},
		{"feed exists", domain.ErrFeedAlreadyExists, CodeConflict, http.StatusConflict},
		{"timeout", domain.NewFetchError(domain.FetchErrorTimeout, nil), CodeTimeout, http.StatusGatewayTimeout},
		{"unreachable", domain.NewFetchError(domain.FetchErrorUnreachable, nil), CodeExternalAPI, http.StatusBadGateway},
		{"unsupported", domain.ErrUnsupportedContentType, CodeUnsupported, http.StatusBadRequest},
		{"content type", &domain.ContentTypeError{ContentType: "image/png"}, CodeUnsupported, http.StatusBadRequest},
		{"invalid body", &validator.ValidationError{Errors: map[string]string{"url": "url is required"}}, CodeValidation, http.StatusBadRequest},
		{"not manual", domain.ErrNotManualArticle, CodeValidation, http.StatusBadRequest},
		{"too large", domain.NewFetchError(domain.FetchErrorTooLarge, nil), CodeExternalAPI, http.StatusBadGateway},
		{"tag not found", domain.ErrTagNotFound, CodeNotFound, http.StatusNotFound},
		{"bookmark not found", domain.ErrSavedArticleNotFound, CodeNotFound, http.StatusNotFound},
		{"tag exists", &domain.TagExistsError{Name: "go"}, CodeConflict, http.StatusConflict},
		{"bad tag name", domain.ErrInvalidTagName, CodeValidation, http.StatusBadRequest},
		{"unknown", stderrors.New("boom"), CodeUnknown, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDomainError(tt.err, "rest", "RESTHandler", "test", nil)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantStatus, got.HTTPStatusCode())
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestFromDomainError_ContentTypeMessage(t *testing.T) {
	got := FromDomainError(&domain.ContentTypeError{ContentType: "image/png"}, "rest", "RESTHandler", "add_smart", nil)
	assert.Equal(t, "Cannot handle content type: image/png", got.Message)
}

func TestFromDomainError_TagConflictMessage(t *testing.T) {
	got := FromDomainError(&domain.TagExistsError{Name: "go"}, "rest", "RESTHandler", "create_tag", nil)
	assert.Equal(t, `Tag "go" already exists`, got.Message)
}

func TestFromDomainError_EnrichesExisting(t *testing.T) {
	original := NewValidationContextError("bad", "usecase", "Discover", "classify", map[string]any{"url": "x"})
	got := FromDomainError(original, "rest", "RESTHandler", "add_smart", map[string]any{"path": "/v1/feeds"})

	assert.Equal(t, CodeValidation, got.Code)
	assert.Equal(t, "rest", got.Layer)
	assert.Equal(t, "x", got.Context["url"])
	assert.Equal(t, "/v1/feeds", got.Context["path"])
}
