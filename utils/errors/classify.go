package errors

import (
	"errors"

	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/utils/validator"
)

// FromDomainError wraps err in an AppContextError whose code reflects the
// domain condition behind it. An existing AppContextError is enriched instead.
func FromDomainError(err error, layer, component, operation string, context map[string]any) *AppContextError {
	var appErr *AppContextError
	if errors.As(err, &appErr) {
		return EnrichWithContext(appErr, layer, component, operation, context)
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return NewAppContextError(CodeValidation, validationErr.Error(), layer, component, operation, err, context)
	}

	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		code := CodeExternalAPI
		if fetchErr.Kind == domain.FetchErrorTimeout {
			code = CodeTimeout
		}
		return NewAppContextError(code, fetchErr.Message, layer, component, operation, err, context)
	}

	switch {
	case errors.Is(err, domain.ErrFeedNotFound),
		errors.Is(err, domain.ErrArticleNotFound),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrSavedArticleNotFound),
		errors.Is(err, domain.ErrNoFeedsFound):
		return NewNotFoundContextError(err.Error(), layer, component, operation, err, context)
	case errors.Is(err, domain.ErrFeedAlreadyExists):
		return NewAppContextError(CodeConflict, "This feed is already in your subscription list", layer, component, operation, err, context)
	case errors.Is(err, domain.ErrTagAlreadyExists):
		return NewAppContextError(CodeConflict, err.Error(), layer, component, operation, err, context)
	case errors.Is(err, domain.ErrUnsupportedContentType):
		return NewAppContextError(CodeUnsupported, err.Error(), layer, component, operation, err, context)
	case errors.Is(err, domain.ErrInvalidURL),
		errors.Is(err, domain.ErrNotManualArticle),
		errors.Is(err, domain.ErrInvalidTagName),
		errors.Is(err, domain.ErrInvalidArticleData):
		return NewAppContextError(CodeValidation, err.Error(), layer, component, operation, err, context)
	case errors.Is(err, domain.ErrFeedHasNoTitle):
		return NewAppContextError(CodeExternalAPI, err.Error(), layer, component, operation, err, context)
	}

	return NewUnknownContextError("internal server error", layer, component, operation, err, context)
}
