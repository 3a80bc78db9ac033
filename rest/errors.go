package rest

import (
	"github.com/labstack/echo/v4"

	"github.com/phareim/reader/utils/errors"
	"github.com/phareim/reader/utils/logger"
	"github.com/phareim/reader/utils/metrics"
)

func requestContext(c echo.Context) map[string]any {
	return map[string]any{
		"path":       c.Request().URL.Path,
		"method":     c.Request().Method,
		"request_id": c.Response().Header().Get(HeaderRequestID),
	}
}

// handleError maps err to its HTTP status and a client-safe body.
func handleError(c echo.Context, err error, operation string) error {
	appErr := errors.FromDomainError(err, "rest", "RESTHandler", operation, requestContext(c))

	ctx := c.Request().Context()
	status := appErr.HTTPStatusCode()
	if status >= 500 {
		logger.Logger.ErrorContext(ctx, "REST handler error",
			"error", appErr.Error(),
			"error_code", appErr.Code,
			"operation", operation,
			"is_retryable", appErr.IsRetryable())
	} else {
		logger.Logger.WarnContext(ctx, "REST request rejected",
			"error", appErr.Error(),
			"error_code", appErr.Code,
			"operation", operation)
	}
	metrics.RecordError(operation, appErr.Code)

	return c.JSON(status, appErr.ToHTTPResponse())
}

func handleValidationError(c echo.Context, message, field string, value any) error {
	fields := requestContext(c)
	fields["field"] = field
	fields["value"] = value
	validationErr := errors.NewValidationContextError(message, "rest", "RESTHandler", "validateInput", fields)

	logger.Logger.WarnContext(c.Request().Context(), "REST validation error",
		"error", validationErr.Error(),
		"field", field)
	return c.JSON(validationErr.HTTPStatusCode(), validationErr.ToHTTPResponse())
}
