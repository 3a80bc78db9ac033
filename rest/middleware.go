package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/phareim/reader/utils/errors"
	"github.com/phareim/reader/utils/logger"
)

const (
	HeaderRequestID = "X-Request-ID"
	// HeaderUserID carries the caller identity set by the authenticating proxy.
	HeaderUserID = "X-User-ID"

	userIDKey = "user_id"
)

func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(HeaderRequestID, requestID)

			ctx := logger.WithRequestID(c.Request().Context(), requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// UserMiddleware rejects requests without a valid user id header and makes
// the id available to handlers and log entries.
func UserMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderUserID)
			userID, err := uuid.Parse(raw)
			if err != nil {
				authErr := errors.NewAppContextError(errors.CodeUnauthorized, "authentication required",
					"rest", "RESTHandler", "authenticate", err, nil)
				return c.JSON(authErr.HTTPStatusCode(), authErr.ToHTTPResponse())
			}

			c.Set(userIDKey, userID)
			ctx := logger.WithUserID(c.Request().Context(), userID.String())
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func currentUser(c echo.Context) uuid.UUID {
	userID, _ := c.Get(userIDKey).(uuid.UUID)
	return userID
}

func LoggingMiddleware(baseLogger *slog.Logger) echo.MiddlewareFunc {
	contextLogger := logger.NewContextLogger(baseLogger)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path == "/health" || req.URL.Path == "/metrics" {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			duration := time.Since(start)

			ctx := c.Request().Context()
			status := c.Response().Status
			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration_ms", duration.Milliseconds(),
				"response_size", c.Response().Size,
			}

			log := contextLogger.WithContext(ctx)
			switch {
			case status >= http.StatusInternalServerError:
				log.ErrorContext(ctx, "request completed", attrs...)
			case status >= http.StatusBadRequest:
				log.WarnContext(ctx, "request completed", attrs...)
			default:
				log.InfoContext(ctx, "request completed", attrs...)
			}

			if err != nil {
				log.ErrorContext(ctx, "request error", "path", req.URL.Path, "error", err)
			}
			return err
		}
	}
}
