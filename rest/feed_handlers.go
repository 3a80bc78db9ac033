package rest

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/phareim/reader/di"
	"github.com/phareim/reader/domain"
	"github.com/phareim/reader/utils/errors"
	"github.com/phareim/reader/utils/logger"
)

// bindURL reads a {"url": ...} body, normalizes it and applies the SSRF
// checks. On failure the response has already been written and ok is false.
func bindURL(c echo.Context, container *di.ApplicationComponents, operation string) (target string, ok bool, err error) {
	var req urlRequest
	if err := c.Bind(&req); err != nil {
		return "", false, handleValidationError(c, "Invalid request format", "body", "malformed JSON")
	}
	if err := c.Validate(&req); err != nil {
		return "", false, handleError(c, err, operation)
	}

	normalized, err := domain.NormalizeURL(req.URL)
	if err != nil {
		return "", false, handleValidationError(c, "Invalid URL format", "url", req.URL)
	}

	if _, err := container.URLValidator.ValidateRawURL(c.Request().Context(), normalized); err != nil {
		fields := requestContext(c)
		fields["url"] = normalized
		fields["reason"] = err.Error()
		securityErr := errors.NewValidationContextError("URL not allowed for security reasons",
			"rest", "RESTHandler", operation, fields)
		logger.Logger.WarnContext(c.Request().Context(), "URL validation failed", "url", normalized, "error", err)
		return "", false, c.JSON(securityErr.HTTPStatusCode(), securityErr.ToHTTPResponse())
	}

	return normalized, true, nil
}

func parseID(c echo.Context, label string) (uuid.UUID, bool, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, handleValidationError(c, "Invalid "+label+" ID", "id", raw)
	}
	return id, true, nil
}

func handleListFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feeds, err := container.SubscribeFeedUsecase.ListFeeds(c.Request().Context(), currentUser(c))
		if err != nil {
			return handleError(c, err, "list_feeds")
		}
		return c.JSON(http.StatusOK, feedsResponse{Feeds: feeds})
	}
}

func handleGetFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feedID, ok, err := parseID(c, "feed")
		if !ok {
			return err
		}

		feed, err := container.SubscribeFeedUsecase.GetFeed(c.Request().Context(), currentUser(c), feedID)
		if err != nil {
			return handleError(c, err, "get_feed")
		}
		return c.JSON(http.StatusOK, feed)
	}
}

func handleSubscribe(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feedURL, ok, err := bindURL(c, container, "subscribe_feed")
		if !ok {
			return err
		}

		sub, err := container.SubscribeFeedUsecase.Subscribe(c.Request().Context(), currentUser(c), feedURL)
		if err != nil {
			return handleError(c, err, "subscribe_feed")
		}
		return c.JSON(http.StatusCreated, subscribeResponse{Feed: sub.Feed, ArticlesAdded: sub.ArticlesAdded})
	}
}

func handleAddSmart(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		pageURL, ok, err := bindURL(c, container, "add_smart")
		if !ok {
			return err
		}

		result, err := container.DiscoverFeedUsecase.ClassifyURL(c.Request().Context(), currentUser(c), pageURL)
		if err != nil {
			return handleError(c, err, "add_smart")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func handleDiscover(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		pageURL, ok, err := bindURL(c, container, "discover_feeds")
		if !ok {
			return err
		}

		feeds, err := container.DiscoverFeedUsecase.DiscoverFeeds(c.Request().Context(), pageURL)
		if err != nil {
			return handleError(c, err, "discover_feeds")
		}
		return c.JSON(http.StatusOK, discoverResponse{Feeds: feeds})
	}
}

func handleRefreshFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feedID, ok, err := parseID(c, "feed")
		if !ok {
			return err
		}

		ctx := logger.WithFeedID(c.Request().Context(), feedID.String())
		result, err := container.SyncFeedUsecase.RefreshFeed(ctx, currentUser(c), feedID)
		if err != nil {
			return handleError(c, err, "refresh_feed")
		}
		return c.JSON(http.StatusOK, result)
	}
}

func handleDeleteFeed(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feedID, ok, err := parseID(c, "feed")
		if !ok {
			return err
		}

		count, err := container.SubscribeFeedUsecase.Unsubscribe(c.Request().Context(), currentUser(c), feedID)
		if err != nil {
			return handleError(c, err, "delete_feed")
		}
		return c.JSON(http.StatusOK, deleteFeedResponse{Success: true, DeletedArticles: count})
	}
}

func handleSync(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		report, err := container.SyncFeedUsecase.SyncUser(c.Request().Context(), currentUser(c))
		if err != nil {
			return handleError(c, err, "sync_feeds")
		}
		return c.JSON(http.StatusOK, report)
	}
}
