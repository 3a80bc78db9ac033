package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/phareim/reader/di"
	"github.com/phareim/reader/utils/logger"
)

const maxRequestBody = "2M"

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents) {
	e.Validator = container.Validator

	e.Use(RequestIDMiddleware())
	e.Use(middleware.Recover())
	e.Use(otelecho.Middleware("reader"))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))
	e.Use(middleware.BodyLimit(maxRequestBody))
	e.Use(LoggingMiddleware(logger.Logger))

	e.GET("/health", handleHealth(container))
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1", UserMiddleware())

	v1.POST("/sync", handleSync(container))

	v1.GET("/feeds", handleListFeeds(container))
	v1.POST("/feeds", handleSubscribe(container))
	v1.POST("/feeds/add-smart", handleAddSmart(container))
	v1.POST("/feeds/discover", handleDiscover(container))
	v1.GET("/feeds/:id", handleGetFeed(container))
	v1.POST("/feeds/:id/refresh", handleRefreshFeed(container))
	v1.PATCH("/feeds/:id/tags", handleSetFeedTags(container))
	v1.DELETE("/feeds/:id", handleDeleteFeed(container))

	v1.GET("/articles", handleListArticles(container))
	v1.POST("/articles/manual", handleAddManualArticle(container))
	v1.POST("/articles/mark-all-read", handleMarkAllRead(container))
	v1.GET("/articles/:id", handleGetArticle(container))
	v1.PATCH("/articles/:id/read", handleMarkRead(container))
	v1.PATCH("/articles/:id/star", handleStar(container))
	v1.DELETE("/articles/:id", handleDeleteManualArticle(container))
	v1.POST("/articles/:id/save", handleSaveArticle(container))
	v1.DELETE("/articles/:id/save", handleUnsaveArticle(container))

	v1.GET("/saved-articles", handleListSavedArticles(container))
	v1.GET("/saved-articles/counts", handleSavedArticleCounts(container))
	v1.PATCH("/saved-articles/:id/tags", handleSetSavedArticleTags(container))

	v1.GET("/tags", handleListTags(container))
	v1.POST("/tags", handleCreateTag(container))
	v1.PATCH("/tags/:id", handleUpdateTag(container))
	v1.DELETE("/tags/:id", handleDeleteTag(container))
}

func handleHealth(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		checks := make(map[string]string, len(container.HealthChecks))
		status, code := "healthy", http.StatusOK

		for name, check := range container.HealthChecks {
			if err := check(ctx); err != nil {
				logger.Logger.WarnContext(ctx, "health check failed", "check", name, "error", err)
				checks[name] = "unavailable"
				status, code = "unhealthy", http.StatusServiceUnavailable
				continue
			}
			checks[name] = "ok"
		}

		return c.JSON(code, map[string]any{"status": status, "checks": checks})
	}
}
