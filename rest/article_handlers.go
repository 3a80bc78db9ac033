package rest

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/phareim/reader/di"
	"github.com/phareim/reader/domain"
)

func handleListArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var filter domain.ArticleFilter

		if raw := c.QueryParam("feedId"); raw != "" {
			feedID, err := uuid.Parse(raw)
			if err != nil {
				return handleValidationError(c, "Invalid feed ID", "feedId", raw)
			}
			filter.FeedID = &feedID
		}
		if raw := c.QueryParam("unread"); raw != "" {
			unread, err := strconv.ParseBool(raw)
			if err != nil {
				return handleValidationError(c, "unread must be a boolean", "unread", raw)
			}
			filter.UnreadOnly = unread
		}
		if raw := c.QueryParam("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				return handleValidationError(c, "limit must be a non-negative integer", "limit", raw)
			}
			filter.Limit = limit
		}

		articles, err := container.ReadingStatusUsecase.ListArticles(c.Request().Context(), currentUser(c), filter)
		if err != nil {
			return handleError(c, err, "list_articles")
		}
		return c.JSON(http.StatusOK, articlesResponse{Articles: articles})
	}
}

func handleGetArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, ok, err := parseID(c, "article")
		if !ok {
			return err
		}

		article, err := container.ReadingStatusUsecase.GetArticle(c.Request().Context(), currentUser(c), articleID)
		if err != nil {
			return handleError(c, err, "get_article")
		}
		return c.JSON(http.StatusOK, article)
	}
}

func handleMarkRead(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, ok, err := parseID(c, "article")
		if !ok {
			return err
		}

		var req readRequest
		if err := c.Bind(&req); err != nil || req.IsRead == nil {
			return handleValidationError(c, "isRead must be a boolean", "isRead", nil)
		}

		article, err := container.ReadingStatusUsecase.MarkRead(c.Request().Context(), currentUser(c), articleID, *req.IsRead)
		if err != nil {
			return handleError(c, err, "mark_read")
		}
		return c.JSON(http.StatusOK, article)
	}
}

func handleStar(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, ok, err := parseID(c, "article")
		if !ok {
			return err
		}

		var req starRequest
		if err := c.Bind(&req); err != nil || req.IsStarred == nil {
			return handleValidationError(c, "isStarred must be a boolean", "isStarred", nil)
		}

		article, err := container.ReadingStatusUsecase.SetStarred(c.Request().Context(), currentUser(c), articleID, *req.IsStarred)
		if err != nil {
			return handleError(c, err, "star_article")
		}
		return c.JSON(http.StatusOK, article)
	}
}

func handleMarkAllRead(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req markAllReadRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "feedId must be a feed ID", "feedId", nil)
		}

		count, err := container.ReadingStatusUsecase.MarkAllRead(c.Request().Context(), currentUser(c), req.FeedID)
		if err != nil {
			return handleError(c, err, "mark_all_read")
		}
		return c.JSON(http.StatusOK, markAllReadResponse{MarkedCount: count})
	}
}

func handleAddManualArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req domain.ManualArticle
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid request format", "body", "malformed JSON")
		}

		article, created, err := container.ManualArticleUsecase.AddArticle(c.Request().Context(), currentUser(c), req)
		if err != nil {
			return handleError(c, err, "add_manual_article")
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		return c.JSON(status, manualArticleResponse{Article: article, Created: created})
	}
}

func handleDeleteManualArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, ok, err := parseID(c, "article")
		if !ok {
			return err
		}

		if err := container.ManualArticleUsecase.DeleteArticle(c.Request().Context(), currentUser(c), articleID); err != nil {
			return handleError(c, err, "delete_article")
		}
		return c.JSON(http.StatusOK, successResponse{Success: true})
	}
}
