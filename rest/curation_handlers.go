package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/phareim/reader/di"
	"github.com/phareim/reader/domain"
)

// bindTags reads a {"tags": [...]} body. On failure the response has already
// been written and ok is false.
func bindTags(c echo.Context, operation string) (names []string, ok bool, err error) {
	var req tagsRequest
	if err := c.Bind(&req); err != nil {
		return nil, false, handleValidationError(c, "Invalid request format", "body", "malformed JSON")
	}
	if err := c.Validate(&req); err != nil {
		return nil, false, handleError(c, err, operation)
	}
	return req.Tags, true, nil
}

func handleSaveArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, ok, err := parseID(c, "article")
		if !ok {
			return err
		}

		ref, err := container.SavedArticleUsecase.Save(c.Request().Context(), currentUser(c), articleID)
		if err != nil {
			return handleError(c, err, "save_article")
		}
		return c.JSON(http.StatusOK, saveArticleResponse{Success: true, SavedArticle: ref})
	}
}

func handleUnsaveArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		articleID, ok, err := parseID(c, "article")
		if !ok {
			return err
		}

		if err := container.SavedArticleUsecase.Unsave(c.Request().Context(), currentUser(c), articleID); err != nil {
			return handleError(c, err, "unsave_article")
		}
		return c.JSON(http.StatusOK, successResponse{Success: true})
	}
}

func handleListSavedArticles(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		saved, err := container.SavedArticleUsecase.List(c.Request().Context(), currentUser(c), c.QueryParam("tag"))
		if err != nil {
			return handleError(c, err, "list_saved_articles")
		}
		return c.JSON(http.StatusOK, savedArticlesResponse{Articles: saved})
	}
}

func handleSavedArticleCounts(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		counts, err := container.SavedArticleUsecase.Counts(c.Request().Context(), currentUser(c))
		if err != nil {
			return handleError(c, err, "count_saved_articles")
		}
		return c.JSON(http.StatusOK, counts)
	}
}

func handleSetSavedArticleTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		savedID, ok, err := parseID(c, "saved article")
		if !ok {
			return err
		}
		names, ok, err := bindTags(c, "tag_saved_article")
		if !ok {
			return err
		}

		tags, err := container.SavedArticleUsecase.SetTags(c.Request().Context(), currentUser(c), savedID, names)
		if err != nil {
			return handleError(c, err, "tag_saved_article")
		}
		return c.JSON(http.StatusOK, tagNamesResponse{Success: true, Tags: tags})
	}
}

func handleSetFeedTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feedID, ok, err := parseID(c, "feed")
		if !ok {
			return err
		}
		names, ok, err := bindTags(c, "tag_feed")
		if !ok {
			return err
		}

		tags, err := container.ManageTagUsecase.SetFeedTags(c.Request().Context(), currentUser(c), feedID, names)
		if err != nil {
			return handleError(c, err, "tag_feed")
		}
		return c.JSON(http.StatusOK, tagNamesResponse{Success: true, Tags: tags})
	}
}

func handleListTags(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		tags, err := container.ManageTagUsecase.ListTags(c.Request().Context(), currentUser(c))
		if err != nil {
			return handleError(c, err, "list_tags")
		}
		return c.JSON(http.StatusOK, tagsResponse{Tags: tags})
	}
}

func handleCreateTag(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req createTagRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid request format", "body", "malformed JSON")
		}
		if err := c.Validate(&req); err != nil {
			return handleError(c, err, "create_tag")
		}

		tag, err := container.ManageTagUsecase.CreateTag(c.Request().Context(), currentUser(c), req.Name, req.Color)
		if err != nil {
			return handleError(c, err, "create_tag")
		}
		return c.JSON(http.StatusCreated, tag)
	}
}

func handleUpdateTag(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		tagID, ok, err := parseID(c, "tag")
		if !ok {
			return err
		}

		var req updateTagRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid request format", "body", "malformed JSON")
		}

		patch := domain.TagPatch{Name: req.Name, Color: req.Color.Value, SetColor: req.Color.Set}
		tag, err := container.ManageTagUsecase.UpdateTag(c.Request().Context(), currentUser(c), tagID, patch)
		if err != nil {
			return handleError(c, err, "update_tag")
		}
		return c.JSON(http.StatusOK, tag)
	}
}

func handleDeleteTag(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		tagID, ok, err := parseID(c, "tag")
		if !ok {
			return err
		}

		if err := container.ManageTagUsecase.DeleteTag(c.Request().Context(), currentUser(c), tagID); err != nil {
			return handleError(c, err, "delete_tag")
		}
		return c.JSON(http.StatusOK, successResponse{Success: true})
	}
}
