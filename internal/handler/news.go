package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ashrovy/records-api/internal/middleware"
	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
)

// NewsHandler serves the authenticated news feed. Listing is paginated
// and scoped to the caller's posts. Deletion looks the post up first so
// a foreign post answers 403 rather than 404.
type NewsHandler struct {
	news *repository.NewsRepo
}

func NewNewsHandler(news *repository.NewsRepo) *NewsHandler {
	return &NewsHandler{news: news}
}

func (h *NewsHandler) List(c echo.Context) error {
	q := query.ParseNews(c.QueryParams())
	q.Filter["userId"] = callerID(c)

	ctx, cancel := reqCtx(c)
	defer cancel()
	page, err := h.news.List(ctx, q)
	if err != nil {
		return fail(c, err, "News post not found")
	}
	return c.JSON(http.StatusOK, page)
}

func (h *NewsHandler) Create(c echo.Context) error {
	body, err := bindBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	title, err := query.RequireString(body["title"], "title")
	if err != nil {
		return fail(c, err, "")
	}
	content, err := query.RequireString(body["content"], "content")
	if err != nil {
		return fail(c, err, "")
	}
	tags := query.Tags(body["tags"])
	if tags == nil {
		tags = []string{}
	}

	typeAccount, _ := c.Get(middleware.CtxTypeAccount).(string)

	ctx, cancel := reqCtx(c)
	defer cancel()
	n, err := h.news.Create(ctx, model.News{
		UserID:      callerID(c),
		TypeAccount: model.AccountType(typeAccount),
		Title:       title,
		Content:     content,
		Tags:        tags,
	})
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *NewsHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	n, err := h.news.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err, "News post not found")
	}
	if n.UserID != callerID(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Not allowed to remove this post"})
	}
	if _, err := h.news.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err, "News post not found")
	}
	return c.NoContent(http.StatusNoContent)
}
