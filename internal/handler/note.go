package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ashrovy/records-api/internal/middleware"
	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
)

// NoteHandler serves the authenticated notes resource. Every operation
// is scoped to the caller, so a foreign note answers like a missing one.
type NoteHandler struct {
	notes *repository.NoteRepo
}

func NewNoteHandler(notes *repository.NoteRepo) *NoteHandler {
	return &NoteHandler{notes: notes}
}

func callerID(c echo.Context) string {
	id, _ := c.Get(middleware.CtxUserID).(string)
	return id
}

func (h *NoteHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	notes, err := h.notes.ListForUser(ctx, callerID(c))
	if err != nil {
		return fail(c, err, "Note not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"notes": notes})
}

func (h *NoteHandler) GetByID(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	n, err := h.notes.GetForUser(ctx, c.Param("id"), callerID(c))
	if err != nil {
		return fail(c, err, "Note not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"note": n})
}

func (h *NoteHandler) Create(c echo.Context) error {
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

	n := model.Note{
		UserID:  callerID(c),
		Title:   title,
		Content: content,
		Tags:    tags,
	}
	// Only a JSON boolean counts; anything else leaves the default.
	if archived, ok := body["archived"].(bool); ok {
		n.Archived = archived
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	n, err = h.notes.Create(ctx, n)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(http.StatusCreated, echo.Map{"note": n})
}

func (h *NoteHandler) Update(c echo.Context) error {
	body, err := bindBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	set := bson.M{}
	if _, ok := body["title"]; ok {
		title, err := query.RequireString(body["title"], "title")
		if err != nil {
			return fail(c, err, "")
		}
		set["title"] = title
	}
	if _, ok := body["content"]; ok {
		content, err := query.RequireString(body["content"], "content")
		if err != nil {
			return fail(c, err, "")
		}
		set["content"] = content
	}
	if _, ok := body["tags"]; ok {
		tags := query.Tags(body["tags"])
		if tags == nil {
			tags = []string{}
		}
		set["tags"] = tags
	}
	if _, ok := body["archived"]; ok {
		archived, err := query.OptionalBool(body["archived"], "archived")
		if err != nil {
			return fail(c, err, "")
		}
		if archived != nil {
			set["archived"] = *archived
		}
	}
	if len(set) == 0 {
		return fail(c, errNoUpdateFields(), "")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	n, err := h.notes.UpdateForUser(ctx, c.Param("id"), callerID(c), set)
	if err != nil {
		return fail(c, err, "Note not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"note": n})
}

func (h *NoteHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.notes.DeleteForUser(ctx, c.Param("id"), callerID(c)); err != nil {
		return fail(c, err, "Note not found")
	}
	return c.NoContent(http.StatusNoContent)
}
