// Package handler exposes HTTP handlers for auth, per-user resources,
// and the public catalog. Handlers validate payloads with the query
// package's field parsers and delegate persistence to repositories.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
)

// reqCtx bounds a handler's store calls the same way across the API.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// bindBody decodes a JSON body into an untyped map so payload builders
// can apply per-field coercion rules.
func bindBody(c echo.Context) (map[string]any, error) {
	body := map[string]any{}
	if err := c.Bind(&body); err != nil {
		return nil, err
	}
	return body, nil
}

// fail maps an error to its response: ValidationError → 400,
// ErrNotFound → 404 with the given message, anything else → 500.
func fail(c echo.Context, err error, notFoundMsg string) error {
	var ve *query.ValidationError
	if errors.As(err, &ve) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": ve.Message})
	}
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFoundMsg})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
}

// errNoUpdateFields is raised when a partial update carries nothing
// recognizable.
func errNoUpdateFields() error {
	return &query.ValidationError{Message: "No valid fields provided for update"}
}

// CatalogResource wires the generic public-catalog handler for one
// record type: a declared filter-field table plus create/update payload
// builders. List/get/create/update/delete flow identically for every
// catalog collection.
type CatalogResource[T any] struct {
	Label        string // used in not-found messages, e.g. "Song"
	Repo         *repository.CatalogRepo[T]
	FilterFields []query.FilterField
	BuildCreate  func(body map[string]any) (bson.M, error)
	BuildUpdate  func(body map[string]any) (bson.M, error)
}

func (h *CatalogResource[T]) List(c echo.Context) error {
	q := query.ParseList(c.QueryParams(), h.FilterFields)
	ctx, cancel := reqCtx(c)
	defer cancel()

	page, err := h.Repo.List(ctx, q)
	if err != nil {
		return fail(c, err, h.Label+" not found")
	}
	return c.JSON(http.StatusOK, page)
}

func (h *CatalogResource[T]) GetByID(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	item, err := h.Repo.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err, h.Label+" not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"item": item})
}

func (h *CatalogResource[T]) Create(c echo.Context) error {
	body, err := bindBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	doc, err := h.BuildCreate(body)
	if err != nil {
		return fail(c, err, h.Label+" not found")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	item, err := h.Repo.Insert(ctx, doc)
	if err != nil {
		return fail(c, err, h.Label+" not found")
	}
	return c.JSON(http.StatusCreated, echo.Map{"item": item})
}

func (h *CatalogResource[T]) Update(c echo.Context) error {
	body, err := bindBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	set, err := h.BuildUpdate(body)
	if err != nil {
		return fail(c, err, h.Label+" not found")
	}
	if len(set) == 0 {
		return fail(c, errNoUpdateFields(), "")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	item, err := h.Repo.Update(ctx, c.Param("id"), set)
	if err != nil {
		return fail(c, err, h.Label+" not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"item": item})
}

func (h *CatalogResource[T]) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.Repo.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err, h.Label+" not found")
	}
	return c.NoContent(http.StatusNoContent)
}
