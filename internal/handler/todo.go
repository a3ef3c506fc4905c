package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
)

// TodoHandler serves the public todos resource. Its list endpoint has a
// dedicated query parser with exact-match and due-date-range filters
// instead of the declared-field tables the catalog uses.
type TodoHandler struct {
	todos *repository.TodoRepo
}

func NewTodoHandler(todos *repository.TodoRepo) *TodoHandler {
	return &TodoHandler{todos: todos}
}

func (h *TodoHandler) List(c echo.Context) error {
	q := query.ParseTodos(c.QueryParams())

	ctx, cancel := reqCtx(c)
	defer cancel()
	page, err := h.todos.List(ctx, q)
	if err != nil {
		return fail(c, err, "Todo not found")
	}
	return c.JSON(http.StatusOK, page)
}

func (h *TodoHandler) GetByID(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.todos.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err, "Todo not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"todo": t})
}

func (h *TodoHandler) Create(c echo.Context) error {
	body, err := bindBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	title, err := query.RequireString(body["title"], "title")
	if err != nil {
		return fail(c, err, "")
	}
	priority, err := query.OptionalEnum(body["priority"], "priority", model.TodoPriorities)
	if err != nil {
		return fail(c, err, "")
	}
	if priority == "" {
		priority = model.TodoPriorityMedium
	}
	completed, err := query.OptionalBool(body["completed"], "completed")
	if err != nil {
		return fail(c, err, "")
	}
	dueDate, err := query.OptionalDate(body["dueDate"], "dueDate")
	if err != nil {
		return fail(c, err, "")
	}
	tags := query.Tags(body["tags"])
	if tags == nil {
		tags = []string{}
	}

	t := model.Todo{
		Title:       title,
		Description: query.OptionalString(body["description"]),
		Priority:    priority,
		DueDate:     dueDate,
		Category:    query.OptionalString(body["category"]),
		Tags:        tags,
	}
	if completed != nil {
		t.Completed = *completed
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	created, err := h.todos.Create(ctx, t)
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(http.StatusCreated, echo.Map{"todo": created})
}

func (h *TodoHandler) Update(c echo.Context) error {
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
	if _, ok := body["description"]; ok {
		set["description"] = query.OptionalString(body["description"])
	}
	if _, ok := body["completed"]; ok {
		completed, err := query.OptionalBool(body["completed"], "completed")
		if err != nil {
			return fail(c, err, "")
		}
		if completed != nil {
			set["completed"] = *completed
		}
	}
	if _, ok := body["priority"]; ok {
		priority, err := query.RequireEnum(body["priority"], "priority", model.TodoPriorities)
		if err != nil {
			return fail(c, err, "")
		}
		set["priority"] = priority
	}
	if _, ok := body["dueDate"]; ok {
		dueDate, err := query.OptionalDate(body["dueDate"], "dueDate")
		if err != nil {
			return fail(c, err, "")
		}
		if dueDate != nil {
			set["dueDate"] = *dueDate
		}
	}
	if _, ok := body["category"]; ok {
		set["category"] = query.OptionalString(body["category"])
	}
	if _, ok := body["tags"]; ok {
		tags := query.Tags(body["tags"])
		if tags == nil {
			tags = []string{}
		}
		set["tags"] = tags
	}
	if len(set) == 0 {
		return fail(c, errNoUpdateFields(), "")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.todos.Update(ctx, c.Param("id"), set)
	if err != nil {
		return fail(c, err, "Todo not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"todo": t})
}

func (h *TodoHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.todos.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err, "Todo not found")
	}
	return c.NoContent(http.StatusNoContent)
}
