package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ashrovy/records-api/internal/model"
	"github.com/ashrovy/records-api/internal/query"
	"github.com/ashrovy/records-api/internal/repository"
)

// TaskHandler serves the authenticated tasks resource with the same
// owner scoping as notes.
type TaskHandler struct {
	tasks *repository.TaskRepo
}

func NewTaskHandler(tasks *repository.TaskRepo) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	tasks, err := h.tasks.ListForUser(ctx, callerID(c))
	if err != nil {
		return fail(c, err, "Task not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"tasks": tasks})
}

func (h *TaskHandler) GetByID(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	t, err := h.tasks.GetForUser(ctx, c.Param("id"), callerID(c))
	if err != nil {
		return fail(c, err, "Task not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"task": t})
}

func (h *TaskHandler) Create(c echo.Context) error {
	body, err := bindBody(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	title, err := query.RequireString(body["title"], "title")
	if err != nil {
		return fail(c, err, "")
	}
	status, err := query.OptionalEnum(body["status"], "status", model.TaskStatuses)
	if err != nil {
		return fail(c, err, "")
	}
	if status == "" {
		status = model.TaskStatusTodo
	}
	dueDate, err := query.OptionalDate(body["dueDate"], "dueDate")
	if err != nil {
		return fail(c, err, "")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.tasks.Create(ctx, model.Task{
		UserID:      callerID(c),
		Title:       title,
		Description: query.OptionalString(body["description"]),
		Status:      status,
		DueDate:     dueDate,
	})
	if err != nil {
		return fail(c, err, "")
	}
	return c.JSON(http.StatusCreated, echo.Map{"task": t})
}

func (h *TaskHandler) Update(c echo.Context) error {
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
	if _, ok := body["status"]; ok {
		status, err := query.RequireEnum(body["status"], "status", model.TaskStatuses)
		if err != nil {
			return fail(c, err, "")
		}
		set["status"] = status
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
	if len(set) == 0 {
		return fail(c, errNoUpdateFields(), "")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.tasks.UpdateForUser(ctx, c.Param("id"), callerID(c), set)
	if err != nil {
		return fail(c, err, "Task not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"task": t})
}

func (h *TaskHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if _, err := h.tasks.DeleteForUser(ctx, c.Param("id"), callerID(c)); err != nil {
		return fail(c, err, "Task not found")
	}
	return c.NoContent(http.StatusNoContent)
}
