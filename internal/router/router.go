// Package router mounts every route group onto the echo instance:
// auth, the authenticated per-user resources, and the public catalog.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/ashrovy/records-api/internal/handler"
	"github.com/ashrovy/records-api/internal/model"
)

// Deps bundles the handlers and route-group middleware the router needs.
// AuthRequired guards the per-user groups; Public wraps the unauthenticated
// catalog groups with rate limiting and response caching.
type Deps struct {
	Auth  *handler.AuthHandler
	Notes *handler.NoteHandler
	Tasks *handler.TaskHandler
	News  *handler.NewsHandler
	Todos *handler.TodoHandler

	Songs    *handler.CatalogResource[model.Song]
	Cars     *handler.CatalogResource[model.Car]
	Movies   *handler.CatalogResource[model.Movie]
	Students *handler.CatalogResource[model.Student]
	Lessons  *handler.CatalogResource[model.Lesson]
	Articles *handler.CatalogResource[model.CatalogNews]

	AuthRequired echo.MiddlewareFunc
	Public       []echo.MiddlewareFunc
}

// Register wires all routes.
func Register(e *echo.Echo, d Deps) {
	e.GET("/healthz", handler.Health)

	auth := e.Group("/auth")
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/refresh", d.Auth.Refresh)
	auth.POST("/logout", d.Auth.Logout)
	auth.GET("/me", d.Auth.Me, d.AuthRequired)

	notes := e.Group("/notes", d.AuthRequired)
	notes.GET("", d.Notes.List)
	notes.POST("", d.Notes.Create)
	notes.GET("/:id", d.Notes.GetByID)
	notes.PATCH("/:id", d.Notes.Update)
	notes.DELETE("/:id", d.Notes.Delete)

	tasks := e.Group("/tasks", d.AuthRequired)
	tasks.GET("", d.Tasks.List)
	tasks.POST("", d.Tasks.Create)
	tasks.GET("/:id", d.Tasks.GetByID)
	tasks.PATCH("/:id", d.Tasks.Update)
	tasks.DELETE("/:id", d.Tasks.Delete)

	news := e.Group("/news", d.AuthRequired)
	news.GET("", d.News.List)
	news.POST("", d.News.Create)
	news.DELETE("/:id", d.News.Delete)

	todos := e.Group("/todos", d.Public...)
	todos.GET("", d.Todos.List)
	todos.POST("", d.Todos.Create)
	todos.GET("/:id", d.Todos.GetByID)
	todos.PATCH("/:id", d.Todos.Update)
	todos.DELETE("/:id", d.Todos.Delete)

	public := e.Group("/public", d.Public...)
	mountCatalog(public, "/songs", d.Songs)
	mountCatalog(public, "/cars", d.Cars)
	mountCatalog(public, "/movies", d.Movies)
	mountCatalog(public, "/students", d.Students)
	mountCatalog(public, "/lessons", d.Lessons)
	mountCatalog(public, "/news", d.Articles)
}

func mountCatalog[T any](g *echo.Group, prefix string, h *handler.CatalogResource[T]) {
	r := g.Group(prefix)
	r.GET("", h.List)
	r.POST("", h.Create)
	r.GET("/:id", h.GetByID)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Delete)
}
