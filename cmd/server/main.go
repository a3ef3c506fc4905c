package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ashrovy/records-api/internal/config"
	"github.com/ashrovy/records-api/internal/database"
	"github.com/ashrovy/records-api/internal/handler"
	"github.com/ashrovy/records-api/internal/middleware"
	"github.com/ashrovy/records-api/internal/repository"
	"github.com/ashrovy/records-api/internal/router"
	"github.com/ashrovy/records-api/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win

	cfg := config.Load()
	db, err := database.Open(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongodb: %v", err)
	}

	rdb := config.NewRedisClient() // nil when redis is unreachable
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	auth := service.NewAuthService(
		users,
		cfg.JWTSecret,
		time.Duration(cfg.AccessTTLMin)*time.Minute,
		time.Duration(cfg.RefreshTTLDays)*24*time.Hour,
		cfg.BcryptCost,
	)

	public := []echo.MiddlewareFunc{
		middleware.RateLimit(config.LoadRateLimitConfig(), rdb),
		middleware.ResponseCache(config.LoadCacheConfig(), rdb),
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.Register(e, router.Deps{
		Auth:  handler.NewAuthHandler(auth, cfg),
		Notes: handler.NewNoteHandler(repository.NewNoteRepo(db)),
		Tasks: handler.NewTaskHandler(repository.NewTaskRepo(db)),
		News:  handler.NewNewsHandler(repository.NewNewsRepo(db)),
		Todos: handler.NewTodoHandler(repository.NewTodoRepo(db)),

		Songs:    handler.NewSongResource(db),
		Cars:     handler.NewCarResource(db),
		Movies:   handler.NewMovieResource(db),
		Students: handler.NewStudentResource(db),
		Lessons:  handler.NewLessonResource(db),
		Articles: handler.NewCatalogNewsResource(db),

		AuthRequired: middleware.JWTAuth(auth),
		Public:       public,
	})

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
