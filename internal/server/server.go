// Package server wires configuration, persistence and the flash store into
// the Fiber application and provides the HTML request handlers.
package server

import (
	"errors"
	"log/slog"
	"net/http"

	"blogly/internal/config"
	"blogly/internal/flash"
	"blogly/internal/middleware"
	"blogly/internal/models"
	"blogly/internal/repository"
	"blogly/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config *config.Config
	db     *gorm.DB
	users  repository.UserRepository
	posts  repository.PostRepository
	tags   repository.TagRepository
	flash  *flash.Store
}

// New creates a Server using already-initialized dependencies. redisClient
// may be nil; the flash store then keeps messages in process memory.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	return &Server{
		config: cfg,
		db:     db,
		users:  repository.NewUserRepository(db),
		posts:  repository.NewPostRepository(db),
		tags:   repository.NewTagRepository(db),
		flash:  flash.NewStore(redisClient, cfg.SessionSecret),
	}
}

// App builds the Fiber application with the embedded view engine,
// middleware and all routes.
func (s *Server) App() *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")
	engine.AddFunc("containsTag", func(tags []models.Tag, id uint) bool {
		for _, t := range tags {
			if t.ID == id {
				return true
			}
		}
		return false
	})
	engine.AddFunc("containsPost", func(posts []models.Post, id uint) bool {
		for _, p := range posts {
			if p.ID == id {
				return true
			}
		}
		return false
	})

	app := fiber.New(fiber.Config{
		AppName:      "Blogly",
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ErrorHandler: s.errorHandler,
	})

	s.setupMiddleware(app)
	s.setupRoutes(app)
	return app
}

func (s *Server) setupMiddleware(app *fiber.App) {
	prom := middleware.InitMetrics("blogly")
	prom.RegisterAt(app, "/metrics")

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(prom.Middleware)
	app.Use(middleware.StructuredLogger())
}

func (s *Server) setupRoutes(app *fiber.App) {
	app.Get("/", s.Home)
	app.Get("/healthz", s.Health)

	// fixed segments before :id so /users/new is not parsed as an id
	app.Get("/users", s.UsersIndex)
	app.Get("/users/new", s.UsersNewForm)
	app.Post("/users/new", s.UsersCreate)
	app.Get("/users/:id", s.UsersShow)
	app.Get("/users/:id/edit", s.UsersEditForm)
	app.Post("/users/:id/edit", s.UsersUpdate)
	app.Post("/users/:id/delete", s.UsersDelete)
	app.Get("/users/:id/posts/new", s.PostsNewForm)
	app.Post("/users/:id/posts/new", s.PostsCreate)

	app.Get("/posts/:id", s.PostsShow)
	app.Get("/posts/:id/edit", s.PostsEditForm)
	app.Post("/posts/:id/edit", s.PostsUpdate)
	app.Post("/posts/:id/delete", s.PostsDelete)

	app.Get("/tags", s.TagsIndex)
	app.Get("/tags/new", s.TagsNewForm)
	app.Post("/tags/new", s.TagsCreate)
	app.Get("/tags/:id", s.TagsShow)
	app.Get("/tags/:id/edit", s.TagsEditForm)
	app.Post("/tags/:id/edit", s.TagsUpdate)
	app.Post("/tags/:id/delete", s.TagsDelete)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
}

// Health handles GET /healthz.
func (s *Server) Health(c *fiber.Ctx) error {
	sqlDB, err := s.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Context())
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}

// errorHandler renders the 404 page for NotFound conditions and the generic
// error page for everything else.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if models.IsNotFound(err) {
		code = fiber.StatusNotFound
	}

	if code == fiber.StatusNotFound {
		if renderErr := c.Status(fiber.StatusNotFound).Render("404", fiber.Map{}); renderErr == nil {
			return nil
		}
		return c.Status(fiber.StatusNotFound).SendString("404 Not Found")
	}

	middleware.Logger.Error("unhandled error",
		slog.Int("status", code),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	if renderErr := c.Status(code).Render("error", fiber.Map{}); renderErr == nil {
		return nil
	}
	return c.Status(code).SendString("Internal Server Error")
}
