package server

import (
	"log"

	"fikrswap-academy-be/internal/bootstrap"
	"fikrswap-academy-be/internal/config"
	"fikrswap-academy-be/internal/pkg/serverutils"
	"fikrswap-academy-be/internal/routing"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Page-level access decisions for server-rendered navigation.
	app.Use(routing.GuardMiddleware())

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	// OAuth return leg lives at the root, matching the redirect URL
	// registered with the external providers.
	app.Get("/auth-callback", c.AuthController.AuthCallback)

	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.ContentController.RegisterRoutes(api)
	c.ContactController.RegisterRoutes(api)

	c.CourseController.RegisterRoutes(api, serverutils.JwtMiddleware)
	c.LiveClassController.RegisterRoutes(api, serverutils.JwtMiddleware)
	c.UserController.RegisterRoutes(api, serverutils.JwtMiddleware)

	c.NotificationHandler.RegisterRoutes(api)
}
