// Package server exposes the compute boundary over HTTP for browser
// clients and remote CLI runs.
package server

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/hullscope/hullscope/internal/compute"
)

type Server struct {
	App *fiber.App
	Cfg Config
}

func NewServer(cfg Config, provider compute.Provider) *Server {
	app := fiber.New(fiber.Config{ErrorHandler: errorHandler})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	s := &Server{App: app, Cfg: cfg}
	registerRoutes(s, provider)
	return s
}

func registerRoutes(s *Server, provider compute.Provider) {
	s.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	RegisterRoutes(s.App.Group("/api/convex-hull"), provider)
}

// errorHandler keeps error payloads JSON so API clients never parse HTML.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
