package hosting

import (
	"fmt"
	"log/slog"

	"discograph/src/features/config"

	"github.com/gofiber/fiber/v2"
)

// Server previews the emitted discography locally. It serves the output
// directory statically; it never takes part in fetching or merging.
type Server struct {
	app  *fiber.App
	port uint32
}

// NewServer creates the preview server over the output directory.
func NewServer(cfg *config.Manager) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "Discograph",
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			slog.Error("Internal Server Error", "error", err)
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	app.Static("/", cfg.Get().Output.Dir)

	return &Server{app: app, port: cfg.Get().Hosting.Port}
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.app.Listen(":" + fmt.Sprint(s.port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
