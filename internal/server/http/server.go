package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"contentd/internal/config"
	"contentd/pkg/cache"
)

// Server wraps Fiber app and configuration.
type Server struct {
	app *fiber.App
	cfg *config.Config
}

// New builds a Fiber server with common middlewares.
func New(cfg *config.Config, content Content, store cache.Store) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "contentd",
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSec) * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestID())

	RegisterRoutes(app, cfg, content, store)

	return &Server{app: app, cfg: cfg}
}

// Start runs Fiber server and handles graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	addr := cfgAddress(s.cfg.Server.Address)
	log.Printf("[contentd] listening on %s", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(s.cfg.Server.ShutdownTimeoutSec)*time.Second)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func cfgAddress(addr string) string {
	if addr == "" {
		return ":8080"
	}
	return addr
}
