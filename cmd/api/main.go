package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/samber/do/v2"

	"bookapi/internal/config"
	"bookapi/internal/di"
	"bookapi/internal/http/handler"
)

// @title Book Management API
// @version 1.0
// @description Books, reviews, AI summaries and recommendations.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Create DI container; .env is auto-loaded before configuration is read
	injector := di.NewContainer()

	server, err := di.Bootstrap(injector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap server: %v\n", err)
		os.Exit(1)
	}

	cfg := do.MustInvoke[*config.AppConfig](injector)
	log := do.MustInvoke[*slog.Logger](injector)

	handler.RegisterDocs(server.App, cfg.AppHost)

	addr := ":" + cfg.Port
	listenErr := make(chan error, 1)
	go func() {
		log.Info("server_starting", "addr", addr, "env", cfg.Env)
		listenErr <- server.Listen(addr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("Shutting down server gracefully...", "signal", sig.String())
	case err := <-listenErr:
		if err != nil && !errors.Is(err, net.ErrClosed) {
			log.Error("failed to start server", "error", err)
		}
	}

	// The container shuts services down in reverse dependency order:
	// HTTP server first, then DB pool, then tracer flush.
	if err := injector.Shutdown(); err != nil {
		log.Error("Shutdown error", "error", err)
	}

	log.Info("Server stopped")
}
