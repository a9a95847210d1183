package providers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/do/v2"

	"bookapi/internal/config"
	"bookapi/internal/logger"
	"bookapi/internal/otel"
)

const shutdownTimeout = 10 * time.Second

// ProvideConfig loads and validates configuration from the environment.
func ProvideConfig(i do.Injector) (*config.AppConfig, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ProvideLogger provides the application logger and installs it as the slog default.
func ProvideLogger(i do.Injector) (*slog.Logger, error) {
	cfg := do.MustInvoke[*config.AppConfig](i)
	return logger.FromConfig(cfg), nil
}

// TracingHandle flushes pending spans on shutdown.
type TracingHandle struct {
	shutdown otel.ShutdownFunc
}

// Shutdown implements do.ShutdownerWithError.
func (h *TracingHandle) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return h.shutdown(ctx)
}

// ProvideTracing installs the global tracer provider.
func ProvideTracing(i do.Injector) (*TracingHandle, error) {
	log := do.MustInvoke[*slog.Logger](i)

	shutdown, err := otel.Init(context.Background(), log)
	if err != nil {
		return nil, fmt.Errorf("tracing: %w", err)
	}
	return &TracingHandle{shutdown: shutdown}, nil
}
