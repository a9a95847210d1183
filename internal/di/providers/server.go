package providers

import (
	"log/slog"
	"strings"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/do/v2"

	"bookapi/internal/config"
	"bookapi/internal/http/handler"
	"bookapi/internal/http/middleware"
	"bookapi/internal/service"
)

const bodyLimit = 10 * 1024 * 1024

// ProvideMetricsRegistry provides the registry served on /metrics.
func ProvideMetricsRegistry(i do.Injector) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg, nil
}

// HTTPServerHandle wraps the fiber app with Shutdownable.
type HTTPServerHandle struct {
	*fiber.App
}

// Shutdown implements do.ShutdownerWithError.
func (h *HTTPServerHandle) Shutdown() error {
	return h.ShutdownWithTimeout(shutdownTimeout)
}

// ProvideHTTPServer assembles the fiber app with global middleware and routes.
func ProvideHTTPServer(i do.Injector) (*HTTPServerHandle, error) {
	cfg := do.MustInvoke[*config.AppConfig](i)
	log := do.MustInvoke[*slog.Logger](i)
	db := do.MustInvoke[*DBHandle](i)
	reg := do.MustInvoke[*prometheus.Registry](i)

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		AppName:      "bookapi",
		ErrorHandler: handler.ErrorHandler(),
		BodyLimit:    bodyLimit,
	})

	app.Use(recover.New())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(prom.Handler())
	app.Use(middleware.Logger(log))
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: strings.Join([]string{
			fiber.HeaderOrigin,
			fiber.HeaderContentType,
			fiber.HeaderAccept,
			fiber.HeaderAuthorization,
			middleware.RequestIDHeader,
		}, ", "),
	}))

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handler.RegisterRoutes(app, db.DB, handler.Services{
		Auth:            do.MustInvoke[service.AuthService](i),
		Books:           do.MustInvoke[service.BookService](i),
		Reviews:         do.MustInvoke[service.ReviewService](i),
		Summaries:       do.MustInvoke[service.SummaryService](i),
		Recommendations: do.MustInvoke[service.RecommendationService](i),
		Covers:          do.MustInvoke[service.CoverService](i),
	}, cfg.RateLimit)

	return &HTTPServerHandle{App: app}, nil
}
