package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/swagger"

	"bookapi/docs"
	"bookapi/internal/config"
	"bookapi/internal/http/middleware"
	"bookapi/internal/service"
)

// Services groups the use cases the routes delegate to.
type Services struct {
	Auth            service.AuthService
	Books           service.BookService
	Reviews         service.ReviewService
	Summaries       service.SummaryService
	Recommendations service.RecommendationService
	Covers          service.CoverService
}

// RegisterDocs serves the Swagger UI under /swagger. The document host and schemes
// are fixed here, once, before the server accepts requests.
func RegisterDocs(app fiber.Router, host string) {
	docs.SwaggerInfo.Host = host
	docs.SwaggerInfo.Schemes = []string{"http", "https"}
	app.Get("/swagger/*", swagger.HandlerDefault)
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay thin: parsing and status mapping only.
func RegisterRoutes(app *fiber.App, db *sql.DB, svc Services, rl config.RateLimitConfig) {
	app.Get("/", Root(Info{
		Message: "Intelligent Book Management System API",
		Version: "1.0.0",
		Docs:    "/swagger/index.html",
	}))

	// Readiness checks DB connectivity only
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	authenticated := middleware.Authenticate(svc.Auth)
	active := middleware.RequireActive()
	admin := middleware.RequireAdmin()
	throttle := rateLimiter(rl)

	app.Post("/register", Register(svc.Auth))
	app.Post("/login", throttle, Login(svc.Auth))
	app.Get("/users/me", authenticated, active, Me())

	books := app.Group("/books")
	books.Post("/", authenticated, admin, CreateBook(svc.Books))
	books.Get("/", ListBooks(svc.Books))
	books.Get("/:id", GetBook(svc.Books))
	books.Put("/:id", authenticated, admin, UpdateBook(svc.Books))
	books.Delete("/:id", authenticated, admin, DeleteBook(svc.Books))

	books.Put("/:id/cover", authenticated, admin, UploadCover(svc.Covers))
	books.Get("/:id/cover", GetCover(svc.Covers))

	books.Post("/:id/reviews", authenticated, active, CreateReview(svc.Reviews))
	books.Get("/:id/reviews", ListReviews(svc.Reviews))

	books.Get("/:id/summary", BookSummary(svc.Summaries))
	app.Post("/generate-summary", throttle, GenerateSummary(svc.Summaries))

	app.Get("/recommendations", Recommendations(svc.Recommendations))
}

// rateLimiter bounds requests per client IP. A non-positive max disables it.
func rateLimiter(rl config.RateLimitConfig) fiber.Handler {
	if rl.Max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	window := time.Duration(rl.WindowSec) * time.Second
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        rl.Max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return writeError(c, fiber.StatusTooManyRequests, "TOO_MANY_REQUESTS", "too many requests")
		},
	})
}
