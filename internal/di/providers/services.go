package providers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/do/v2"

	"bookapi/internal/auth"
	"bookapi/internal/config"
	"bookapi/internal/llm"
	"bookapi/internal/repository"
	"bookapi/internal/service"
	"bookapi/internal/storage"
	"bookapi/internal/validation"
)

// ProvideValidator provides the shared request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideTokenManager provides the access token issuer.
func ProvideTokenManager(i do.Injector) (*auth.TokenManager, error) {
	cfg := do.MustInvoke[*config.AppConfig](i)

	tm, err := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Algorithm, cfg.Auth.TokenTTL())
	if err != nil {
		return nil, fmt.Errorf("token manager: %w", err)
	}
	return tm, nil
}

// ProvideSummarizer provides the completion client.
func ProvideSummarizer(i do.Injector) (service.Summarizer, error) {
	cfg := do.MustInvoke[*config.AppConfig](i)
	log := do.MustInvoke[*slog.Logger](i)

	if cfg.LLM.APIKey == "" {
		log.Warn("OPENAI_API_KEY is not set; summary endpoints will fail upstream")
	}
	return llm.New(cfg.LLM, log), nil
}

// StorageHandle holds the optional cover store. Store is nil when MinIO is not configured.
type StorageHandle struct {
	Store storage.Storage
}

// ProvideStorage connects to object storage when configured.
func ProvideStorage(i do.Injector) (*StorageHandle, error) {
	cfg := do.MustInvoke[*config.AppConfig](i)
	log := do.MustInvoke[*slog.Logger](i)

	if !cfg.MinIO.Enabled() {
		log.Info("Object storage disabled; cover endpoints return 503")
		return &StorageHandle{}, nil
	}

	store, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		return nil, fmt.Errorf("object storage: %w", err)
	}

	log.Info("Object storage initialized", "endpoint", cfg.MinIO.Endpoint, "bucket", cfg.MinIO.Bucket)
	return &StorageHandle{Store: store}, nil
}

// ProvideAuthService provides registration, login and token verification.
func ProvideAuthService(i do.Injector) (service.AuthService, error) {
	cfg := do.MustInvoke[*config.AppConfig](i)
	return service.NewAuthService(
		do.MustInvoke[repository.UserRepository](i),
		do.MustInvoke[*auth.TokenManager](i),
		do.MustInvoke[*validation.Validator](i),
		cfg.Auth.AllowAdminSignup,
		do.MustInvoke[*slog.Logger](i),
	), nil
}

// ProvideBookService provides catalog management.
func ProvideBookService(i do.Injector) (service.BookService, error) {
	return service.NewBookService(
		do.MustInvoke[repository.BookRepository](i),
		do.MustInvoke[*validation.Validator](i),
		do.MustInvoke[*slog.Logger](i),
	), nil
}

// ProvideReviewService provides review creation and listing.
func ProvideReviewService(i do.Injector) (service.ReviewService, error) {
	return service.NewReviewService(
		do.MustInvoke[service.BookService](i),
		do.MustInvoke[repository.ReviewRepository](i),
		do.MustInvoke[*validation.Validator](i),
		do.MustInvoke[*slog.Logger](i),
	), nil
}

// ProvideSummaryService provides book and content summaries.
func ProvideSummaryService(i do.Injector) (service.SummaryService, error) {
	return service.NewSummaryService(
		do.MustInvoke[service.BookService](i),
		do.MustInvoke[repository.ReviewRepository](i),
		do.MustInvoke[service.Summarizer](i),
		do.MustInvoke[*validation.Validator](i),
		do.MustInvoke[*slog.Logger](i),
	), nil
}

// ProvideRecommendationService provides recommendations.
func ProvideRecommendationService(i do.Injector) (service.RecommendationService, error) {
	return service.NewRecommendationService(
		do.MustInvoke[repository.BookRepository](i),
		do.MustInvoke[*validation.Validator](i),
	), nil
}

// ProvideCoverService provides cover uploads and download links.
func ProvideCoverService(i do.Injector) (service.CoverService, error) {
	cfg := do.MustInvoke[*config.AppConfig](i)
	return service.NewCoverService(
		do.MustInvoke[*StorageHandle](i).Store,
		do.MustInvoke[repository.BookRepository](i),
		time.Duration(cfg.MinIO.URLTTLSec)*time.Second,
		do.MustInvoke[*slog.Logger](i),
	), nil
}
