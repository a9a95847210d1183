// Package di provides dependency injection configuration for the book API.
package di

import (
	"log/slog"

	"github.com/samber/do/v2"

	"bookapi/internal/config"
	"bookapi/internal/di/providers"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideTracing)
	do.Provide(injector, providers.ProvideMetricsRegistry)

	// Database layer
	do.Provide(injector, providers.ProvideDatabase)
	do.Provide(injector, providers.ProvideGorm)
	do.Provide(injector, providers.ProvideBookRepository)
	do.Provide(injector, providers.ProvideReviewRepository)
	do.Provide(injector, providers.ProvideUserRepository)

	// External services
	do.Provide(injector, providers.ProvideStorage)
	do.Provide(injector, providers.ProvideSummarizer)

	// Auth layer
	do.Provide(injector, providers.ProvideValidator)
	do.Provide(injector, providers.ProvideTokenManager)

	// Business services
	do.Provide(injector, providers.ProvideAuthService)
	do.Provide(injector, providers.ProvideBookService)
	do.Provide(injector, providers.ProvideReviewService)
	do.Provide(injector, providers.ProvideSummaryService)
	do.Provide(injector, providers.ProvideRecommendationService)
	do.Provide(injector, providers.ProvideCoverService)

	// Server
	do.Provide(injector, providers.ProvideHTTPServer)

	return injector
}

// Bootstrap initializes every service eagerly so configuration and connectivity errors surface before listening.
func Bootstrap(injector *do.RootScope) (*providers.HTTPServerHandle, error) {
	if _, err := do.Invoke[*config.AppConfig](injector); err != nil {
		return nil, err
	}
	if _, err := do.Invoke[*slog.Logger](injector); err != nil {
		return nil, err
	}
	return do.Invoke[*providers.HTTPServerHandle](injector)
}
