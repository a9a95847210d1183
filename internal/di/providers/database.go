package providers

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/samber/do/v2"
	"gorm.io/gorm"

	"bookapi/internal/config"
	"bookapi/internal/database"
	"bookapi/internal/database/migration"
	"bookapi/internal/repository"
	"bookapi/internal/repository/gormrepo"
)

// DBHandle wraps the connection pool with shutdown capability.
type DBHandle struct {
	*sql.DB
}

// Shutdown implements do.ShutdownerWithError.
func (h *DBHandle) Shutdown() error {
	return h.Close()
}

// ProvideDatabase opens the pool and applies the schema when missing.
// Tracing is invoked first so the otelsql driver picks up the global provider.
func ProvideDatabase(i do.Injector) (*DBHandle, error) {
	cfg := do.MustInvoke[*config.AppConfig](i)
	log := do.MustInvoke[*slog.Logger](i)
	_ = do.MustInvoke[*TracingHandle](i)

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := migration.EnsureMigrated(context.Background(), db, log, cfg.Database.Host); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info("Database initialized", "host", cfg.Database.Host, "name", cfg.Database.Name)
	return &DBHandle{DB: db}, nil
}

// ProvideGorm layers the ORM over the shared pool.
func ProvideGorm(i do.Injector) (*gorm.DB, error) {
	handle := do.MustInvoke[*DBHandle](i)
	log := do.MustInvoke[*slog.Logger](i)
	return database.NewGorm(handle.DB, log)
}

// ProvideBookRepository provides the book repository.
func ProvideBookRepository(i do.Injector) (repository.BookRepository, error) {
	return gormrepo.NewBookRepo(do.MustInvoke[*gorm.DB](i)), nil
}

// ProvideReviewRepository provides the review repository.
func ProvideReviewRepository(i do.Injector) (repository.ReviewRepository, error) {
	return gormrepo.NewReviewRepo(do.MustInvoke[*gorm.DB](i)), nil
}

// ProvideUserRepository provides the user repository.
func ProvideUserRepository(i do.Injector) (repository.UserRepository, error) {
	return gormrepo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
}
