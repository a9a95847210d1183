package migration

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelQuery detects whether the schema has already been applied.
const sentinelQuery = "SELECT to_regclass('public.books') IS NOT NULL"

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id              BIGSERIAL   PRIMARY KEY,
  username        TEXT        NOT NULL,
  email           TEXT        NOT NULL,
  full_name       TEXT,
  hashed_password TEXT        NOT NULL,
  is_active       BOOLEAN     NOT NULL DEFAULT TRUE,
  is_admin        BOOLEAN     NOT NULL DEFAULT FALSE,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_users_username",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users (username);`,
	},
	{
		Name: "create_index_users_email",
		SQL:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email);`,
	},
	{
		Name: "create_table_books",
		SQL: `CREATE TABLE IF NOT EXISTS books (
  id             BIGSERIAL PRIMARY KEY,
  title          TEXT      NOT NULL,
  author         TEXT      NOT NULL,
  genre          TEXT      NOT NULL,
  year_published INTEGER   NOT NULL CHECK (year_published BETWEEN 1000 AND 9999),
  summary        TEXT,
  cover_key      TEXT
);`,
	},
	{
		Name: "create_index_books_title",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_books_title ON books (title);`,
	},
	{
		Name: "create_table_reviews",
		SQL: `CREATE TABLE IF NOT EXISTS reviews (
  id          BIGSERIAL        PRIMARY KEY,
  book_id     BIGINT           NOT NULL REFERENCES books (id) ON DELETE CASCADE,
  user_id     BIGINT           NOT NULL REFERENCES users (id) ON DELETE CASCADE,
  review_text TEXT             NOT NULL,
  rating      DOUBLE PRECISION NOT NULL CHECK (rating >= 0 AND rating <= 5),
  created_at  TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_reviews_book_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_reviews_book_id ON reviews (book_id);`,
	},
	{
		Name: "create_index_reviews_user_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_reviews_user_id ON reviews (user_id);`,
	},
}

// EnsureMigrated checks if the 'books' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *slog.Logger, dbHost string) error {
	start := time.Now()
	log = log.With("component", "database", "db_host", dbHost)

	log.Info("db_migration_check", "status", "starting")

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		log.Error("db_migration_failed",
			"status", "error",
			"error_message", fmt.Sprintf("failed to check sentinel table: %v", err),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("db_migration_skip",
			"status", "success",
			"detail", "schema already exists, skipping migration",
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil
	}

	log.Info("db_migration_start", "status", "in_progress", "steps", len(steps))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				"status", "error",
				"migration_step", step.Name,
				"error_message", err.Error(),
				"duration_ms", time.Since(start).Milliseconds(),
				"step_duration_ms", time.Since(stepStart).Milliseconds(),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db_migration_step",
			"status", "success",
			"migration_step", step.Name,
			"step_duration_ms", time.Since(stepStart).Milliseconds(),
		)
	}

	log.Info("db_migration_success",
		"status", "success",
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}
