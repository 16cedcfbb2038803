// Package migration creates the library schema on an empty database.
package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

// sentinelTable is created by the last step; its presence means the schema is complete.
const sentinelTable = "public.client"

var steps = []migrationStep{
	{
		Name: "create_table_publisher",
		SQL: `CREATE TABLE IF NOT EXISTS publisher (
  id   BIGSERIAL    PRIMARY KEY,
  name VARCHAR(100) NOT NULL,
  CONSTRAINT publisher_name_key UNIQUE (name)
);`,
	},
	{
		Name: "create_table_author",
		SQL: `CREATE TABLE IF NOT EXISTS author (
  id         BIGSERIAL   PRIMARY KEY,
  first_name VARCHAR(50) NOT NULL,
  last_name  VARCHAR(50) NOT NULL
);`,
	},
	{
		Name: "create_index_author_last_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_author_last_name ON author (last_name);`,
	},
	{
		Name: "create_table_client",
		SQL: `CREATE TABLE IF NOT EXISTS client (
  id         BIGSERIAL   PRIMARY KEY,
  first_name VARCHAR(50) NOT NULL,
  last_name  VARCHAR(50) NOT NULL,
  email      VARCHAR(50),
  address    VARCHAR(50),
  phone      VARCHAR(20),
  CONSTRAINT client_email_key UNIQUE (email)
);`,
	},
}

// EnsureMigrated checks for the sentinel table and runs every step when it is missing.
// Steps are idempotent, so a run interrupted halfway is completed by the next start.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"))

	log.Info("db migration check", zap.String("sentinel", sentinelTable))

	var exists bool
	err := db.QueryRowContext(ctx, "SELECT to_regclass($1) IS NOT NULL", sentinelTable).Scan(&exists)
	if err != nil {
		log.Error("db migration failed",
			zap.Error(err),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration",
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil
	}

	log.Info("db migration start", zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db migration failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Info("db migration step",
			zap.String("migration_step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
		)
	}

	log.Info("db migration success", zap.Int64("duration_ms", time.Since(start).Milliseconds()))

	return nil
}
