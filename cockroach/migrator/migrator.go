package migrator

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nicolasparada/go-db"
)

// Migrate applies every *.sql file in fsys, sorted by path,
// skipping the ones already recorded in the migrations table.
// Each file runs inside its own transaction.
func Migrate(ctx context.Context, pool *pgxpool.Pool, fsys fs.FS) error {
	db := db.New(pool)
	if err := ensureMigrationsTable(ctx, db); err != nil {
		return err
	}

	matches, err := fs.Glob(fsys, "**/*.sql")
	if err != nil {
		return fmt.Errorf("glob migrations: %w", err)
	}

	slices.Sort(matches)

	for _, match := range matches {
		name := strings.TrimSuffix(path.Base(match), ".sql")

		err := db.RunTx(ctx, func(ctx context.Context) error {
			exists, err := migrationExists(ctx, db, name)
			if err != nil {
				return err
			}

			if exists {
				return nil
			}

			b, err := fs.ReadFile(fsys, match)
			if err != nil {
				return fmt.Errorf("read migration file: %w", err)
			}

			if _, err := db.Exec(ctx, string(b)); err != nil {
				return fmt.Errorf("sql exec migration: %w", err)
			}

			return recordMigration(ctx, db, name)
		})
		if err != nil {
			return fmt.Errorf("migrate %s: %w", name, err)
		}
	}

	return nil
}

func ensureMigrationsTable(ctx context.Context, db *db.DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS migrations (
			name VARCHAR NOT NULL PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("sql create migrations table: %w", err)
	}
	return nil
}

func migrationExists(ctx context.Context, db *db.DB, name string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM migrations WHERE name = $1
		)
	`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("sql check migration exists: %w", err)
	}
	return exists, nil
}

func recordMigration(ctx context.Context, db *db.DB, name string) error {
	_, err := db.Exec(ctx, `
		INSERT INTO migrations (name) VALUES ($1)
	`, name)
	if err != nil {
		return fmt.Errorf("sql record migration: %w", err)
	}
	return nil
}
