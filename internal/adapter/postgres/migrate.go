package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/ariane-backend/migrations"
)

// MigrateDirection selects what Migrate does.
type MigrateDirection string

const (
	MigrateUp     MigrateDirection = "up"
	MigrateDown   MigrateDirection = "down"
	MigrateStatus MigrateDirection = "status"
)

// Migrate applies the embedded goose migrations through pool.
// Down reverts only the most recent migration.
func Migrate(ctx context.Context, pool *pgxpool.Pool, dir MigrateDirection, log *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return migrateFS(ctx, db, migrations.FS, dir, log)
}

func migrateFS(ctx context.Context, db *sql.DB, fsys fs.FS, dir MigrateDirection, log *slog.Logger) error {
	// goose.NewProvider handles $$-delimited PL/pgSQL bodies correctly.
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	switch dir {
	case MigrateUp:
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		for _, r := range results {
			log.InfoContext(ctx, "migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
	case MigrateDown:
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		log.InfoContext(ctx, "migration reverted", slog.Int64("version", r.Source.Version))
	case MigrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range statuses {
			log.InfoContext(ctx, "migration status",
				slog.Int64("version", s.Source.Version),
				slog.String("state", string(s.State)),
			)
		}
	default:
		return fmt.Errorf("unknown migrate direction %q", dir)
	}

	return nil
}
