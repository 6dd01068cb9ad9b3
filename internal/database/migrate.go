package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/Foodgram_Go/migrations"
)

// Migration directions accepted by Migrate
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
	MigrateReset  = "reset"
)

// IsMigrateCommand reports whether Migrate accepts command
func IsMigrateCommand(command string) bool {
	switch command {
	case MigrateUp, MigrateDown, MigrateStatus, MigrateReset:
		return true
	}
	return false
}

func init() {
	goose.SetBaseFS(migrations.FS)
}

// Migrate runs a goose command against the embedded migrations using the pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	return migrateDB(ctx, db, command)
}

func migrateDB(ctx context.Context, db *sql.DB, command string) error {
	if err := goose.SetDialect(MigrationDialect); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}

	var err error
	switch command {
	case MigrateUp:
		err = goose.UpContext(ctx, db, MigrationsDir)
	case MigrateDown:
		err = goose.DownContext(ctx, db, MigrationsDir)
	case MigrateStatus:
		err = goose.StatusContext(ctx, db, MigrationsDir)
	case MigrateReset:
		err = goose.ResetContext(ctx, db, MigrationsDir)
	default:
		return fmt.Errorf("%s: %q", ErrMsgUnknownMigrateCommand, command)
	}
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgMigrationFailed, command, err)
	}

	slog.Default().Info(LogMsgMigrationsApplied, "command", command)
	return nil
}

// CurrentVersion reports the latest applied migration version
func CurrentVersion(ctx context.Context, pool *pgxpool.Pool) (int64, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect(MigrationDialect); err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	return goose.GetDBVersionContext(ctx, db)
}

// LatestVersion is the highest migration version embedded in this build
func LatestVersion() (int64, error) {
	found, err := goose.CollectMigrations(MigrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCollectMigrations, err)
	}
	last, err := found.Last()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToCollectMigrations, err)
	}
	return last.Version, nil
}
