package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Foodgram_Go/internal/database"
)

func reportSchema(ctx context.Context, pool *pgxpool.Pool) error {
	latest, err := database.LatestVersion()
	if err != nil {
		return err
	}
	applied, err := database.CurrentVersion(ctx, pool)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	return compareSchema(applied, latest)
}

// compareSchema prints the migration state; a database ahead of the build is an error
func compareSchema(applied, latest int64) error {
	switch {
	case applied == latest:
		PrintSuccess("Schema is current (version %d)", applied)
	case applied < latest:
		PrintWarning("Schema at version %d, %d pending; run: devtool migrate up", applied, latest-applied)
	default:
		return fmt.Errorf("schema version %d is newer than this build (%d)", applied, latest)
	}
	return nil
}
