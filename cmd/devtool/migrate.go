package main

import (
	"context"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/database"
)

// MigrateCommand runs the embedded goose migrations, the same ones the
// server applies on startup
type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or inspect schema migrations (up, down, status, reset)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: devtool migrate <up|down|status|reset>")
	}
	direction := args[0]
	if !database.IsMigrateCommand(direction) {
		return fmt.Errorf("unknown migrate subcommand %q", direction)
	}

	ctx := context.Background()
	pool, err := openPool(ctx, dbConfigFromEnv())
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, direction); err != nil {
		return err
	}

	version, err := database.CurrentVersion(ctx, pool)
	if err != nil {
		return err
	}
	PrintSuccess("Schema at version %d", version)
	return nil
}
