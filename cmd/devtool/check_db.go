package main

import (
	"context"
	"fmt"
)

// CheckDBCommand connects once and compares the applied schema with the
// migrations embedded in this build
type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Ping the database and report server and schema versions"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking database")
	return checkDatabase(context.Background())
}

func checkDatabase(ctx context.Context) error {
	pool, err := openPool(ctx, dbConfigFromEnv())
	if err != nil {
		return err
	}
	defer pool.Close()

	var serverVersion string
	if err := pool.QueryRow(ctx, `SHOW server_version`).Scan(&serverVersion); err != nil {
		return fmt.Errorf("failed to read server version: %w", err)
	}
	PrintSuccess("PostgreSQL %s is reachable", serverVersion)

	return reportSchema(ctx, pool)
}
