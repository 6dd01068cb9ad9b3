package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/osse101/Foodgram_Go/internal/bootstrap"
	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/database"
)

// SeedCommand loads the JSON fixtures into a migrated database
type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Migrate, then load ingredient, tag and user fixtures"
}

func (c *SeedCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	paths := bootstrap.FixturePaths{}
	fs.StringVar(&paths.Ingredients, "ingredients", config.FixturePathIngredients, "ingredient fixture (empty to skip)")
	fs.StringVar(&paths.Tags, "tags", config.FixturePathTags, "tag fixture (empty to skip)")
	fs.StringVar(&paths.Users, "users", config.FixturePathUsers, "user fixture (empty to skip)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Services read cache and paging settings, so the full config is needed
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()
	pool, err := openPool(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, database.MigrateUp); err != nil {
		return err
	}

	services, err := bootstrap.InitializeServices(cfg, bootstrap.InitializeRepositories(pool))
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	result, err := bootstrap.LoadFixtures(ctx, paths, services.Catalog, services.Users)
	if err != nil {
		return err
	}
	PrintSuccess("Seeded %d ingredients, %d tags, %d users", result.Ingredients, result.Tags, result.Users)
	return nil
}
