package main

import (
	"context"
	"flag"
	"log"

	"github.com/osse101/Foodgram_Go/internal/bootstrap"
	"github.com/osse101/Foodgram_Go/internal/config"
	"github.com/osse101/Foodgram_Go/internal/database"
)

func main() {
	ingredients := flag.String("ingredients", config.FixturePathIngredients, "ingredient fixture file (empty to skip)")
	tags := flag.String("tags", config.FixturePathTags, "tag fixture file (empty to skip)")
	users := flag.String("users", config.FixturePathUsers, "user fixture file (empty to skip)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	ctx := context.Background()
	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, database.MigrateUp); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	services, err := bootstrap.InitializeServices(cfg, bootstrap.InitializeRepositories(pool))
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	result, err := bootstrap.LoadFixtures(ctx, bootstrap.FixturePaths{
		Ingredients: *ingredients,
		Tags:        *tags,
		Users:       *users,
	}, services.Catalog, services.Users)
	if err != nil {
		log.Fatalf("Failed to load fixtures: %v", err)
	}

	log.Printf("Loaded %d ingredients, %d tags, %d users", result.Ingredients, result.Tags, result.Users)
}
