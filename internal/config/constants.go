package config

import "time"

// Defaults applied when the matching environment variable is unset or invalid
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "foodgram"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultRateLimitRPS   = 20.0
	DefaultRateLimitBurst = 40
	DefaultMaxBodyBytes   = 10 << 20

	DefaultPageSize           = 10
	DefaultCatalogCacheSize   = 2048
	DefaultCatalogCacheTTL    = 10 * time.Minute
	DefaultShoppingListLocale = "ru"

	DefaultEventLogRetentionDays   = 30
	DefaultEventLogCleanupInterval = 24 * time.Hour
	DefaultWorkerCount             = 2
	DefaultWorkerQueueSize         = 64
	DefaultWorkerJobTimeout        = 5 * time.Minute
)

// Fixture file paths read by the loaddata command
const (
	FixturePathIngredients = "data/ingredients.json"
	FixturePathTags        = "data/tags.json"
	FixturePathUsers       = "data/users.json"
)
