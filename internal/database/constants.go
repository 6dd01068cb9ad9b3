package database

import "time"

// Connection pool settings
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// PingTimeout bounds the connectivity check made by NewPool
	PingTimeout = 5 * time.Second
)

// Migration Constants
const (
	MigrationDialect = "postgres"
	MigrationsDir    = "."
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString   = "failed to parse connection string"
	ErrMsgFailedToCreatePool        = "failed to create connection pool"
	ErrMsgFailedToPingDatabase      = "failed to ping database"
	ErrMsgFailedToSetDialect        = "failed to set migration dialect"
	ErrMsgUnknownMigrateCommand     = "unknown migrate command"
	ErrMsgMigrationFailed           = "migration failed"
	ErrMsgFailedToCollectMigrations = "failed to collect migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Migrations applied"
)
