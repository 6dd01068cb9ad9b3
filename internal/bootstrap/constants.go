package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingFoodgram    = "Starting Foodgram"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Fixture Sync Messages
// =============================================================================

const (
	LogMsgLoadingIngredients = "Loading ingredient fixtures..."
	LogMsgLoadingTags        = "Loading tag fixtures..."
	LogMsgIngredientsLoaded  = "Ingredient fixtures loaded"
	LogMsgTagsLoaded         = "Tag fixtures loaded"
	LogMsgLoadingUsers       = "Loading user fixtures..."
	LogMsgUsersLoaded        = "User fixtures loaded"
	LogMsgFixtureMissing     = "Fixture file not found, skipping"

	ErrMsgFailedReadFixture   = "failed to read fixture file"
	ErrMsgInvalidFixture      = "fixture does not match schema"
	ErrMsgFailedDecodeFixture = "failed to decode fixture"
	ErrMsgFailedImportFixture = "failed to import fixture"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"

	ErrMsgFailedRegisterMetrics   = "failed to register event metrics"
	ErrMsgFailedSubscribeEventLog = "failed to subscribe event log"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	JobNameEventLogCleanup = "event_log_cleanup"

	LogMsgBackgroundJobsStarted = "Background jobs started"
	LogMsgStoppingBackgroundJob = "Stopping background jobs..."
)
