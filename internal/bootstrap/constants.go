package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many session logs survive cleanup, the new one included
	LogFileRetentionCount = 10
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting Armory"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"

	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Store Initialization
// =============================================================================

const (
	// StorePingTimeout bounds the startup connectivity check
	StorePingTimeout = 5 * time.Second

	LogMsgStoreInitialized  = "Store initialized"
	LogMsgMemoryStoreWarned = "Using in-memory store; data is lost on restart"

	ErrMsgFailedConnectDB   = "failed to connect to database"
	ErrMsgFailedPingDB      = "failed to reach database"
	ErrMsgFailedMigrate     = "failed to run migrations"
	ErrMsgUnknownDriver     = "unknown store driver %q"
	ErrMsgFailedSeedCatalog = "failed to seed catalog"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingStore         = "Closing store..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
