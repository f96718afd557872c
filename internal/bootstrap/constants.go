package bootstrap

import "time"

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

	// LogFileRetentionCount is the number of older log files kept next to the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting Spin & Survive"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Storage Configuration
// =============================================================================

const (
	// DBMaxConnIdleTime closes idle postgres connections after this long
	DBMaxConnIdleTime = 5 * time.Minute

	// DBMaxConnLifetime recycles postgres connections after this long
	DBMaxConnLifetime = time.Hour

	// StoreConnectTimeout bounds the initial ping of a remote backend
	StoreConnectTimeout = 10 * time.Second
)

// Log and error messages for store initialization
const (
	LogMsgStoreInitialized    = "State store initialized"
	LogMsgStoreCacheEnabled   = "State store cache enabled"
	ErrMsgUnknownStoreBackend = "unknown store backend %q"
	ErrMsgFailedConnectStore  = "failed to connect to %s store"
	ErrMsgFailedMigrate       = "failed to migrate database"
	ErrMsgFailedCreateKVStore = "failed to create postgres key/value store"
	ErrMsgFailedCreateDataDir = "failed to create data directory"
)

// =============================================================================
// Event System Configuration
// =============================================================================

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
	LogMsgMetricsCollectorRegistered     = "Metrics collector registered"
	ErrMsgFailedRegisterMetrics          = "failed to register metrics collector"
)

// =============================================================================
// Session Configuration
// =============================================================================

const (
	LogMsgRandomSourceSelected = "Random source selected"
	LogMsgTimezoneSelected     = "Calendar day time zone selected"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgClosingEventStreams        = "Closing event streams..."
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgDailyResetWorkerFailed     = "Daily reset worker shutdown failed"
	LogMsgStoreCloseFailed           = "State store close failed"
)
