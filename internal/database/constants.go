package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Startup Retry Policy
// One policy for the whole process; consumers share the pool it produces.
const (
	MaxConnectAttempts     = 5
	InitialRetryDelay      = 1 * time.Second
	MaxRetryDelay          = 30 * time.Second
	RetryBackoffMultiplier = 1.5
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgConnectRetriesExhausted = "database connection retries exhausted"
	ErrMsgConnectCancelled        = "database connection cancelled"
	ErrMsgFailedToRunMigrations   = "failed to run migrations"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgConnectAttemptFailed            = "Database connection attempt failed"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
