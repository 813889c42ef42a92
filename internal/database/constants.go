package database

import "time"

// Connection pool sizing, applied by NewPool
const (
	DefaultMaxConnections  = 25
	DefaultMinConnections  = 2
	DefaultMaxConnIdleTime = 5 * time.Minute
	DefaultMaxConnLifetime = 30 * time.Minute
)

// Error and log message constants
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"

	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to database"
)
