package server

import "time"

const (
	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout = 5 * time.Second
	// ReadyzTimeout bounds the database ping in the readiness check.
	ReadyzTimeout = 2 * time.Second
)

// Log Messages
const (
	LogMsgServerStarting   = "Health server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgReadyzFailed     = "Readiness check failed"
)

// Response statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)
