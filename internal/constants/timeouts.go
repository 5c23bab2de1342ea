// Package constants provides shared constant values used throughout the application.
//
// The timeouts.go file defines durations for server timeouts, token lifetimes,
// and background maintenance. Token lifetimes here are defaults; deployments
// override them through configuration.
package constants

import "time"

// Server timeouts control how long the HTTP server waits on slow clients.
const (
	// DefaultReadTimeout is the maximum duration for reading a request.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the maximum duration for writing a response.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout is the maximum time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultShutdownTimeout is how long graceful shutdown waits for in-flight requests.
	DefaultShutdownTimeout = 15 * time.Second
)

// Token lifetimes define default validity windows for issued tokens.
const (
	// DefaultJWTExpiry is the default access token lifetime.
	DefaultJWTExpiry = 15 * time.Minute

	// DefaultJWTRefreshExpiry is the default refresh session lifetime.
	DefaultJWTRefreshExpiry = 7 * 24 * time.Hour

	// DefaultJWTRememberExpiry is the refresh session lifetime when the user
	// asks to stay signed in.
	DefaultJWTRememberExpiry = 30 * 24 * time.Hour

	// DefaultResetTokenExpiry is the validity window for password reset tokens.
	DefaultResetTokenExpiry = 30 * time.Minute
)

// Database connection pool timeouts.
const (
	// DBConnectTimeout is how long to wait for the initial connection ping.
	DBConnectTimeout = 10 * time.Second

	// DBConnMaxLifetime is the maximum lifetime of a pooled connection.
	DBConnMaxLifetime = 1 * time.Hour

	// DBConnMaxIdleTime is how long an idle connection is kept in the pool.
	DBConnMaxIdleTime = 30 * time.Minute
)

// Maintenance intervals for background cleanup tasks.
const (
	// DBMaintenanceInterval is how often expired sessions are cleaned up.
	DBMaintenanceInterval = 1 * time.Hour
)
