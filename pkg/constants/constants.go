// Package constants provides shared constants used throughout the roster codebase.
// This includes timeouts, limits, file permissions, and the wire-level names of
// the RBAC users API that should be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the directory
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for CLI commands
	CommandTimeout = 2 * time.Minute

	// ShutdownTimeout bounds cleanup after a failed command
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644

	// SecureFilePermissions is for sensitive files like tokens (rw-------)
	SecureFilePermissions = 0600
)

// Rate limiting constants
const (
	// DefaultRateLimit is the default number of directory requests per second.
	// Zero disables client-side pacing.
	DefaultRateLimit = 0

	// DefaultRateBurst is the token bucket burst size when pacing is enabled
	DefaultRateBurst = 5
)

// Directory API constants
const (
	// UsersPath is the users collection, relative to the API base URL
	UsersPath = "/users"

	// AuthResetPath consumes a password reset token
	AuthResetPath = "/auth/reset"

	// AuthHeader carries the RBAC API token
	AuthHeader = "X-Authentication"

	// RequestIDHeader carries the per-request correlation id
	RequestIDHeader = "X-Request-Id"

	// DefaultBaseURL is the RBAC API root on a standard console install
	DefaultBaseURL = "https://localhost:4433/rbac-api/v1"
)

// Environment and config file constants
const (
	// EnvPrefix is the prefix for environment variables read by the CLI
	EnvPrefix = "ROSTER"

	// ConfigName is the base name of the config file searched in $HOME and .
	ConfigName = ".roster"
)
