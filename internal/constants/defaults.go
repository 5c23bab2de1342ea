// Package constants provides shared constant values used throughout the application.
//
// The defaults.go file defines default values and limits used throughout the
// application. These constants provide sensible defaults for configuration
// settings, establish boundaries for resource usage, and define security
// parameters.
package constants

// Default Pagination Values define the parameters used for paginated responses.
const (
	// DefaultPage is the default page number for paginated results when not specified.
	DefaultPage = 1

	// DefaultPageSize is the default number of posts per page when not specified.
	DefaultPageSize = 3

	// MaxPageSize is the maximum allowable page size to prevent excessive resource usage.
	MaxPageSize = 50

	// MinPageSize is the minimum allowable page size.
	MinPageSize = 1
)

// Default Configuration Values define fallback settings when not specified in configuration.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultDBMaxConnections is the default maximum number of database connections.
	DefaultDBMaxConnections = 20

	// DefaultDBMinConnections is the default minimum number of idle database connections.
	DefaultDBMinConnections = 5

	// DefaultLogLevel is the default logging verbosity level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default logging output format.
	DefaultLogFormat = "json"
)

// Environment Types define the recognized application running environments.
const (
	// EnvDevelopment identifies a development environment with debugging features enabled.
	EnvDevelopment = "development"

	// EnvTesting identifies a testing environment for automated tests.
	EnvTesting = "testing"

	// EnvProduction identifies a production environment with optimized settings.
	EnvProduction = "production"
)

// Request and Upload Limits help prevent denial of service through oversized payloads.
const (
	// MaxRequestBodySize is the maximum size in bytes for JSON request bodies.
	MaxRequestBodySize = 1048576 // 1MB

	// MaxPictureUploadSize is the maximum size in bytes for profile picture uploads.
	MaxPictureUploadSize = 5 * 1048576 // 5MB
)

// Profile Picture Defaults define how uploaded profile pictures are processed.
const (
	// DefaultProfileImage is the placeholder asset assigned to new accounts.
	DefaultProfileImage = "default.jpg"

	// ProfileImageBound is the bounding box (width and height) for stored thumbnails.
	ProfileImageBound = 125

	// ProfileImageTokenBytes is the number of random bytes used for stored filenames.
	ProfileImageTokenBytes = 8
)

// Auth Constants define values related to token management.
const (
	// DefaultJWTIssuer is the issuer claim value for JWT tokens.
	DefaultJWTIssuer = "blogapp-api"

	// BearerTokenPrefix is the prefix for Authorization header bearer tokens.
	BearerTokenPrefix = "Bearer "

	// TokenTypeAccess identifies short-lived access tokens.
	TokenTypeAccess = "access"

	// TokenTypeRefresh identifies refresh tokens backed by a session row.
	TokenTypeRefresh = "refresh"

	// TokenTypePasswordReset identifies stateless password reset tokens.
	TokenTypePasswordReset = "password_reset"
)
