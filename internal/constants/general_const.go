// Package constants provides shared constant values used throughout the application.
//
// The general_const.go file defines general-purpose constants related to
// routing, request parameters, headers, and context keys. These constants
// ensure consistent API patterns throughout the application.
package constants

// Base Routes define the root URL paths for different parts of the API.
const (
	// APIBasePath is the root path prefix for all API endpoints.
	APIBasePath = "/api"

	// HealthPath is the endpoint for health checks and system status.
	HealthPath = "/health"
)

// Query parameter names used by paginated endpoints.
const (
	// QueryParamPage is the query parameter selecting the page number.
	QueryParamPage = "page"

	// QueryParamPageSize is the query parameter selecting the page size.
	QueryParamPageSize = "page_size"
)

// HTTP header names used by handlers and middleware.
const (
	HeaderAuthorization      = "Authorization"
	HeaderContentType        = "Content-Type"
	HeaderXRequestID         = "X-Request-ID"
	HeaderCacheControl       = "Cache-Control"
	ContentTypeJSON          = "application/json"
	CacheControlNoStore      = "no-store"
	HeaderXContentTypeOpts   = "X-Content-Type-Options"
	HeaderXFrameOptions      = "X-Frame-Options"
	HeaderXSSProtection      = "X-XSS-Protection"
	HeaderReferrerPolicy     = "Referrer-Policy"
	HeaderContentSecurity    = "Content-Security-Policy"
	HeaderStrictTransportSec = "Strict-Transport-Security"
)

// Cookie names used by the authentication handlers.
const (
	// RefreshTokenCookie carries the refresh token between requests.
	RefreshTokenCookie = "refresh_token"
)

// Context keys for values stored on the request context by middleware.
const (
	UserIDContextKey    = "user_id"
	UsernameContextKey  = "username"
	EmailContextKey     = "email"
	RequestIDContextKey = "request_id"
)
