// Package constants provides shared constant values used throughout the application.
//
// The errorcodes.go file defines machine-readable error codes returned in the
// error envelope of API responses. Clients branch on these codes rather than
// on human-readable messages.
package constants

// Error codes for the standard error response envelope.
const (
	CodeBadRequest           = "bad_request"
	CodeValidationError      = "validation_error"
	CodeUnauthorized         = "unauthorized"
	CodeForbidden            = "forbidden"
	CodeNotFound             = "not_found"
	CodeMethodNotAllowed     = "method_not_allowed"
	CodeConflict             = "conflict"
	CodeDuplicateResource    = "duplicate_resource"
	CodeInvalidCredentials   = "invalid_credentials"
	CodeTokenExpired         = "token_expired"
	CodeTokenInvalid         = "token_invalid"
	CodeAuthenticationFailed = "authentication_failed"
	CodeInternalError        = "internal_error"
)

// User-facing fallback messages for common error conditions.
const (
	MsgAuthRequired        = "Authentication required"
	MsgAccessDenied        = "You don't have permission to access this resource"
	MsgResourceNotFound    = "The requested resource could not be found"
	MsgMethodNotAllowed    = "Method not allowed"
	MsgInternalServerError = "An internal server error occurred"
	MsgTokenExpired        = "Token has expired"
	MsgEmptyRequestBody    = "Request body must not be empty"
	MsgMalformedJSON       = "Request body contains malformed JSON"
	MsgRequestBodyTooLarge = "Request body must not be larger than 1MB"
)
