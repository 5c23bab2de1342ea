// Package constants provides shared constant values used throughout the application.
//
// The httpcodes.go file aliases the HTTP status codes used by the response
// helpers, keeping status selection readable at call sites.
package constants

import "net/http"

// HTTP status codes used by the response helpers.
const (
	StatusOK                  = http.StatusOK
	StatusCreated             = http.StatusCreated
	StatusNoContent           = http.StatusNoContent
	StatusBadRequest          = http.StatusBadRequest
	StatusUnauthorized        = http.StatusUnauthorized
	StatusForbidden           = http.StatusForbidden
	StatusNotFound            = http.StatusNotFound
	StatusMethodNotAllowed    = http.StatusMethodNotAllowed
	StatusConflict            = http.StatusConflict
	StatusInternalServerError = http.StatusInternalServerError
)

// Response envelope success flags.
const (
	ResponseSuccess = true
	ResponseFailure = false
)
