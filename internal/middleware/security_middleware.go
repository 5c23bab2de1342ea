package middleware

import (
	"net/http"
	"strings"

	"github.com/niiakoadjei/BlogApp/internal/config"
	"github.com/niiakoadjei/BlogApp/internal/constants"
)

// SecurityHeaders sets response headers that harden the API against common
// browser-side attacks.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constants.HeaderXContentTypeOpts, "nosniff")
		w.Header().Set(constants.HeaderXFrameOptions, "DENY")
		w.Header().Set(constants.HeaderXSSProtection, "1; mode=block")
		w.Header().Set(constants.HeaderReferrerPolicy, "strict-origin-when-cross-origin")
		w.Header().Set(constants.HeaderContentSecurity, "default-src 'none'; frame-ancestors 'none'")
		w.Header().Set(constants.HeaderCacheControl, constants.CacheControlNoStore)

		if r.TLS != nil {
			w.Header().Set(constants.HeaderStrictTransportSec, "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}

// CORS handles cross-origin requests according to the configured origins.
func CORS(cfg *config.CORSSettings) func(http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]bool, len(cfg.AllowedOrigins))
	for _, origin := range cfg.AllowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && (allowAll || allowed[origin]) {
				if allowAll && !cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Origin", "*")
				} else {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Vary", "Origin")
				}
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods",
					strings.Join([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}, ", "))
				w.Header().Set("Access-Control-Allow-Headers",
					strings.Join([]string{constants.HeaderContentType, constants.HeaderAuthorization, constants.HeaderXRequestID}, ", "))
				w.Header().Set("Access-Control-Max-Age", "86400")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
