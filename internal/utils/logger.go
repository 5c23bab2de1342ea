// Package utils provides utility functions and helpers for the application.
// This file configures the global zerolog logger and provides structured
// logging helpers used by the repository and service layers. Credentials and
// token material are never passed to these helpers unredacted.
package utils

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/niiakoadjei/BlogApp/internal/config"
)

// InitLogger configures the global logger from application settings.
func InitLogger(cfg *config.AppConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.Logging.Format == "console" || cfg.App.IsDevelopment() {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	log.Info().
		Str("level", level.String()).
		Str("format", cfg.Logging.Format).
		Msg("Logger initialized")
}

// LogDBQuery logs a database query execution with its duration. Callers must
// redact sensitive arguments before passing them in.
func LogDBQuery(query string, args []interface{}, duration time.Duration, err error) {
	event := log.Debug()
	if err != nil {
		event = log.Error().Err(err)
	}

	event.
		Str("query", strings.Join(strings.Fields(query), " ")).
		Interface("args", args).
		Dur("duration", duration).
		Msg("Database query")
}

// LogAuth logs an authentication event such as a login attempt or a password
// reset, without any credential material.
func LogAuth(event, userID, username string, success bool, reason string) {
	logEvent := log.Info()
	if !success {
		logEvent = log.Warn()
	}

	logEvent = logEvent.
		Str("event", event).
		Str("user_id", userID).
		Str("username", username).
		Bool("success", success)

	if reason != "" {
		logEvent = logEvent.Str("reason", reason)
	}

	logEvent.Msg("Auth event")
}
