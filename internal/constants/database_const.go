// Package constants provides shared constant values used throughout the application.
//
// The database_const.go file defines table and column names used by the
// repository layer, keeping query construction consistent with the schema
// created by the migrations package.
package constants

// Table names for the application schema.
const (
	// TableUsers is the table holding registered user accounts.
	TableUsers = "users"

	// TablePosts is the table holding blog posts.
	TablePosts = "posts"

	// TableSessions is the table holding active refresh sessions.
	TableSessions = "sessions"

	// TableMigrations is the table tracking executed schema migrations.
	TableMigrations = "migrations"
)

// Column names referenced outside of plain query strings.
const (
	// ColumnUsername is the unique username column on the users table.
	ColumnUsername = "username"

	// ColumnEmail is the unique email column on the users table.
	ColumnEmail = "email"
)

// PostgreSQL error codes checked by the repository layer.
const (
	// PGCodeUniqueViolation is returned when a unique constraint is violated.
	PGCodeUniqueViolation = "23505"
)

// LogRedactedValue replaces sensitive values in logs.
const LogRedactedValue = "[REDACTED]"
