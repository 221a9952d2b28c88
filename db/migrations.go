// Package db embeds the goose migrations for the users table.
package db

import "embed"

// Migrations holds one goose directory per backend dialect.
//
//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var Migrations embed.FS

// Migration directories inside Migrations.
const (
	PostgresDir = "migrations/postgres"
	SQLiteDir   = "migrations/sqlite"
)
