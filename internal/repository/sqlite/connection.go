// Package sqlite implements the repository against an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"users-management/config"
	"users-management/db"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// SQLite wraps a database handle and configuration.
type SQLite struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	db      *sql.DB
	cfg     config.SQLiteConfig
}

// New creates a SQLite repository instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *SQLite {
	return &SQLite{
		baseCtx: ctx,
		log:     log.Named("repo.sqlite"),
		cfg:     cfg.SQLite,
	}
}

// OnStart opens the database file and applies migrations.
func (s *SQLite) OnStart(_ context.Context) error {
	sqlDB, err := sql.Open("sqlite", s.cfg.Path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serialises writers.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.ExecContext(s.baseCtx, `PRAGMA busy_timeout = 5000`); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("sqlite pragma: %w", err)
	}

	goose.SetBaseFS(db.Migrations)
	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("migrate dialect: %w", err)
	}
	if err := goose.UpContext(s.baseCtx, sqlDB, db.SQLiteDir); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("migrate: %w", err)
	}

	s.db = sqlDB
	s.log.Infow("sqlite ready", "path", s.cfg.Path)
	return nil
}

// OnStop closes the database handle.
func (s *SQLite) OnStop(_ context.Context) error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
