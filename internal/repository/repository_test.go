package repository

import (
	"context"
	"testing"

	"users-management/config"
	"users-management/internal/repository/postgres"
	"users-management/internal/repository/sqlite"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewSelectsBackend(t *testing.T) {
	cfg := &config.Config{SQLite: config.SQLiteConfig{Path: ":memory:"}}
	log := zap.NewNop().Sugar()

	repo, err := New(context.Background(), config.BackendPostgres, log, cfg)
	require.NoError(t, err)
	require.IsType(t, &postgres.Postgres{}, repo)

	repo, err = New(context.Background(), config.BackendSQLite, log, cfg)
	require.NoError(t, err)
	require.IsType(t, &sqlite.SQLite{}, repo)
}

func TestNewUnknownBackend(t *testing.T) {
	_, err := New(context.Background(), "mongo", zap.NewNop().Sugar(), &config.Config{})
	require.ErrorContains(t, err, "unknown repo backend")
}
