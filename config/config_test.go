package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.ServerAddr())
	require.Equal(t, BackendPostgres, cfg.Database.Backend)
	require.Equal(t, "users_session", cfg.Session.CookieName)
	require.Equal(t, 30*time.Minute, cfg.Session.IdleTTL)
	require.Equal(t, 3*time.Second, cfg.HTTP.RequestTimeout)
	require.Empty(t, cfg.OTel.Endpoint)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_BACKEND", BackendSQLite)
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_IDLE_TTL", "5m")

	cfg, err := NewConfig()
	require.NoError(t, err)

	require.Equal(t, BackendSQLite, cfg.Database.Backend)
	require.Equal(t, ":memory:", cfg.SQLite.Path)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, 5*time.Minute, cfg.Session.IdleTTL)
}

func TestNewConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("DATABASE_BACKEND", "mongo")

	_, err := NewConfig()
	require.ErrorContains(t, err, "unknown database.backend")
}

func TestPostgresDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "users", SSLMode: "require"}
	require.Equal(t, "host=db port=5432 user=u password=p dbname=users sslmode=require", p.DSN())
}
