package sqlite

import (
	"context"
	"testing"

	"users-management/config"
	"users-management/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()
	ctx := context.Background()

	cfg := &config.Config{SQLite: config.SQLiteConfig{Path: ":memory:"}}
	repo := New(ctx, zap.NewNop().Sugar(), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	return repo
}

func TestListUsersEmpty(t *testing.T) {
	repo := newTestRepo(t)

	users, err := repo.ListUsers(context.Background())
	require.NoError(t, err)
	require.NotNil(t, users)
	require.Empty(t, users)
}

func TestInsertAndList(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	alice, err := repo.InsertUser(ctx, entities.UserDraft{Name: "Alice", Age: "30"})
	require.NoError(t, err)
	require.NotZero(t, alice.ID)
	require.Equal(t, "Alice", alice.Name)
	require.Equal(t, "30", alice.Age)
	require.False(t, alice.CreatedAt.IsZero())

	bob, err := repo.InsertUser(ctx, entities.UserDraft{Name: "Bob"})
	require.NoError(t, err)
	require.Equal(t, "", bob.Age)
	require.Greater(t, bob.ID, alice.ID)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, alice.ID, users[0].ID)
	require.Equal(t, "Bob", users[1].Name)
	require.True(t, alice.CreatedAt.Equal(users[0].CreatedAt))
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	bob, err := repo.InsertUser(ctx, entities.UserDraft{Name: "Bob", Age: "25"})
	require.NoError(t, err)

	updated, err := repo.UpdateUser(ctx, bob.ID, entities.UserDraft{Name: "Bob2", Age: "26"})
	require.NoError(t, err)
	require.Equal(t, bob.ID, updated.ID)
	require.Equal(t, "Bob2", updated.Name)
	require.Equal(t, "26", updated.Age)
	require.True(t, bob.CreatedAt.Equal(updated.CreatedAt))

	_, err = repo.UpdateUser(ctx, bob.ID+100, entities.UserDraft{Name: "Ghost"})
	require.ErrorIs(t, err, entities.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	alice, err := repo.InsertUser(ctx, entities.UserDraft{Name: "Alice", Age: "30"})
	require.NoError(t, err)
	bob, err := repo.InsertUser(ctx, entities.UserDraft{Name: "Bob", Age: "25"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteUser(ctx, alice.ID))
	require.NoError(t, repo.DeleteUser(ctx, alice.ID))

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, bob.ID, users[0].ID)
}
