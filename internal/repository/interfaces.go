// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"users-management/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes the four operations performed against the users table.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	InsertUser(ctx context.Context, draft entities.UserDraft) (*entities.User, error)
	UpdateUser(ctx context.Context, id int64, draft entities.UserDraft) (*entities.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
