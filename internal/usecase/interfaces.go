package usecase

import (
	"context"

	"users-management/internal/entities"
)

// UserUsecaseInterface abstracts the users table operations for the screen.
type UserUsecaseInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	CreateUser(ctx context.Context, draft entities.UserDraft) (*entities.User, error)
	UpdateUser(ctx context.Context, id int64, draft entities.UserDraft) (*entities.User, error)
	DeleteUser(ctx context.Context, id int64) error
}
