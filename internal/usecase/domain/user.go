// Package domain contains application Usecases orchestrating domain logic by user.
package domain

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"users-management/internal/entities"
)

func (u *Usecase) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.String("db.sql.table", "users"))
	return u.tracer.Start(ctx, "users."+op, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// ListUsers returns every user row.
func (u *Usecase) ListUsers(ctx context.Context) (users []entities.User, err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	ctx, span := u.start(ctx, "list")
	defer func() { endSpan(span, err) }()

	return u.repo.ListUsers(ctx)
}

// CreateUser inserts one user built from the draft.
func (u *Usecase) CreateUser(ctx context.Context, draft entities.UserDraft) (user *entities.User, err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	ctx, span := u.start(ctx, "insert")
	defer func() { endSpan(span, err) }()

	user, err = u.repo.InsertUser(ctx, draft)
	if err != nil {
		return nil, err
	}
	u.log.Infow("user created", "user_id", user.ID)
	return user, nil
}

// UpdateUser replaces name and age of the user with the given id.
func (u *Usecase) UpdateUser(ctx context.Context, id int64, draft entities.UserDraft) (user *entities.User, err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	ctx, span := u.start(ctx, "update", attribute.Int64("user.id", id))
	defer func() { endSpan(span, err) }()

	if id <= 0 {
		u.log.Errorw("failed to update user: invalid id", "user_id", id)
		return nil, fmt.Errorf("%w: user id must be positive", entities.ErrInvalidArgument)
	}

	user, err = u.repo.UpdateUser(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	u.log.Infow("user updated", "user_id", id)
	return user, nil
}

// DeleteUser removes the user with the given id.
func (u *Usecase) DeleteUser(ctx context.Context, id int64) (err error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	ctx, span := u.start(ctx, "delete", attribute.Int64("user.id", id))
	defer func() { endSpan(span, err) }()

	if id <= 0 {
		u.log.Errorw("failed to delete user: invalid id", "user_id", id)
		return fmt.Errorf("%w: user id must be positive", entities.ErrInvalidArgument)
	}

	if err = u.repo.DeleteUser(ctx, id); err != nil {
		return err
	}
	u.log.Infow("user deleted", "user_id", id)
	return nil
}
