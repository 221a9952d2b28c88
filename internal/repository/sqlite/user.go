package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"users-management/internal/entities"
)

const (
	userColumns = `id, COALESCE(name, ''), COALESCE(CAST(age AS TEXT), ''), created_at`

	listUsersQuery = `SELECT ` + userColumns + `
FROM users
ORDER BY id`
	insertUserQuery = `INSERT INTO users (name, age)
VALUES (?, NULLIF(?, ''))
RETURNING ` + userColumns
	updateUserQuery = `UPDATE users
SET name = ?, age = NULLIF(?, '')
WHERE id = ?
RETURNING ` + userColumns
	deleteUserQuery = `DELETE FROM users WHERE id = ?`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (entities.User, error) {
	var (
		u         entities.User
		createdAt string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Age, &createdAt); err != nil {
		return u, err
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return u, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	u.CreatedAt = ts
	return u, nil
}

// ListUsers returns every row of the users table.
func (s *SQLite) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := s.db.QueryContext(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			s.log.Errorw("failed to scan user", "error", err)
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		s.log.Errorw("failed to iterate users", "error", err)
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// InsertUser inserts one row and returns it as stored.
func (s *SQLite) InsertUser(ctx context.Context, draft entities.UserDraft) (*entities.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, insertUserQuery, draft.Name, draft.Age))
	if err != nil {
		s.log.Errorw("failed to insert user", "error", err)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	s.log.Infow("user inserted", "user_id", u.ID)
	return &u, nil
}

// UpdateUser overwrites name and age of the row with the given id.
func (s *SQLite) UpdateUser(ctx context.Context, id int64, draft entities.UserDraft) (*entities.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, updateUserQuery, draft.Name, draft.Age, id))
	if err != nil {
		s.log.Errorw("failed to update user", "error", err, "user_id", id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}

		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Infow("user updated", "user_id", id)
	return &u, nil
}

// DeleteUser removes the row with the given id. Deleting a missing row is not an error.
func (s *SQLite) DeleteUser(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		s.log.Errorw("failed to delete user", "error", err, "user_id", id)
		return fmt.Errorf("delete user: %w", err)
	}

	n, _ := res.RowsAffected()
	s.log.Infow("user deleted", "user_id", id, "rows", n)
	return nil
}
