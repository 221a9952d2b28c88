package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"users-management/internal/entities"
)

const (
	userColumns = `id, COALESCE(name, ''), COALESCE(age::text, ''), created_at`

	listUsersQuery = `SELECT ` + userColumns + `
FROM users
ORDER BY id`
	insertUserQuery = `INSERT INTO users (name, age)
VALUES ($1, NULLIF($2, '')::integer)
RETURNING ` + userColumns
	updateUserQuery = `UPDATE users
SET name = $2, age = NULLIF($3, '')::integer
WHERE id = $1
RETURNING ` + userColumns
	deleteUserQuery = `DELETE FROM users WHERE id = $1`
)

// Codes raised when the age column cannot hold the submitted value.
const (
	codeInvalidTextRepresentation = "22P02"
	codeNumericValueOutOfRange    = "22003"
)

// inputError maps rejected column values to ErrInvalidArgument.
func inputError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeInvalidTextRepresentation, codeNumericValueOutOfRange:
			return fmt.Errorf("%w: %s", entities.ErrInvalidArgument, pgErr.Message)
		}
	}
	return nil
}

func scanUser(row pgx.Row) (entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Name, &u.Age, &u.CreatedAt)
	return u, err
}

// ListUsers returns every row of the users table.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			p.log.Errorw("failed to scan user", "error", err)
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		p.log.Errorw("failed to iterate users", "error", err)
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// InsertUser inserts one row and returns it as stored.
func (p *Postgres) InsertUser(ctx context.Context, draft entities.UserDraft) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, insertUserQuery, draft.Name, draft.Age))
	if err != nil {
		p.log.Errorw("failed to insert user", "error", err)
		if mapped := inputError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user inserted", "user_id", u.ID)
	return &u, nil
}

// UpdateUser overwrites name and age of the row with the given id.
func (p *Postgres) UpdateUser(ctx context.Context, id int64, draft entities.UserDraft) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, updateUserQuery, id, draft.Name, draft.Age))
	if err != nil {
		p.log.Errorw("failed to update user", "error", err, "user_id", id)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		if mapped := inputError(err); mapped != nil {
			return nil, mapped
		}

		return nil, fmt.Errorf("update user: %w", err)
	}

	p.log.Infow("user updated", "user_id", id)
	return &u, nil
}

// DeleteUser removes the row with the given id. Deleting a missing row is not an error.
func (p *Postgres) DeleteUser(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		p.log.Errorw("failed to delete user", "error", err, "user_id", id)
		return fmt.Errorf("delete user: %w", err)
	}

	p.log.Infow("user deleted", "user_id", id, "rows", tag.RowsAffected())
	return nil
}
