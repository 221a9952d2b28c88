package postgres

import (
	"errors"
	"fmt"
	"testing"

	"users-management/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestInputErrorMapsRejectedAge(t *testing.T) {
	for _, code := range []string{"22P02", "22003"} {
		err := fmt.Errorf("query: %w", &pgconn.PgError{Code: code, Message: "bad age"})

		mapped := inputError(err)
		require.ErrorIs(t, mapped, entities.ErrInvalidArgument, code)
		require.Contains(t, mapped.Error(), "bad age")
	}
}

func TestInputErrorIgnoresOtherFailures(t *testing.T) {
	require.NoError(t, inputError(&pgconn.PgError{Code: "23505"}))
	require.NoError(t, inputError(errors.New("connection reset")))
}
