package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	seatErr := fmt.Errorf("update seat: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: seatUniqueIndex})
	emailErr := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "users_email_key"}
	fkErr := &pgconn.PgError{Code: "23503", ConstraintName: seatUniqueIndex}

	require.True(t, isUniqueViolation(seatErr, seatUniqueIndex))
	require.True(t, isUniqueViolation(seatErr, ""))
	require.False(t, isUniqueViolation(emailErr, seatUniqueIndex))
	require.True(t, isUniqueViolation(emailErr, ""))
	require.False(t, isUniqueViolation(fkErr, seatUniqueIndex))
	require.False(t, isUniqueViolation(errors.New("boom"), ""))
}
