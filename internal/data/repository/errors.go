package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNoRows is returned by writes that matched no row.
	ErrNoRows = errors.New("no rows affected")

	// ErrDuplicate is returned when an insert or update hits a unique index.
	ErrDuplicate = errors.New("duplicate key")

	// ErrSeatConflict is returned when a guest write collides with the
	// (table_id, seat_number) unique index.
	ErrSeatConflict = errors.New("seat number already used at table")
)

const (
	pgUniqueViolation = "23505"
	seatUniqueIndex   = "uq_guests_table_seat"
)

// isUniqueViolation reports whether err is a unique violation, optionally
// restricted to one constraint name.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
