package usecase

import (
	"errors"
	"fmt"

	"wedding-planner/pkg/utils"
)

// Sentinel errors returned by services. Handlers translate them to HTTP
// statuses with errors.Is; callers wrap them with context using %w.
var (
	// ErrNotFound is returned for unknown or foreign ids.
	ErrNotFound = errors.New("not found")

	// ErrTableFull is returned when an assignment would exceed capacity.
	ErrTableFull = errors.New("table is full")

	// ErrSeatTaken is returned when another guest holds the seat number.
	ErrSeatTaken = errors.New("seat is already taken")

	// ErrCapacityConflict is returned when a capacity edit would drop
	// below the number of guests already seated.
	ErrCapacityConflict = errors.New("capacity is below current occupancy")

	// ErrCrossWedding signals a guest and table from different weddings.
	// It is a tenant-boundary fault and is never shown to the caller as such.
	ErrCrossWedding = errors.New("guest and table belong to different weddings")

	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("already exists")
)

// ValidationError carries field-level messages for user-correctable input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", utils.FormatValidationErrors(e.Fields))
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// validate runs struct-tag validation and returns a *ValidationError on failure.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// wrapUnlessDomain adds op context to infrastructure errors. Domain
// errors already carry their own context and pass through unchanged.
func wrapUnlessDomain(err error, op string) error {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr),
		errors.Is(err, ErrNotFound),
		errors.Is(err, ErrTableFull),
		errors.Is(err, ErrSeatTaken),
		errors.Is(err, ErrCapacityConflict),
		errors.Is(err, ErrCrossWedding):
		return err
	}
	return fmt.Errorf("%s: %w", op, err)
}
