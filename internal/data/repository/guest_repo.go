package repository

import (
	"context"
	"errors"
	"fmt"

	"wedding-planner/internal/data/entity"
	"wedding-planner/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	FindByWeddingID(ctx context.Context, weddingID uuid.UUID) ([]*entity.Guest, error)
	// Update writes profile fields only; seating columns are owned by UpdateSeat.
	Update(ctx context.Context, guest *entity.Guest) error

	// Seating queries
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	FindByTableID(ctx context.Context, tableID uuid.UUID) ([]*entity.Guest, error)
	FindSeatedByWeddingID(ctx context.Context, weddingID uuid.UUID) ([]*entity.Guest, error)
	FindBySeat(ctx context.Context, tableID uuid.UUID, seatNumber int) (*entity.Guest, error)
	FindUnassignedConfirmed(ctx context.Context, weddingID uuid.UUID) ([]*entity.Guest, error)
	CountByTableID(ctx context.Context, tableID uuid.UUID) (int, error)
	UpdateSeat(ctx context.Context, guestID uuid.UUID, tableID *uuid.UUID, seatNumber *int) error
	// ClearTable unassigns every guest at tableID and returns how many were moved.
	ClearTable(ctx context.Context, tableID uuid.UUID) (int, error)
}

type guestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestRepository(db database.PgxIface, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

const guestColumns = `id, wedding_id, name, email, rsvp_status, group_label, table_id, seat_number, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGuest(row rowScanner) (*entity.Guest, error) {
	var g entity.Guest
	err := row.Scan(
		&g.ID,
		&g.WeddingID,
		&g.Name,
		&g.Email,
		&g.RSVPStatus,
		&g.GroupLabel,
		&g.TableID,
		&g.SeatNumber,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (` + guestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		guest.ID,
		guest.WeddingID,
		guest.Name,
		guest.Email,
		guest.RSVPStatus,
		guest.GroupLabel,
		guest.TableID,
		guest.SeatNumber,
		guest.CreatedAt,
		guest.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("wedding_id", guest.WeddingID.String()),
		)
		return fmt.Errorf("create guest: %w", err)
	}

	return nil
}

func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1`
	return r.findOne(ctx, query, id)
}

// FindByIDForUpdate locks the guest row until the surrounding transaction ends.
func (r *guestRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE id = $1 FOR UPDATE`
	return r.findOne(ctx, query, id)
}

func (r *guestRepository) FindBySeat(ctx context.Context, tableID uuid.UUID, seatNumber int) (*entity.Guest, error) {
	query := `SELECT ` + guestColumns + ` FROM guests WHERE table_id = $1 AND seat_number = $2`
	return r.findOne(ctx, query, tableID, seatNumber)
}

func (r *guestRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Guest, error) {
	guest, err := scanGuest(database.Conn(ctx, r.db).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest", zap.Error(err))
		return nil, fmt.Errorf("find guest: %w", err)
	}
	return guest, nil
}

func (r *guestRepository) FindByWeddingID(ctx context.Context, weddingID uuid.UUID) ([]*entity.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE wedding_id = $1
		ORDER BY name, id
	`
	return r.findMany(ctx, "find guests by wedding", query, weddingID)
}

func (r *guestRepository) FindByTableID(ctx context.Context, tableID uuid.UUID) ([]*entity.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE table_id = $1
		ORDER BY seat_number NULLS LAST, id
	`
	return r.findMany(ctx, "find guests by table", query, tableID)
}

func (r *guestRepository) FindSeatedByWeddingID(ctx context.Context, weddingID uuid.UUID) ([]*entity.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE wedding_id = $1 AND table_id IS NOT NULL
		ORDER BY table_id, seat_number NULLS LAST, id
	`
	return r.findMany(ctx, "find seated guests", query, weddingID)
}

// unassignedOrder compares labels bytewise so the result matches
// seating.OrderCandidates whatever the database locale.
const unassignedOrder = `ORDER BY (group_label = '') ASC, group_label COLLATE "C" ASC, id ASC`

// FindUnassignedConfirmed orders by group label with the empty label last,
// then by id, so equal labels come back contiguous.
func (r *guestRepository) FindUnassignedConfirmed(ctx context.Context, weddingID uuid.UUID) ([]*entity.Guest, error) {
	query := `
		SELECT ` + guestColumns + `
		FROM guests
		WHERE wedding_id = $1 AND table_id IS NULL AND rsvp_status = $2
		` + unassignedOrder
	return r.findMany(ctx, "find unassigned guests", query, weddingID, entity.RSVPConfirmed)
}

func (r *guestRepository) findMany(ctx context.Context, op, query string, args ...any) ([]*entity.Guest, error) {
	rows, err := database.Conn(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to "+op, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	guests := []*entity.Guest{}
	for rows.Next() {
		guest, err := scanGuest(rows)
		if err != nil {
			r.log.Error("Failed to scan guest row", zap.Error(err))
			return nil, fmt.Errorf("scan guest row: %w", err)
		}
		guests = append(guests, guest)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return guests, nil
}

func (r *guestRepository) CountByTableID(ctx context.Context, tableID uuid.UUID) (int, error) {
	var count int
	err := database.Conn(ctx, r.db).
		QueryRow(ctx, `SELECT COUNT(*) FROM guests WHERE table_id = $1`, tableID).
		Scan(&count)
	if err != nil {
		r.log.Error("Failed to count table occupants",
			zap.Error(err),
			zap.String("table_id", tableID.String()),
		)
		return 0, fmt.Errorf("count occupants of table %s: %w", tableID.String(), err)
	}
	return count, nil
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	query := `
		UPDATE guests
		SET name = $2, email = $3, rsvp_status = $4, group_label = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		guest.ID,
		guest.Name,
		guest.Email,
		guest.RSVPStatus,
		guest.GroupLabel,
		guest.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update guest",
			zap.Error(err),
			zap.String("guest_id", guest.ID.String()),
		)
		return fmt.Errorf("update guest %s: %w", guest.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (r *guestRepository) UpdateSeat(ctx context.Context, guestID uuid.UUID, tableID *uuid.UUID, seatNumber *int) error {
	query := `
		UPDATE guests
		SET table_id = $2, seat_number = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, guestID, tableID, seatNumber)
	if err != nil {
		if isUniqueViolation(err, seatUniqueIndex) {
			return ErrSeatConflict
		}
		r.log.Error("Failed to update guest seat",
			zap.Error(err),
			zap.String("guest_id", guestID.String()),
		)
		return fmt.Errorf("update seat of guest %s: %w", guestID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (r *guestRepository) ClearTable(ctx context.Context, tableID uuid.UUID) (int, error) {
	query := `
		UPDATE guests
		SET table_id = NULL, seat_number = NULL, updated_at = NOW()
		WHERE table_id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, tableID)
	if err != nil {
		r.log.Error("Failed to clear table occupants",
			zap.Error(err),
			zap.String("table_id", tableID.String()),
		)
		return 0, fmt.Errorf("clear table %s: %w", tableID.String(), err)
	}

	return int(result.RowsAffected()), nil
}
