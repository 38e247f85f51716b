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

type WeddingRepository interface {
	Create(ctx context.Context, wedding *entity.Wedding) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Wedding, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Wedding, error)
	// Delete removes the wedding; tables and guests go with it via ON DELETE CASCADE.
	Delete(ctx context.Context, id uuid.UUID) error
}

type weddingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewWeddingRepository(db database.PgxIface, log *zap.Logger) WeddingRepository {
	return &weddingRepository{
		db:  db,
		log: log.With(zap.String("repository", "wedding")),
	}
}

func (r *weddingRepository) Create(ctx context.Context, wedding *entity.Wedding) error {
	query := `
		INSERT INTO weddings (id, owner_id, title, event_date, venue, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		wedding.ID,
		wedding.OwnerID,
		wedding.Title,
		wedding.EventDate,
		wedding.Venue,
		wedding.CreatedAt,
		wedding.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create wedding",
			zap.Error(err),
			zap.String("owner_id", wedding.OwnerID.String()),
		)
		return fmt.Errorf("create wedding: %w", err)
	}

	return nil
}

func (r *weddingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Wedding, error) {
	query := `
		SELECT id, owner_id, title, event_date, venue, created_at, updated_at
		FROM weddings
		WHERE id = $1
	`

	var w entity.Wedding
	err := database.Conn(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&w.ID,
		&w.OwnerID,
		&w.Title,
		&w.EventDate,
		&w.Venue,
		&w.CreatedAt,
		&w.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find wedding by ID",
			zap.Error(err),
			zap.String("wedding_id", id.String()),
		)
		return nil, fmt.Errorf("find wedding by ID %s: %w", id.String(), err)
	}

	return &w, nil
}

func (r *weddingRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Wedding, error) {
	query := `
		SELECT id, owner_id, title, event_date, venue, created_at, updated_at
		FROM weddings
		WHERE owner_id = $1
		ORDER BY event_date NULLS LAST, created_at
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find weddings by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find weddings by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	weddings := []*entity.Wedding{}
	for rows.Next() {
		var w entity.Wedding
		if err := rows.Scan(
			&w.ID,
			&w.OwnerID,
			&w.Title,
			&w.EventDate,
			&w.Venue,
			&w.CreatedAt,
			&w.UpdatedAt,
		); err != nil {
			r.log.Error("Failed to scan wedding row", zap.Error(err))
			return nil, fmt.Errorf("scan wedding row: %w", err)
		}
		weddings = append(weddings, &w)
	}

	return weddings, rows.Err()
}

func (r *weddingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := database.Conn(ctx, r.db).Exec(ctx, `DELETE FROM weddings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete wedding",
			zap.Error(err),
			zap.String("wedding_id", id.String()),
		)
		return fmt.Errorf("delete wedding %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoRows
	}

	r.log.Info("Wedding deleted", zap.String("wedding_id", id.String()))
	return nil
}
