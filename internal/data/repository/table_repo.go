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

type TableRepository interface {
	Create(ctx context.Context, table *entity.Table) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Table, error)
	// FindByIDForUpdate takes the row lock that serialises seat changes at the table.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Table, error)
	FindByWeddingID(ctx context.Context, weddingID uuid.UUID) ([]*entity.Table, error)
	NextDisplayOrder(ctx context.Context, weddingID uuid.UUID) (int, error)
	Update(ctx context.Context, table *entity.Table) error
	UpdatePosition(ctx context.Context, id uuid.UUID, x, y float64) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type tableRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTableRepository(db database.PgxIface, log *zap.Logger) TableRepository {
	return &tableRepository{
		db:  db,
		log: log.With(zap.String("repository", "table")),
	}
}

const tableColumns = `id, wedding_id, name, shape, capacity, location, position_x, position_y, notes, display_order, created_at, updated_at`

func scanTable(row rowScanner) (*entity.Table, error) {
	var t entity.Table
	err := row.Scan(
		&t.ID,
		&t.WeddingID,
		&t.Name,
		&t.Shape,
		&t.Capacity,
		&t.Location,
		&t.PositionX,
		&t.PositionY,
		&t.Notes,
		&t.DisplayOrder,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tableRepository) Create(ctx context.Context, table *entity.Table) error {
	query := `
		INSERT INTO tables (` + tableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := database.Conn(ctx, r.db).Exec(ctx, query,
		table.ID,
		table.WeddingID,
		table.Name,
		table.Shape,
		table.Capacity,
		table.Location,
		table.PositionX,
		table.PositionY,
		table.Notes,
		table.DisplayOrder,
		table.CreatedAt,
		table.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create table",
			zap.Error(err),
			zap.String("wedding_id", table.WeddingID.String()),
			zap.String("name", table.Name),
		)
		return fmt.Errorf("create table %q in wedding %s: %w", table.Name, table.WeddingID.String(), err)
	}

	return nil
}

func (r *tableRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	return r.findOne(ctx, `SELECT `+tableColumns+` FROM tables WHERE id = $1`, id)
}

func (r *tableRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	return r.findOne(ctx, `SELECT `+tableColumns+` FROM tables WHERE id = $1 FOR UPDATE`, id)
}

func (r *tableRepository) findOne(ctx context.Context, query string, id uuid.UUID) (*entity.Table, error) {
	table, err := scanTable(database.Conn(ctx, r.db).QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find table by ID",
			zap.Error(err),
			zap.String("table_id", id.String()),
		)
		return nil, fmt.Errorf("find table by ID %s: %w", id.String(), err)
	}
	return table, nil
}

func (r *tableRepository) FindByWeddingID(ctx context.Context, weddingID uuid.UUID) ([]*entity.Table, error) {
	query := `
		SELECT ` + tableColumns + `
		FROM tables
		WHERE wedding_id = $1
		ORDER BY display_order ASC, id ASC
	`

	rows, err := database.Conn(ctx, r.db).Query(ctx, query, weddingID)
	if err != nil {
		r.log.Error("Failed to find tables by wedding ID",
			zap.Error(err),
			zap.String("wedding_id", weddingID.String()),
		)
		return nil, fmt.Errorf("find tables by wedding ID %s: %w", weddingID.String(), err)
	}
	defer rows.Close()

	tables := []*entity.Table{}
	for rows.Next() {
		table, err := scanTable(rows)
		if err != nil {
			r.log.Error("Failed to scan table row", zap.Error(err))
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		tables = append(tables, table)
	}

	return tables, rows.Err()
}

func (r *tableRepository) NextDisplayOrder(ctx context.Context, weddingID uuid.UUID) (int, error) {
	var next int
	err := database.Conn(ctx, r.db).
		QueryRow(ctx, `SELECT COALESCE(MAX(display_order), 0) + 1 FROM tables WHERE wedding_id = $1`, weddingID).
		Scan(&next)
	if err != nil {
		r.log.Error("Failed to compute next display order",
			zap.Error(err),
			zap.String("wedding_id", weddingID.String()),
		)
		return 0, fmt.Errorf("next display order for wedding %s: %w", weddingID.String(), err)
	}
	return next, nil
}

func (r *tableRepository) Update(ctx context.Context, table *entity.Table) error {
	query := `
		UPDATE tables
		SET name = $2, shape = $3, capacity = $4, location = $5, position_x = $6,
		    position_y = $7, notes = $8, display_order = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query,
		table.ID,
		table.Name,
		table.Shape,
		table.Capacity,
		table.Location,
		table.PositionX,
		table.PositionY,
		table.Notes,
		table.DisplayOrder,
		table.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update table",
			zap.Error(err),
			zap.String("table_id", table.ID.String()),
		)
		return fmt.Errorf("update table %s: %w", table.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (r *tableRepository) UpdatePosition(ctx context.Context, id uuid.UUID, x, y float64) error {
	query := `UPDATE tables SET position_x = $2, position_y = $3, updated_at = NOW() WHERE id = $1`

	result, err := database.Conn(ctx, r.db).Exec(ctx, query, id, x, y)
	if err != nil {
		r.log.Error("Failed to update table position",
			zap.Error(err),
			zap.String("table_id", id.String()),
		)
		return fmt.Errorf("update position of table %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}

func (r *tableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := database.Conn(ctx, r.db).Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete table",
			zap.Error(err),
			zap.String("table_id", id.String()),
		)
		return fmt.Errorf("delete table %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrNoRows
	}

	r.log.Info("Table deleted", zap.String("table_id", id.String()))
	return nil
}
