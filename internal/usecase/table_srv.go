package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TableService is the table registry. Occupancy is always counted from
// guests; tables never store it.
type TableService interface {
	CreateTable(ctx context.Context, weddingID uuid.UUID, req *request.CreateTableRequest) (*response.TableResponse, error)
	UpdateTable(ctx context.Context, tableID uuid.UUID, req *request.UpdateTableRequest) (*response.TableResponse, error)
	// DeleteTable unassigns every occupant and removes the table atomically.
	DeleteTable(ctx context.Context, tableID uuid.UUID) (*response.DeleteTableResponse, error)
	ListTables(ctx context.Context, weddingID uuid.UUID) ([]response.TableWithOccupantsResponse, error)
	// UpdatePositions moves every listed table or none of them.
	UpdatePositions(ctx context.Context, weddingID uuid.UUID, req *request.UpdatePositionsRequest) (*response.PositionsResponse, error)
}

type tableService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTableService(repo *repository.Repository, log *zap.Logger) TableService {
	return &tableService{
		repo: repo,
		log:  log.With(zap.String("service", "table")),
	}
}

func (s *tableService) CreateTable(ctx context.Context, weddingID uuid.UUID, req *request.CreateTableRequest) (*response.TableResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	shape := entity.ShapeRound
	if req.Shape != "" {
		shape = entity.TableShape(req.Shape)
	}

	now := time.Now()
	table := &entity.Table{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		WeddingID: weddingID,
		Name:      strings.TrimSpace(req.Name),
		Shape:     shape,
		Capacity:  req.Capacity,
		Location:  req.Location,
		Notes:     req.Notes,
	}

	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		order, err := s.repo.Table.NextDisplayOrder(ctx, weddingID)
		if err != nil {
			return err
		}
		table.DisplayOrder = order

		return s.repo.Table.Create(ctx, table)
	})
	if err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}

	s.log.Info("Table created",
		zap.String("table_id", table.ID.String()),
		zap.String("wedding_id", weddingID.String()),
		zap.Int("capacity", table.Capacity),
	)

	resp := response.TableToResponse(table)
	return &resp, nil
}

func (s *tableService) UpdateTable(ctx context.Context, tableID uuid.UUID, req *request.UpdateTableRequest) (*response.TableResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	var updated *entity.Table
	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		table, err := s.repo.Table.FindByIDForUpdate(ctx, tableID)
		if err != nil {
			return err
		}
		if table == nil {
			return fmt.Errorf("table %s: %w", tableID, ErrNotFound)
		}

		if req.Capacity != nil && *req.Capacity != table.Capacity {
			occupied, err := s.repo.Guest.CountByTableID(ctx, tableID)
			if err != nil {
				return err
			}
			if *req.Capacity < occupied {
				s.log.Warn("Capacity reduction rejected",
					zap.String("table_id", tableID.String()),
					zap.Int("requested", *req.Capacity),
					zap.Int("occupied", occupied),
				)
				return fmt.Errorf("table %s has %d guests, requested capacity %d: %w",
					tableID, occupied, *req.Capacity, ErrCapacityConflict)
			}
			table.Capacity = *req.Capacity
		}

		applyTablePatch(table, req)
		table.UpdatedAt = time.Now()

		if err := s.repo.Table.Update(ctx, table); err != nil {
			if errors.Is(err, repository.ErrNoRows) {
				return fmt.Errorf("table %s: %w", tableID, ErrNotFound)
			}
			return err
		}

		updated = table
		return nil
	})
	if err != nil {
		return nil, wrapUnlessDomain(err, "update table")
	}

	resp := response.TableToResponse(updated)
	return &resp, nil
}

func applyTablePatch(table *entity.Table, req *request.UpdateTableRequest) {
	if req.Name != nil {
		table.Name = strings.TrimSpace(*req.Name)
	}
	if req.Shape != nil {
		table.Shape = entity.TableShape(*req.Shape)
	}
	if req.Location != nil {
		table.Location = req.Location
	}
	if req.Notes != nil {
		table.Notes = req.Notes
	}
	if req.DisplayOrder != nil {
		table.DisplayOrder = *req.DisplayOrder
	}
	if req.PositionX != nil {
		table.PositionX = req.PositionX
	}
	if req.PositionY != nil {
		table.PositionY = req.PositionY
	}
}

func (s *tableService) DeleteTable(ctx context.Context, tableID uuid.UUID) (*response.DeleteTableResponse, error) {
	var unassigned int
	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		table, err := s.repo.Table.FindByIDForUpdate(ctx, tableID)
		if err != nil {
			return err
		}
		if table == nil {
			return fmt.Errorf("table %s: %w", tableID, ErrNotFound)
		}

		unassigned, err = s.repo.Guest.ClearTable(ctx, tableID)
		if err != nil {
			return err
		}

		if err := s.repo.Table.Delete(ctx, tableID); err != nil {
			if errors.Is(err, repository.ErrNoRows) {
				return fmt.Errorf("table %s: %w", tableID, ErrNotFound)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, wrapUnlessDomain(err, "delete table")
	}

	s.log.Info("Table deleted",
		zap.String("table_id", tableID.String()),
		zap.Int("unassigned", unassigned),
	)

	return &response.DeleteTableResponse{
		TableID:    tableID.String(),
		Unassigned: unassigned,
	}, nil
}

func (s *tableService) ListTables(ctx context.Context, weddingID uuid.UUID) ([]response.TableWithOccupantsResponse, error) {
	tables, err := s.repo.Table.FindByWeddingID(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}

	seated, err := s.repo.Guest.FindSeatedByWeddingID(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("list seated guests: %w", err)
	}

	byTable := make(map[uuid.UUID][]*entity.Guest, len(tables))
	for _, g := range seated {
		byTable[*g.TableID] = append(byTable[*g.TableID], g)
	}

	out := make([]response.TableWithOccupantsResponse, len(tables))
	for i, t := range tables {
		occupants := byTable[t.ID]
		out[i] = response.TableWithOccupantsResponse{
			TableResponse: response.TableToResponse(t),
			Occupied:      len(occupants),
			Available:     max(t.Capacity-len(occupants), 0),
			Occupants:     response.OccupantsFromGuests(occupants),
		}
	}
	return out, nil
}

func (s *tableService) UpdatePositions(ctx context.Context, weddingID uuid.UUID, req *request.UpdatePositionsRequest) (*response.PositionsResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	type position struct {
		id   uuid.UUID
		x, y float64
	}
	positions := make([]position, len(req.Positions))
	for i, p := range req.Positions {
		tableID, err := uuid.Parse(p.TableID)
		if err != nil {
			return nil, newValidationError("table_id", "Invalid UUID format")
		}
		positions[i] = position{id: tableID, x: p.X, y: p.Y}
	}
	// Lock in id order so overlapping batches cannot deadlock. Later
	// entries for the same table still win.
	slices.SortStableFunc(positions, func(a, b position) int {
		return bytes.Compare(a.id[:], b.id[:])
	})

	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		for _, p := range positions {
			table, err := s.repo.Table.FindByIDForUpdate(ctx, p.id)
			if err != nil {
				return err
			}
			if table == nil || table.WeddingID != weddingID {
				return fmt.Errorf("table %s: %w", p.id, ErrNotFound)
			}

			if err := s.repo.Table.UpdatePosition(ctx, p.id, p.x, p.y); err != nil {
				if errors.Is(err, repository.ErrNoRows) {
					return fmt.Errorf("table %s: %w", p.id, ErrNotFound)
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, wrapUnlessDomain(err, "update positions")
	}

	s.log.Info("Table positions updated",
		zap.String("wedding_id", weddingID.String()),
		zap.Int("count", len(req.Positions)),
	)

	return &response.PositionsResponse{Updated: len(req.Positions)}, nil
}
