package usecase

import (
	"context"
	"errors"
	"fmt"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LedgerService owns guest.table_id and guest.seat_number. No other
// service writes those columns.
type LedgerService interface {
	// Assign seats guestID at tableID, moving them if already seated
	// elsewhere. A nil seatNumber seats the guest without a number.
	Assign(ctx context.Context, guestID, tableID uuid.UUID, seatNumber *int) (*response.SeatAssignment, error)
	// Unassign clears the guest's seat. Already-unassigned guests are a no-op.
	Unassign(ctx context.Context, guestID uuid.UUID) (*response.GuestResponse, error)
	Occupancy(ctx context.Context, tableID uuid.UUID) (*response.OccupancyResponse, error)
	// UnassignedGuests lists confirmed guests without a table, group first then id.
	UnassignedGuests(ctx context.Context, weddingID uuid.UUID) ([]response.GuestResponse, error)
}

type ledgerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLedgerService(repo *repository.Repository, log *zap.Logger) LedgerService {
	return &ledgerService{
		repo: repo,
		log:  log.With(zap.String("service", "ledger")),
	}
}

func (s *ledgerService) Assign(ctx context.Context, guestID, tableID uuid.UUID, seatNumber *int) (*response.SeatAssignment, error) {
	if seatNumber != nil && *seatNumber < 1 {
		return nil, newValidationError("seat_number", "Minimum value is 1")
	}

	var from *uuid.UUID
	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		// Table first, then guest. Every writer takes locks in this order.
		table, err := s.repo.Table.FindByIDForUpdate(ctx, tableID)
		if err != nil {
			return err
		}
		if table == nil {
			return fmt.Errorf("table %s: %w", tableID, ErrNotFound)
		}

		guest, err := s.repo.Guest.FindByIDForUpdate(ctx, guestID)
		if err != nil {
			return err
		}
		if guest == nil {
			return fmt.Errorf("guest %s: %w", guestID, ErrNotFound)
		}

		if guest.WeddingID != table.WeddingID {
			s.log.Error("Cross-wedding seat assignment rejected",
				zap.String("guest_id", guestID.String()),
				zap.String("guest_wedding_id", guest.WeddingID.String()),
				zap.String("table_id", tableID.String()),
				zap.String("table_wedding_id", table.WeddingID.String()),
			)
			return fmt.Errorf("assign guest %s to table %s: %w", guestID, tableID, ErrCrossWedding)
		}

		// A guest may keep a seat above a reduced capacity, so the no-op
		// check runs before the range check.
		alreadyHere := guest.SeatedAt(table.ID)
		if alreadyHere && sameSeat(guest.SeatNumber, seatNumber) {
			return nil
		}

		if seatNumber != nil && *seatNumber > table.Capacity {
			return newValidationError("seat_number", fmt.Sprintf("Maximum value is %d", table.Capacity))
		}

		if !alreadyHere {
			occupied, err := s.repo.Guest.CountByTableID(ctx, table.ID)
			if err != nil {
				return err
			}
			if occupied >= table.Capacity {
				return fmt.Errorf("table %s seats %d: %w", tableID, table.Capacity, ErrTableFull)
			}
		}

		if seatNumber != nil {
			holder, err := s.repo.Guest.FindBySeat(ctx, table.ID, *seatNumber)
			if err != nil {
				return err
			}
			if holder != nil && holder.ID != guest.ID {
				return fmt.Errorf("seat %d at table %s: %w", *seatNumber, tableID, ErrSeatTaken)
			}
		}

		if err := s.repo.Guest.UpdateSeat(ctx, guest.ID, &table.ID, seatNumber); err != nil {
			if errors.Is(err, repository.ErrSeatConflict) {
				return fmt.Errorf("seat %d at table %s: %w", derefSeat(seatNumber), tableID, ErrSeatTaken)
			}
			return err
		}

		if guest.IsSeated() && !alreadyHere {
			from = guest.TableID
		}
		return nil
	})
	if err != nil {
		return nil, wrapUnlessDomain(err, "assign seat")
	}

	fields := []zap.Field{
		zap.String("guest_id", guestID.String()),
		zap.String("table_id", tableID.String()),
	}
	if from != nil {
		fields = append(fields, zap.String("from_table_id", from.String()))
	}
	s.log.Info("Guest seated", fields...)

	return &response.SeatAssignment{
		GuestID:    guestID.String(),
		TableID:    tableID.String(),
		SeatNumber: seatNumber,
	}, nil
}

func sameSeat(current, requested *int) bool {
	if current == nil || requested == nil {
		return current == nil && requested == nil
	}
	return *current == *requested
}

func derefSeat(seat *int) int {
	if seat == nil {
		return 0
	}
	return *seat
}

func (s *ledgerService) Unassign(ctx context.Context, guestID uuid.UUID) (*response.GuestResponse, error) {
	var guest *entity.Guest
	err := s.repo.Tx.WithinTx(ctx, func(ctx context.Context) error {
		// Peek without locking so the table lock can be taken first.
		current, err := s.repo.Guest.FindByID(ctx, guestID)
		if err != nil {
			return err
		}
		if current == nil {
			return fmt.Errorf("guest %s: %w", guestID, ErrNotFound)
		}
		if current.IsSeated() {
			if _, err := s.repo.Table.FindByIDForUpdate(ctx, *current.TableID); err != nil {
				return err
			}
		}

		guest, err = s.repo.Guest.FindByIDForUpdate(ctx, guestID)
		if err != nil {
			return err
		}
		if guest == nil {
			return fmt.Errorf("guest %s: %w", guestID, ErrNotFound)
		}
		if !guest.IsSeated() {
			return nil
		}

		if err := s.repo.Guest.UpdateSeat(ctx, guestID, nil, nil); err != nil {
			return err
		}

		s.log.Info("Guest unseated",
			zap.String("guest_id", guestID.String()),
			zap.String("table_id", guest.TableID.String()),
		)
		guest.TableID = nil
		guest.SeatNumber = nil
		return nil
	})
	if err != nil {
		return nil, wrapUnlessDomain(err, "unassign seat")
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *ledgerService) Occupancy(ctx context.Context, tableID uuid.UUID) (*response.OccupancyResponse, error) {
	table, err := s.repo.Table.FindByID(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("find table %s: %w", tableID, err)
	}
	if table == nil {
		return nil, fmt.Errorf("table %s: %w", tableID, ErrNotFound)
	}

	guests, err := s.repo.Guest.FindByTableID(ctx, tableID)
	if err != nil {
		return nil, fmt.Errorf("list occupants of %s: %w", tableID, err)
	}

	return &response.OccupancyResponse{
		TableID:   tableID.String(),
		Capacity:  table.Capacity,
		Count:     len(guests),
		Occupants: response.OccupantsFromGuests(guests),
	}, nil
}

func (s *ledgerService) UnassignedGuests(ctx context.Context, weddingID uuid.UUID) ([]response.GuestResponse, error) {
	guests, err := s.repo.Guest.FindUnassignedConfirmed(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("list unassigned guests: %w", err)
	}
	return response.GuestsToResponse(guests), nil
}
