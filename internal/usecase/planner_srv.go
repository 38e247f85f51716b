package usecase

import (
	"context"
	"fmt"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/response"
	"wedding-planner/internal/seating"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SeatingStrategy turns a snapshot of tables and candidates into a plan.
type SeatingStrategy interface {
	Assign(tables []seating.TableSlot, candidates []seating.Candidate) seating.Plan
}

type PlannerService interface {
	// AutoAssign seats confirmed, unassigned guests of a wedding. Each
	// placement commits on its own; failures land in Unseated and the
	// run continues.
	AutoAssign(ctx context.Context, weddingID uuid.UUID) (*response.AutoAssignResponse, error)
}

type plannerService struct {
	repo     *repository.Repository
	ledger   LedgerService
	strategy SeatingStrategy
	log      *zap.Logger
}

func NewPlannerService(repo *repository.Repository, ledger LedgerService, strategy SeatingStrategy, log *zap.Logger) PlannerService {
	return &plannerService{
		repo:     repo,
		ledger:   ledger,
		strategy: strategy,
		log:      log.With(zap.String("service", "planner")),
	}
}

func (s *plannerService) AutoAssign(ctx context.Context, weddingID uuid.UUID) (*response.AutoAssignResponse, error) {
	tables, err := s.repo.Table.FindByWeddingID(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("snapshot tables: %w", err)
	}

	seated, err := s.repo.Guest.FindSeatedByWeddingID(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("snapshot seated guests: %w", err)
	}

	unassigned, err := s.repo.Guest.FindUnassignedConfirmed(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("snapshot candidates: %w", err)
	}

	plan := s.strategy.Assign(buildSlots(tables, seated), buildCandidates(unassigned))

	resp := &response.AutoAssignResponse{
		Seated:   make([]response.SeatAssignment, 0, len(plan.Placements)),
		Unseated: make([]string, 0, len(plan.Unplaced)),
	}

	for _, p := range plan.Placements {
		seat := p.SeatNumber
		assignment, err := s.ledger.Assign(ctx, p.GuestID, p.TableID, &seat)
		if err != nil {
			s.log.Warn("Planned placement rejected",
				zap.Error(err),
				zap.String("guest_id", p.GuestID.String()),
				zap.String("table_id", p.TableID.String()),
				zap.Int("seat_number", seat),
			)
			resp.Unseated = append(resp.Unseated, p.GuestID.String())
			continue
		}
		resp.Seated = append(resp.Seated, *assignment)
	}

	for _, id := range plan.Unplaced {
		resp.Unseated = append(resp.Unseated, id.String())
	}

	s.log.Info("Auto-assign finished",
		zap.String("wedding_id", weddingID.String()),
		zap.Int("candidates", len(unassigned)),
		zap.Int("seated", len(resp.Seated)),
		zap.Int("unseated", len(resp.Unseated)),
	)

	return resp, nil
}

func buildSlots(tables []*entity.Table, seated []*entity.Guest) []seating.TableSlot {
	index := make(map[uuid.UUID]int, len(tables))
	slots := make([]seating.TableSlot, len(tables))
	for i, t := range tables {
		index[t.ID] = i
		slots[i] = seating.TableSlot{
			TableID:      t.ID,
			DisplayOrder: t.DisplayOrder,
			Capacity:     t.Capacity,
		}
	}

	for _, g := range seated {
		i, ok := index[*g.TableID]
		if !ok {
			continue
		}
		slots[i].Occupants++
		if g.SeatNumber != nil {
			slots[i].TakenSeats = append(slots[i].TakenSeats, *g.SeatNumber)
		}
		if g.GroupLabel != "" {
			slots[i].Groups = append(slots[i].Groups, g.GroupLabel)
		}
	}

	return slots
}

func buildCandidates(guests []*entity.Guest) []seating.Candidate {
	out := make([]seating.Candidate, len(guests))
	for i, g := range guests {
		out[i] = seating.Candidate{GuestID: g.ID, Group: g.GroupLabel}
	}
	return out
}
