package usecase

import (
	"context"
	"fmt"

	"wedding-planner/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccessService answers "may this user touch that resource". Every
// negative answer is ErrNotFound so tenant boundaries are not revealed.
type AccessService interface {
	Wedding(ctx context.Context, userID, weddingID uuid.UUID) error
	Table(ctx context.Context, userID, tableID uuid.UUID) (uuid.UUID, error)
	Guest(ctx context.Context, userID, guestID uuid.UUID) (uuid.UUID, error)
}

type accessService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAccessService(repo *repository.Repository, log *zap.Logger) AccessService {
	return &accessService{
		repo: repo,
		log:  log.With(zap.String("service", "access")),
	}
}

func (s *accessService) Wedding(ctx context.Context, userID, weddingID uuid.UUID) error {
	wedding, err := s.repo.Wedding.FindByID(ctx, weddingID)
	if err != nil {
		return fmt.Errorf("find wedding %s: %w", weddingID, err)
	}
	if wedding == nil {
		return fmt.Errorf("wedding %s: %w", weddingID, ErrNotFound)
	}
	if wedding.OwnerID != userID {
		s.log.Warn("Access to foreign wedding denied",
			zap.String("user_id", userID.String()),
			zap.String("wedding_id", weddingID.String()),
		)
		return fmt.Errorf("wedding %s: %w", weddingID, ErrNotFound)
	}
	return nil
}

// Table returns the wedding the table belongs to.
func (s *accessService) Table(ctx context.Context, userID, tableID uuid.UUID) (uuid.UUID, error) {
	table, err := s.repo.Table.FindByID(ctx, tableID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("find table %s: %w", tableID, err)
	}
	if table == nil {
		return uuid.Nil, fmt.Errorf("table %s: %w", tableID, ErrNotFound)
	}
	return table.WeddingID, s.Wedding(ctx, userID, table.WeddingID)
}

// Guest returns the wedding the guest belongs to.
func (s *accessService) Guest(ctx context.Context, userID, guestID uuid.UUID) (uuid.UUID, error) {
	guest, err := s.repo.Guest.FindByID(ctx, guestID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("find guest %s: %w", guestID, err)
	}
	if guest == nil {
		return uuid.Nil, fmt.Errorf("guest %s: %w", guestID, ErrNotFound)
	}
	return guest.WeddingID, s.Wedding(ctx, userID, guest.WeddingID)
}
