package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GuestService covers the guest fields seating depends on. Seat
// columns are never written here; see LedgerService.
type GuestService interface {
	Create(ctx context.Context, weddingID uuid.UUID, req *request.CreateGuestRequest) (*response.GuestResponse, error)
	List(ctx context.Context, weddingID uuid.UUID) ([]response.GuestResponse, error)
	Update(ctx context.Context, guestID uuid.UUID, req *request.UpdateGuestRequest) (*response.GuestResponse, error)
}

type guestService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewGuestService(repo *repository.Repository, log *zap.Logger) GuestService {
	return &guestService{
		repo: repo,
		log:  log.With(zap.String("service", "guest")),
	}
}

func (s *guestService) Create(ctx context.Context, weddingID uuid.UUID, req *request.CreateGuestRequest) (*response.GuestResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	status := entity.RSVPPending
	if req.RSVPStatus != "" {
		status = entity.RSVPStatus(req.RSVPStatus)
	}

	now := time.Now()
	guest := &entity.Guest{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		WeddingID:  weddingID,
		Name:       strings.TrimSpace(req.Name),
		Email:      req.Email,
		RSVPStatus: status,
		GroupLabel: strings.TrimSpace(req.Group),
	}

	if err := s.repo.Guest.Create(ctx, guest); err != nil {
		return nil, fmt.Errorf("create guest: %w", err)
	}

	s.log.Info("Guest created",
		zap.String("guest_id", guest.ID.String()),
		zap.String("wedding_id", weddingID.String()),
	)

	resp := response.GuestToResponse(guest)
	return &resp, nil
}

func (s *guestService) List(ctx context.Context, weddingID uuid.UUID) ([]response.GuestResponse, error) {
	guests, err := s.repo.Guest.FindByWeddingID(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("list guests: %w", err)
	}
	return response.GuestsToResponse(guests), nil
}

func (s *guestService) Update(ctx context.Context, guestID uuid.UUID, req *request.UpdateGuestRequest) (*response.GuestResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	guest, err := s.repo.Guest.FindByID(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("find guest %s: %w", guestID, err)
	}
	if guest == nil {
		return nil, fmt.Errorf("guest %s: %w", guestID, ErrNotFound)
	}

	if req.Name != nil {
		guest.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		guest.Email = req.Email
	}
	if req.RSVPStatus != nil {
		guest.RSVPStatus = entity.RSVPStatus(*req.RSVPStatus)
	}
	if req.Group != nil {
		guest.GroupLabel = strings.TrimSpace(*req.Group)
	}
	guest.UpdatedAt = time.Now()

	if err := s.repo.Guest.Update(ctx, guest); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, fmt.Errorf("guest %s: %w", guestID, ErrNotFound)
		}
		return nil, fmt.Errorf("update guest %s: %w", guestID, err)
	}

	resp := response.GuestToResponse(guest)
	return &resp, nil
}
