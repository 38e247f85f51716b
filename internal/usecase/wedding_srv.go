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

type WeddingService interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateWeddingRequest) (*response.WeddingResponse, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]response.WeddingResponse, error)
	Get(ctx context.Context, ownerID, weddingID uuid.UUID) (*response.WeddingResponse, error)
	// Delete removes the wedding with all of its tables and guests.
	Delete(ctx context.Context, ownerID, weddingID uuid.UUID) error
}

type weddingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewWeddingService(repo *repository.Repository, log *zap.Logger) WeddingService {
	return &weddingService{
		repo: repo,
		log:  log.With(zap.String("service", "wedding")),
	}
}

func (s *weddingService) Create(ctx context.Context, ownerID uuid.UUID, req *request.CreateWeddingRequest) (*response.WeddingResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	wedding := &entity.Wedding{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		OwnerID: ownerID,
		Title:   strings.TrimSpace(req.Title),
		Venue:   req.Venue,
	}

	if req.EventDate != nil {
		date, err := time.Parse("2006-01-02", *req.EventDate)
		if err != nil {
			return nil, newValidationError("event_date", "Must match format 2006-01-02")
		}
		wedding.EventDate = &date
	}

	if err := s.repo.Wedding.Create(ctx, wedding); err != nil {
		return nil, fmt.Errorf("create wedding: %w", err)
	}

	s.log.Info("Wedding created",
		zap.String("wedding_id", wedding.ID.String()),
		zap.String("owner_id", ownerID.String()),
	)

	resp := response.WeddingToResponse(wedding)
	return &resp, nil
}

func (s *weddingService) List(ctx context.Context, ownerID uuid.UUID) ([]response.WeddingResponse, error) {
	weddings, err := s.repo.Wedding.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list weddings: %w", err)
	}

	out := make([]response.WeddingResponse, len(weddings))
	for i, w := range weddings {
		out[i] = response.WeddingToResponse(w)
	}
	return out, nil
}

func (s *weddingService) Get(ctx context.Context, ownerID, weddingID uuid.UUID) (*response.WeddingResponse, error) {
	wedding, err := s.owned(ctx, ownerID, weddingID)
	if err != nil {
		return nil, err
	}

	resp := response.WeddingToResponse(wedding)
	return &resp, nil
}

func (s *weddingService) Delete(ctx context.Context, ownerID, weddingID uuid.UUID) error {
	if _, err := s.owned(ctx, ownerID, weddingID); err != nil {
		return err
	}

	if err := s.repo.Wedding.Delete(ctx, weddingID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return fmt.Errorf("wedding %s: %w", weddingID, ErrNotFound)
		}
		return fmt.Errorf("delete wedding %s: %w", weddingID, err)
	}

	s.log.Info("Wedding deleted", zap.String("wedding_id", weddingID.String()))
	return nil
}

func (s *weddingService) owned(ctx context.Context, ownerID, weddingID uuid.UUID) (*entity.Wedding, error) {
	wedding, err := s.repo.Wedding.FindByID(ctx, weddingID)
	if err != nil {
		return nil, fmt.Errorf("find wedding %s: %w", weddingID, err)
	}
	if wedding == nil || wedding.OwnerID != ownerID {
		return nil, fmt.Errorf("wedding %s: %w", weddingID, ErrNotFound)
	}
	return wedding, nil
}
