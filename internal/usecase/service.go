package usecase

import (
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/seating"
	"wedding-planner/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Wedding WeddingService
	Guest   GuestService
	Access  AccessService
	Table   TableService
	Ledger  LedgerService
	Planner PlannerService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	ledger := NewLedgerService(repo, log)

	return &Service{
		Auth:    NewAuthService(repo, config.Session, log),
		Wedding: NewWeddingService(repo, log),
		Guest:   NewGuestService(repo, log),
		Access:  NewAccessService(repo, log),
		Table:   NewTableService(repo, log),
		Ledger:  ledger,
		Planner: NewPlannerService(repo, ledger, seating.NewGreedy(), log),
	}
}
