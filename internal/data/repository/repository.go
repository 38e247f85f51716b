package repository

import (
	"context"

	"wedding-planner/pkg/database"

	"go.uber.org/zap"
)

// Transactor runs fn inside one database transaction. Repository calls
// made with the ctx handed to fn join that transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type Repository struct {
	Tx      Transactor
	User    UserRepository
	Session SessionRepository
	Wedding WeddingRepository
	Guest   GuestRepository
	Table   TableRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Tx:      NewTransactor(db, log),
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Wedding: NewWeddingRepository(db, log),
		Guest:   NewGuestRepository(db, log),
		Table:   NewTableRepository(db, log),
	}
}

type pgxTransactor struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactor(db database.PgxIface, log *zap.Logger) Transactor {
	return &pgxTransactor{
		db:  db,
		log: log.With(zap.String("repository", "tx")),
	}
}

func (t *pgxTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	err := database.RunInTx(ctx, t.db, fn)
	if err != nil {
		t.log.Debug("Transaction rolled back", zap.Error(err))
	}
	return err
}
