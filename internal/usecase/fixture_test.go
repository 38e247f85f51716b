package usecase_test

import (
	"context"
	"testing"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/data/repository/repotest"
	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/dto/response"
	"wedding-planner/internal/usecase"
	"wedding-planner/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	t         *testing.T
	ctx       context.Context
	repo      *repository.Repository
	svc       *usecase.Service
	ownerID   uuid.UUID
	weddingID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := repotest.NewStore().Repository()
	cfg := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 1}}
	svc := usecase.NewService(repo, cfg, zaptest.NewLogger(t))

	f := &fixture{
		t:    t,
		ctx:  context.Background(),
		repo: repo,
		svc:  svc,
	}

	f.ownerID = uuid.New()
	f.weddingID = f.wedding(f.ownerID, "Ana & Ben")
	return f
}

func (f *fixture) wedding(ownerID uuid.UUID, title string) uuid.UUID {
	f.t.Helper()

	w, err := f.svc.Wedding.Create(f.ctx, ownerID, &request.CreateWeddingRequest{Title: title})
	require.NoError(f.t, err)
	return uuid.MustParse(w.ID)
}

func (f *fixture) table(weddingID uuid.UUID, name string, capacity int) uuid.UUID {
	f.t.Helper()

	tbl, err := f.svc.Table.CreateTable(f.ctx, weddingID, &request.CreateTableRequest{
		Name:     name,
		Capacity: capacity,
	})
	require.NoError(f.t, err)
	return uuid.MustParse(tbl.ID)
}

func (f *fixture) guest(weddingID uuid.UUID, name, group string) uuid.UUID {
	f.t.Helper()
	return f.guestWithStatus(weddingID, name, group, entity.RSVPConfirmed)
}

func (f *fixture) guestWithStatus(weddingID uuid.UUID, name, group string, status entity.RSVPStatus) uuid.UUID {
	f.t.Helper()

	g, err := f.svc.Guest.Create(f.ctx, weddingID, &request.CreateGuestRequest{
		Name:       name,
		RSVPStatus: string(status),
		Group:      group,
	})
	require.NoError(f.t, err)
	return uuid.MustParse(g.ID)
}

func (f *fixture) occupancy(tableID uuid.UUID) *response.OccupancyResponse {
	f.t.Helper()

	occ, err := f.svc.Ledger.Occupancy(f.ctx, tableID)
	require.NoError(f.t, err)
	return occ
}

func (f *fixture) reload(guestID uuid.UUID) *entity.Guest {
	f.t.Helper()

	g, err := f.repo.Guest.FindByID(f.ctx, guestID)
	require.NoError(f.t, err)
	require.NotNil(f.t, g)
	return g
}

// assertCapacity checks that no table of the wedding holds more guests than it seats.
func (f *fixture) assertCapacity(weddingID uuid.UUID) {
	f.t.Helper()

	tables, err := f.svc.Table.ListTables(f.ctx, weddingID)
	require.NoError(f.t, err)
	for _, tbl := range tables {
		require.LessOrEqual(f.t, tbl.Occupied, tbl.Capacity, "table %s over capacity", tbl.Name)
	}
}

func seat(n int) *int {
	return &n
}
