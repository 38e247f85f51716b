package usecase_test

import (
	"testing"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestWedding_CreateAndGet(t *testing.T) {
	f := newFixture(t)

	date := "2027-06-12"
	venue := "Old Mill"
	created, err := f.svc.Wedding.Create(f.ctx, f.ownerID, &request.CreateWeddingRequest{
		Title:     "Summer",
		EventDate: &date,
		Venue:     &venue,
	})
	require.NoError(t, err)
	require.Equal(t, date, *created.EventDate)

	got, err := f.svc.Wedding.Get(f.ctx, f.ownerID, uuid.MustParse(created.ID))
	require.NoError(t, err)
	require.Equal(t, "Summer", got.Title)

	list, err := f.svc.Wedding.List(f.ctx, f.ownerID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	_, err = f.svc.Wedding.Get(f.ctx, uuid.New(), uuid.MustParse(created.ID))
	require.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestWedding_DeleteCascades(t *testing.T) {
	f := newFixture(t)
	tableID := f.table(f.weddingID, "Table 1", 4)
	guestID := f.guest(f.weddingID, "Carla", "")
	_, err := f.svc.Ledger.Assign(f.ctx, guestID, tableID, nil)
	require.NoError(t, err)

	require.ErrorIs(t, f.svc.Wedding.Delete(f.ctx, uuid.New(), f.weddingID), usecase.ErrNotFound)
	require.NoError(t, f.svc.Wedding.Delete(f.ctx, f.ownerID, f.weddingID))

	tbl, err := f.repo.Table.FindByID(f.ctx, tableID)
	require.NoError(t, err)
	require.Nil(t, tbl)

	g, err := f.repo.Guest.FindByID(f.ctx, guestID)
	require.NoError(t, err)
	require.Nil(t, g)
}

func TestGuest_UpdateLeavesSeatAlone(t *testing.T) {
	f := newFixture(t)
	tableID := f.table(f.weddingID, "Table 1", 4)
	guestID := f.guestWithStatus(f.weddingID, "Carla", "", entity.RSVPPending)
	_, err := f.svc.Ledger.Assign(f.ctx, guestID, tableID, seat(2))
	require.NoError(t, err)

	status := string(entity.RSVPConfirmed)
	group := "College"
	got, err := f.svc.Guest.Update(f.ctx, guestID, &request.UpdateGuestRequest{
		RSVPStatus: &status,
		Group:      &group,
	})
	require.NoError(t, err)
	require.Equal(t, entity.RSVPConfirmed, got.RSVPStatus)
	require.Equal(t, "College", got.Group)

	g := f.reload(guestID)
	require.True(t, g.SeatedAt(tableID))
	require.Equal(t, 2, *g.SeatNumber)

	bad := "sort-of"
	_, err = f.svc.Guest.Update(f.ctx, guestID, &request.UpdateGuestRequest{RSVPStatus: &bad})
	var vErr *usecase.ValidationError
	require.ErrorAs(t, err, &vErr)

	_, err = f.svc.Guest.Update(f.ctx, uuid.New(), &request.UpdateGuestRequest{Group: &group})
	require.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestGuest_CreateDefaultsToPending(t *testing.T) {
	f := newFixture(t)

	got, err := f.svc.Guest.Create(f.ctx, f.weddingID, &request.CreateGuestRequest{Name: "Dev"})
	require.NoError(t, err)
	require.Equal(t, entity.RSVPPending, got.RSVPStatus)
	require.Nil(t, got.TableID)

	list, err := f.svc.Guest.List(f.ctx, f.weddingID)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestAccess(t *testing.T) {
	f := newFixture(t)
	tableID := f.table(f.weddingID, "Table 1", 4)
	guestID := f.guest(f.weddingID, "Carla", "")
	intruder := uuid.New()

	require.NoError(t, f.svc.Access.Wedding(f.ctx, f.ownerID, f.weddingID))
	require.ErrorIs(t, f.svc.Access.Wedding(f.ctx, intruder, f.weddingID), usecase.ErrNotFound)
	require.ErrorIs(t, f.svc.Access.Wedding(f.ctx, f.ownerID, uuid.New()), usecase.ErrNotFound)

	weddingID, err := f.svc.Access.Table(f.ctx, f.ownerID, tableID)
	require.NoError(t, err)
	require.Equal(t, f.weddingID, weddingID)
	_, err = f.svc.Access.Table(f.ctx, intruder, tableID)
	require.ErrorIs(t, err, usecase.ErrNotFound)

	weddingID, err = f.svc.Access.Guest(f.ctx, f.ownerID, guestID)
	require.NoError(t, err)
	require.Equal(t, f.weddingID, weddingID)
	_, err = f.svc.Access.Guest(f.ctx, f.ownerID, uuid.New())
	require.ErrorIs(t, err, usecase.ErrNotFound)
}
