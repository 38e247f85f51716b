package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/request"
	"wedding-planner/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestCreateTable(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.Table.CreateTable(f.ctx, f.weddingID, &request.CreateTableRequest{
		Name:     "  Head table ",
		Shape:    string(entity.ShapeHeadTable),
		Capacity: 8,
	})
	require.NoError(t, err)
	require.Equal(t, "Head table", first.Name)
	require.Equal(t, entity.ShapeHeadTable, first.Shape)
	require.Equal(t, 1, first.DisplayOrder)

	second, err := f.svc.Table.CreateTable(f.ctx, f.weddingID, &request.CreateTableRequest{
		Name:     "Table 2",
		Capacity: 6,
	})
	require.NoError(t, err)
	require.Equal(t, entity.ShapeRound, second.Shape)
	require.Equal(t, 2, second.DisplayOrder)
}

func TestCreateTable_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		req   request.CreateTableRequest
		field string
	}{
		{"blank name", request.CreateTableRequest{Name: "   ", Capacity: 4}, "name"},
		{"zero capacity", request.CreateTableRequest{Name: "T", Capacity: 0}, "capacity"},
		{"huge capacity", request.CreateTableRequest{Name: "T", Capacity: 101}, "capacity"},
		{"unknown shape", request.CreateTableRequest{Name: "T", Capacity: 4, Shape: "hexagon"}, "shape"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Table.CreateTable(f.ctx, f.weddingID, &tt.req)

			var vErr *usecase.ValidationError
			require.ErrorAs(t, err, &vErr)
			require.Contains(t, vErr.Fields, tt.field)
		})
	}
}

func TestUpdateTable_Patch(t *testing.T) {
	f := newFixture(t)
	tableID := f.table(f.weddingID, "Table 1", 4)

	name := "Family"
	x, y := 12.5, 40.0
	order := 9
	got, err := f.svc.Table.UpdateTable(f.ctx, tableID, &request.UpdateTableRequest{
		Name:         &name,
		DisplayOrder: &order,
		PositionX:    &x,
		PositionY:    &y,
	})
	require.NoError(t, err)
	require.Equal(t, "Family", got.Name)
	require.Equal(t, 4, got.Capacity)
	require.Equal(t, 9, got.DisplayOrder)
	require.NotNil(t, got.Position)
	require.Equal(t, 12.5, got.Position.X)

	_, err = f.svc.Table.UpdateTable(f.ctx, uuid.New(), &request.UpdateTableRequest{Name: &name})
	require.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestUpdateTable_CapacityBelowOccupancy(t *testing.T) {
	f := newFixture(t)
	tableID := f.table(f.weddingID, "Table 1", 4)
	for _, name := range []string{"A", "B", "C"} {
		_, err := f.svc.Ledger.Assign(f.ctx, f.guest(f.weddingID, name, ""), tableID, nil)
		require.NoError(t, err)
	}

	newName := "Renamed"
	_, err := f.svc.Table.UpdateTable(f.ctx, tableID, &request.UpdateTableRequest{
		Name:     &newName,
		Capacity: seat(2),
	})
	require.ErrorIs(t, err, usecase.ErrCapacityConflict)

	tbl, err := f.repo.Table.FindByID(f.ctx, tableID)
	require.NoError(t, err)
	require.Equal(t, 4, tbl.Capacity)
	require.Equal(t, "Table 1", tbl.Name)

	// Shrinking to exactly the occupant count is allowed.
	got, err := f.svc.Table.UpdateTable(f.ctx, tableID, &request.UpdateTableRequest{Capacity: seat(3)})
	require.NoError(t, err)
	require.Equal(t, 3, got.Capacity)
}

func TestDeleteTable_UnassignsOccupants(t *testing.T) {
	f := newFixture(t)
	tableID := f.table(f.weddingID, "Table 1", 4)
	other := f.table(f.weddingID, "Table 2", 4)

	var seated []uuid.UUID
	for i := 1; i <= 3; i++ {
		id := f.guest(f.weddingID, "Guest", "")
		_, err := f.svc.Ledger.Assign(f.ctx, id, tableID, seat(i))
		require.NoError(t, err)
		seated = append(seated, id)
	}
	bystander := f.guest(f.weddingID, "Bystander", "")
	_, err := f.svc.Ledger.Assign(f.ctx, bystander, other, seat(1))
	require.NoError(t, err)

	got, err := f.svc.Table.DeleteTable(f.ctx, tableID)
	require.NoError(t, err)
	require.Equal(t, 3, got.Unassigned)

	for _, id := range seated {
		g := f.reload(id)
		require.Nil(t, g.TableID)
		require.Nil(t, g.SeatNumber)
	}
	require.True(t, f.reload(bystander).SeatedAt(other))

	tables, err := f.svc.Table.ListTables(f.ctx, f.weddingID)
	require.NoError(t, err)
	require.Len(t, tables, 1)

	_, err = f.svc.Table.DeleteTable(f.ctx, tableID)
	require.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestListTables(t *testing.T) {
	f := newFixture(t)
	first := f.table(f.weddingID, "First", 3)
	second := f.table(f.weddingID, "Second", 2)

	_, err := f.svc.Ledger.Assign(f.ctx, f.guest(f.weddingID, "A", ""), second, seat(2))
	require.NoError(t, err)
	_, err = f.svc.Ledger.Assign(f.ctx, f.guest(f.weddingID, "B", ""), second, seat(1))
	require.NoError(t, err)

	tables, err := f.svc.Table.ListTables(f.ctx, f.weddingID)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	require.Equal(t, first.String(), tables[0].ID)
	require.Equal(t, 0, tables[0].Occupied)
	require.Equal(t, 3, tables[0].Available)
	require.Empty(t, tables[0].Occupants)

	require.Equal(t, second.String(), tables[1].ID)
	require.Equal(t, 2, tables[1].Occupied)
	require.Equal(t, 0, tables[1].Available)
	require.Equal(t, 1, *tables[1].Occupants[0].SeatNumber)
}

func TestUpdatePositions(t *testing.T) {
	f := newFixture(t)
	a := f.table(f.weddingID, "A", 4)
	b := f.table(f.weddingID, "B", 4)

	got, err := f.svc.Table.UpdatePositions(f.ctx, f.weddingID, &request.UpdatePositionsRequest{
		Positions: []request.TablePosition{
			{TableID: a.String(), X: 10, Y: 20},
			{TableID: b.String(), X: 30, Y: 40},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 2, got.Updated)

	tbl, err := f.repo.Table.FindByID(f.ctx, b)
	require.NoError(t, err)
	require.Equal(t, 30.0, *tbl.PositionX)
	require.Equal(t, 40.0, *tbl.PositionY)
}

func TestUpdatePositions_RollsBackOnUnknownTable(t *testing.T) {
	f := newFixture(t)
	a := f.table(f.weddingID, "A", 4)
	foreign := f.table(f.wedding(uuid.New(), "Other"), "Elsewhere", 4)

	for _, missing := range []uuid.UUID{uuid.New(), foreign} {
		_, err := f.svc.Table.UpdatePositions(f.ctx, f.weddingID, &request.UpdatePositionsRequest{
			Positions: []request.TablePosition{
				{TableID: a.String(), X: 1, Y: 2},
				{TableID: missing.String(), X: 3, Y: 4},
			},
		})
		require.ErrorIs(t, err, usecase.ErrNotFound)

		tbl, err := f.repo.Table.FindByID(f.ctx, a)
		require.NoError(t, err)
		require.Nil(t, tbl.PositionX)
		require.Nil(t, tbl.PositionY)
	}
}

// lockRecorder keeps the ids passed to FindByIDForUpdate, in call order.
type lockRecorder struct {
	repository.TableRepository
	locked []uuid.UUID
}

func (r *lockRecorder) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	r.locked = append(r.locked, id)
	return r.TableRepository.FindByIDForUpdate(ctx, id)
}

func TestUpdatePositions_LocksInIDOrder(t *testing.T) {
	f := newFixture(t)
	ids := []uuid.UUID{
		f.table(f.weddingID, "A", 4),
		f.table(f.weddingID, "B", 4),
		f.table(f.weddingID, "C", 4),
	}

	repo := *f.repo
	recorder := &lockRecorder{TableRepository: f.repo.Table}
	repo.Table = recorder
	tables := usecase.NewTableService(&repo, zaptest.NewLogger(t))

	positions := make([]request.TablePosition, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		positions = append(positions, request.TablePosition{TableID: ids[i].String(), X: float64(i), Y: float64(i)})
	}
	_, err := tables.UpdatePositions(f.ctx, f.weddingID, &request.UpdatePositionsRequest{Positions: positions})
	require.NoError(t, err)

	require.Len(t, recorder.locked, len(ids))
	for i := 1; i < len(recorder.locked); i++ {
		require.Negative(t, bytes.Compare(recorder.locked[i-1][:], recorder.locked[i][:]))
	}
	for i, id := range ids {
		tbl, err := f.repo.Table.FindByID(f.ctx, id)
		require.NoError(t, err)
		require.Equal(t, float64(i), *tbl.PositionX)
	}
}
