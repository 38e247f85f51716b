package seating

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func id(n int) uuid.UUID {
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", n))
}

func emptyTables(capacities ...int) []TableSlot {
	tables := make([]TableSlot, len(capacities))
	for i, c := range capacities {
		tables[i] = TableSlot{TableID: id(100 + i), DisplayOrder: i + 1, Capacity: c}
	}
	return tables
}

func guests(n int, group string, start int) []Candidate {
	out := make([]Candidate, n)
	for i := range out {
		out[i] = Candidate{GuestID: id(start + i), Group: group}
	}
	return out
}

func seatedPerTable(plan Plan) map[uuid.UUID]int {
	counts := map[uuid.UUID]int{}
	for _, p := range plan.Placements {
		counts[p.TableID]++
	}
	return counts
}

func TestGreedy_Assign(t *testing.T) {
	t.Run("seats everyone when capacity suffices", func(t *testing.T) {
		plan := NewGreedy().Assign(emptyTables(2, 2, 2), guests(5, "", 1))

		require.Len(t, plan.Placements, 5)
		require.Empty(t, plan.Unplaced)
		for _, n := range seatedPerTable(plan) {
			require.LessOrEqual(t, n, 2)
		}
	})

	t.Run("reports overflow as unplaced", func(t *testing.T) {
		plan := NewGreedy().Assign(emptyTables(2, 2, 2), guests(7, "", 1))

		require.Len(t, plan.Placements, 6)
		require.Equal(t, []uuid.UUID{id(7)}, plan.Unplaced)
	})

	t.Run("keeps a small group at one table", func(t *testing.T) {
		candidates := append(guests(1, "", 1), guests(2, "Smith Family", 10)...)
		plan := NewGreedy().Assign(emptyTables(2, 2, 2), candidates)

		require.Len(t, plan.Placements, 3)
		tableOf := map[uuid.UUID]uuid.UUID{}
		for _, p := range plan.Placements {
			tableOf[p.GuestID] = p.TableID
		}
		require.Equal(t, tableOf[id(10)], tableOf[id(11)])
	})

	t.Run("spills a large cluster onto following tables", func(t *testing.T) {
		plan := NewGreedy().Assign(emptyTables(2, 3), guests(4, "Cousins", 1))

		require.Empty(t, plan.Unplaced)
		counts := seatedPerTable(plan)
		require.Equal(t, 2, counts[id(100)])
		require.Equal(t, 2, counts[id(101)])
	})

	t.Run("prefers a table already hosting the group", func(t *testing.T) {
		tables := emptyTables(4, 4)
		tables[1].Occupants = 1
		tables[1].TakenSeats = []int{1}
		tables[1].Groups = []string{"Jones"}

		plan := NewGreedy().Assign(tables, guests(2, "Jones", 1))

		require.Len(t, plan.Placements, 2)
		for _, p := range plan.Placements {
			require.Equal(t, id(101), p.TableID)
		}
		require.Equal(t, 2, plan.Placements[0].SeatNumber)
		require.Equal(t, 3, plan.Placements[1].SeatNumber)
	})

	t.Run("overflow continues after the hosting table", func(t *testing.T) {
		tables := emptyTables(2, 2, 2)
		tables[1].Occupants = 1
		tables[1].TakenSeats = []int{1}
		tables[1].Groups = []string{"Lee"}

		plan := NewGreedy().Assign(tables, guests(2, "Lee", 1))

		require.Equal(t, []Placement{
			{GuestID: id(1), TableID: id(101), SeatNumber: 2},
			{GuestID: id(2), TableID: id(102), SeatNumber: 1},
		}, plan.Placements)
	})

	t.Run("overflow wraps to earlier tables when none follow", func(t *testing.T) {
		tables := emptyTables(2, 3)
		tables[1].Occupants = 1
		tables[1].TakenSeats = []int{1}
		tables[1].Groups = []string{"Lee"}

		plan := NewGreedy().Assign(tables, guests(3, "Lee", 1))

		require.Empty(t, plan.Unplaced)
		counts := seatedPerTable(plan)
		require.Equal(t, 2, counts[id(101)])
		require.Equal(t, 1, counts[id(100)])
		require.Equal(t, id(100), plan.Placements[2].TableID)
	})

	t.Run("orders tables by display order then id", func(t *testing.T) {
		tables := []TableSlot{
			{TableID: id(203), DisplayOrder: 2, Capacity: 1},
			{TableID: id(202), DisplayOrder: 1, Capacity: 1},
			{TableID: id(201), DisplayOrder: 2, Capacity: 1},
		}
		plan := NewGreedy().Assign(tables, guests(3, "", 1))

		require.Equal(t, id(202), plan.Placements[0].TableID)
		require.Equal(t, id(201), plan.Placements[1].TableID)
		require.Equal(t, id(203), plan.Placements[2].TableID)
	})

	t.Run("skips full tables and fills seat gaps", func(t *testing.T) {
		tables := []TableSlot{
			{TableID: id(100), DisplayOrder: 1, Capacity: 2, Occupants: 2, TakenSeats: []int{1, 2}},
			{TableID: id(101), DisplayOrder: 2, Capacity: 4, Occupants: 2, TakenSeats: []int{1, 3}},
		}
		plan := NewGreedy().Assign(tables, guests(2, "", 1))

		require.Len(t, plan.Placements, 2)
		require.Equal(t, Placement{GuestID: id(1), TableID: id(101), SeatNumber: 2}, plan.Placements[0])
		require.Equal(t, Placement{GuestID: id(2), TableID: id(101), SeatNumber: 4}, plan.Placements[1])
	})

	t.Run("no tables leaves everyone unplaced", func(t *testing.T) {
		plan := NewGreedy().Assign(nil, guests(2, "A", 1))

		require.Empty(t, plan.Placements)
		require.Equal(t, []uuid.UUID{id(1), id(2)}, plan.Unplaced)
	})

	t.Run("is deterministic regardless of input order", func(t *testing.T) {
		candidates := []Candidate{
			{GuestID: id(5), Group: ""},
			{GuestID: id(3), Group: "B"},
			{GuestID: id(1), Group: "A"},
			{GuestID: id(4), Group: "B"},
			{GuestID: id(2), Group: "A"},
		}
		reversed := make([]Candidate, len(candidates))
		for i, c := range candidates {
			reversed[len(candidates)-1-i] = c
		}

		require.Equal(t,
			NewGreedy().Assign(emptyTables(2, 2, 2), candidates),
			NewGreedy().Assign(emptyTables(2, 2, 2), reversed),
		)
	})
}

func TestOrderCandidates(t *testing.T) {
	candidates := []Candidate{
		{GuestID: id(4), Group: ""},
		{GuestID: id(3), Group: "Bride"},
		{GuestID: id(2), Group: ""},
		{GuestID: id(1), Group: "Groom"},
		{GuestID: id(5), Group: "Bride"},
	}

	OrderCandidates(candidates)

	got := make([]uuid.UUID, len(candidates))
	for i, c := range candidates {
		got[i] = c.GuestID
	}
	require.Equal(t, []uuid.UUID{id(3), id(5), id(1), id(2), id(4)}, got)
}

func TestNextSeatNumber(t *testing.T) {
	require.Equal(t, 1, NextSeatNumber(nil))
	require.Equal(t, 1, NextSeatNumber(map[int]bool{2: true}))
	require.Equal(t, 3, NextSeatNumber(map[int]bool{1: true, 2: true, 4: true}))
}
