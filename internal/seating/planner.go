package seating

import (
	"sort"

	"github.com/google/uuid"
)

// TableSlot is the planner's view of one table at snapshot time.
type TableSlot struct {
	TableID      uuid.UUID
	DisplayOrder int
	Capacity     int
	// Occupants counts everyone already seated, numbered or not.
	Occupants int
	// TakenSeats lists seat numbers already in use.
	TakenSeats []int
	// Groups lists the group label of each current occupant.
	Groups []string
}

// Placement seats one guest at one table.
type Placement struct {
	GuestID    uuid.UUID
	TableID    uuid.UUID
	SeatNumber int
}

// Plan is the output of Assign. Placements are in application order.
type Plan struct {
	Placements []Placement
	Unplaced   []uuid.UUID
}

type tableState struct {
	id        uuid.UUID
	order     int
	remaining int
	taken     map[int]bool
	groups    map[string]int
}

// Greedy places guests cluster by cluster in a single deterministic pass.
//
// The algorithm:
//  1. Order candidates by group (empty last) then id, and tables by
//     display order then id
//  2. For each guest, keep filling the table the cluster is currently
//     using while it has room
//  3. A cluster that fills its table continues at the next table with
//     room in display order, wrapping to earlier tables last
//  4. A new cluster picks the first table already hosting its group
//     with room, falling back to the first table with any room
//  5. Seat numbers are the next unused integer at the chosen table
//
// Guests left over when every table is full are reported in Unplaced.
// A cluster larger than any one table spills onto the following tables.
type Greedy struct{}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (Greedy) Assign(tables []TableSlot, candidates []Candidate) Plan {
	guests := make([]Candidate, len(candidates))
	copy(guests, candidates)
	OrderCandidates(guests)

	states := buildStates(tables)
	plan := Plan{Placements: make([]Placement, 0, len(guests))}

	var (
		current      *tableState
		currentGroup string
		inCluster    bool
	)

	for _, guest := range guests {
		if !inCluster || guest.Group != currentGroup || guest.Group == "" {
			current, currentGroup, inCluster = nil, guest.Group, true
		}

		switch {
		case current == nil:
			current = pickTable(states, guest.Group)
		case current.remaining == 0:
			current = nextTable(states, current)
		}
		if current == nil {
			plan.Unplaced = append(plan.Unplaced, guest.GuestID)
			continue
		}

		seat := NextSeatNumber(current.taken)
		current.taken[seat] = true
		current.remaining--
		if guest.Group != "" {
			current.groups[guest.Group]++
		}

		plan.Placements = append(plan.Placements, Placement{
			GuestID:    guest.GuestID,
			TableID:    current.id,
			SeatNumber: seat,
		})
	}

	return plan
}

func buildStates(tables []TableSlot) []*tableState {
	states := make([]*tableState, 0, len(tables))
	for _, t := range tables {
		remaining := t.Capacity - t.Occupants
		if remaining <= 0 {
			continue
		}

		st := &tableState{
			id:        t.TableID,
			order:     t.DisplayOrder,
			remaining: remaining,
			taken:     make(map[int]bool, len(t.TakenSeats)),
			groups:    make(map[string]int, len(t.Groups)),
		}
		for _, n := range t.TakenSeats {
			st.taken[n] = true
		}
		for _, g := range t.Groups {
			if g != "" {
				st.groups[g]++
			}
		}
		states = append(states, st)
	}

	sort.SliceStable(states, func(i, j int) bool {
		if states[i].order != states[j].order {
			return states[i].order < states[j].order
		}
		return states[i].id.String() < states[j].id.String()
	})

	return states
}

func pickTable(states []*tableState, group string) *tableState {
	if group != "" {
		for _, st := range states {
			if st.remaining > 0 && st.groups[group] > 0 {
				return st
			}
		}
	}
	for _, st := range states {
		if st.remaining > 0 {
			return st
		}
	}
	return nil
}

// nextTable returns the first table with room after full, in display order.
func nextTable(states []*tableState, full *tableState) *tableState {
	at := 0
	for i, st := range states {
		if st == full {
			at = i
			break
		}
	}
	for i := 1; i < len(states); i++ {
		if st := states[(at+i)%len(states)]; st.remaining > 0 {
			return st
		}
	}
	return nil
}
