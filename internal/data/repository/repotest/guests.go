package repotest

import (
	"context"
	"sort"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"

	"github.com/google/uuid"
)

type guestRepo struct {
	s *Store
}

var _ repository.GuestRepository = (*guestRepo)(nil)

func (r *guestRepo) Create(_ context.Context, guest *entity.Guest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.guests[guest.ID] = cloneGuest(*guest)
	return nil
}

func (r *guestRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Guest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	g, ok := r.s.guests[id]
	if !ok {
		return nil, nil
	}
	g = cloneGuest(g)
	return &g, nil
}

func (r *guestRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	return r.FindByID(ctx, id)
}

func (r *guestRepo) FindBySeat(_ context.Context, tableID uuid.UUID, seatNumber int) (*entity.Guest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, g := range r.s.guests {
		if g.SeatedAt(tableID) && g.SeatNumber != nil && *g.SeatNumber == seatNumber {
			g = cloneGuest(g)
			return &g, nil
		}
	}
	return nil, nil
}

func (r *guestRepo) filter(keep func(g *entity.Guest) bool) []*entity.Guest {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.Guest{}
	for _, g := range r.s.guests {
		if keep(&g) {
			g := cloneGuest(g)
			out = append(out, &g)
		}
	}
	return out
}

func (r *guestRepo) FindByWeddingID(_ context.Context, weddingID uuid.UUID) ([]*entity.Guest, error) {
	out := r.filter(func(g *entity.Guest) bool { return g.WeddingID == weddingID })
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *guestRepo) FindByTableID(_ context.Context, tableID uuid.UUID) ([]*entity.Guest, error) {
	out := r.filter(func(g *entity.Guest) bool { return g.SeatedAt(tableID) })
	sortBySeat(out)
	return out, nil
}

func (r *guestRepo) FindSeatedByWeddingID(_ context.Context, weddingID uuid.UUID) ([]*entity.Guest, error) {
	out := r.filter(func(g *entity.Guest) bool { return g.WeddingID == weddingID && g.IsSeated() })
	sortBySeat(out)
	return out, nil
}

func (r *guestRepo) FindUnassignedConfirmed(_ context.Context, weddingID uuid.UUID) ([]*entity.Guest, error) {
	out := r.filter(func(g *entity.Guest) bool {
		return g.WeddingID == weddingID && !g.IsSeated() && g.RSVPStatus == entity.RSVPConfirmed
	})
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if (a.GroupLabel == "") != (b.GroupLabel == "") {
			return b.GroupLabel == ""
		}
		if a.GroupLabel != b.GroupLabel {
			return a.GroupLabel < b.GroupLabel
		}
		return a.ID.String() < b.ID.String()
	})
	return out, nil
}

func (r *guestRepo) CountByTableID(_ context.Context, tableID uuid.UUID) (int, error) {
	return len(r.filter(func(g *entity.Guest) bool { return g.SeatedAt(tableID) })), nil
}

func (r *guestRepo) Update(_ context.Context, guest *entity.Guest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	g, ok := r.s.guests[guest.ID]
	if !ok {
		return repository.ErrNoRows
	}
	g.Name = guest.Name
	g.Email = guest.Email
	g.RSVPStatus = guest.RSVPStatus
	g.GroupLabel = guest.GroupLabel
	g.UpdatedAt = guest.UpdatedAt
	r.s.guests[guest.ID] = cloneGuest(g)
	return nil
}

// UpdateSeat enforces the same (table_id, seat_number) uniqueness as the
// partial unique index in the schema.
func (r *guestRepo) UpdateSeat(_ context.Context, guestID uuid.UUID, tableID *uuid.UUID, seatNumber *int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	g, ok := r.s.guests[guestID]
	if !ok {
		return repository.ErrNoRows
	}

	if tableID != nil && seatNumber != nil {
		for id, other := range r.s.guests {
			if id != guestID && other.SeatedAt(*tableID) && other.SeatNumber != nil && *other.SeatNumber == *seatNumber {
				return repository.ErrSeatConflict
			}
		}
	}

	g.TableID = tableID
	g.SeatNumber = seatNumber
	r.s.guests[guestID] = cloneGuest(g)
	return nil
}

func (r *guestRepo) ClearTable(_ context.Context, tableID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cleared := 0
	for id, g := range r.s.guests {
		if g.SeatedAt(tableID) {
			g.TableID = nil
			g.SeatNumber = nil
			r.s.guests[id] = g
			cleared++
		}
	}
	return cleared, nil
}

func sortBySeat(guests []*entity.Guest) {
	sort.Slice(guests, func(i, j int) bool {
		a, b := guests[i], guests[j]
		if ta, tb := tableKey(a), tableKey(b); ta != tb {
			return ta < tb
		}
		switch {
		case a.SeatNumber != nil && b.SeatNumber != nil && *a.SeatNumber != *b.SeatNumber:
			return *a.SeatNumber < *b.SeatNumber
		case a.SeatNumber != nil && b.SeatNumber == nil:
			return true
		case a.SeatNumber == nil && b.SeatNumber != nil:
			return false
		}
		return a.ID.String() < b.ID.String()
	})
}

func tableKey(g *entity.Guest) string {
	if g.TableID == nil {
		return ""
	}
	return g.TableID.String()
}
