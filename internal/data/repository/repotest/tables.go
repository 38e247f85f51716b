package repotest

import (
	"context"
	"sort"
	"time"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"

	"github.com/google/uuid"
)

type tableRepo struct {
	s *Store
}

var _ repository.TableRepository = (*tableRepo)(nil)

func (r *tableRepo) Create(_ context.Context, table *entity.Table) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.tables[table.ID] = *table
	return nil
}

func (r *tableRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Table, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tables[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *tableRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	return r.FindByID(ctx, id)
}

func (r *tableRepo) FindByWeddingID(_ context.Context, weddingID uuid.UUID) ([]*entity.Table, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.Table{}
	for _, t := range r.s.tables {
		if t.WeddingID == weddingID {
			t := t
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder != out[j].DisplayOrder {
			return out[i].DisplayOrder < out[j].DisplayOrder
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

func (r *tableRepo) NextDisplayOrder(_ context.Context, weddingID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	highest := 0
	for _, t := range r.s.tables {
		if t.WeddingID == weddingID && t.DisplayOrder > highest {
			highest = t.DisplayOrder
		}
	}
	return highest + 1, nil
}

func (r *tableRepo) Update(_ context.Context, table *entity.Table) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tables[table.ID]; !ok {
		return repository.ErrNoRows
	}
	r.s.tables[table.ID] = *table
	return nil
}

func (r *tableRepo) UpdatePosition(_ context.Context, id uuid.UUID, x, y float64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.tables[id]
	if !ok {
		return repository.ErrNoRows
	}
	t.PositionX = &x
	t.PositionY = &y
	t.UpdatedAt = time.Now()
	r.s.tables[id] = t
	return nil
}

// Delete mirrors guests.table_id ON DELETE SET NULL. Like Postgres it
// leaves seat_number alone; callers clear it first.
func (r *tableRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tables[id]; !ok {
		return repository.ErrNoRows
	}
	delete(r.s.tables, id)

	for gid, g := range r.s.guests {
		if g.SeatedAt(id) {
			g.TableID = nil
			r.s.guests[gid] = g
		}
	}
	return nil
}
