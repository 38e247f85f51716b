package repotest

import (
	"context"
	"sort"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"

	"github.com/google/uuid"
)

type weddingRepo struct {
	s *Store
}

var _ repository.WeddingRepository = (*weddingRepo)(nil)

func (r *weddingRepo) Create(_ context.Context, wedding *entity.Wedding) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.weddings[wedding.ID] = *wedding
	return nil
}

func (r *weddingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Wedding, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	w, ok := r.s.weddings[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *weddingRepo) FindByOwnerID(_ context.Context, ownerID uuid.UUID) ([]*entity.Wedding, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.Wedding{}
	for _, w := range r.s.weddings {
		if w.OwnerID == ownerID {
			w := w
			out = append(out, &w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// Delete mirrors ON DELETE CASCADE from weddings to tables and guests.
func (r *weddingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.weddings[id]; !ok {
		return repository.ErrNoRows
	}
	delete(r.s.weddings, id)

	for tid, t := range r.s.tables {
		if t.WeddingID == id {
			delete(r.s.tables, tid)
		}
	}
	for gid, g := range r.s.guests {
		if g.WeddingID == id {
			delete(r.s.guests, gid)
		}
	}
	return nil
}
