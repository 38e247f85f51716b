package repotest

import (
	"context"
	"sync"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"

	"github.com/google/uuid"
)

// Store holds every in-memory table. The zero value is not usable; call NewStore.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	users    map[uuid.UUID]entity.User
	sessions map[uuid.UUID]entity.Session
	weddings map[uuid.UUID]entity.Wedding
	guests   map[uuid.UUID]entity.Guest
	tables   map[uuid.UUID]entity.Table
}

func NewStore() *Store {
	return &Store{
		users:    map[uuid.UUID]entity.User{},
		sessions: map[uuid.UUID]entity.Session{},
		weddings: map[uuid.UUID]entity.Wedding{},
		guests:   map[uuid.UUID]entity.Guest{},
		tables:   map[uuid.UUID]entity.Table{},
	}
}

// Repository returns a repository set backed by the store.
func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Tx:      &transactor{s: s},
		User:    &userRepo{s: s},
		Session: &sessionRepo{s: s},
		Wedding: &weddingRepo{s: s},
		Guest:   &guestRepo{s: s},
		Table:   &tableRepo{s: s},
	}
}

type snapshot struct {
	users    map[uuid.UUID]entity.User
	sessions map[uuid.UUID]entity.Session
	weddings map[uuid.UUID]entity.Wedding
	guests   map[uuid.UUID]entity.Guest
	tables   map[uuid.UUID]entity.Table
}

func copyMap[V any](m map[uuid.UUID]V) map[uuid.UUID]V {
	out := make(map[uuid.UUID]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	guests := make(map[uuid.UUID]entity.Guest, len(s.guests))
	for id, g := range s.guests {
		guests[id] = cloneGuest(g)
	}

	return snapshot{
		users:    copyMap(s.users),
		sessions: copyMap(s.sessions),
		weddings: copyMap(s.weddings),
		guests:   guests,
		tables:   copyMap(s.tables),
	}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = snap.users
	s.sessions = snap.sessions
	s.weddings = snap.weddings
	s.guests = snap.guests
	s.tables = snap.tables
}

type txMarker struct{}

type transactor struct {
	s *Store
}

var _ repository.Transactor = (*transactor)(nil)

func (t *transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txMarker{}) != nil {
		return fn(ctx)
	}

	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	snap := t.s.snapshot()
	if err := fn(context.WithValue(ctx, txMarker{}, true)); err != nil {
		t.s.restore(snap)
		return err
	}
	return nil
}

func cloneGuest(g entity.Guest) entity.Guest {
	if g.TableID != nil {
		id := *g.TableID
		g.TableID = &id
	}
	if g.SeatNumber != nil {
		n := *g.SeatNumber
		g.SeatNumber = &n
	}
	if g.Email != nil {
		e := *g.Email
		g.Email = &e
	}
	return g
}
