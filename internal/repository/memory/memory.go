// Package memory holds map-backed repositories with the same error
// behavior as the PostgreSQL ones. Tests wire them into the services in
// place of a database.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/stacygol/bloglist/internal/model"
	"github.com/stacygol/bloglist/internal/sqlerr"
)

// store keeps insertion order so List matches the ORDER BY seq queries.
type store[T any] struct {
	mu    sync.RWMutex
	order []uuid.UUID
	items map[uuid.UUID]T
	table string
}

func newStore[T any](table string) *store[T] {
	return &store[T]{items: make(map[uuid.UUID]T), table: table}
}

func (s *store[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

func (s *store[T]) get(id uuid.UUID) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, sqlerr.NotFound(s.table)
	}
	return &item, nil
}

func (s *store[T]) insert(id uuid.UUID, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = append(s.order, id)
	s.items[id] = item
}

func (s *store[T]) replace(id uuid.UUID, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return sqlerr.NotFound(s.table)
	}
	s.items[id] = item
	return nil
}

func (s *store[T]) remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *store[T]) count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

type BlogRepository struct {
	store *store[model.Blog]
}

func NewBlogRepository(seed ...model.Blog) *BlogRepository {
	r := &BlogRepository{store: newStore[model.Blog]("blogs")}
	for _, b := range seed {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		r.store.insert(b.ID, b)
	}
	return r
}

func (r *BlogRepository) List(_ context.Context) ([]model.Blog, error) {
	return r.store.list(), nil
}

func (r *BlogRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Blog, error) {
	return r.store.get(id)
}

func (r *BlogRepository) Create(_ context.Context, blog *model.Blog) (*model.Blog, error) {
	created := *blog
	created.ID = uuid.New()
	r.store.insert(created.ID, created)
	return &created, nil
}

func (r *BlogRepository) Update(_ context.Context, blog *model.Blog) (*model.Blog, error) {
	updated := *blog
	if err := r.store.replace(updated.ID, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *BlogRepository) Delete(_ context.Context, id uuid.UUID) error {
	if !r.store.remove(id) {
		return sqlerr.NotFound(r.store.table)
	}
	return nil
}

type UserRepository struct {
	store *store[model.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{store: newStore[model.User]("users")}
}

// Create rejects a taken username with the same unique violation the
// users_username_key constraint raises.
func (r *UserRepository) Create(_ context.Context, user *model.User) (*model.User, error) {
	for _, existing := range r.store.list() {
		if existing.Username == user.Username {
			return nil, &pgconn.PgError{
				Severity:       "ERROR",
				Code:           "23505",
				Message:        `duplicate key value violates unique constraint "users_username_key"`,
				TableName:      "users",
				ConstraintName: "users_username_key",
			}
		}
	}

	created := *user
	created.ID = uuid.New()
	r.store.insert(created.ID, created)
	return &created, nil
}

func (r *UserRepository) List(_ context.Context) ([]model.User, error) {
	return r.store.list(), nil
}

type PersonRepository struct {
	store *store[model.Person]
}

func NewPersonRepository(seed ...model.Person) *PersonRepository {
	r := &PersonRepository{store: newStore[model.Person]("persons")}
	for _, p := range seed {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.store.insert(p.ID, p)
	}
	return r
}

func (r *PersonRepository) List(_ context.Context) ([]model.Person, error) {
	return r.store.list(), nil
}

func (r *PersonRepository) Count(_ context.Context) (int, error) {
	return r.store.count(), nil
}

func (r *PersonRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Person, error) {
	return r.store.get(id)
}

func (r *PersonRepository) Create(_ context.Context, person *model.Person) (*model.Person, error) {
	created := *person
	created.ID = uuid.New()
	r.store.insert(created.ID, created)
	return &created, nil
}

func (r *PersonRepository) Update(_ context.Context, person *model.Person) (*model.Person, error) {
	updated := *person
	if err := r.store.replace(updated.ID, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PersonRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.store.remove(id)
	return nil
}

// StatsCache is a single-slot cache. Expired entries read as misses.
type StatsCache struct {
	mu      sync.Mutex
	stats   *model.BlogStats
	expires time.Time
	now     func() time.Time
}

func NewStatsCache() *StatsCache {
	return &StatsCache{now: time.Now}
}

func (c *StatsCache) Get(_ context.Context) (*model.BlogStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stats == nil || (!c.expires.IsZero() && c.now().After(c.expires)) {
		return nil, nil
	}
	cached := *c.stats
	return &cached, nil
}

func (c *StatsCache) Set(_ context.Context, stats *model.BlogStats, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	cached := *stats
	c.stats = &cached
	c.expires = time.Time{}
	if ttl > 0 {
		c.expires = c.now().Add(ttl)
	}
	return nil
}

func (c *StatsCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats = nil
	return nil
}
