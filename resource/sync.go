// Package resource keeps in-memory collections consistent with the backend.
// Every write is pessimistic: the local collection changes only after the
// server confirmed the write, and a failed call leaves it as it was.
package resource

import (
	"context"
	"slices"
	"sync"

	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/types"

	"github.com/sirupsen/logrus"
)

// Item is anything with a server-assigned id.
type Item interface {
	Key() int64
}

// Endpoint is the REST surface of one collection.
type Endpoint[T Item, In any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, in In) (T, error)
	Update(ctx context.Context, id int64, in In) (T, error)
	Delete(ctx context.Context, id int64) error
}

type Sync[T Item, In any] struct {
	name  string
	ep    Endpoint[T, In]
	guard *Guard
	log   *logrus.Entry

	mu    sync.RWMutex
	items []T
}

func New[T Item, In any](name string, ep Endpoint[T, In]) *Sync[T, In] {
	return &Sync[T, In]{
		name:  name,
		ep:    ep,
		guard: NewGuard(),
		log:   config.Component(name),
		items: []T{},
	}
}

func (s *Sync[T, In]) op(verb string) string { return s.name + " " + verb }

// LoadAll replaces the collection with the server's. On failure the previous
// collection stays.
func (s *Sync[T, In]) LoadAll(ctx context.Context) error {
	items, err := s.ep.List(ctx)
	if err != nil {
		s.log.Warn("Load failed: ", err)
		return types.Wrap(types.ErrFetch, s.op("load"), err)
	}
	s.set(items)
	return nil
}

// Create appends the server's item once it has an id. Nothing is inserted
// before that.
func (s *Sync[T, In]) Create(ctx context.Context, in In) (T, error) {
	var zero T
	release, err := s.guard.AcquireCollection()
	if err != nil {
		return zero, types.Wrap(types.ErrMutation, s.op("create"), err)
	}
	defer release()

	item, err := s.ep.Create(ctx, in)
	if err != nil {
		return zero, types.Wrap(types.ErrMutation, s.op("create"), err)
	}
	s.Merge(item)
	return item, nil
}

func (s *Sync[T, In]) Update(ctx context.Context, id int64, in In) (T, error) {
	var zero T
	release, err := s.guard.Acquire(id)
	if err != nil {
		return zero, types.Wrap(types.ErrMutation, s.op("update"), err)
	}
	defer release()
	return s.update(ctx, id, in)
}

func (s *Sync[T, In]) update(ctx context.Context, id int64, in In) (T, error) {
	var zero T
	item, err := s.ep.Update(ctx, id, in)
	if err != nil {
		return zero, types.Wrap(types.ErrMutation, s.op("update"), err)
	}
	s.replace(id, item)
	return item, nil
}

func (s *Sync[T, In]) Delete(ctx context.Context, id int64) error {
	release, err := s.guard.Acquire(id)
	if err != nil {
		return types.Wrap(types.ErrMutation, s.op("delete"), err)
	}
	defer release()

	if err := s.ep.Delete(ctx, id); err != nil {
		return types.Wrap(types.ErrMutation, s.op("delete"), err)
	}
	s.mu.Lock()
	s.items = slices.DeleteFunc(s.items, func(it T) bool { return it.Key() == id })
	s.mu.Unlock()
	return nil
}

// Toggle fetches the full item, lets build derive the update payload from it
// and sends the update. It exists because updates need the whole object.
func (s *Sync[T, In]) Toggle(ctx context.Context, id int64, build func(T) In) (T, error) {
	var zero T
	release, err := s.guard.Acquire(id)
	if err != nil {
		return zero, types.Wrap(types.ErrMutation, s.op("toggle"), err)
	}
	defer release()

	current, err := s.ep.Get(ctx, id)
	if err != nil {
		return zero, types.Wrap(types.ErrMutation, s.op("toggle"), err)
	}
	return s.update(ctx, id, build(current))
}

// Items returns a copy in server order.
func (s *Sync[T, In]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.items)
}

func (s *Sync[T, In]) Find(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.Key() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (s *Sync[T, In]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Pending reports whether a mutation on id is in flight.
func (s *Sync[T, In]) Pending(id int64) bool {
	return s.guard.Pending(id)
}

// Merge appends server-returned items, replacing any with the same id.
func (s *Sync[T, In]) Merge(items ...T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if i := s.index(item.Key()); i >= 0 {
			s.items[i] = item
			continue
		}
		s.items = append(s.items, item)
	}
}

// Reset empties the collection.
func (s *Sync[T, In]) Reset() {
	s.set(nil)
}

func (s *Sync[T, In]) set(items []T) {
	if items == nil {
		items = []T{}
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *Sync[T, In]) replace(id int64, item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		s.items[i] = item
	}
}

// index assumes s.mu is held.
func (s *Sync[T, In]) index(id int64) int {
	return slices.IndexFunc(s.items, func(it T) bool { return it.Key() == id })
}
