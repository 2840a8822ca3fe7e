// Package store implements the in-memory entity stores backing the mock API.
//
// A Store holds one insertion-ordered collection and publishes the full
// snapshot to its subscribers after every mutation. Mutations are
// copy-on-write: each one installs a fresh slice, so a snapshot handed to a
// reader or subscriber is never modified afterwards.
package store

import (
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/blogadmin/internal/common"
	"github.com/dmitrijs2005/blogadmin/internal/timex"
	"github.com/google/uuid"
)

// Entity is implemented by every stored value type. WithIdentity returns a
// copy carrying the given id and creation time; the store uses it both to
// stamp new entities and to keep those two fields immutable on update.
// Clone returns a copy sharing no memory with the receiver; values cross the
// store boundary only as clones.
type Entity[T any] interface {
	Key() int
	Created() time.Time
	WithIdentity(id int, created time.Time) T
	Clone() T
}

// Listener receives the post-mutation snapshot. It must not mutate the store
// it listens to.
type Listener[T any] func(snapshot []T)

type subscriber[T any] struct {
	id uuid.UUID
	fn Listener[T]
}

type Store[T Entity[T]] struct {
	name string

	// writeMu serializes mutations together with their fan-out.
	writeMu sync.Mutex

	mu    sync.RWMutex
	items []T
	subs  []subscriber[T]

	clock    timex.Clock
	validate func(T) error
}

type Option[T Entity[T]] func(*Store[T])

// WithClock overrides the creation-time source.
func WithClock[T Entity[T]](clock timex.Clock) Option[T] {
	return func(s *Store[T]) { s.clock = clock }
}

// WithValidator checks candidates on Add and merged values on Update.
func WithValidator[T Entity[T]](fn func(T) error) Option[T] {
	return func(s *Store[T]) { s.validate = fn }
}

// WithSeed installs initial items verbatim, ids and timestamps included.
func WithSeed[T Entity[T]](items []T) Option[T] {
	return func(s *Store[T]) { s.items = cloneAll(items) }
}

func New[T Entity[T]](name string, opts ...Option[T]) *Store[T] {
	s := &Store[T]{name: name, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store[T]) Name() string { return s.name }

// List returns the current snapshot. The caller owns the returned values.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.items)
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the entity with the given id or common.ErrorNotFound.
func (s *Store[T]) Get(id int) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.items, id); i >= 0 {
		return s.items[i].Clone(), nil
	}
	var zero T
	return zero, common.ErrorNotFound
}

// Find returns the first entity in list order matching pred.
func (s *Store[T]) Find(pred func(T) bool) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if pred(item) {
			return item.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Add stamps candidate with id max(ids)+1 and the current time, appends it and
// publishes. Only validation can make it fail.
func (s *Store[T]) Add(candidate T) (T, error) {
	if s.validate != nil {
		if err := s.validate(candidate); err != nil {
			var zero T
			return zero, err
		}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	item := candidate.Clone().WithIdentity(nextID(s.items), s.clock())
	items := make([]T, len(s.items), len(s.items)+1)
	copy(items, s.items)
	items = append(items, item)
	s.items = items
	subs := s.subs
	s.mu.Unlock()

	publish(items, subs)
	return item.Clone(), nil
}

// Update applies patch to a copy of the stored entity, restores its id and
// creation time, replaces it in place and publishes.
func (s *Store[T]) Update(id int, patch func(T) T) (T, error) {
	var zero T

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	idx := indexOf(s.items, id)
	if idx < 0 {
		s.mu.RUnlock()
		return zero, common.ErrorNotFound
	}
	current := s.items[idx].Clone()
	s.mu.RUnlock()

	merged := patch(current).Clone().WithIdentity(current.Key(), current.Created())
	if s.validate != nil {
		if err := s.validate(merged); err != nil {
			return zero, err
		}
	}

	s.mu.Lock()
	items := slices.Clone(s.items)
	items[idx] = merged
	s.items = items
	subs := s.subs
	s.mu.Unlock()

	publish(items, subs)
	return merged.Clone(), nil
}

// UpdateAll applies patch to every entity and publishes once. It returns the
// number of entities visited.
func (s *Store[T]) UpdateAll(patch func(T) T) int {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	items := make([]T, len(s.items))
	for i, item := range s.items {
		items[i] = patch(item.Clone()).Clone().WithIdentity(item.Key(), item.Created())
	}
	s.items = items
	subs := s.subs
	s.mu.Unlock()

	publish(items, subs)
	return len(items)
}

// Remove deletes the entity with the given id. Removing an unknown id is a
// no-op that returns false and publishes nothing.
func (s *Store[T]) Remove(id int) bool {
	return s.RemoveWhere(func(item T) bool { return item.Key() == id }) > 0
}

// RemoveWhere deletes every entity matching pred and publishes when anything
// was removed.
func (s *Store[T]) RemoveWhere(pred func(T) bool) int {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	items := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if !pred(item) {
			items = append(items, item)
		}
	}
	removed := len(s.items) - len(items)
	if removed == 0 {
		s.mu.Unlock()
		return 0
	}
	s.items = items
	subs := s.subs
	s.mu.Unlock()

	publish(items, subs)
	return removed
}

func cloneAll[T Entity[T]](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

func indexOf[T Entity[T]](items []T, id int) int {
	return slices.IndexFunc(items, func(item T) bool { return item.Key() == id })
}

func nextID[T Entity[T]](items []T) int {
	maxID := 0
	for _, item := range items {
		if item.Key() > maxID {
			maxID = item.Key()
		}
	}
	return maxID + 1
}
