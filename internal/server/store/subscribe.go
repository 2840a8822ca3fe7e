package store

import (
	"slices"

	"github.com/google/uuid"
)

// Subscription is a handle returned by Subscribe.
type Subscription struct {
	ID     uuid.UUID
	cancel func() bool
}

// Unsubscribe stops delivery. It reports whether the subscription was still
// active.
func (s *Subscription) Unsubscribe() bool {
	return s.cancel()
}

// Subscribe registers fn to receive the full snapshot after every mutation.
// Listeners are called synchronously, in subscription order, on the
// mutating goroutine.
func (s *Store[T]) Subscribe(fn Listener[T]) *Subscription {
	id := uuid.New()

	s.mu.Lock()
	subs := make([]subscriber[T], len(s.subs), len(s.subs)+1)
	copy(subs, s.subs)
	s.subs = append(subs, subscriber[T]{id: id, fn: fn})
	s.mu.Unlock()

	return &Subscription{ID: id, cancel: func() bool { return s.unsubscribe(id) }}
}

// Subscribers reports how many listeners are registered.
func (s *Store[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}

func (s *Store[T]) unsubscribe(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.subs, func(sub subscriber[T]) bool { return sub.id == id })
	if i < 0 {
		return false
	}
	s.subs = slices.Delete(slices.Clone(s.subs), i, i+1)
	return true
}

func publish[T Entity[T]](snapshot []T, subs []subscriber[T]) {
	for _, sub := range subs {
		sub.fn(cloneAll(snapshot))
	}
}
