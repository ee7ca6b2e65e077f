// Package store provides a small observable value container shared by the
// editor's project, playback and UI state.
package store

import "sync"

// Store holds a single value and notifies subscribers whenever it is replaced.
// Values are treated as immutable snapshots: callers replace them wholesale
// through Set or Update instead of mutating what Get returns.
type Store[T any] struct {
	mu     sync.RWMutex
	value  T
	nextID int
	subs   []subscriber[T]
}

type subscriber[T any] struct {
	id int
	fn func(T)
}

// New returns a store seeded with initial.
func New[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// Get returns the current snapshot.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the current value and notifies subscribers.
func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	s.value = v
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, v)
}

// Update replaces the current value with fn(current). The read and the write
// happen under one lock so concurrent updates are never lost.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	v := s.value
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, v)
}

// UpdateIf behaves like Update but only stores and publishes the result when
// fn reports a change.
func (s *Store[T]) UpdateIf(fn func(T) (T, bool)) bool {
	s.mu.Lock()
	next, changed := fn(s.value)
	if !changed {
		s.mu.Unlock()
		return false
	}
	s.value = next
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, next)
	return true
}

// Subscribe registers fn, calls it immediately with the current value and
// returns a function that removes the registration.
func (s *Store[T]) Subscribe(fn func(T)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	v := s.value
	s.mu.Unlock()

	fn(v)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			for i, sub := range s.subs {
				if sub.id == id {
					s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store[T]) snapshotSubs() []subscriber[T] {
	if len(s.subs) == 0 {
		return nil
	}
	out := make([]subscriber[T], len(s.subs))
	copy(out, s.subs)
	return out
}

func notify[T any](subs []subscriber[T], v T) {
	for _, sub := range subs {
		sub.fn(v)
	}
}
