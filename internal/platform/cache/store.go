// Package cache keeps lookups in process memory for the duration of one
// command.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Stats counts lookups answered from memory and those that reached the
// loader.
type Stats struct {
	Hits   int
	Misses int
}

// Store is a read-through TTL map. A zero ttl keeps entries until the
// process exits. Loader errors are never cached.
type Store[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
	stats   Stats
	now     func() time.Time
}

func NewStore[V any](ttl time.Duration) *Store[V] {
	return &Store[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Lookup returns the value under key, calling load on a miss.
func (s *Store[V]) Lookup(ctx context.Context, key string, load func(context.Context) (V, error)) (V, error) {
	var zero V
	if load == nil {
		return zero, fmt.Errorf("cache loader is required for key %q", key)
	}

	if value, ok := s.get(key); ok {
		return value, nil
	}

	value, err := load(ctx)
	if err != nil {
		return zero, err
	}
	s.Put(key, value)
	return value, nil
}

// Put stores value under key, replacing whatever was there.
func (s *Store[V]) Put(key string, value V) {
	var expiresAt time.Time
	if s.ttl > 0 {
		expiresAt = s.now().Add(s.ttl)
	}

	s.mu.Lock()
	s.entries[key] = entry[V]{value: value, expiresAt: expiresAt}
	s.mu.Unlock()
}

func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store[V]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Store[V]) get(key string) (V, bool) {
	var zero V

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if ok && s.ttl > 0 && !e.expiresAt.After(s.now()) {
		delete(s.entries, key)
		ok = false
	}
	if !ok {
		s.stats.Misses++
		return zero, false
	}
	s.stats.Hits++
	return e.value, true
}
