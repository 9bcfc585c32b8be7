// Package store is the flat key-value persistence layer. Every collection
// is one JSON value under one key; writes replace the whole value and the
// last write wins. The Store adds two things the raw namespace lacks:
// per-key atomicity for read-modify-write cycles within this process, and
// an explicit publish/subscribe channel so observers re-render without
// polling. Concurrent writers in separate processes still race; that is a
// named property of the design, not an accident.
package store

import (
	"context"
	"sync"
)

// Event describes one committed write. Value is nil when the key was
// deleted.
type Event struct {
	Key   string
	Value []byte

	remote bool
}

// Remote reports whether the event was relayed from another process
// rather than committed by a local writer.
func (e Event) Remote() bool {
	return e.remote
}

// Backend persists raw values under keys.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

type subscriber struct {
	key string // "" matches every key
	fn  func(Event)
}

// Store wraps a Backend with per-key locks and an observer list.
type Store struct {
	backend Backend

	lockMu sync.Mutex
	locks  map[string]*sync.Mutex

	subMu  sync.Mutex
	subs   map[int]subscriber
	nextID int
}

func New(backend Backend) *Store {
	return &Store{
		backend: backend,
		locks:   make(map[string]*sync.Mutex),
		subs:    make(map[int]subscriber),
	}
}

func (s *Store) keyLock(key string) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	if l, ok := s.locks[key]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[key] = l
	return l
}

// Get returns the stored value for key, reporting absence without error.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return s.backend.Load(ctx, key)
}

// Set replaces the value under key wholesale and notifies observers
// synchronously after the write has succeeded.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	l := s.keyLock(key)
	l.Lock()
	err := s.backend.Save(ctx, key, value)
	l.Unlock()
	if err != nil {
		return err
	}
	s.notify(Event{Key: key, Value: value})
	return nil
}

// Delete removes the key. Absence is a no-op; observers are notified with
// a nil value either way so views converge on "gone".
func (s *Store) Delete(ctx context.Context, key string) error {
	l := s.keyLock(key)
	l.Lock()
	err := s.backend.Remove(ctx, key)
	l.Unlock()
	if err != nil {
		return err
	}
	s.notify(Event{Key: key, Value: nil})
	return nil
}

// Update runs an atomic read-modify-write on one key. fn receives the
// current value (nil when absent) and returns the replacement. Returning
// a nil value leaves the key untouched.
func (s *Store) Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error {
	l := s.keyLock(key)
	l.Lock()
	old, _, err := s.backend.Load(ctx, key)
	if err != nil {
		l.Unlock()
		return err
	}
	next, err := fn(old)
	if err != nil || next == nil {
		l.Unlock()
		return err
	}
	err = s.backend.Save(ctx, key, next)
	l.Unlock()
	if err != nil {
		return err
	}
	s.notify(Event{Key: key, Value: next})
	return nil
}

// Keys lists stored keys sharing a prefix.
func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	return s.backend.Keys(ctx, prefix)
}

// Subscribe registers an observer for writes to key (or every key when key
// is empty) and returns its unsubscribe function. Delivery from local
// writers is synchronous, in write order.
func (s *Store) Subscribe(key string, fn func(Event)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = subscriber{key: key, fn: fn}
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify(ev Event) {
	s.subMu.Lock()
	targets := make([]func(Event), 0, len(s.subs))
	for _, sub := range s.subs {
		if sub.key == "" || sub.key == ev.Key {
			targets = append(targets, sub.fn)
		}
	}
	s.subMu.Unlock()

	for _, fn := range targets {
		fn(ev)
	}
}

// Relay delivers an event produced elsewhere (another process, via the
// Redis bridge) to this process's observers without touching storage.
// The event is marked remote so observers that forward events can tell
// it apart from a local write.
func (s *Store) Relay(ev Event) {
	ev.remote = true
	s.notify(ev)
}
