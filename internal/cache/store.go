package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Key identifies one memoized call: the producer name plus its encoded arguments.
type Key struct {
	Func string
	Args string
}

// Entry is a stored result and the instant it stops being served.
// Generation is unique per produced value within a Store.
type Entry struct {
	ExpiresAt  time.Time
	Generation uint64
	Value      any
}

// Store is the shared memoization state. All access to entries goes through
// mu, so an expiry and its value are always replaced together.
type Store struct {
	mu      sync.Mutex
	clock   clockwork.Clock
	entries map[Key]Entry
	gen     uint64
}

func NewStore(clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{
		clock:   clock,
		entries: make(map[Key]Entry),
	}
}

// load returns the live value for key, or calls produce and stores its result.
// The lock is held during produce so concurrent misses on the same store
// run the producer once.
func (s *Store) load(key Key, ttl time.Duration, produce func() (any, error)) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if e, ok := s.entries[key]; ok && now.Before(e.ExpiresAt) {
		return e, true, nil
	}

	value, err := produce()
	if err != nil {
		return Entry{}, false, err
	}
	s.gen++
	e := Entry{
		ExpiresAt:  now.Add(ttl),
		Generation: s.gen,
		Value:      value,
	}
	s.entries[key] = e
	return e, false, nil
}

func (s *Store) Entry(key Key) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	return e, ok
}

func (s *Store) Entries() map[Key]Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[Key]Entry, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// SetExpiry moves the expiry of an existing entry. It reports false when
// there is no such entry.
func (s *Store) SetExpiry(key Key, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		return false
	}
	e.ExpiresAt = at
	s.entries[key] = e
	return true
}

func (s *Store) Invalidate(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// InvalidateFunc drops every entry produced by the named function.
func (s *Store) InvalidateFunc(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k := range s.entries {
		if k.Func == name {
			delete(s.entries, k)
		}
	}
}

func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[Key]Entry)
}

func (s *Store) Now() time.Time {
	return s.clock.Now()
}
