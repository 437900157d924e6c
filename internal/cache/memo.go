package cache

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// Memo caches the results of fn per argument value for ttl.
// Errors returned by fn are passed through and never stored.
type Memo[A, R any] struct {
	store *Store
	name  string
	ttl   time.Duration
	fn    func(A) (R, error)
	hook  func(hit bool)
}

func NewMemo[A, R any](store *Store, name string, ttl time.Duration, fn func(A) (R, error)) *Memo[A, R] {
	return &Memo[A, R]{
		store: store,
		name:  name,
		ttl:   ttl,
		fn:    fn,
	}
}

// OnLookup registers a callback invoked after every Get with whether it was served from the store.
func (m *Memo[A, R]) OnLookup(hook func(hit bool)) *Memo[A, R] {
	m.hook = hook
	return m
}

func (m *Memo[A, R]) Get(arg A) (R, error) {
	result, _, err := m.Lookup(arg)
	return result, err
}

// Lookup is Get that also returns the generation of the served entry.
// The generation changes every time fn runs, including after Invalidate.
func (m *Memo[A, R]) Lookup(arg A) (R, uint64, error) {
	var zero R

	key, err := m.Key(arg)
	if err != nil {
		return zero, 0, err
	}

	entry, hit, err := m.store.load(key, m.ttl, func() (any, error) {
		return m.fn(arg)
	})
	if err != nil {
		return zero, 0, err
	}
	if m.hook != nil {
		m.hook(hit)
	}

	result, ok := entry.Value.(R)
	if !ok {
		return zero, 0, fmt.Errorf("cache: entry %s holds %T", m.name, entry.Value)
	}
	return result, entry.Generation, nil
}

// Key encodes arg as JSON. Struct fields are encoded in declaration order,
// so equal arguments always map to the same key.
func (m *Memo[A, R]) Key(arg A) (Key, error) {
	args, err := json.Marshal(arg)
	if err != nil {
		return Key{}, fmt.Errorf("cache: encode arguments of %s: %w", m.name, err)
	}
	return Key{Func: m.name, Args: string(args)}, nil
}

func (m *Memo[A, R]) Invalidate() {
	m.store.InvalidateFunc(m.name)
}

func (m *Memo[A, R]) Name() string {
	return m.name
}
