package container

import (
	"github.com/pkg/errors"

	"github.com/d1ced/arenajson/internal/arena"
)

// Entry is a key/value pair of a Map.
type Entry[V any] struct {
	Key   Slice
	Value V
}

// Map is an unordered-lookup dictionary stored as a Sequence of entries in
// insertion order. Keys are unique by content. Every operation is a linear
// scan, which is cheap for the small objects typical of JSON documents.
type Map[V any] struct {
	entries Sequence[Entry[V]]
}

// NewMap allocates a Map with room for at least capacity entries.
func NewMap[V any](a *arena.Arena, capacity int) (Map[V], error) {
	entries, err := NewSequence[Entry[V]](a, capacity)
	if err != nil {
		return Map[V]{}, err
	}
	return Map[V]{entries: entries}, nil
}

// Len returns the number of entries.
func (m *Map[V]) Len() int { return m.entries.Len() }

// Entries returns the entries in insertion order. The view is invalidated by
// Set.
func (m *Map[V]) Entries(a *arena.Arena) []Entry[V] {
	return m.entries.Items(a)
}

// Contains reports whether key is present.
func (m *Map[V]) Contains(a *arena.Arena, key string) bool {
	return m.find(a, key) >= 0
}

// Get returns the value stored under key.
func (m *Map[V]) Get(a *arena.Arena, key string) (V, error) {
	i := m.find(a, key)
	if i < 0 {
		var zero V
		return zero, errors.Wrapf(ErrKeyNotFound, "%q", key)
	}
	return m.entries.Items(a)[i].Value, nil
}

// Set stores v under key, replacing the value of an existing entry in place.
// key must already live in a.
func (m *Map[V]) Set(a *arena.Arena, key Slice, v V) error {
	entries := m.entries.Items(a)
	for i := range entries {
		if entries[i].Key.Equal(a, key, a) {
			entries[i].Value = v
			return nil
		}
	}
	return m.entries.PushBack(a, Entry[V]{Key: key, Value: v})
}

// SetString is like Set but copies key into a only when a new entry is added.
func (m *Map[V]) SetString(a *arena.Arena, key string, v V) error {
	if i := m.find(a, key); i >= 0 {
		m.entries.Items(a)[i].Value = v
		return nil
	}
	k, err := CopyString(a, key)
	if err != nil {
		return err
	}
	return m.entries.PushBack(a, Entry[V]{Key: k, Value: v})
}

// Remove deletes the entry for key. Later entries shift left.
func (m *Map[V]) Remove(a *arena.Arena, key string) error {
	i := m.find(a, key)
	if i < 0 {
		return errors.Wrapf(ErrKeyNotFound, "%q", key)
	}
	return m.entries.Remove(a, i)
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys(a *arena.Arena) []string {
	entries := m.entries.Items(a)
	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key.String(a)
	}
	return keys
}

func (m *Map[V]) find(a *arena.Arena, key string) int {
	for i, e := range m.entries.Items(a) {
		if e.Key.EqualString(a, key) {
			return i
		}
	}
	return -1
}
