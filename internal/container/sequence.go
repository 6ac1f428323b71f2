package container

import (
	"github.com/pkg/errors"

	"github.com/d1ced/arenajson/internal/arena"
)

// InitialCapacity is the capacity of a new Sequence.
const InitialCapacity = 10

// Sequence is a growable array of T backed by a single arena block.
// T must not contain Go pointers. Growth doubles the capacity, in place when
// the block is still the tail of the arena's current page.
type Sequence[T any] struct {
	data     arena.Ref
	length   uint32
	capacity uint32
}

// NewSequence allocates a Sequence with room for at least capacity elements.
func NewSequence[T any](a *arena.Arena, capacity int) (Sequence[T], error) {
	if capacity < InitialCapacity {
		capacity = InitialCapacity
	}
	ref, err := a.Alloc(capacity * arena.Sizeof[T]())
	if err != nil {
		return Sequence[T]{}, err
	}
	return Sequence[T]{data: ref, capacity: uint32(capacity)}, nil
}

// Len returns the number of elements.
func (s *Sequence[T]) Len() int { return int(s.length) }

// Cap returns the number of elements s can hold before growing.
func (s *Sequence[T]) Cap() int { return int(s.capacity) }

// Items returns the elements of s. The view is invalidated by PushBack.
func (s *Sequence[T]) Items(a *arena.Arena) []T {
	return arena.View[T](a, s.data, int(s.length))
}

// PushBack appends v.
func (s *Sequence[T]) PushBack(a *arena.Arena, v T) error {
	if s.length == s.capacity {
		size := arena.Sizeof[T]()
		capacity := 2 * int(s.capacity)
		if capacity < InitialCapacity {
			capacity = InitialCapacity
		}
		ref, err := a.Grow(s.data, int(s.capacity)*size, capacity*size)
		if err != nil {
			return err
		}
		s.data, s.capacity = ref, uint32(capacity)
	}
	arena.View[T](a, s.data, int(s.capacity))[s.length] = v
	s.length++
	return nil
}

// PopBack removes and returns the last element.
func (s *Sequence[T]) PopBack(a *arena.Arena) (T, error) {
	if s.length == 0 {
		var zero T
		return zero, errors.Wrap(ErrIndexOutOfRange, "pop from empty sequence")
	}
	v := s.Items(a)[s.length-1]
	s.length--
	return v, nil
}

// Shrink drops the last n elements.
func (s *Sequence[T]) Shrink(n int) error {
	if n < 0 || n > s.Len() {
		return errors.Wrapf(ErrIndexOutOfRange, "shrink by %d, length %d", n, s.Len())
	}
	s.length -= uint32(n)
	return nil
}

// At returns the element at idx.
func (s *Sequence[T]) At(a *arena.Arena, idx int) (T, error) {
	if err := s.check(idx); err != nil {
		var zero T
		return zero, err
	}
	return s.Items(a)[idx], nil
}

// Set replaces the element at idx.
func (s *Sequence[T]) Set(a *arena.Arena, idx int, v T) error {
	if err := s.check(idx); err != nil {
		return err
	}
	s.Items(a)[idx] = v
	return nil
}

// Remove deletes the element at idx, shifting later elements left.
func (s *Sequence[T]) Remove(a *arena.Arena, idx int) error {
	if err := s.check(idx); err != nil {
		return err
	}
	items := s.Items(a)
	copy(items[idx:], items[idx+1:])
	s.length--
	return nil
}

func (s *Sequence[T]) check(idx int) error {
	if idx < 0 || idx >= s.Len() {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", idx, s.Len())
	}
	return nil
}
