// Package container provides arena-backed containers: an immutable byte
// Slice, a growable Sequence and a linear Map keyed by Slice. None of the
// container headers hold Go pointers, so they can be stored inside the arena
// themselves. Every method takes the arena that backs the container.
package container

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned for indexes beyond a container's length.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrKeyNotFound is returned when a Map has no entry for a key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidRange is returned for a [begin,end) range with end < begin.
	ErrInvalidRange = errors.New("invalid range")
)
