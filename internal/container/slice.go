package container

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/d1ced/arenajson/internal/arena"
)

// Slice is an immutable [begin,end) byte range copied into an arena.
// The zero Slice is empty. Slices compare by content, not by address.
//
// Caller-owned keys never need wrapping: lookups take a plain string and
// compare it against arena bytes without allocating.
type Slice struct {
	ref arena.Ref
	n   uint32
}

// CopyRange copies src[begin:end] into a.
func CopyRange(a *arena.Arena, src []byte, begin, end int) (Slice, error) {
	if end < begin || begin < 0 || end > len(src) {
		return Slice{}, errors.Wrapf(ErrInvalidRange, "[%d,%d) of %d bytes", begin, end, len(src))
	}
	return Copy(a, src[begin:end])
}

// Copy copies b into a.
func Copy(a *arena.Arena, b []byte) (Slice, error) {
	if len(b) == 0 {
		return Slice{}, nil
	}
	ref, err := a.Alloc(len(b))
	if err != nil {
		return Slice{}, err
	}
	copy(a.Bytes(ref, len(b)), b)
	return Slice{ref: ref, n: uint32(len(b))}, nil
}

// CopyString copies s into a.
func CopyString(a *arena.Arena, s string) (Slice, error) {
	if len(s) == 0 {
		return Slice{}, nil
	}
	ref, err := a.Alloc(len(s))
	if err != nil {
		return Slice{}, err
	}
	copy(a.Bytes(ref, len(s)), s)
	return Slice{ref: ref, n: uint32(len(s))}, nil
}

// Len returns the number of bytes in s.
func (s Slice) Len() int { return int(s.n) }

// Bytes returns the bytes of s. The result must not be modified.
func (s Slice) Bytes(a *arena.Arena) []byte {
	return a.Bytes(s.ref, int(s.n))
}

// String returns a copy of s as a Go string.
func (s Slice) String(a *arena.Arena) string {
	return string(s.Bytes(a))
}

// At returns the byte at idx.
func (s Slice) At(a *arena.Arena, idx int) (byte, error) {
	if idx < 0 || idx >= s.Len() {
		return 0, errors.Wrapf(ErrIndexOutOfRange, "byte %d of %d", idx, s.Len())
	}
	return s.Bytes(a)[idx], nil
}

// Equal reports whether s and o hold the same bytes. o may live in a
// different arena.
func (s Slice) Equal(a *arena.Arena, o Slice, oa *arena.Arena) bool {
	if s.n != o.n {
		return false
	}
	return bytes.Equal(s.Bytes(a), o.Bytes(oa))
}

// EqualString reports whether s holds exactly the bytes of key.
func (s Slice) EqualString(a *arena.Arena, key string) bool {
	if s.Len() != len(key) {
		return false
	}
	return string(s.Bytes(a)) == key
}
