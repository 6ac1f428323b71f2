package container

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1ced/arenajson/internal/arena"
)

func TestCopyRange(t *testing.T) {
	src := []byte("hello, world")
	tests := []struct {
		name       string
		begin, end int
		want       string
		wantErr    error
	}{
		{"whole", 0, len(src), "hello, world", nil},
		{"prefix", 0, 5, "hello", nil},
		{"inner", 7, 12, "world", nil},
		{"empty", 3, 3, "", nil},
		{"reversed", 5, 2, "", ErrInvalidRange},
		{"past end", 5, 20, "", ErrInvalidRange},
		{"negative", -1, 2, "", ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := arena.New()
			s, err := CopyRange(a, src, tt.begin, tt.end)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, s.String(a))
			assert.Equal(t, len(tt.want), s.Len())
		})
	}
}

func TestSliceCopiesInput(t *testing.T) {
	a := arena.New()
	src := []byte("abc")
	s, err := Copy(a, src)
	require.NoError(t, err)
	src[0] = 'x'
	assert.Equal(t, "abc", s.String(a))

	fresh := arena.New()
	empty, err := CopyString(fresh, "")
	require.NoError(t, err)
	assert.Equal(t, Slice{}, empty)
	assert.Zero(t, fresh.SizeInUse())
}

func TestSliceAt(t *testing.T) {
	a := arena.New()
	s, err := CopyString(a, "xyz")
	require.NoError(t, err)
	for i, want := range []byte("xyz") {
		b, err := s.At(a, i)
		require.NoError(t, err)
		assert.Equal(t, want, b)
	}
	for _, idx := range []int{-1, 3, 100} {
		_, err := s.At(a, idx)
		assert.True(t, errors.Is(err, ErrIndexOutOfRange), "At(%d): %v", idx, err)
	}
}

func TestSliceEqual(t *testing.T) {
	a, b := arena.New(), arena.New()
	x, err := CopyString(a, "key")
	require.NoError(t, err)
	y, err := CopyString(b, "key")
	require.NoError(t, err)
	z, err := CopyString(a, "kez")
	require.NoError(t, err)
	w, err := CopyString(a, "keys")
	require.NoError(t, err)

	assert.True(t, x.Equal(a, y, b))
	assert.False(t, x.Equal(a, z, a))
	assert.False(t, x.Equal(a, w, a))
	assert.True(t, Slice{}.Equal(a, Slice{}, b))

	assert.True(t, x.EqualString(a, "key"))
	assert.False(t, x.EqualString(a, "ke"))
	assert.False(t, x.EqualString(a, "kez"))
	assert.True(t, Slice{}.EqualString(a, ""))
}
