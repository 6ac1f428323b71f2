package container

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d1ced/arenajson/internal/arena"
)

func TestMapSetGet(t *testing.T) {
	a := arena.New()
	m, err := NewMap[int](a, 0)
	require.NoError(t, err)

	for i, k := range []string{"a", "bb", "", "ccc"} {
		require.NoError(t, m.SetString(a, k, i))
	}
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, []string{"a", "bb", "", "ccc"}, m.Keys(a))

	v, err := m.Get(a, "")
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = m.Get(a, "zz")
	assert.True(t, errors.Is(err, ErrKeyNotFound), "got %v", err)
	assert.Contains(t, err.Error(), `"zz"`)
	assert.False(t, m.Contains(a, "b"))
	assert.True(t, m.Contains(a, "bb"))
}

func TestMapOverwrite(t *testing.T) {
	a := arena.New()
	m, err := NewMap[int](a, 0)
	require.NoError(t, err)

	require.NoError(t, m.SetString(a, "k", 1))
	used := a.SizeInUse()
	require.NoError(t, m.SetString(a, "k", 2))
	assert.Equal(t, used, a.SizeInUse(), "overwrite must not copy the key again")
	assert.Equal(t, 1, m.Len())

	key, err := CopyString(a, "k")
	require.NoError(t, err)
	require.NoError(t, m.Set(a, key, 3))
	assert.Equal(t, 1, m.Len())

	v, err := m.Get(a, "k")
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestMapRemove(t *testing.T) {
	a := arena.New()
	m, err := NewMap[int](a, 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, m.SetString(a, fmt.Sprint(i), i))
	}
	require.NoError(t, m.Remove(a, "1"))
	require.NoError(t, m.Remove(a, "4"))
	assert.Equal(t, []string{"0", "2", "3"}, m.Keys(a))
	assert.True(t, errors.Is(m.Remove(a, "1"), ErrKeyNotFound))

	var got []int
	for _, e := range m.Entries(a) {
		got = append(got, e.Value)
	}
	assert.Equal(t, []int{0, 2, 3}, got)
}

func TestMapGrowth(t *testing.T) {
	a := arena.New(arena.WithPageSize(arena.MinPageSize))
	m, err := NewMap[int](a, 0)
	require.NoError(t, err)
	const n = 500
	for i := 0; i < n; i++ {
		require.NoError(t, m.SetString(a, fmt.Sprintf("key-%d", i), i))
	}
	require.Equal(t, n, m.Len())
	for i := 0; i < n; i++ {
		v, err := m.Get(a, fmt.Sprintf("key-%d", i))
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
}
