package ring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
)

func TestNextPrevWrap(t *testing.T) {
	b, err := New[int](3)
	require.NoError(t, err)

	cases := []struct{ pos, next, prev int }{
		{0, 1, 2},
		{1, 2, 0},
		{2, 0, 1},
	}
	for _, c := range cases {
		n, err := b.next(c.pos)
		require.NoError(t, err)
		assert.Equal(t, c.next, n, "next(%d)", c.pos)
		p, err := b.prev(c.pos)
		require.NoError(t, err)
		assert.Equal(t, c.prev, p, "prev(%d)", c.pos)
	}
}

func TestIndexArithmeticZeroCapacity(t *testing.T) {
	b, err := New[int](0)
	require.NoError(t, err)
	_, err = b.next(0)
	assert.ErrorIs(t, err, api.ErrInvalidState)
	_, err = b.prev(0)
	assert.ErrorIs(t, err, api.ErrInvalidState)
}

func TestGrowDefragments(t *testing.T) {
	b, err := New[int](4, WithOverwriting(true))
	require.NoError(t, err)
	for i := 1; i <= 6; i++ {
		require.NoError(t, b.AddLast(i))
	}
	require.Equal(t, 2, b.start)

	require.NoError(t, b.grow(6))
	assert.Equal(t, 0, b.start)
	assert.Equal(t, 3, b.end)
	assert.Equal(t, []int{3, 4, 5, 6, 0, 0}, b.storage)

	assert.ErrorIs(t, b.grow(3), api.ErrInvalidArgument)
	assert.Len(t, b.storage, 6)
}

func TestGrowEmpty(t *testing.T) {
	b, err := New[string](2)
	require.NoError(t, err)
	require.NoError(t, b.grow(0))
	assert.Equal(t, 0, b.start)
	assert.Equal(t, 0, b.end)
	assert.Empty(t, b.storage)
}

func TestRemoveClearsSlot(t *testing.T) {
	b, err := New[*int](2)
	require.NoError(t, err)
	v := 1
	require.NoError(t, b.AddLast(&v))
	_, err = b.RemoveFirst()
	require.NoError(t, err)
	assert.Nil(t, b.storage[0])
}
