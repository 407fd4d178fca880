package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyp3rd/devconsole/internal/ring"
)

func TestNewRejectsNonPositiveCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
	}{
		{name: "zero", capacity: 0},
		{name: "negative", capacity: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := ring.New[int](tt.capacity)
			require.Error(t, err)
			assert.Nil(t, buf)
		})
	}
}

func TestPushWithinCapacity(t *testing.T) {
	buf, err := ring.New[string](3)
	require.NoError(t, err)

	_, evicted := buf.Push("a")
	assert.False(t, evicted)

	_, evicted = buf.Push("b")
	assert.False(t, evicted)

	assert.Equal(t, 2, buf.Len())
	assert.Equal(t, 3, buf.Cap())
	assert.Equal(t, []string{"a", "b"}, buf.Snapshot())
}

func TestPushEvictsOldestFirst(t *testing.T) {
	buf, err := ring.New[int](3)
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		buf.Push(i)
	}

	old, evicted := buf.Push(4)
	require.True(t, evicted)
	assert.Equal(t, 1, old)

	old, evicted = buf.Push(5)
	require.True(t, evicted)
	assert.Equal(t, 2, old)

	assert.Equal(t, 3, buf.Len())
	assert.Equal(t, []int{3, 4, 5}, buf.Snapshot())
}

func TestAtOrdersOldestToNewest(t *testing.T) {
	buf, err := ring.New[int](2)
	require.NoError(t, err)

	buf.Push(10)
	buf.Push(20)
	buf.Push(30) // evicts 10

	first, ok := buf.At(0)
	require.True(t, ok)
	assert.Equal(t, 20, first)

	second, ok := buf.At(1)
	require.True(t, ok)
	assert.Equal(t, 30, second)

	_, ok = buf.At(2)
	assert.False(t, ok)

	_, ok = buf.At(-1)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	buf, err := ring.New[int](4)
	require.NoError(t, err)

	buf.Push(1)
	buf.Push(2)
	buf.Clear()

	assert.Equal(t, 0, buf.Len())
	assert.Equal(t, 4, buf.Cap())
	assert.Empty(t, buf.Snapshot())

	buf.Push(7)
	assert.Equal(t, []int{7}, buf.Snapshot())
}
