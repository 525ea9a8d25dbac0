package hoard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestDeque_BothEnds(t *testing.T) {
	dq := NewDeque[int]()

	dq.PushBack(2)
	dq.PushBack(3)
	dq.PushFront(1)
	dq.PushFront(0)

	assert.Equal(t, []int{0, 1, 2, 3}, dq.Snapshot())

	front, ok := dq.PopFront()
	require.True(t, ok)
	assert.Equal(t, 0, front)

	back, ok := dq.PopBack()
	require.True(t, ok)
	assert.Equal(t, 3, back)

	assert.Equal(t, []int{1, 2}, dq.Snapshot())
}

func TestDeque_EmptyIsAbsent(t *testing.T) {
	dq := NewDeque[string]()

	_, ok := dq.PopFront()
	assert.False(t, ok)
	_, ok = dq.PopBack()
	assert.False(t, ok)
	_, ok = dq.Front()
	assert.False(t, ok)
	_, ok = dq.Back()
	assert.False(t, ok)
}

func TestDeque_PeeksDoNotRemove(t *testing.T) {
	dq := NewDeque(1, 2, 3)

	front, ok := dq.Front()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := dq.Back()
	require.True(t, ok)
	assert.Equal(t, 3, back)

	assert.Equal(t, 3, dq.Len())
}

func TestDeque_WrapAroundGrowth(t *testing.T) {
	dq := NewDeque[int]()

	// Drive the ring through several growths and wraps from both ends.
	for i := 0; i < 100; i++ {
		dq.PushBack(i)
		dq.PushFront(-i)
	}
	assert.Equal(t, 200, dq.Len())

	for i := 0; i < 50; i++ {
		dq.PopFront()
		dq.PopBack()
	}
	assert.Equal(t, 100, dq.Len())

	snap := dq.Snapshot()
	assert.Len(t, snap, 100)
	assert.Equal(t, -49, snap[0])
	assert.Equal(t, 49, snap[99])
}

func TestDeque_UsedAsQueueAndStack(t *testing.T) {
	t.Run("queue order", func(t *testing.T) {
		dq := NewDeque[int]()
		dq.PushBack(1)
		dq.PushBack(2)
		dq.PushBack(3)
		for _, want := range []int{1, 2, 3} {
			v, ok := dq.PopFront()
			require.True(t, ok)
			assert.Equal(t, want, v)
		}
	})

	t.Run("stack order", func(t *testing.T) {
		dq := NewDeque[int]()
		dq.PushBack(1)
		dq.PushBack(2)
		dq.PushBack(3)
		for _, want := range []int{3, 2, 1} {
			v, ok := dq.PopBack()
			require.True(t, ok)
			assert.Equal(t, want, v)
		}
	})
}

func TestDeque_SnapshotIsolation(t *testing.T) {
	dq := NewDeque(1, 2, 3)

	snap := dq.Snapshot()
	dq.PushFront(0)
	dq.PopBack()

	assert.Equal(t, []int{1, 2, 3}, snap)
}

func TestDeque_MapFilterForEach(t *testing.T) {
	dq := NewDeque(1, 2, 3, 4)

	doubled := dq.Map(func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6, 8}, doubled.Snapshot())

	even := dq.Filter(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, even.Snapshot())

	var seen []int
	require.NoError(t, dq.ForEach(func(v int) error {
		seen = append(seen, v)
		return nil
	}))
	assert.Equal(t, []int{1, 2, 3, 4}, seen)

	seen = nil
	for v := range dq.All() {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	assert.Equal(t, []int{1, 2}, seen)
	dq.PushBack(5)
	assert.Equal(t, 5, dq.Len())
}

func TestDeque_ConcurrentPushNoLostUpdates(t *testing.T) {
	const goroutines = 16
	const perGoroutine = 100

	dq := NewDeque[int]()
	var g errgroup.Group
	for i := 0; i < goroutines; i++ {
		g.Go(func() error {
			for j := 0; j < perGoroutine; j++ {
				if j%2 == 0 {
					dq.PushBack(j)
				} else {
					dq.PushFront(j)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, goroutines*perGoroutine, dq.Len())
}
