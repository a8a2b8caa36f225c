package indexheap

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies heap order over the live slots and the position
// mapping over every slot.
func checkInvariants[K int | int64 | float64](t *testing.T, h *Heap[K]) {
	t.Helper()
	require.Equal(t, len(h.items), len(h.pos))
	for i := 1; i < h.size; i++ {
		parent := (i - 1) / 2
		require.LessOrEqual(t, h.items[parent].key, h.items[i].key,
			"heap order violated between slot %d and parent %d", i, parent)
	}
	for i, it := range h.items {
		require.Equal(t, i, h.pos[it.vertex], "position of vertex %d is incorrect", it.vertex)
	}
}

func TestBuild_Empty(t *testing.T) {
	h := Build([]int64{})
	require.Zero(t, h.Len())
	require.Zero(t, h.Cap())

	v, _, ok := h.ExtractMin()
	require.False(t, ok)
	require.Equal(t, -1, v)

	_, _, ok = h.Peek()
	require.False(t, ok)
}

func TestBuild_HeapifiesAndIdentityPositions(t *testing.T) {
	h := Build([]int64{5, 3, 8, 1, 9, 2})
	checkInvariants(t, h)
	require.Equal(t, 6, h.Len())

	v, k, ok := h.Peek()
	require.True(t, ok)
	require.Equal(t, 3, v)
	require.Equal(t, int64(1), k)

	for v := 0; v < 6; v++ {
		require.True(t, h.Contains(v))
	}
}

func TestExtractMin_YieldsSortedKeys(t *testing.T) {
	keys := []int64{7, 2, 9, 4, 4, 0, 11, 3}
	h := Build(keys)

	var got []int64
	for h.Len() > 0 {
		v, k, ok := h.ExtractMin()
		require.True(t, ok)
		require.Equal(t, keys[v], k)
		require.False(t, h.Contains(v), "extracted vertex %d must leave the heap", v)
		checkInvariants(t, h)
		got = append(got, k)
	}
	require.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i] < got[j] }))
	require.Len(t, got, len(keys))
}

func TestDecreaseKey_MovesToRoot(t *testing.T) {
	inf := int64(math.MaxInt64)
	h := Build([]int64{inf, inf, inf, inf, inf})
	require.NoError(t, h.DecreaseKey(4, 10))
	checkInvariants(t, h)
	require.NoError(t, h.DecreaseKey(2, 3))
	checkInvariants(t, h)

	v, k, ok := h.ExtractMin()
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, int64(3), k)

	key, in := h.Key(4)
	require.True(t, in)
	require.Equal(t, int64(10), key)
}

func TestDecreaseKey_EqualKeyIsNoOp(t *testing.T) {
	h := Build([]int64{1, 2, 3})
	require.NoError(t, h.DecreaseKey(2, 3))
	checkInvariants(t, h)
	k, _ := h.Key(2)
	require.Equal(t, int64(3), k)
}

func TestDecreaseKey_RejectsIncrease(t *testing.T) {
	h := Build([]int64{1, 2, 3})
	before := append([]item[int64](nil), h.items...)

	require.ErrorIs(t, h.DecreaseKey(1, 50), ErrKeyIncrease)
	require.Equal(t, before, h.items, "heap must stay untouched")
}

func TestDecreaseKey_NotInHeap(t *testing.T) {
	h := Build([]int64{1, 2, 3})
	v, _, _ := h.ExtractMin()

	require.ErrorIs(t, h.DecreaseKey(v, 0), ErrNotInHeap)
	require.ErrorIs(t, h.DecreaseKey(-1, 0), ErrNotInHeap)
	require.ErrorIs(t, h.DecreaseKey(3, 0), ErrNotInHeap)
	checkInvariants(t, h)
}

func TestContains_OutOfRange(t *testing.T) {
	h := Build([]int{1})
	require.False(t, h.Contains(-1))
	require.False(t, h.Contains(1))
	_, ok := h.Key(7)
	require.False(t, ok)
}

func TestSiftDown_EqualChildrenDoNotSwap(t *testing.T) {
	h := Build([]int{4, 4, 4})
	checkInvariants(t, h)
	// with all keys equal, heapify must leave the identity layout
	for v := 0; v < 3; v++ {
		require.Equal(t, v, h.pos[v])
	}
}

// TestRandomOperations interleaves extractions and decrease-keys and checks
// the invariants after every step.
func TestRandomOperations(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const n = 200
	keys := make([]float64, n)
	for i := range keys {
		keys[i] = r.Float64() * 1000
	}
	h := Build(keys)
	checkInvariants(t, h)

	last := 0.0
	for h.Len() > 0 {
		if r.Intn(3) == 0 {
			v := r.Intn(n)
			if cur, ok := h.Key(v); ok {
				// never decrease below the last extracted key, as Dijkstra guarantees
				next := last + (cur-last)*r.Float64()
				require.NoError(t, h.DecreaseKey(v, next))
				checkInvariants(t, h)
			}
			continue
		}
		_, k, ok := h.ExtractMin()
		require.True(t, ok)
		require.GreaterOrEqual(t, k, last)
		last = k
		checkInvariants(t, h)
	}
}
