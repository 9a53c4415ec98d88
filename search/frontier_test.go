package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

// drain pops f until empty and returns the ids in pop order.
func drain(f search.Frontier) []int {
	var out []int
	for {
		id, ok := f.Pop()
		if !ok {
			return out
		}
		out = append(out, id)
	}
}

func TestFIFO_Order(t *testing.T) {
	q := search.NewFIFO()
	for i := 0; i < 5; i++ {
		q.Push(i, float64(10-i))
	}
	assert.Equal(t, 5, q.Len())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, drain(q))
	_, ok := q.Pop()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestFIFO_CompactionKeepsOrder(t *testing.T) {
	q := search.NewFIFO()
	next := 0
	var got []int
	// interleave pushes and pops so the consumed prefix gets compacted
	for round := 0; round < 50; round++ {
		for k := 0; k < 4; k++ {
			q.Push(next, 0)
			next++
		}
		for k := 0; k < 3; k++ {
			id, ok := q.Pop()
			require.True(t, ok)
			got = append(got, id)
		}
	}
	got = append(got, drain(q)...)
	require.Len(t, got, next)
	for i, id := range got {
		assert.Equal(t, i, id)
	}
}

func TestLIFO_Order(t *testing.T) {
	s := search.NewLIFO()
	for i := 0; i < 4; i++ {
		s.Push(i, 0)
	}
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []int{3, 2, 1, 0}, drain(s))
	_, ok := s.Pop()
	assert.False(t, ok)
}

func TestPriority_MinimizeWithStableTies(t *testing.T) {
	pq := search.NewPriority(search.Minimize)
	pq.Push(1, 5)
	pq.Push(2, 1)
	pq.Push(3, 5)
	pq.Push(4, 1)
	pq.Push(5, 3)

	id, key, ok := pq.Peek()
	require.True(t, ok)
	assert.Equal(t, 2, id)
	assert.Equal(t, 1.0, key)
	assert.Equal(t, 5, pq.Len(), "Peek must not remove")

	// equal keys pop in insertion order
	assert.Equal(t, []int{2, 4, 5, 1, 3}, drain(pq))
	_, _, ok = pq.Peek()
	assert.False(t, ok)
}

func TestPriority_Maximize(t *testing.T) {
	pq := search.NewPriority(search.Maximize)
	for id, key := range []float64{2, 9, 4, 9} {
		pq.Push(id, key)
	}
	assert.Equal(t, []int{1, 3, 2, 0}, drain(pq))
}

func TestPriority_LazyDecreaseKey(t *testing.T) {
	pq := search.NewPriority(search.Minimize)
	pq.Push(7, 10)
	pq.Push(8, 6)
	pq.Push(7, 2) // improved key, old entry stays behind
	assert.Equal(t, 3, pq.Len())
	assert.Equal(t, []int{7, 8, 7}, drain(pq))
}
