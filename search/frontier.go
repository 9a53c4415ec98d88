package search

import "container/heap"

// Frontier is the OPEN list. The ordering discipline belongs to the
// algorithm, not to the nodes: FIFO for breadth-first, LIFO for
// depth-first, Priority for best-first and A*.
type Frontier interface {
	// Push adds node id with the given priority key (ignored by FIFO/LIFO).
	Push(id int, key float64)
	// Pop removes and returns the next node id; ok is false when empty.
	Pop() (id int, ok bool)
	// Len returns the number of queued entries.
	Len() int
}

// FIFO is a first-in first-out frontier.
type FIFO struct {
	items []int
	head  int
}

// NewFIFO returns an empty FIFO frontier.
func NewFIFO() *FIFO { return &FIFO{} }

// Push appends id at the tail.
func (q *FIFO) Push(id int, _ float64) { q.items = append(q.items, id) }

// Pop removes the head.
func (q *FIFO) Pop() (int, bool) {
	if q.head >= len(q.items) {
		return 0, false
	}
	id := q.items[q.head]
	q.head++
	// compact once the consumed prefix dominates
	if q.head > 64 && q.head*2 > len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}

	return id, true
}

// Len returns the number of queued ids.
func (q *FIFO) Len() int { return len(q.items) - q.head }

// LIFO is a last-in first-out frontier.
type LIFO struct {
	items []int
}

// NewLIFO returns an empty LIFO frontier.
func NewLIFO() *LIFO { return &LIFO{} }

// Push places id on top of the stack.
func (s *LIFO) Push(id int, _ float64) { s.items = append(s.items, id) }

// Pop removes the top of the stack.
func (s *LIFO) Pop() (int, bool) {
	n := len(s.items)
	if n == 0 {
		return 0, false
	}
	id := s.items[n-1]
	s.items = s.items[:n-1]

	return id, true
}

// Len returns the stack height.
func (s *LIFO) Len() int { return len(s.items) }

// Priority is a heap-ordered frontier. Entries with the better key (per
// Objective) pop first; equal keys pop in insertion order, which keeps
// best-first engines deterministic.
//
// Stale entries are allowed: callers that lower a node's key simply push it
// again and skip the outdated entry when it surfaces (lazy decrease-key).
type Priority struct {
	pq  entryPQ
	seq uint64
}

// NewPriority returns an empty priority frontier ordered by obj.
func NewPriority(obj Objective) *Priority {
	p := &Priority{pq: entryPQ{obj: obj}}
	heap.Init(&p.pq)

	return p
}

// Push inserts id with priority key.
func (p *Priority) Push(id int, key float64) {
	p.seq++
	heap.Push(&p.pq, entry{id: id, key: key, seq: p.seq})
}

// Pop removes the best entry.
func (p *Priority) Pop() (int, bool) {
	if p.pq.Len() == 0 {
		return 0, false
	}
	e := heap.Pop(&p.pq).(entry)

	return e.id, true
}

// Peek returns the best entry without removing it.
func (p *Priority) Peek() (id int, key float64, ok bool) {
	if p.pq.Len() == 0 {
		return 0, 0, false
	}
	e := p.pq.items[0]

	return e.id, e.key, true
}

// Len returns the number of entries, stale ones included.
func (p *Priority) Len() int { return p.pq.Len() }

// entry is one heap slot.
type entry struct {
	id  int
	key float64
	seq uint64
}

// entryPQ implements heap.Interface over entries.
type entryPQ struct {
	items []entry
	obj   Objective
}

func (pq entryPQ) Len() int { return len(pq.items) }

func (pq entryPQ) Less(i, j int) bool {
	a, b := pq.items[i], pq.items[j]
	if a.key != b.key {
		return pq.obj.Better(a.key, b.key)
	}

	return a.seq < b.seq
}

func (pq entryPQ) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

func (pq *entryPQ) Push(x interface{}) { pq.items = append(pq.items, x.(entry)) }

func (pq *entryPQ) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
