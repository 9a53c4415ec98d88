package search

// NoParent marks the root of a Tree.
const NoParent = -1

// Status tracks which of OPEN/CLOSED a node currently belongs to.
type Status uint8

const (
	// Fresh nodes were recorded but never queued (local-search trajectories).
	Fresh Status = iota
	// Open nodes are waiting in the frontier.
	Open
	// Closed nodes have been expanded.
	Closed
)

// Node wraps a domain state with its search bookkeeping.
// Parent is an index into the owning Tree, never a pointer, so the parent
// graph cannot form ownership cycles.
type Node[S comparable] struct {
	State  S
	Parent int
	G      float64 // accumulated cost from the start
	F      float64 // priority score
	Depth  int
	Status Status
}

// Tree is an append-only arena of Nodes addressed by index.
// The zero value is ready to use.
type Tree[S comparable] struct {
	nodes []Node[S]
}

// NewTree returns a Tree with room for capacity nodes.
func NewTree[S comparable](capacity int) *Tree[S] {
	if capacity < 0 {
		capacity = 0
	}

	return &Tree[S]{nodes: make([]Node[S], 0, capacity)}
}

// Add appends a node under parent (NoParent for a root) and returns its index.
// Depth is derived from the parent.
func (t *Tree[S]) Add(state S, parent int, g, f float64) int {
	depth := 0
	if parent != NoParent {
		depth = t.nodes[parent].Depth + 1
	}
	t.nodes = append(t.nodes, Node[S]{
		State:  state,
		Parent: parent,
		G:      g,
		F:      f,
		Depth:  depth,
	})

	return len(t.nodes) - 1
}

// Node returns a pointer to node id. The pointer is invalidated by the next Add.
func (t *Tree[S]) Node(id int) *Node[S] { return &t.nodes[id] }

// Len returns the number of nodes in the arena.
func (t *Tree[S]) Len() int { return len(t.nodes) }

// Reparent moves node id under parent with new g and f values.
// Callers must only pick a parent whose own chain does not pass through id;
// A* guarantees this because relaxation only fires on a strictly smaller g.
func (t *Tree[S]) Reparent(id, parent int, g, f float64) {
	n := &t.nodes[id]
	n.Parent = parent
	n.G = g
	n.F = f
	n.Depth = t.nodes[parent].Depth + 1
}

// Path returns the states from the root to node id.
// It panics if the parent chain is longer than the arena, which can only
// happen if the no-cycle invariant was broken.
func (t *Tree[S]) Path(id int) []S {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}
	// build reversed path
	path := make([]S, 0, t.nodes[id].Depth+1)
	steps := 0
	for cur := id; cur != NoParent; cur = t.nodes[cur].Parent {
		if steps > len(t.nodes) {
			panic("search: parent cycle detected during path reconstruction")
		}
		path = append(path, t.nodes[cur].State)
		steps++
	}
	// reverse to get start → node
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
