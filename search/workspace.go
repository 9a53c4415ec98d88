package search

// Workspace is the explicit search context of a single engine call: the
// node arena, the OPEN frontier and a hash index from state to node.
// CLOSED is the set of nodes whose Status is Closed.
//
// A Workspace is not safe for concurrent use; engines allocate one per call.
type Workspace[S comparable] struct {
	tree     *Tree[S]
	frontier Frontier
	index    map[S]int

	open, closed int
	expanded     int
	generated    int
}

// NewWorkspace returns an empty Workspace around the given frontier.
func NewWorkspace[S comparable](f Frontier) *Workspace[S] {
	return &Workspace[S]{
		tree:     NewTree[S](64),
		frontier: f,
		index:    make(map[S]int, 64),
	}
}

// Tree exposes the node arena.
func (w *Workspace[S]) Tree() *Tree[S] { return w.tree }

// Frontier exposes the OPEN list.
func (w *Workspace[S]) Frontier() Frontier { return w.frontier }

// Node returns node id.
func (w *Workspace[S]) Node(id int) *Node[S] { return w.tree.Node(id) }

// Lookup returns the node index recorded for state.
func (w *Workspace[S]) Lookup(state S) (int, bool) {
	id, ok := w.index[state]

	return id, ok
}

// Discover records state as an OPEN node without queueing it. Engines that
// manage their own agenda (beam search) use it directly.
func (w *Workspace[S]) Discover(state S, parent int, g, f float64) int {
	id := w.tree.Add(state, parent, g, f)
	w.tree.Node(id).Status = Open
	w.index[state] = id
	w.open++

	return id
}

// Open records state as an OPEN node and pushes it with key f.
func (w *Workspace[S]) Open(state S, parent int, g, f float64) int {
	id := w.Discover(state, parent, g, f)
	w.frontier.Push(id, f)

	return id
}

// Requeue pushes an already-OPEN node again with its current F value.
// The previous frontier entry becomes stale.
func (w *Workspace[S]) Requeue(id int) {
	w.frontier.Push(id, w.tree.Node(id).F)
}

// Next pops the next frontier entry.
func (w *Workspace[S]) Next() (int, bool) { return w.frontier.Pop() }

// Close moves node id from OPEN to CLOSED. Closing twice is a no-op.
func (w *Workspace[S]) Close(id int) {
	n := w.tree.Node(id)
	if n.Status == Closed {
		return
	}
	if n.Status == Open {
		w.open--
	}
	n.Status = Closed
	w.closed++
}

// IsClosed reports whether node id has been expanded.
func (w *Workspace[S]) IsClosed(id int) bool { return w.tree.Node(id).Status == Closed }

// Expand calls moveGen on node id and updates the expansion counters.
func (w *Workspace[S]) Expand(id int, moveGen func(S) []S) []S {
	children := moveGen(w.tree.Node(id).State)
	w.expanded++
	w.generated += len(children)

	return children
}

// RemoveSeen returns the candidates that are in neither OPEN nor CLOSED,
// dropping repeats inside the batch as well. Order is preserved.
func (w *Workspace[S]) RemoveSeen(candidates []S) []S {
	if len(candidates) == 0 {
		return nil
	}
	out := make([]S, 0, len(candidates))
	var batch map[S]struct{}
	if len(candidates) > 1 {
		batch = make(map[S]struct{}, len(candidates))
	}
	for _, c := range candidates {
		if _, seen := w.index[c]; seen {
			continue
		}
		if batch != nil {
			if _, dup := batch[c]; dup {
				continue
			}
			batch[c] = struct{}{}
		}
		out = append(out, c)
	}

	return out
}

// ReconstructPath returns the states from the start to node id.
func (w *Workspace[S]) ReconstructPath(id int) []S { return w.tree.Path(id) }

// OpenLen returns the number of OPEN nodes.
func (w *Workspace[S]) OpenLen() int { return w.open }

// ClosedLen returns the number of CLOSED nodes.
func (w *Workspace[S]) ClosedLen() int { return w.closed }

// Expanded returns how many nodes were expanded.
func (w *Workspace[S]) Expanded() int { return w.expanded }

// Generated returns how many successors MoveGen produced in total.
func (w *Workspace[S]) Generated() int { return w.generated }

// Found builds a successful Result for goal node id.
func (w *Workspace[S]) Found(id int) Result[S] {
	n := w.tree.Node(id)
	path := w.tree.Path(id)

	return Result[S]{
		Path:      path,
		Found:     true,
		Cost:      n.G,
		Best:      n.State,
		BestScore: n.F,
		BestPath:  path,
		Expanded:  w.expanded,
		Generated: w.generated,
	}
}

// Failed builds the failure Result carrying the counters.
func (w *Workspace[S]) Failed() Result[S] {
	return Result[S]{
		Expanded:  w.expanded,
		Generated: w.generated,
	}
}

// Forget drops an OPEN node from the state index so the state can be
// rediscovered later. Beam search uses it for nodes pruned from the beam.
// CLOSED nodes are never forgotten.
func (w *Workspace[S]) Forget(id int) {
	n := w.tree.Node(id)
	if n.Status != Open {
		return
	}
	w.open--
	n.Status = Fresh
	if cur, ok := w.index[n.State]; ok && cur == id {
		delete(w.index, n.State)
	}
}
