package uninformed

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/search"
)

// walker encapsulates the mutable state of one blind search run.
type walker[S comparable] struct {
	problem   search.Problem[S]
	traversal Traversal
	ws        *search.Workspace[S]
	trace     search.Tracer
}

// ConfigSearch searches from start for states satisfying p.GoalTest.
//
// OPEN starts as [start]. Each round pops the head, marks it CLOSED and
// goal-tests it; on success One returns immediately while All records the path
// and keeps scanning. The node is then expanded, already-seen successors are
// dropped, and the survivors are appended (BFS) or prepended (DFS) to OPEN.
//
// When OPEN empties without a goal the Result has Found == false.
func ConfigSearch[S comparable](
	p search.Problem[S],
	start S,
	traversal Traversal,
	solution SolutionMode,
	opts ...search.Option,
) (search.Result[S], error) {
	if err := p.Validate(false, false); err != nil {
		return search.Result[S]{}, err
	}
	if traversal != BFS && traversal != DFS {
		return search.Result[S]{}, ErrUnknownTraversal
	}
	if solution != One && solution != All {
		return search.Result[S]{}, ErrUnknownSolutionMode
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return search.Result[S]{}, err
	}

	w := newWalker(p, traversal, search.NewTracer(o.Logger, "config-"+traversal.String()))

	return w.run(start, solution), nil
}

// PlanningSearch searches from start for the exact state goal. Only
// p.MoveGen is required.
func PlanningSearch[S comparable](
	p search.Problem[S],
	start, goal S,
	traversal Traversal,
	opts ...search.Option,
) (search.Result[S], error) {
	if p.MoveGen == nil {
		return search.Result[S]{}, search.ErrNilMoveGen
	}
	if traversal != BFS && traversal != DFS {
		return search.Result[S]{}, ErrUnknownTraversal
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return search.Result[S]{}, err
	}

	plan := search.Problem[S]{
		MoveGen:  p.MoveGen,
		GoalTest: func(s S) bool { return s == goal },
	}
	w := newWalker(plan, traversal, search.NewTracer(o.Logger, "planning-"+traversal.String()))

	return w.run(start, One), nil
}

func newWalker[S comparable](p search.Problem[S], t Traversal, tr search.Tracer) *walker[S] {
	var f search.Frontier
	if t == DFS {
		f = search.NewLIFO()
	} else {
		f = search.NewFIFO()
	}

	return &walker[S]{
		problem:   p,
		traversal: t,
		ws:        search.NewWorkspace[S](f),
		trace:     tr,
	}
}

// run processes OPEN until a goal (One) or exhaustion.
func (w *walker[S]) run(start S, solution SolutionMode) search.Result[S] {
	w.ws.Open(start, search.NoParent, 0, 0)
	var solutions [][]S
	for {
		id, ok := w.ws.Next()
		if !ok {
			break
		}
		w.ws.Close(id)
		node := *w.ws.Node(id)
		w.trace.Pop(node.State, node.Depth, node.G, w.ws.OpenLen())

		if w.problem.GoalTest(node.State) {
			if solution == One {
				res := w.ws.Found(id)
				w.trace.Done(true, res.Expanded, res.Generated)
				return res
			}
			solutions = append(solutions, w.ws.ReconstructPath(id))
			w.trace.Event("solution", zap.Int("count", len(solutions)))
		}

		w.enqueue(id, node, w.ws.Expand(id, w.problem.MoveGen))
	}

	res := w.ws.Failed()
	if len(solutions) > 0 {
		res.Found = true
		res.Path = solutions[0]
		res.Solutions = solutions
		res.Cost = float64(len(solutions[0]) - 1)
		res.Best = solutions[0][len(solutions[0])-1]
		res.BestPath = solutions[0]
	}
	w.trace.Done(res.Found, res.Expanded, res.Generated)

	return res
}

// enqueue filters children against OPEN ∪ CLOSED and queues the survivors.
// For DFS the batch is pushed in reverse so the first child pops first,
// exactly as if the batch had been prepended to OPEN.
func (w *walker[S]) enqueue(parent int, node search.Node[S], children []S) {
	fresh := w.ws.RemoveSeen(children)
	g := node.G + 1
	if w.traversal == DFS {
		for i := len(fresh) - 1; i >= 0; i-- {
			w.ws.Open(fresh[i], parent, g, g)
		}
		return
	}
	for _, c := range fresh {
		w.ws.Open(c, parent, g, g)
	}
}
