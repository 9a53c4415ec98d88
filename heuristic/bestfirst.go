package heuristic

import (
	"github.com/katalvlaran/lvsearch/search"
)

// BestFirstSearch always expands the globally most promising unexpanded node.
// Successors already in OPEN or CLOSED are dropped.
func BestFirstSearch[S comparable](p search.Problem[S], start S, opts ...search.Option) (search.Result[S], error) {
	if err := p.Validate(true, false); err != nil {
		return search.Result[S]{}, err
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return search.Result[S]{}, err
	}
	tr := search.NewTracer(o.Logger, "best-first")

	ws := search.NewWorkspace[S](search.NewPriority(o.Objective))
	ws.Open(start, search.NoParent, 0, p.Heuristic(start))
	for {
		id, ok := ws.Next()
		if !ok {
			break
		}
		ws.Close(id)
		node := *ws.Node(id)
		tr.Pop(node.State, node.Depth, node.F, ws.OpenLen())

		if p.GoalTest(node.State) {
			res := ws.Found(id)
			tr.Done(true, res.Expanded, res.Generated)
			return res, nil
		}

		g := node.G + 1
		for _, c := range ws.RemoveSeen(ws.Expand(id, p.MoveGen)) {
			ws.Open(c, id, g, p.Heuristic(c))
		}
	}

	res := ws.Failed()
	tr.Done(false, res.Expanded, res.Generated)

	return res, nil
}

// HillClimbing greedily follows improving successors. The queue is seeded
// with start; every popped node contributes only the successors that score
// strictly better than itself. When the queue runs dry the search stops at
// a local optimum, reported in Best/BestScore/BestPath with Found == false.
func HillClimbing[S comparable](p search.Problem[S], start S, opts ...search.Option) (search.Result[S], error) {
	if err := p.Validate(true, false); err != nil {
		return search.Result[S]{}, err
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return search.Result[S]{}, err
	}
	tr := search.NewTracer(o.Logger, "hill-climbing")

	ws := search.NewWorkspace[S](search.NewPriority(o.Objective))
	best := ws.Open(start, search.NoParent, 0, p.Heuristic(start))
	for {
		id, ok := ws.Next()
		if !ok {
			break
		}
		ws.Close(id)
		node := *ws.Node(id)
		tr.Pop(node.State, node.Depth, node.F, ws.OpenLen())
		if o.Objective.Better(node.F, ws.Node(best).F) {
			best = id
		}

		if p.GoalTest(node.State) {
			res := ws.Found(id)
			tr.Done(true, res.Expanded, res.Generated)
			return res, nil
		}

		g := node.G + 1
		for _, c := range ws.RemoveSeen(ws.Expand(id, p.MoveGen)) {
			if h := p.Heuristic(c); o.Objective.Better(h, node.F) {
				ws.Open(c, id, g, h)
			}
		}
	}

	res := ws.Failed()
	b := ws.Node(best)
	res.Best, res.BestScore, res.BestPath = b.State, b.F, ws.ReconstructPath(best)
	tr.Done(false, res.Expanded, res.Generated)

	return res, nil
}
