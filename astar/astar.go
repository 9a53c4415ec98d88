package astar

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/search"
)

// Search runs weighted A* from start and returns the first goal popped from
// OPEN. Result.Cost is the g value of that goal.
//
// Requires p.MoveGen, p.GoalTest, p.Heuristic and p.Cost. Options used:
// WithWeights, WithRelaxation, WithLogger. The objective is always
// minimization of f; WithObjective is ignored.
func Search[S comparable](p search.Problem[S], start S, opts ...search.Option) (search.Result[S], error) {
	if err := p.Validate(true, true); err != nil {
		return search.Result[S]{}, err
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return search.Result[S]{}, err
	}

	r := &runner[S]{
		p:  p,
		o:  o,
		ws: search.NewWorkspace[S](search.NewPriority(search.Minimize)),
		tr: search.NewTracer(o.Logger, "astar"),
	}

	return r.run(start)
}

// runner holds the per-call state of one Search.
type runner[S comparable] struct {
	p  search.Problem[S]
	o  search.Options
	ws *search.Workspace[S]
	tr search.Tracer

	// h caches the heuristic per node id; re-parenting only changes g.
	h []float64
}

func (r *runner[S]) f(g, h float64) float64 { return r.o.Alpha*g + r.o.Beta*h }

// open inserts a fresh node and caches its heuristic.
func (r *runner[S]) open(state S, parent int, g float64) int {
	h := r.p.Heuristic(state)
	id := r.ws.Open(state, parent, g, r.f(g, h))
	r.h = append(r.h, h)

	return id
}

// step returns the cost of moving from -> to, rejecting negative values.
func (r *runner[S]) step(from, to S) (float64, error) {
	c := r.p.Cost(from, to)
	if !(c >= 0) {
		return 0, fmt.Errorf("%w: cost(%v, %v) = %v", ErrNegativeCost, from, to, c)
	}

	return c, nil
}

func (r *runner[S]) run(start S) (search.Result[S], error) {
	r.open(start, search.NoParent, 0)

	for {
		id, ok := r.ws.Next()
		if !ok {
			break
		}
		if r.ws.IsClosed(id) {
			// outdated entry left behind by a decrease-key
			continue
		}
		r.ws.Close(id)

		n := r.ws.Node(id)
		state, g := n.State, n.G
		r.tr.Pop(state, n.Depth, n.F, r.ws.OpenLen())

		if r.p.GoalTest(state) {
			res := r.ws.Found(id)
			r.tr.Done(true, res.Expanded, res.Generated)
			return res, nil
		}

		for _, child := range r.ws.Expand(id, r.p.MoveGen) {
			c, err := r.step(state, child)
			if err != nil {
				return search.Result[S]{}, err
			}
			if err := r.offer(id, child, g+c); err != nil {
				return search.Result[S]{}, err
			}
		}
	}

	res := r.ws.Failed()
	r.tr.Done(false, res.Expanded, res.Generated)

	return res, nil
}

// offer records a path of cost g to child through parent.
func (r *runner[S]) offer(parent int, child S, g float64) error {
	cid, seen := r.ws.Lookup(child)
	if !seen {
		r.open(child, parent, g)
		return nil
	}
	cn := r.ws.Node(cid)
	if g >= cn.G {
		return nil
	}

	switch cn.Status {
	case search.Open:
		r.ws.Tree().Reparent(cid, parent, g, r.f(g, r.h[cid]))
		r.ws.Requeue(cid)
	case search.Closed:
		if !r.o.Relaxation {
			return nil
		}
		r.tr.Event("relax",
			zap.Any("state", child),
			zap.Float64("old_g", cn.G),
			zap.Float64("new_g", g),
		)
		r.ws.Tree().Reparent(cid, parent, g, r.f(g, r.h[cid]))
		return r.propagate(cid)
	}

	return nil
}

// propagate pushes an improved g from CLOSED node root down to the nodes
// reachable through it. A CLOSED node is rescanned only if its g dropped
// since its previous rescan within this propagation.
func (r *runner[S]) propagate(root int) error {
	scanned := make(map[int]float64)
	stack := []int{root}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := r.ws.Node(id)
		state, g := n.State, n.G
		if last, ok := scanned[id]; ok && g >= last {
			continue
		}
		scanned[id] = g

		for _, child := range r.ws.Expand(id, r.p.MoveGen) {
			c, err := r.step(state, child)
			if err != nil {
				return err
			}
			ng := g + c
			cid, seen := r.ws.Lookup(child)
			if !seen {
				r.open(child, id, ng)
				continue
			}
			cn := r.ws.Node(cid)
			if ng >= cn.G {
				continue
			}
			r.ws.Tree().Reparent(cid, id, ng, r.f(ng, r.h[cid]))
			switch cn.Status {
			case search.Open:
				r.ws.Requeue(cid)
			case search.Closed:
				stack = append(stack, cid)
			}
		}
	}
	r.tr.Event("propagated", zap.Int("rescanned", len(scanned)))

	return nil
}
