package uninformed

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/search"
)

// DFID runs depth-first iterative deepening: DepthBoundedDFS with bound
// 0, 1, …, maxEpochs-1, returning the first solution found. Result.Bound holds
// the bound that produced it; Expanded and Generated accumulate over all
// rounds.
//
// Deepening stops early when a round cuts nothing off at the bound, since a
// deeper bound cannot reach anything new. maxEpochs < 0 is rejected with
// ErrNegativeBound. Bound 0, which only goal-tests start, always runs, so
// maxEpochs == 0 behaves like 1.
func DFID[S comparable](p search.Problem[S], start S, maxEpochs int, opts ...search.Option) (search.Result[S], error) {
	if err := p.Validate(false, false); err != nil {
		return search.Result[S]{}, err
	}
	if maxEpochs < 0 {
		return search.Result[S]{}, fmt.Errorf("%w: maxEpochs=%d", ErrNegativeBound, maxEpochs)
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return search.Result[S]{}, err
	}
	tr := search.NewTracer(o.Logger, "dfid")

	var total search.Result[S]
	for bound := 0; bound < max(maxEpochs, 1); bound++ {
		res, cutoff := depthBounded(p, start, bound, tr)
		total.Expanded += res.Expanded
		total.Generated += res.Generated
		total.Epochs = bound + 1
		total.Bound = bound
		tr.Event("bound", zap.Int("bound", bound), zap.Bool("found", res.Found), zap.Bool("cutoff", cutoff))
		if res.Found {
			res.Expanded, res.Generated = total.Expanded, total.Generated
			res.Epochs, res.Bound = total.Epochs, bound
			return res, nil
		}
		if !cutoff {
			break
		}
	}
	tr.Done(false, total.Expanded, total.Generated)

	return total, nil
}

// DepthBoundedDFS is one DFID round: depth-first search that never expands a
// node whose depth has reached bound.
func DepthBoundedDFS[S comparable](p search.Problem[S], start S, bound int, opts ...search.Option) (search.Result[S], error) {
	if err := p.Validate(false, false); err != nil {
		return search.Result[S]{}, err
	}
	if bound < 0 {
		return search.Result[S]{}, fmt.Errorf("%w: bound=%d", ErrNegativeBound, bound)
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return search.Result[S]{}, err
	}
	res, _ := depthBounded(p, start, bound, search.NewTracer(o.Logger, "db-dfs"))
	res.Bound = bound

	return res, nil
}

// depthBounded also reports whether any node reached the bound unexpanded
// (cutoff); DFID uses it to stop deepening.
func depthBounded[S comparable](p search.Problem[S], start S, bound int, tr search.Tracer) (search.Result[S], bool) {
	ws := search.NewWorkspace[S](search.NewLIFO())
	ws.Open(start, search.NoParent, 0, 0)
	cutoff := false
	for {
		id, ok := ws.Next()
		if !ok {
			break
		}
		ws.Close(id)
		node := *ws.Node(id)
		tr.Pop(node.State, node.Depth, node.G, ws.OpenLen())

		if p.GoalTest(node.State) {
			return ws.Found(id), cutoff
		}
		if node.Depth >= bound {
			cutoff = true
			continue
		}

		fresh := ws.RemoveSeen(ws.Expand(id, p.MoveGen))
		g := node.G + 1
		for i := len(fresh) - 1; i >= 0; i-- {
			ws.Open(fresh[i], id, g, g)
		}
	}

	return ws.Failed(), cutoff
}
