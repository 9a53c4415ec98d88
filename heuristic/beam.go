package heuristic

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/search"
)

// BeamSearch expands the search one layer at a time, keeping only the best
// beamWidth nodes of each layer. maxEpochs caps the number of layers; 0
// means no cap (the run still ends when the beam empties).
//
// Every kept node is goal-tested, closed and expanded; its unseen successors
// form the next layer. Nodes cut from a layer are forgotten so later layers
// may rediscover them.
func BeamSearch[S comparable](
	p search.Problem[S],
	start S,
	beamWidth, maxEpochs int,
	opts ...search.Option,
) (search.Result[S], error) {
	if err := p.Validate(true, false); err != nil {
		return search.Result[S]{}, err
	}
	if beamWidth <= 0 {
		return search.Result[S]{}, fmt.Errorf("%w: %d", ErrBadBeamWidth, beamWidth)
	}
	if maxEpochs < 0 {
		return search.Result[S]{}, fmt.Errorf("%w: maxEpochs=%d", ErrBadEpochs, maxEpochs)
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return search.Result[S]{}, err
	}
	tr := search.NewTracer(o.Logger, "beam")

	// The workspace frontier stays empty: the beam slice is the agenda.
	ws := search.NewWorkspace[S](search.NewFIFO())
	best := ws.Discover(start, search.NoParent, 0, p.Heuristic(start))
	beam := []int{best}
	epoch := 0
	for len(beam) > 0 && (maxEpochs == 0 || epoch < maxEpochs) {
		epoch++
		beam = prune(ws, beam, beamWidth, o.Objective)
		tr.Event("layer", zap.Int("epoch", epoch), zap.Int("width", len(beam)))

		var next []int
		for _, id := range beam {
			ws.Close(id)
			node := *ws.Node(id)
			tr.Pop(node.State, node.Depth, node.F, len(beam))
			if o.Objective.Better(node.F, ws.Node(best).F) {
				best = id
			}
			if p.GoalTest(node.State) {
				res := ws.Found(id)
				res.Epochs = epoch
				tr.Done(true, res.Expanded, res.Generated)
				return res, nil
			}

			g := node.G + 1
			for _, c := range ws.RemoveSeen(ws.Expand(id, p.MoveGen)) {
				next = append(next, ws.Discover(c, id, g, p.Heuristic(c)))
			}
		}
		o.Epoch(epoch, layerBest(ws, next, o.Objective), ws.Node(best).F)
		beam = next
	}

	res := ws.Failed()
	res.Epochs = epoch
	b := ws.Node(best)
	res.Best, res.BestScore, res.BestPath = b.State, b.F, ws.ReconstructPath(best)
	tr.Done(false, res.Expanded, res.Generated)

	return res, nil
}

// prune sorts a layer by score (stable, so MoveGen order breaks ties) and
// forgets everything past width.
func prune[S comparable](ws *search.Workspace[S], layer []int, width int, obj search.Objective) []int {
	sort.SliceStable(layer, func(i, j int) bool {
		return obj.Better(ws.Node(layer[i]).F, ws.Node(layer[j]).F)
	})
	if len(layer) <= width {
		return layer
	}
	for _, id := range layer[width:] {
		ws.Forget(id)
	}

	return layer[:width]
}

// layerBest returns the best score in a layer, or NaN-free 0 for an empty one.
func layerBest[S comparable](ws *search.Workspace[S], layer []int, obj search.Objective) float64 {
	if len(layer) == 0 {
		return 0
	}
	score := ws.Node(layer[0]).F
	for _, id := range layer[1:] {
		if f := ws.Node(id).F; obj.Better(f, score) {
			score = f
		}
	}

	return score
}
