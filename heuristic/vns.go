package heuristic

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/search"
)

// VariableNeighborhoodSearch walks a trajectory for at most maxEpochs epochs
// over a list of alternative successor generators.
//
// Each epoch queries neighborhoods[k] for the current state. If its best
// neighbor improves on the current state the search moves there and resets
// k to 0; otherwise it tries k+1. Once every neighborhood has failed to
// improve, the search shakes: it jumps to a random neighbor drawn from the
// neighbors generated in that cycle and starts again from k = 0.
//
// p.MoveGen is not used; the neighborhoods replace it. Arguments are checked
// before start is goal-tested, so maxEpochs <= 0 fails with ErrBadEpochs even
// when start is a goal.
func VariableNeighborhoodSearch[S comparable](
	p search.Problem[S],
	start S,
	neighborhoods []Neighborhood[S],
	maxEpochs int,
	opts ...search.Option,
) (search.Result[S], error) {
	if p.GoalTest == nil {
		return search.Result[S]{}, search.ErrNilGoalTest
	}
	if p.Heuristic == nil {
		return search.Result[S]{}, search.ErrNilHeuristic
	}
	if len(neighborhoods) == 0 {
		return search.Result[S]{}, ErrNoNeighborhoods
	}
	for i, n := range neighborhoods {
		if n == nil {
			return search.Result[S]{}, fmt.Errorf("%w: neighborhood %d is nil", ErrNoNeighborhoods, i)
		}
	}
	if maxEpochs <= 0 {
		return search.Result[S]{}, fmt.Errorf("%w: maxEpochs=%d", ErrBadEpochs, maxEpochs)
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return search.Result[S]{}, err
	}
	tr := search.NewTracer(o.Logger, "vns")
	rng := search.NewRand(o.Seed)

	run := search.NewTrajectory(start, p.Heuristic(start), o.Objective)
	if p.GoalTest(start) {
		return run.Found(), nil
	}

	k := 0
	var pool []S // neighbors seen since the last move, shake candidates
	for epoch := 1; epoch <= maxEpochs; epoch++ {
		run.SetEpochs(epoch)
		neighbors := run.Expand(neighborhoods[k])
		pool = append(pool, neighbors...)

		i, score := argBest(neighbors, p.Heuristic, o.Objective)
		switch {
		case i >= 0 && o.Objective.Better(score, run.CurrentScore()):
			run.Move(neighbors[i], score)
			tr.Event("improve", zap.Int("epoch", epoch), zap.Int("neighborhood", k), zap.Float64("score", score))
			k, pool = 0, pool[:0]
		case k+1 < len(neighborhoods):
			k++
			o.Epoch(epoch, run.CurrentScore(), run.BestScore())
			continue
		case len(pool) == 0:
			tr.Event("stuck", zap.Int("epoch", epoch))
			res := run.Failed()
			tr.Done(false, res.Expanded, res.Generated)
			return res, nil
		default:
			next := search.Pick(rng, pool)
			run.Move(next, p.Heuristic(next))
			tr.Event("shake", zap.Int("epoch", epoch), zap.Float64("score", run.CurrentScore()))
			k, pool = 0, pool[:0]
		}
		o.Epoch(epoch, run.CurrentScore(), run.BestScore())

		if p.GoalTest(run.Current()) {
			res := run.Found()
			tr.Done(true, res.Expanded, res.Generated)
			return res, nil
		}
	}

	res := run.Failed()
	tr.Done(false, res.Expanded, res.Generated)

	return res, nil
}
