package heuristic

import (
	"fmt"

	"github.com/hashicorp/golang-lru/v2/simplelru"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/search"
)

// TabuSearch walks a single trajectory for numEpochs epochs. Each epoch it
// moves to the best neighbor that passes allowed and is not on the tabu list,
// even if that neighbor is worse than the current state. The tabu list holds
// the last tenure visited states; the oldest entry is evicted once it is full.
//
// The run ends early on a goal (Found, Path = trajectory) or when no
// admissible neighbor remains. A nil allowed admits every neighbor.
// Arguments are checked before start is goal-tested, so numEpochs <= 0 fails
// with ErrBadEpochs even when start is a goal.
func TabuSearch[S comparable](
	p search.Problem[S],
	start S,
	allowed Allowed[S],
	numEpochs, tenure int,
	opts ...search.Option,
) (search.Result[S], error) {
	if err := p.Validate(true, false); err != nil {
		return search.Result[S]{}, err
	}
	if numEpochs <= 0 {
		return search.Result[S]{}, fmt.Errorf("%w: numEpochs=%d", ErrBadEpochs, numEpochs)
	}
	if tenure <= 0 {
		return search.Result[S]{}, fmt.Errorf("%w: %d", ErrBadTenure, tenure)
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return search.Result[S]{}, err
	}
	if allowed == nil {
		allowed = func(n []S) []S { return n }
	}
	tr := search.NewTracer(o.Logger, "tabu")

	tabu, err := simplelru.NewLRU[S, struct{}](tenure, nil)
	if err != nil {
		return search.Result[S]{}, fmt.Errorf("%w: %v", ErrBadTenure, err)
	}

	run := search.NewTrajectory(start, p.Heuristic(start), o.Objective)
	tabu.Add(start, struct{}{})
	if p.GoalTest(start) {
		return run.Found(), nil
	}

	for epoch := 1; epoch <= numEpochs; epoch++ {
		neighbors := run.Expand(p.MoveGen)
		candidates := allowed(neighbors)
		admissible := make([]S, 0, len(candidates))
		for _, c := range candidates {
			if !tabu.Contains(c) {
				admissible = append(admissible, c)
			}
		}
		if len(admissible) == 0 {
			tr.Event("stuck", zap.Int("epoch", epoch), zap.Int("neighbors", len(neighbors)))
			break
		}

		i, score := argBest(admissible, p.Heuristic, o.Objective)
		run.Move(admissible[i], score)
		run.SetEpochs(epoch)
		if evicted := tabu.Add(admissible[i], struct{}{}); evicted {
			tr.Event("tabu evict", zap.Int("epoch", epoch))
		}
		tr.Event("move", zap.Int("epoch", epoch), zap.Any("state", admissible[i]), zap.Float64("score", score))
		o.Epoch(epoch, score, run.BestScore())

		if p.GoalTest(admissible[i]) {
			res := run.Found()
			tr.Done(true, res.Expanded, res.Generated)
			return res, nil
		}
	}

	res := run.Failed()
	tr.Done(false, res.Expanded, res.Generated)

	return res, nil
}
