package stochastic

import (
	"fmt"
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvsearch/search"
)

// acceptFunc decides whether a move with energy change delta is taken in
// epoch i.
type acceptFunc func(rng *rand.Rand, i int, delta float64) bool

// RandomWalk moves to a uniformly random successor every epoch, whatever its
// quality, for at most epochs epochs.
//
// RandomWalk, SimulatedAnnealing and StochasticHillClimbing check their
// arguments before start is goal-tested: epochs <= 0 fails with ErrBadEpochs
// even when start is a goal.
func RandomWalk[S comparable](p search.Problem[S], start S, epochs int, opts ...search.Option) (search.Result[S], error) {
	always := func(*rand.Rand, int, float64) bool { return true }

	return walk(p, start, epochs, "random_walk", always, opts)
}

// SimulatedAnnealing runs Metropolis search for at most epochs epochs with
// temperature cooling per sched.
func SimulatedAnnealing[S comparable](
	p search.Problem[S],
	start S,
	epochs int,
	sched Schedule,
	opts ...search.Option,
) (search.Result[S], error) {
	if err := sched.Validate(); err != nil {
		return search.Result[S]{}, err
	}
	accept := func(rng *rand.Rand, i int, delta float64) bool {
		// epoch i runs at the temperature set after epoch i-1
		return metropolis(rng, delta, sched.At(i-1))
	}

	return walk(p, start, epochs, "simulated_annealing", accept, opts)
}

// StochasticHillClimbing runs Metropolis search at the fixed temperature t.
func StochasticHillClimbing[S comparable](
	p search.Problem[S],
	start S,
	epochs int,
	t float64,
	opts ...search.Option,
) (search.Result[S], error) {
	if !positiveFinite(t) {
		return search.Result[S]{}, fmt.Errorf("%w: t=%v", ErrBadTemperature, t)
	}
	accept := func(rng *rand.Rand, _ int, delta float64) bool {
		return metropolis(rng, delta, t)
	}

	return walk(p, start, epochs, "stochastic_hill_climbing", accept, opts)
}

// metropolis accepts improvements outright and worsening moves with
// probability exp(-delta/t).
func metropolis(rng *rand.Rand, delta, t float64) bool {
	if delta <= 0 {
		return true
	}

	return rng.Float64() < math.Exp(-delta/t)
}

func walk[S comparable](
	p search.Problem[S],
	start S,
	epochs int,
	name string,
	accept acceptFunc,
	opts []search.Option,
) (search.Result[S], error) {
	if err := p.Validate(true, false); err != nil {
		return search.Result[S]{}, err
	}
	if epochs <= 0 {
		return search.Result[S]{}, fmt.Errorf("%w: epochs=%d", ErrBadEpochs, epochs)
	}
	o, err := search.NewOptions(opts...)
	if err != nil {
		return search.Result[S]{}, err
	}
	tr := search.NewTracer(o.Logger, name)
	rng := search.NewRand(o.Seed)

	run := search.NewTrajectory(start, p.Heuristic(start), o.Objective)
	if p.GoalTest(start) {
		return run.Found(), nil
	}

	for i := 1; i <= epochs; i++ {
		neighbors := run.Expand(p.MoveGen)
		if len(neighbors) == 0 {
			tr.Event("dead end", zap.Int("epoch", i))
			break
		}
		run.SetEpochs(i)

		cand := search.Pick(rng, neighbors)
		score := p.Heuristic(cand)
		delta := o.Objective.Delta(run.CurrentScore(), score)
		moved := accept(rng, i, delta)
		if moved {
			run.Move(cand, score)
		}
		if tr.Enabled() {
			tr.Event("epoch",
				zap.Int("epoch", i),
				zap.Float64("delta", delta),
				zap.Bool("accepted", moved),
				zap.Float64("current", run.CurrentScore()),
				zap.Float64("best", run.BestScore()),
			)
		}
		o.Epoch(i, run.CurrentScore(), run.BestScore())

		if moved && p.GoalTest(cand) {
			res := run.Found()
			tr.Done(true, res.Expanded, res.Generated)
			return res, nil
		}
	}

	res := run.Failed()
	tr.Done(false, res.Expanded, res.Generated)

	return res, nil
}
