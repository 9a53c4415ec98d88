package search

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors shared by all engines.
var (
	// ErrNilMoveGen is returned when a Problem has no successor generator.
	ErrNilMoveGen = errors.New("search: MoveGen is nil")

	// ErrNilGoalTest is returned when a Problem has no goal predicate.
	ErrNilGoalTest = errors.New("search: GoalTest is nil")

	// ErrNilHeuristic is returned by engines that rank states but got no heuristic.
	ErrNilHeuristic = errors.New("search: Heuristic is nil")

	// ErrNilCost is returned by cost-aware engines that got no edge cost function.
	ErrNilCost = errors.New("search: Cost is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownObjective is returned by ParseObjective for unrecognized names.
	ErrUnknownObjective = errors.New("search: unknown objective")
)

//go:generate mockgen -package=searchmock -destination=searchmock/agent.go github.com/katalvlaran/lvsearch/search Agent,Estimator

// Agent is the callback surface every domain implements.
//
// MoveGen returns the finite list of successors of a state (possibly empty).
// It must terminate; the engines have no timeout of their own.
// GoalTest reports whether a state solves the problem.
type Agent[S comparable] interface {
	MoveGen(state S) []S
	GoalTest(state S) bool
}

// Estimator is implemented by agents that can score states.
// Lower is better unless the engine runs with Maximize.
type Estimator[S comparable] interface {
	Heuristic(state S) float64
}

// Coster is implemented by agents with non-uniform edge costs.
type Coster[S comparable] interface {
	Cost(from, to S) float64
}

// Problem is the capability set handed to an engine for one call.
// Engines validate the fields they need and fail fast otherwise.
type Problem[S comparable] struct {
	MoveGen   func(state S) []S
	GoalTest  func(state S) bool
	Heuristic func(state S) float64
	Cost      func(from, to S) float64
}

// FromAgent lifts an Agent into a Problem. Heuristic and Cost are picked up
// when a implements Estimator or Coster.
func FromAgent[S comparable](a Agent[S]) Problem[S] {
	p := Problem[S]{
		MoveGen:  a.MoveGen,
		GoalTest: a.GoalTest,
	}
	if e, ok := a.(Estimator[S]); ok {
		p.Heuristic = e.Heuristic
	}
	if c, ok := a.(Coster[S]); ok {
		p.Cost = c.Cost
	}

	return p
}

// Validate checks that MoveGen and GoalTest are present, plus the heuristic
// and cost capabilities when requested.
func (p Problem[S]) Validate(needHeuristic, needCost bool) error {
	switch {
	case p.MoveGen == nil:
		return ErrNilMoveGen
	case p.GoalTest == nil:
		return ErrNilGoalTest
	case needHeuristic && p.Heuristic == nil:
		return ErrNilHeuristic
	case needCost && p.Cost == nil:
		return ErrNilCost
	}

	return nil
}

// Objective selects the polarity of heuristic scores.
type Objective int

const (
	// Minimize treats lower scores as better (the default).
	Minimize Objective = iota

	// Maximize treats higher scores as better.
	Maximize
)

// Better reports whether score a is strictly better than score b.
func (o Objective) Better(a, b float64) bool {
	if o == Maximize {
		return a > b
	}

	return a < b
}

// Delta returns how much worse `to` is than `from`: positive means a
// worsening move, negative an improvement.
func (o Objective) Delta(from, to float64) float64 {
	if o == Maximize {
		return from - to
	}

	return to - from
}

// String returns "minimize" or "maximize".
func (o Objective) String() string {
	if o == Maximize {
		return "maximize"
	}

	return "minimize"
}

// ParseObjective maps "min"/"minimize" and "max"/"maximize" (any case) to an
// Objective. The empty string yields Minimize.
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "min", "minimize":
		return Minimize, nil
	case "max", "maximize":
		return Maximize, nil
	default:
		return Minimize, fmt.Errorf("%w: %q", ErrUnknownObjective, s)
	}
}

// Result is the outcome of a search. Engines never report "no solution"
// through an error: Found is false and Path is nil instead.
type Result[S comparable] struct {
	// Path lists the states from start to goal; nil when nothing was found.
	Path []S

	// Found reports whether a goal state was reached.
	Found bool

	// Solutions holds every goal path in discovery order (ConfigSearch "all").
	Solutions [][]S

	// Cost is the accumulated g-value of the goal node (edge count for
	// unit-cost engines).
	Cost float64

	// Best is the best-seen state of a local search, with its score and
	// trajectory. For systematic engines it mirrors the goal when found.
	Best      S
	BestScore float64
	BestPath  []S

	// Expanded counts MoveGen calls; Generated counts successors produced.
	Expanded  int
	Generated int

	// Epochs counts completed iterations of epoch-driven engines.
	Epochs int

	// Bound is the depth bound that produced the answer (DFID only).
	Bound int
}

// Solved reports whether the search reached a goal.
func (r Result[S]) Solved() bool { return r.Found }

// Len returns the number of states on the solution path.
func (r Result[S]) Len() int { return len(r.Path) }
