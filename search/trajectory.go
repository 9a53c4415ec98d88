package search

// Trajectory records the path of a local search: one current state that
// moves every epoch, plus the best state seen so far. States may repeat
// along the trajectory; each move becomes a new arena node whose parent is
// the previous current node, so Path is always a valid move sequence.
//
// The best-seen incumbent only changes on a strictly better score, so it
// never gets worse regardless of which moves are accepted.
type Trajectory[S comparable] struct {
	tree      *Tree[S]
	cur, best int
	obj       Objective

	expanded, generated int
	epochs              int
}

// NewTrajectory starts a trajectory at start with the given score.
func NewTrajectory[S comparable](start S, score float64, obj Objective) *Trajectory[S] {
	t := &Trajectory[S]{tree: NewTree[S](64), obj: obj}
	t.cur = t.tree.Add(start, NoParent, 0, score)
	t.best = t.cur

	return t
}

// Current returns the current state.
func (t *Trajectory[S]) Current() S { return t.tree.Node(t.cur).State }

// CurrentScore returns the score of the current state.
func (t *Trajectory[S]) CurrentScore() float64 { return t.tree.Node(t.cur).F }

// Best returns the best-seen state.
func (t *Trajectory[S]) Best() S { return t.tree.Node(t.best).State }

// BestScore returns the score of the best-seen state.
func (t *Trajectory[S]) BestScore() float64 { return t.tree.Node(t.best).F }

// Expand calls moveGen on the current state and counts the expansion.
func (t *Trajectory[S]) Expand(moveGen func(S) []S) []S {
	children := moveGen(t.Current())
	t.expanded++
	t.generated += len(children)

	return children
}

// Move makes state the current one and reports whether it became the new
// best-seen state.
func (t *Trajectory[S]) Move(state S, score float64) bool {
	g := t.tree.Node(t.cur).G + 1
	t.cur = t.tree.Add(state, t.cur, g, score)
	if t.obj.Better(score, t.tree.Node(t.best).F) {
		t.best = t.cur
		return true
	}

	return false
}

// SetEpochs records how many epochs completed.
func (t *Trajectory[S]) SetEpochs(n int) { t.epochs = n }

// Found builds a successful Result whose Path ends at the current state.
func (t *Trajectory[S]) Found() Result[S] {
	res := t.result()
	res.Found = true
	res.Path = t.tree.Path(t.cur)
	res.Cost = t.tree.Node(t.cur).G

	return res
}

// Failed builds a failure Result that still reports the best-seen state.
func (t *Trajectory[S]) Failed() Result[S] { return t.result() }

func (t *Trajectory[S]) result() Result[S] {
	b := t.tree.Node(t.best)

	return Result[S]{
		Best:      b.State,
		BestScore: b.F,
		BestPath:  t.tree.Path(t.best),
		Expanded:  t.expanded,
		Generated: t.generated,
		Epochs:    t.epochs,
	}
}
