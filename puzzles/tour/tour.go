package tour

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsearch/search"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// Instance is an immutable TSP instance over a distance matrix.
type Instance struct {
	n     int
	dist  [][]float64
	minIn []float64
}

// NewInstance validates dist and deep-copies it. The diagonal is ignored.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrTooManyCities,
// ErrNegativeWeight, ErrIncompleteGraph.
func NewInstance(dist [][]float64) (*Instance, error) {
	n := len(dist)
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	if n > MaxCities {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyCities, n, MaxCities)
	}
	in := &Instance{n: n, dist: make([][]float64, n), minIn: make([]float64, n)}
	for i := range in.minIn {
		in.minIn[i] = math.Inf(1)
	}
	for i, row := range dist {
		if len(row) != n {
			return nil, ErrNonSquare
		}
		in.dist[i] = make([]float64, n)
		copy(in.dist[i], row)
		for j, w := range row {
			if i == j {
				continue
			}
			if !(w >= 0) {
				return nil, fmt.Errorf("%w: d(%d,%d)=%v", ErrNegativeWeight, i, j, w)
			}
			if math.IsInf(w, 1) {
				return nil, fmt.Errorf("%w: d(%d,%d)", ErrIncompleteGraph, i, j)
			}
			if w < in.minIn[j] {
				in.minIn[j] = w
			}
		}
	}

	return in, nil
}

// Len returns the number of cities.
func (in *Instance) Len() int { return in.n }

// Dist returns the distance from city u to city v.
func (in *Instance) Dist(u, v int) float64 { return in.dist[u][v] }

// Identity returns the tour 0, 1, ..., n-1.
func (in *Instance) Identity() Tour {
	t := Tour{N: in.n}
	for i := 0; i < in.n; i++ {
		t.Order[i] = uint8(i)
	}

	return t
}

// Random returns a uniformly shuffled tour that still starts at city 0.
func (in *Instance) Random(rng *rand.Rand) Tour {
	t := in.Identity()
	rng.Shuffle(in.n-1, func(i, j int) {
		t.Order[i+1], t.Order[j+1] = t.Order[j+1], t.Order[i+1]
	})

	return t
}

// FromSlice builds a Tour from a permutation of 0..n-1 beginning with 0.
func (in *Instance) FromSlice(order []int) (Tour, error) {
	t := Tour{N: in.n}
	if len(order) != in.n || order[0] != 0 {
		return t, ErrDimensionMismatch
	}
	seen := make([]bool, in.n)
	for i, v := range order {
		if v < 0 || v >= in.n || seen[v] {
			return t, ErrDimensionMismatch
		}
		seen[v] = true
		t.Order[i] = uint8(v)
	}

	return t, nil
}

// Cost sums the cycle edges, closing edge included, rounded to 1e-9.
// Complexity: O(n).
func (in *Instance) Cost(t Tour) float64 {
	var sum float64
	for i := 0; i < t.N; i++ {
		u := t.Order[i]
		v := t.Order[(i+1)%t.N]
		sum += in.dist[u][v]
	}

	return round1e9(sum)
}

// Swap lists the tours obtained by exchanging two cities (city 0 stays put).
// Complexity: O(n²) neighbors.
func (in *Instance) Swap(t Tour) []Tour {
	out := make([]Tour, 0, (t.N-1)*(t.N-2)/2)
	for i := 1; i < t.N; i++ {
		for j := i + 1; j < t.N; j++ {
			n := t
			n.Order[i], n.Order[j] = n.Order[j], n.Order[i]
			out = append(out, n)
		}
	}

	return out
}

// TwoOpt lists the tours obtained by reversing one segment Order[i..j].
// Complexity: O(n²) neighbors.
func (in *Instance) TwoOpt(t Tour) []Tour {
	out := make([]Tour, 0, (t.N-1)*(t.N-2)/2)
	for i := 1; i < t.N; i++ {
		for j := i + 1; j < t.N; j++ {
			n := t
			reverseArc(&n, i, j)
			out = append(out, n)
		}
	}

	return out
}

// OrOpt lists the tours obtained by moving a segment of one to three cities
// to another position, keeping its direction.
func (in *Instance) OrOpt(t Tour) []Tour {
	var out []Tour
	for size := 1; size <= 3 && size < t.N-1; size++ {
		for i := 1; i+size <= t.N; i++ {
			// remaining cities after removing the segment
			rest := make([]uint8, 0, t.N-size)
			rest = append(rest, t.Order[:i]...)
			rest = append(rest, t.Order[i+size:t.N]...)
			for k := 1; k <= len(rest); k++ {
				if k == i {
					continue
				}
				n := Tour{N: t.N}
				pos := copy(n.Order[:], rest[:k])
				pos += copy(n.Order[pos:], t.Order[i:i+size])
				copy(n.Order[pos:], rest[k:])
				out = append(out, n)
			}
		}
	}

	return out
}

// Problem returns the local-search problem over complete tours: MoveGen is
// 2-opt, the heuristic is the tour cost and any tour of cost at most
// target is a goal.
func (in *Instance) Problem(target float64) search.Problem[Tour] {
	return search.Problem[Tour]{
		MoveGen:   in.TwoOpt,
		GoalTest:  func(t Tour) bool { return in.Cost(t) <= target },
		Heuristic: in.Cost,
	}
}

// Start returns the empty partial tour at city 0.
func (in *Instance) Start() Partial { return Partial{Visited: 1, Last: 0} }

// Extend lists the partial tours one city longer. Once every city is
// visited the only successor closes the cycle back to city 0.
func (in *Instance) Extend(p Partial) []Partial {
	if p.Closed {
		return nil
	}
	full := uint32(1)<<in.n - 1
	if p.Visited == full {
		return []Partial{{Visited: full, Last: 0, Closed: true}}
	}
	out := make([]Partial, 0, in.n)
	for c := 1; c < in.n; c++ {
		if p.Visited&(1<<c) == 0 {
			out = append(out, Partial{Visited: p.Visited | 1<<c, Last: uint8(c)})
		}
	}

	return out
}

// Remaining lower-bounds the cost to close p: every city still to be
// entered (city 0 included) needs at least its cheapest incoming edge.
// The bound is admissible and consistent.
func (in *Instance) Remaining(p Partial) float64 {
	if p.Closed {
		return 0
	}
	sum := in.minIn[0]
	for c := 1; c < in.n; c++ {
		if p.Visited&(1<<c) == 0 {
			sum += in.minIn[c]
		}
	}

	return sum
}

// Construct returns the constructive problem over partial tours. A* with
// this problem yields an optimal tour.
func (in *Instance) Construct() search.Problem[Partial] {
	return search.Problem[Partial]{
		MoveGen:   in.Extend,
		GoalTest:  func(p Partial) bool { return p.Closed },
		Heuristic: in.Remaining,
		Cost: func(from, to Partial) float64 {
			return in.dist[from.Last][to.Last]
		},
	}
}

// Order extracts the city sequence from a constructive search path.
// The closing return to city 0 is dropped.
func Order(path []Partial) []int {
	out := make([]int, 0, len(path))
	for _, p := range path {
		if p.Closed {
			break
		}
		out = append(out, int(p.Last))
	}

	return out
}

// Slice returns the visiting order.
func (t Tour) Slice() []int {
	out := make([]int, t.N)
	for i := range out {
		out[i] = int(t.Order[i])
	}

	return out
}

// String prints the closed cycle, e.g. "0-2-1-0".
func (t Tour) String() string {
	parts := make([]string, 0, t.N+1)
	for i := 0; i < t.N; i++ {
		parts = append(parts, strconv.Itoa(int(t.Order[i])))
	}
	if t.N > 0 {
		parts = append(parts, strconv.Itoa(int(t.Order[0])))
	}

	return strings.Join(parts, "-")
}

// reverseArc reverses Order[i..j] in place (2-opt core).
func reverseArc(t *Tour, i, j int) {
	for i < j {
		t.Order[i], t.Order[j] = t.Order[j], t.Order[i]
		i++
		j--
	}
}

// round1e9 rounds x to 1e-9 to suppress floating-point noise.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
