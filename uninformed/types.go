// Package uninformed defines the traversal modes, solution modes and
// sentinel errors of the blind search engines.
package uninformed

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for uninformed search.
var (
	// ErrUnknownTraversal is returned for a traversal other than BFS or DFS.
	ErrUnknownTraversal = errors.New("uninformed: unknown traversal")

	// ErrUnknownSolutionMode is returned for a solution mode other than One or All.
	ErrUnknownSolutionMode = errors.New("uninformed: unknown solution mode")

	// ErrNegativeBound is returned for a negative depth bound or epoch cap.
	ErrNegativeBound = errors.New("uninformed: depth bound cannot be negative")
)

// Traversal selects the OPEN discipline.
type Traversal int

const (
	// BFS appends successors to OPEN (FIFO).
	BFS Traversal = iota
	// DFS prepends successors to OPEN (LIFO), preserving their MoveGen order.
	DFS
)

// String returns "bfs" or "dfs".
func (t Traversal) String() string {
	switch t {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	default:
		return fmt.Sprintf("Traversal(%d)", int(t))
	}
}

// ParseTraversal maps "bfs"/"dfs" (any case) to a Traversal.
func ParseTraversal(s string) (Traversal, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTraversal, s)
	}
}

// SolutionMode selects whether ConfigSearch stops at the first goal.
type SolutionMode int

const (
	// One returns as soon as a goal is popped.
	One SolutionMode = iota
	// All keeps scanning and returns every goal path.
	All
)

// String returns "one" or "all".
func (m SolutionMode) String() string {
	switch m {
	case One:
		return "one"
	case All:
		return "all"
	default:
		return fmt.Sprintf("SolutionMode(%d)", int(m))
	}
}

// ParseSolutionMode maps "one"/"all" (any case) to a SolutionMode.
func ParseSolutionMode(s string) (SolutionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one":
		return One, nil
	case "all":
		return All, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSolutionMode, s)
	}
}
