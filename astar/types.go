// Package astar defines sentinel errors for the A* engine.
package astar

import "errors"

// Sentinel errors returned by Search.
var (
	// ErrNegativeCost indicates that Problem.Cost returned a negative (or NaN)
	// step cost. A* optimality and relaxation termination both rely on
	// non-negative costs.
	ErrNegativeCost = errors.New("astar: negative step cost encountered")
)
