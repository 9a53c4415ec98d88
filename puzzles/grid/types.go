// Package grid defines core types and sentinel errors for weighted
// grid path planning.
package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeCost indicates a cell cost below zero or NaN.
	ErrNegativeCost = errors.New("grid: cell cost must be non-negative")
	// ErrUnknownTerrain indicates a map symbol missing from the legend.
	ErrUnknownTerrain = errors.New("grid: unknown terrain symbol")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
	// ErrBlocked indicates a start or goal placed on an impassable cell.
	ErrBlocked = errors.New("grid: point is not passable")
)

// Blocked is the cost of an impassable cell.
var Blocked = math.Inf(1)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Point is a cell coordinate. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Legend maps map symbols to entry costs.
type Legend map[rune]float64

// CityLegend is a festival-planning city map: main roads, lanes, markets,
// parks and obstacles.
func CityLegend() Legend {
	return Legend{
		'R': 1,
		'G': 4,
		'M': 7,
		'P': 2,
		'O': Blocked,
	}
}

// Grid is an immutable weighted grid. Entering a cell costs its value;
// cells with cost +Inf are impassable.
type Grid struct {
	Width, Height int
	Conn          Connectivity

	costs   [][]float64
	offsets [][2]int
	minCost float64
}
