// Package tour defines instance and tour types and sentinel errors.
package tour

import "errors"

// Sentinel errors for tour construction and validation.
var (
	// ErrNonSquare indicates a distance matrix that is not n×n.
	ErrNonSquare = errors.New("tour: distance matrix must be square")
	// ErrDimensionMismatch indicates fewer than two cities or a malformed tour.
	ErrDimensionMismatch = errors.New("tour: dimension mismatch")
	// ErrTooManyCities indicates more cities than MaxCities.
	ErrTooManyCities = errors.New("tour: too many cities")
	// ErrNegativeWeight indicates a negative or NaN distance.
	ErrNegativeWeight = errors.New("tour: negative distance")
	// ErrIncompleteGraph indicates an infinite distance off the diagonal.
	ErrIncompleteGraph = errors.New("tour: missing edge")
)

// MaxCities bounds the instance size so tours stay comparable values.
const MaxCities = 32

// Tour is a Hamiltonian cycle over cities 0..N-1 that starts and ends at
// Order[0] (city 0). The closing edge back to Order[0] is implicit.
type Tour struct {
	N     int
	Order [MaxCities]uint8
}

// Partial is a tour under construction: the set of visited cities, the
// current city and whether the cycle has been closed back to city 0.
type Partial struct {
	Visited uint32
	Last    uint8
	Closed  bool
}
