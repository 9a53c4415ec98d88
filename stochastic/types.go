// Package stochastic defines sentinel errors, defaults and the annealing
// schedule shared by the randomized local-search engines.
package stochastic

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for stochastic search.
var (
	// ErrBadEpochs is returned when the epoch count is not positive.
	ErrBadEpochs = errors.New("stochastic: epochs must be positive")

	// ErrBadTemperature is returned for a non-positive or non-finite temperature.
	ErrBadTemperature = errors.New("stochastic: temperature must be positive and finite")

	// ErrBadCooling is returned for a negative or non-finite cooling rate.
	ErrBadCooling = errors.New("stochastic: cooling rate must be non-negative and finite")
)

const (
	// DefaultTemperature is the initial annealing temperature.
	DefaultTemperature = 3.0

	// DefaultCooling is the exponential decay rate of the annealing schedule.
	DefaultCooling = 0.99

	// DefaultMinTemperature is the floor the schedule never cools below.
	DefaultMinTemperature = 0.01

	// DefaultHillTemperature is the fixed temperature of StochasticHillClimbing.
	DefaultHillTemperature = 1.0
)

// Schedule describes exponential cooling: after epoch i the temperature is
// max(Initial·exp(−Cooling·i), Min).
type Schedule struct {
	Initial float64
	Cooling float64
	// Min is the temperature floor; zero selects DefaultMinTemperature.
	Min float64
}

// DefaultSchedule returns {DefaultTemperature, DefaultCooling, DefaultMinTemperature}.
func DefaultSchedule() Schedule {
	return Schedule{Initial: DefaultTemperature, Cooling: DefaultCooling, Min: DefaultMinTemperature}
}

// Validate checks the schedule fields.
func (s Schedule) Validate() error {
	if !positiveFinite(s.Initial) {
		return fmt.Errorf("%w: initial=%v", ErrBadTemperature, s.Initial)
	}
	if s.Cooling < 0 || math.IsNaN(s.Cooling) || math.IsInf(s.Cooling, 0) {
		return fmt.Errorf("%w: cooling=%v", ErrBadCooling, s.Cooling)
	}
	if s.Min != 0 && !positiveFinite(s.Min) {
		return fmt.Errorf("%w: min=%v", ErrBadTemperature, s.Min)
	}

	return nil
}

// At returns the temperature in effect after epoch i (i >= 0).
func (s Schedule) At(i int) float64 {
	floor := s.Min
	if floor == 0 {
		floor = DefaultMinTemperature
	}

	return math.Max(s.Initial*math.Exp(-s.Cooling*float64(i)), floor)
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0) && !math.IsNaN(x)
}
