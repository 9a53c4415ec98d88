package search

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// Option configures an engine call via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// the engine starts.
type Option func(*Options)

// Options holds the cross-cutting knobs shared by all engines.
type Options struct {
	// Logger receives debug-level trace events. Defaults to zap.NewNop().
	Logger *zap.Logger

	// Objective sets the polarity of heuristic scores (best-first, hill
	// climbing, beam, tabu, VNS, stochastic engines).
	Objective Objective

	// Seed drives the RNG of randomized engines; 0 selects a fixed default.
	Seed int64

	// Alpha and Beta weight g and h in A*: f = Alpha*g + Beta*h.
	Alpha, Beta float64

	// Relaxation enables propagation of cheaper paths through CLOSED nodes in A*.
	Relaxation bool

	// OnEpoch, if non-nil, is called after every local-search epoch with the
	// score of the current state and of the best-seen state.
	OnEpoch func(epoch int, current, best float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - a no-op logger
//   - Minimize objective
//   - seed 0 (default stream)
//   - classical A* weights (1, 1) with relaxation on
//   - no epoch hook
func DefaultOptions() Options {
	return Options{
		Logger:     zap.NewNop(),
		Objective:  Minimize,
		Alpha:      1,
		Beta:       1,
		Relaxation: true,
	}
}

// NewOptions applies opts over DefaultOptions and returns the first recorded error.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithLogger installs a trace logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObjective selects Minimize or Maximize.
func WithObjective(obj Objective) Option {
	return func(o *Options) {
		if obj != Minimize && obj != Maximize {
			o.err = fmt.Errorf("%w: objective %d", ErrOptionViolation, int(obj))
			return
		}
		o.Objective = obj
	}
}

// WithSeed fixes the RNG stream of randomized engines.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWeights sets the A* weights. Both must be finite and non-negative,
// and at least one must be positive.
func WithWeights(alpha, beta float64) Option {
	return func(o *Options) {
		switch {
		case math.IsNaN(alpha) || math.IsNaN(beta) || math.IsInf(alpha, 0) || math.IsInf(beta, 0):
			o.err = fmt.Errorf("%w: weights must be finite (alpha=%v, beta=%v)", ErrOptionViolation, alpha, beta)
		case alpha < 0 || beta < 0:
			o.err = fmt.Errorf("%w: weights cannot be negative (alpha=%v, beta=%v)", ErrOptionViolation, alpha, beta)
		case alpha == 0 && beta == 0:
			o.err = fmt.Errorf("%w: at least one weight must be positive", ErrOptionViolation)
		default:
			o.Alpha, o.Beta = alpha, beta
		}
	}
}

// WithRelaxation toggles A* propagation through CLOSED nodes.
func WithRelaxation(enabled bool) Option {
	return func(o *Options) { o.Relaxation = enabled }
}

// WithOnEpoch registers a per-epoch hook for local-search engines.
func WithOnEpoch(fn func(epoch int, current, best float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEpoch = fn
		}
	}
}

// Epoch invokes the OnEpoch hook if one is installed.
func (o Options) Epoch(epoch int, current, best float64) {
	if o.OnEpoch != nil {
		o.OnEpoch(epoch, current, best)
	}
}
