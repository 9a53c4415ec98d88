package config

import (
	"fmt"
	"math"
	"os"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/stochastic"
	"github.com/katalvlaran/lvsearch/uninformed"
)

// Default returns a configuration for classical A* with the engine defaults
// filled in for every other algorithm.
func Default() Config {
	return Config{
		Algorithm:       AlgAStar,
		Traversal:       "bfs",
		Solution:        "one",
		MaxEpochs:       1000,
		DepthLimit:      32,
		BeamWidth:       2,
		TabuTenure:      heuristic.DefaultTabuTenure,
		Temperature:     stochastic.DefaultTemperature,
		Cooling:         stochastic.DefaultCooling,
		MinTemperature:  stochastic.DefaultMinTemperature,
		HillTemperature: stochastic.DefaultHillTemperature,
		Objective:       "minimize",
		Weights:         Weights{G: 1, H: 1},
		Relaxation:      true,
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	return Parse(buf)
}

// Parse decodes YAML over Default and validates the result. Keys missing
// from the document keep their default values.
func Parse(buf []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports every problem in c at once. The returned error wraps
// ErrInvalidConfig; multierr.Errors splits it into the individual causes.
func (c *Config) Validate() error {
	var errs error
	add := func(err error) { errs = multierr.Append(errs, err) }

	if !c.Algorithm.Valid() {
		add(fmt.Errorf("%w: %q", ErrUnknownAlgorithm, c.Algorithm))
	}
	if _, err := uninformed.ParseTraversal(c.Traversal); err != nil {
		add(err)
	}
	if _, err := uninformed.ParseSolutionMode(c.Solution); err != nil {
		add(err)
	}
	if _, err := search.ParseObjective(c.Objective); err != nil {
		add(err)
	}
	if c.MaxEpochs < 0 {
		add(fmt.Errorf("max_epochs cannot be negative: %d", c.MaxEpochs))
	}
	if c.MaxEpochs == 0 && c.needsEpochs() {
		add(fmt.Errorf("max_epochs must be positive for %s", c.Algorithm))
	}
	if c.DepthLimit < 0 {
		add(fmt.Errorf("%w: depth_limit=%d", uninformed.ErrNegativeBound, c.DepthLimit))
	}
	if c.BeamWidth <= 0 {
		add(fmt.Errorf("%w: beam_width=%d", heuristic.ErrBadBeamWidth, c.BeamWidth))
	}
	if c.TabuTenure <= 0 {
		add(fmt.Errorf("%w: tabu_tenure=%d", heuristic.ErrBadTenure, c.TabuTenure))
	}
	add(c.Schedule().Validate())
	if !(c.HillTemperature > 0) || math.IsInf(c.HillTemperature, 1) {
		add(fmt.Errorf("%w: hill_temperature=%v", stochastic.ErrBadTemperature, c.HillTemperature))
	}
	if !finiteNonNegative(c.Weights.G) || !finiteNonNegative(c.Weights.H) || c.Weights.G+c.Weights.H == 0 {
		add(fmt.Errorf("%w: weights g=%v h=%v", search.ErrOptionViolation, c.Weights.G, c.Weights.H))
	}
	if _, err := parseLevel(c.Trace.Level); err != nil {
		add(err)
	}
	switch c.Trace.Format {
	case "", "json", "console":
	default:
		add(fmt.Errorf("unknown trace format %q", c.Trace.Format))
	}

	if errs != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs)
	}

	return nil
}

// needsEpochs reports whether the algorithm rejects an unlimited epoch count.
func (c *Config) needsEpochs() bool {
	switch c.Algorithm {
	case AlgTabu, AlgVNS, AlgRandomWalk, AlgAnnealing, AlgStochasticHill:
		return true
	}

	return false
}

// Schedule returns the annealing schedule described by c.
func (c *Config) Schedule() stochastic.Schedule {
	return stochastic.Schedule{
		Initial: c.Temperature,
		Cooling: c.Cooling,
		Min:     c.MinTemperature,
	}
}

// Options translates c into engine options. logger may be nil.
// c is assumed valid; call Validate first.
func (c *Config) Options(logger *zap.Logger) []search.Option {
	obj, _ := search.ParseObjective(c.Objective)

	return []search.Option{
		search.WithLogger(logger),
		search.WithObjective(obj),
		search.WithSeed(c.Seed),
		search.WithWeights(c.Weights.G, c.Weights.H),
		search.WithRelaxation(c.Relaxation),
	}
}

// Logger builds the trace logger. An empty Level yields a no-op logger.
// Format "json" selects zap's production encoder, anything else the
// development console encoder.
func (t Trace) Logger() (*zap.Logger, error) {
	if t.Level == "" {
		return zap.NewNop(), nil
	}
	lvl, err := parseLevel(t.Level)
	if err != nil {
		return nil, err
	}

	var cfg zap.Config
	if t.Format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

func parseLevel(s string) (zapcore.Level, error) {
	var lvl zapcore.Level
	if s == "" {
		return zapcore.InfoLevel, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToLower(s))); err != nil {
		return lvl, fmt.Errorf("unknown trace level %q: %w", s, err)
	}

	return lvl, nil
}

func finiteNonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 0)
}
