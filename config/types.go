// Package config defines the run configuration types and sentinel errors.
package config

import "errors"

// Sentinel errors for configuration handling.
var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownAlgorithm indicates an algorithm name outside the Algorithm set.
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm")
)

// Algorithm names a search engine.
type Algorithm string

// Supported algorithms.
const (
	AlgConfig         Algorithm = "config"
	AlgPlanning       Algorithm = "planning"
	AlgDFID           Algorithm = "dfid"
	AlgDepthBounded   Algorithm = "depth_bounded"
	AlgBestFirst      Algorithm = "best_first"
	AlgHillClimbing   Algorithm = "hill_climbing"
	AlgBeam           Algorithm = "beam"
	AlgTabu           Algorithm = "tabu"
	AlgVNS            Algorithm = "vns"
	AlgAStar          Algorithm = "astar"
	AlgRandomWalk     Algorithm = "random_walk"
	AlgAnnealing      Algorithm = "simulated_annealing"
	AlgStochasticHill Algorithm = "stochastic_hill_climbing"
)

// Algorithms lists every supported algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgConfig, AlgPlanning, AlgDFID, AlgDepthBounded,
		AlgBestFirst, AlgHillClimbing, AlgBeam, AlgTabu, AlgVNS,
		AlgAStar,
		AlgRandomWalk, AlgAnnealing, AlgStochasticHill,
	}
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	for _, known := range Algorithms() {
		if a == known {
			return true
		}
	}

	return false
}

// Weights are the A* weights of g and h.
type Weights struct {
	G float64 `yaml:"g"`
	H float64 `yaml:"h"`
}

// Trace configures debug tracing. An empty Level disables it.
type Trace struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// Config is one search run.
type Config struct {
	Algorithm Algorithm `yaml:"algorithm"`
	Traversal string    `yaml:"traversal"`
	Solution  string    `yaml:"solution"`

	MaxEpochs  int `yaml:"max_epochs"`
	DepthLimit int `yaml:"depth_limit"`
	BeamWidth  int `yaml:"beam_width"`
	TabuTenure int `yaml:"tabu_tenure"`

	Temperature    float64 `yaml:"temperature"`
	Cooling        float64 `yaml:"cooling"`
	MinTemperature float64 `yaml:"min_temperature"`

	// HillTemperature is the fixed temperature of stochastic hill climbing.
	HillTemperature float64 `yaml:"hill_temperature"`

	Objective  string  `yaml:"objective"`
	Seed       int64   `yaml:"seed"`
	Weights    Weights `yaml:"weights"`
	Relaxation bool    `yaml:"relaxation"`

	Trace Trace `yaml:"trace"`
}
