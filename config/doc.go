// Package config loads the YAML description of a search run.
//
// A document is decoded over Default, so omitted keys keep their defaults:
//
//	algorithm: simulated_annealing
//	max_epochs: 500
//	temperature: 5
//	hill_temperature: 1
//	seed: 42
//	trace:
//	  level: debug
//	  format: json
//
// Validate reports every problem at once; the error wraps ErrInvalidConfig
// and the engine sentinels of each cause. Options and Schedule translate a
// valid Config into engine arguments, and Trace.Logger builds the zap logger
// that receives trace events.
package config
