package search

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Tracer emits debug events for one engine call. It checks the level before
// building fields, so a disabled tracer costs one comparison per event.
type Tracer struct {
	log *zap.Logger
}

// NewTracer binds logger to an algorithm name. When debug output is enabled
// each call gets its own run id so interleaved runs can be told apart.
func NewTracer(logger *zap.Logger, algorithm string) Tracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		return Tracer{log: logger}
	}

	return Tracer{log: logger.With(
		zap.String("algorithm", algorithm),
		zap.String("run", uuid.NewString()),
	)}
}

// Enabled reports whether debug events are recorded.
func (t Tracer) Enabled() bool {
	return t.log != nil && t.log.Core().Enabled(zapcore.DebugLevel)
}

// Event writes msg with fields at debug level.
func (t Tracer) Event(msg string, fields ...zap.Field) {
	if t.log == nil {
		return
	}
	if ce := t.log.Check(zapcore.DebugLevel, msg); ce != nil {
		ce.Write(fields...)
	}
}

// Pop records a frontier pop.
func (t Tracer) Pop(state any, depth int, f float64, open int) {
	if !t.Enabled() {
		return
	}
	t.Event("pop",
		zap.Any("state", state),
		zap.Int("depth", depth),
		zap.Float64("f", f),
		zap.Int("open", open),
	)
}

// Done records the end of a run.
func (t Tracer) Done(found bool, expanded, generated int) {
	t.Event("done",
		zap.Bool("found", found),
		zap.Int("expanded", expanded),
		zap.Int("generated", generated),
	)
}
