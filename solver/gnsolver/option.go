package gnsolver

import "go.uber.org/zap"

// Option configures a GNGameStateBuilder before Build runs.
type Option func(*GNGameStateBuilder)

// WithLogger sets the logger the built GNGameState, and the futures
// estimator it runs at setup time, report through. A builder constructed
// without this option (including the bare GNGameStateBuilder{} zero value)
// logs nothing, same as passing WithLogger(zap.NewNop().Sugar()).
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(b *GNGameStateBuilder) { b.logger = logger }
}

// NewGNGameStateBuilder applies opts over a zero GNGameStateBuilder.
func NewGNGameStateBuilder(opts ...Option) GNGameStateBuilder {
	var b GNGameStateBuilder
	for _, opt := range opts {
		opt(&b)
	}

	return b
}

// resolveLogger returns the configured logger, or a no-op one if none was
// set, so every call site can log unconditionally.
func (b GNGameStateBuilder) resolveLogger() *zap.SugaredLogger {
	if b.logger == nil {
		return zap.NewNop().Sugar()
	}

	return b.logger
}
