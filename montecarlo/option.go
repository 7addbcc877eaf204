package montecarlo

import "go.uber.org/zap"

// Option configures the futures estimator's logging.
type Option func(*config)

type config struct {
	logger *zap.SugaredLogger
}

// WithLogger sets the logger EstimateBestFuture reports its search through.
// Omitting it (the default) logs nothing.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(c *config) { c.logger = logger }
}

func newConfig(opts ...Option) config {
	c := config{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
