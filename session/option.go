package session

import "go.uber.org/zap"

// Option configures the driver's logging.
type Option func(*config)

type config struct {
	logger *zap.SugaredLogger
}

// WithLogger sets the logger Run and RunOfflineStep report the game loop's
// phase transitions through. Omitting it (the default) logs nothing.
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
