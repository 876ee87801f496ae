package dispatch

import "go.uber.org/zap"

// Option configures the dispatcher using the functional options pattern.
type Option func(*settings)

type settings struct {
	logger  *zap.Logger
	metrics bool
}

// WithLogger sets a custom logger for the dispatcher.
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithMetrics toggles recording of Prometheus call metrics.
func WithMetrics(enabled bool) Option {
	return func(s *settings) { s.metrics = enabled }
}

func applyOptions(opts []Option) settings {
	s := settings{
		logger:  zap.NewNop(),
		metrics: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}
	return s
}
