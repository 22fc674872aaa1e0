package hbond

import (
	"github.com/turtacn/NucleoBond/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/NucleoBond/internal/infrastructure/monitoring/prometheus"
)

// Option customizes engine construction.
type Option func(*Engine)

// WithLogging enables structured logging.  level is one of debug, info,
// warn, error; format is json or console.
func WithLogging(level, format string) Option {
	return func(e *Engine) {
		e.log = logging.NewLogger(logging.Config{Level: level, Format: format})
	}
}

// WithMetrics enables Prometheus instrumentation under the given metric
// namespace.  The scrape endpoint is served by Engine.MetricsHandler.
func WithMetrics(namespace string) Option {
	return func(e *Engine) {
		e.metrics = prometheus.NewCollector(namespace)
	}
}
