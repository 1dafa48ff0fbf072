package prunecluster

import (
	"log/slog"

	"github.com/arloliu/prunecluster/internal/logging"
	"github.com/arloliu/prunecluster/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// NewSlogLogger adapts a *slog.Logger to the Logger interface.
//
// Parameters:
//   - logger: slog logger (slog.Default() if nil)
//
// Returns:
//   - Logger: Logger forwarding to logger
func NewSlogLogger(logger *slog.Logger) Logger {
	return logging.NewSlog(logger)
}

// NewPrometheusMetrics creates a Prometheus-backed MetricsCollector.
//
// Metrics register with reg on first use. Share one collector between overlays that
// report to the same registry.
//
// Parameters:
//   - reg: Registerer (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("prunecluster" if empty)
//
// Returns:
//   - MetricsCollector: Prometheus collector
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}
