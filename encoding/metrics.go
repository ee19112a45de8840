package encoding

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contains Prometheus metrics for payload encoding operations.
type Metrics struct {
	negotiationsTotal *prometheus.CounterVec
	encodeTotal       *prometheus.CounterVec
	decodeTotal       *prometheus.CounterVec
	errorsTotal       *prometheus.CounterVec
}

var (
	metricsInstance *Metrics
	metricsOnce     sync.Once
)

// GetMetrics returns the singleton encoding metrics instance.
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		metricsInstance = &Metrics{
			negotiationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "multipayload",
					Subsystem: "encoding",
					Name:      "negotiations_total",
					Help:      "Total number of response format negotiations",
				},
				[]string{"format"},
			),
			encodeTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "multipayload",
					Subsystem: "encoding",
					Name:      "encode_total",
					Help:      "Total number of encode operations",
				},
				[]string{"format", "result"},
			),
			decodeTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "multipayload",
					Subsystem: "encoding",
					Name:      "decode_total",
					Help:      "Total number of decode operations",
				},
				[]string{"format", "result"},
			),
			errorsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "multipayload",
					Subsystem: "encoding",
					Name:      "errors_total",
					Help:      "Total number of encoding/decoding errors",
				},
				[]string{"format", "operation"},
			),
		}
	})
	return metricsInstance
}

// RecordNegotiation records the format a response negotiation selected.
// Negotiation over a validated registry always selects a format, so there
// is no outcome dimension.
func (m *Metrics) RecordNegotiation(format string) {
	m.negotiationsTotal.WithLabelValues(format).Inc()
}

// RecordEncode records an encode operation.
func (m *Metrics) RecordEncode(format, result string) {
	m.encodeTotal.WithLabelValues(format, result).Inc()
}

// RecordDecode records a decode operation.
func (m *Metrics) RecordDecode(format, result string) {
	m.decodeTotal.WithLabelValues(format, result).Inc()
}

// RecordError records an encoding/decoding error.
func (m *Metrics) RecordError(format, operation string) {
	m.errorsTotal.WithLabelValues(format, operation).Inc()
}
