// SPDX-License-Identifier: EPL-2.0

package recompress

import "github.com/prometheus/client_golang/prometheus"

const metricsNamespace = "threepm"

// Metrics counts the work of a Recompressor.
type Metrics struct {
	Frames       prometheus.Counter
	Failures     *prometheus.CounterVec // by kind
	InputBytes   prometheus.Counter
	OutputBytes  prometheus.Counter
	PayloadBytes prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg. A nil
// reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "frames_total",
			Help:      "Frames written to 3PM output.",
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "frame_failures_total",
			Help:      "Frames that failed to decode, by failure kind.",
		}, []string{"kind"}),
		InputBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "input_bytes_total",
			Help:      "MPEG audio bytes consumed.",
		}),
		OutputBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "output_bytes_total",
			Help:      "3PM bytes produced.",
		}),
		PayloadBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "payload_bytes",
			Help:      "Size of entropy coded frame payloads.",
			Buckets:   prometheus.ExponentialBuckets(16, 2, 10),
		}),
	}

	if reg != nil {
		reg.MustRegister(m.Frames, m.Failures, m.InputBytes, m.OutputBytes, m.PayloadBytes)
	}
	return m
}

func (m *Metrics) frame(payload int) {
	if m == nil {
		return
	}
	m.Frames.Inc()
	m.PayloadBytes.Observe(float64(payload))
}

func (m *Metrics) failure(kind FailureKind) {
	if m == nil {
		return
	}
	m.Failures.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) bytes(in, out int) {
	if m == nil {
		return
	}
	m.InputBytes.Add(float64(in))
	m.OutputBytes.Add(float64(out))
}
