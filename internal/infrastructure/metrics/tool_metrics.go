package metrics

import "github.com/prometheus/client_golang/prometheus"

// Tool call outcomes.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeBooked   = "booked"
	OutcomeError    = "error"
)

// ToolMetrics exposes counters/histograms for voice tool calls.
type ToolMetrics struct {
	callsTotal     *prometheus.CounterVec
	callLatency    *prometheus.HistogramVec
	ambiguousTimes prometheus.Counter
}

func NewToolMetrics(reg prometheus.Registerer) *ToolMetrics {
	m := &ToolMetrics{
		callsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "tools",
			Name:      "calls_total",
			Help:      "Total voice tool calls by tool and outcome",
		}, []string{"tool", "outcome"}),
		callLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "clinic",
			Subsystem: "tools",
			Name:      "call_latency_seconds",
			Help:      "Latency of voice tool calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
		ambiguousTimes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "tools",
			Name:      "ambiguous_time_total",
			Help:      "Booking times normalized through an ambiguous substring match",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.callsTotal, m.callLatency, m.ambiguousTimes)
	return m
}

func (m *ToolMetrics) ObserveCall(tool, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.callsTotal.WithLabelValues(tool, outcome).Inc()
	m.callLatency.WithLabelValues(tool).Observe(seconds)
}

func (m *ToolMetrics) ObserveAmbiguousTime() {
	if m == nil {
		return
	}
	m.ambiguousTimes.Inc()
}

func (m *ToolMetrics) CallsTotal() *prometheus.CounterVec {
	return m.callsTotal
}

func (m *ToolMetrics) AmbiguousTimes() prometheus.Counter {
	return m.ambiguousTimes
}
