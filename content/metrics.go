package content

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts content fetches by content type and outcome.
type Metrics struct {
	fetches  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the content fetch collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Subsystem: "content",
			Name:      "fetches_total",
			Help:      "Content store queries by content type and outcome.",
		}, []string{"content_type", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "folio",
			Subsystem: "content",
			Name:      "fetch_duration_seconds",
			Help:      "Content store query latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"content_type"}),
	}
	reg.MustRegister(m.fetches, m.duration)
	return m
}

func (m *Metrics) observe(contentType string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.fetches.WithLabelValues(contentType, outcome).Inc()
	m.duration.WithLabelValues(contentType).Observe(time.Since(start).Seconds())
}
