package folio

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site's counters on a private registry.
type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	rejected    *prometheus.CounterVec
	notFound    prometheus.Counter
}

// NewMetrics registers the counters plus the Go and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "contact_submissions_total",
			Help:      "Completed contact submissions by outcome.",
		}, []string{"outcome"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "contact_rejected_total",
			Help:      "Contact submissions refused before starting, by reason.",
		}, []string{"reason"}),
		notFound: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "folio",
			Name:      "not_found_total",
			Help:      "Requests for routes that do not exist.",
		}),
	}
	m.registry.MustRegister(
		m.submissions,
		m.rejected,
		m.notFound,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) observeSubmission(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeRejected(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) observeNotFound() {
	m.notFound.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
