package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Checkout holds the checkout collectors on their own registry.
type Checkout struct {
	Registry *prometheus.Registry

	ordersFinalized    *prometheus.CounterVec
	sideEffectFailures *prometheus.CounterVec
	redirects          *prometheus.CounterVec
	redirectDuration   *prometheus.HistogramVec
	sessionsActive     prometheus.Gauge
}

func NewCheckout() *Checkout {
	m := &Checkout{
		Registry: prometheus.NewRegistry(),
		ordersFinalized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_orders_finalized_total",
			Help: "Orders created by checkout, by initial status.",
		}, []string{"status"}),
		sideEffectFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_side_effect_failures_total",
			Help: "Failed persist, notify and publish attempts.",
		}, []string{"effect"}),
		redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "checkout_redirects_total",
			Help: "Simulated map and payment redirects.",
		}, []string{"kind"}),
		redirectDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "checkout_redirect_duration_seconds",
			Help:    "Time spent in simulated redirects.",
			Buckets: []float64{0.5, 1, 1.5, 2, 3, 5},
		}, []string{"kind"}),
		sessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "checkout_sessions_active",
			Help: "Open checkout sessions.",
		}),
	}
	m.Registry.MustRegister(
		m.ordersFinalized,
		m.sideEffectFailures,
		m.redirects,
		m.redirectDuration,
		m.sessionsActive,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Checkout) OrderFinalized(status string) {
	m.ordersFinalized.WithLabelValues(status).Inc()
}

func (m *Checkout) SideEffectFailed(effect string) {
	m.sideEffectFailures.WithLabelValues(effect).Inc()
}

func (m *Checkout) Redirect(kind string, took time.Duration) {
	m.redirects.WithLabelValues(kind).Inc()
	m.redirectDuration.WithLabelValues(kind).Observe(took.Seconds())
}

func (m *Checkout) SessionOpened() { m.sessionsActive.Inc() }
func (m *Checkout) SessionClosed() { m.sessionsActive.Dec() }

func (m *Checkout) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
