// Package metrics expone contadores Prometheus de la libreta y del API.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Khatabook-api/internal/application/ledger"
)

const namespace = "khatabook"

var _ ledger.Observer = (*Metrics)(nil)

// Metrics registro propio (sin el registro global) con las métricas de la aplicación.
type Metrics struct {
	registry        *prometheus.Registry
	mutations       *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	customers       prometheus.Gauge
	requests        *prometheus.CounterVec
}

// New crea y registra las métricas. Incluye los collectors de proceso y runtime de Go.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_mutations_total",
			Help:      "Mutaciones aplicadas a la libreta, por operación.",
		}, []string{"op"}),
		persistFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_persistence_failures_total",
			Help:      "Escrituras de snapshot fallidas, por operación.",
		}, []string{"op"}),
		customers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ledger_customers",
			Help:      "Clientes en la libreta.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Peticiones HTTP atendidas.",
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(
		m.mutations, m.persistFailures, m.customers, m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// MutationApplied implementa ledger.Observer.
func (m *Metrics) MutationApplied(op string) { m.mutations.WithLabelValues(op).Inc() }

// PersistFailed implementa ledger.Observer.
func (m *Metrics) PersistFailed(op string) { m.persistFailures.WithLabelValues(op).Inc() }

// CustomersCount implementa ledger.Observer.
func (m *Metrics) CustomersCount(n int) { m.customers.Set(float64(n)) }

// ObserveRequest cuenta una petición HTTP terminada.
func (m *Metrics) ObserveRequest(method, route string, status int) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Registry registro subyacente (pruebas).
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler handler HTTP de exposición en formato texto.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
