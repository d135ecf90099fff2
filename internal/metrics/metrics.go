// Package metrics provides Prometheus instrumentation for the ledger and the HTTP server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "petinvest"

// Ledger operations.
const (
	OpCreate = "create"
	OpCancel = "cancel"
)

// Ledger operation outcomes.
const (
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
	OutcomeFailed    = "failed"
)

// Metrics holds the application collectors.
//
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	ledgerOperations    *prometheus.CounterVec
	ledgerAmount        *prometheus.CounterVec
	maturedInvestments  prometheus.Counter
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	gatherer            prometheus.Gatherer
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		ledgerOperations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_operations_total",
			Help:      "Ledger units of work by operation and outcome",
		}, []string{"operation", "outcome"}),

		ledgerAmount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_amount_total",
			Help:      "Committed principal moved between wallets and positions",
		}, []string{"operation"}),

		maturedInvestments: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matured_investments_total",
			Help:      "Positions flipped to matured by the maturity sweep",
		}),

		httpRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		}, []string{"method", "path", "status"}),

		httpRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "path"}),
	}

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}

	return m
}

// LedgerOperation counts one ledger unit of work.
func (m *Metrics) LedgerOperation(operation, outcome string) {
	if m == nil {
		return
	}

	m.ledgerOperations.WithLabelValues(operation, outcome).Inc()
}

// LedgerAmount adds the committed principal of an operation.
func (m *Metrics) LedgerAmount(operation string, amount float64) {
	if m == nil {
		return
	}

	m.ledgerAmount.WithLabelValues(operation).Add(amount)
}

// Matured adds n swept positions.
func (m *Metrics) Matured(n int64) {
	if m == nil || n <= 0 {
		return
	}

	m.maturedInvestments.Add(float64(n))
}

// ObserveRequest records a served HTTP request. path should be the route pattern.
func (m *Metrics) ObserveRequest(method, path string, status int, d time.Duration) {
	if m == nil {
		return
	}

	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// Handler returns the Prometheus metrics HTTP handler for the registry m was built with.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}

	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
