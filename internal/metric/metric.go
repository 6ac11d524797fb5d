// Package metric exposes Prometheus metrics for the service.
//
// The registry carries the Go runtime and process collectors plus the
// application counters; Handler serves it on /metrics.
package metric

import (
	"errors"
	"net/http"

	"github.com/deppfellow/acm/internal/errs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for recorded operations.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Registry owns a dedicated Prometheus registry and the application metrics.
type Registry struct {
	prometheusRegistry *prometheus.Registry
	Metrics            *Metrics
}

// NewRegistry creates a registry with runtime collectors and application metrics.
func NewRegistry() *Registry {
	prometheusRegistry := prometheus.NewRegistry()

	prometheusRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Registry{
		prometheusRegistry: prometheusRegistry,
		Metrics:            NewMetrics(prometheusRegistry),
	}
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.prometheusRegistry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prometheusRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Metrics holds the application level collectors.
type Metrics struct {
	EmployeeOperations *prometheus.CounterVec
	AccessChanges      *prometheus.CounterVec
}

// NewMetrics creates the application collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		EmployeeOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "acm",
			Name:      "employee_operations_total",
			Help:      "Employee service operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		AccessChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "acm",
			Name:      "module_access_changes_total",
			Help:      "Module associations granted or revoked.",
		}, []string{"direction"}),
	}

	reg.MustRegister(m.EmployeeOperations, m.AccessChanges)

	return m
}

// RecordEmployeeOperation counts one employee operation, classifying err.
// A nil receiver records nothing.
func (m *Metrics) RecordEmployeeOperation(operation string, err error) {
	if m == nil {
		return
	}
	m.EmployeeOperations.WithLabelValues(operation, Outcome(err)).Inc()
}

// RecordAccessChange counts granted and revoked module associations.
func (m *Metrics) RecordAccessChange(granted, revoked int) {
	if m == nil {
		return
	}
	if granted > 0 {
		m.AccessChanges.WithLabelValues("granted").Add(float64(granted))
	}
	if revoked > 0 {
		m.AccessChanges.WithLabelValues("revoked").Add(float64(revoked))
	}
}

// Outcome maps an operation error onto its outcome label.
func Outcome(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	var notFound errs.EntityNotFoundError
	if errors.As(err, &notFound) {
		return OutcomeNotFound
	}
	return OutcomeError
}
