package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	ledgerMutations      *prometheus.CounterVec
	ledgerDuration       *prometheus.HistogramVec
	ledgerConflicts      prometheus.Counter
	balanceDeltaAmount   prometheus.Histogram
	alertsEmitted        *prometheus.CounterVec
	alertEvaluationFails prometheus.Counter
	alertPublishFailures prometheus.Counter
	reportsGenerated     *prometheus.CounterVec
	reportDuration       prometheus.Histogram
	circuitBreakerState  *prometheus.GaugeVec
	reconciliationOps    *prometheus.CounterVec
	budgetReports        *prometheus.CounterVec
	budgetReportDuration prometheus.Histogram
}

// NewPrometheusMetrics registers the service metrics on reg.
// Pass prometheus.DefaultRegisterer to expose them on /metrics.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		ledgerMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_mutations_total",
				Help: "Total number of ledger mutations by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		ledgerDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_mutation_duration_milliseconds",
				Help:    "Ledger mutation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
		ledgerConflicts: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_conflicts_total",
				Help: "Total number of ledger mutations rejected for conflicting state",
			},
		),
		balanceDeltaAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_balance_delta_amount",
				Help:    "Absolute balance delta applied per mutation in account currency units",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		alertsEmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "alerts_emitted_total",
				Help: "Total number of alerts emitted by type",
			},
			[]string{"type"},
		),
		alertEvaluationFails: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "alert_evaluation_failures_total",
				Help: "Total number of swallowed alert evaluation failures",
			},
		),
		alertPublishFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "alert_publish_failures_total",
				Help: "Total number of alert.created messages that could not be published",
			},
		),
		reportsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reports_generated_total",
				Help: "Total number of report generations by type and outcome",
			},
			[]string{"type", "status"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "report_generation_duration_seconds",
				Help:    "Report generation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		reconciliationOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconciliation_operations_total",
				Help: "Total number of reconciliation attach, detach and complete operations",
			},
			[]string{"operation"},
		),
		budgetReports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_reports_total",
				Help: "Total number of budget reports by outcome",
			},
			[]string{"status"},
		),
		budgetReportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_report_duration_seconds",
				Help:    "Budget report aggregation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	operation := tags["operation"]
	status := tags["status"]

	switch name {
	case "ledger.mutation.success":
		m.ledgerMutations.WithLabelValues(operation, "success").Inc()
	case "ledger.mutation.failed":
		m.ledgerMutations.WithLabelValues(operation, "failed").Inc()
	case "ledger.conflict":
		m.ledgerConflicts.Inc()
	case "alert.emitted":
		if alertType := tags["type"]; alertType != "" {
			m.alertsEmitted.WithLabelValues(alertType).Inc()
		}
	case "alert.evaluation.failed":
		m.alertEvaluationFails.Inc()
	case "alert.publish.failed":
		m.alertPublishFailures.Inc()
	case "report.generated":
		if status != "" {
			m.reportsGenerated.WithLabelValues(tags["type"], status).Inc()
		}
	case "reconciliation.attach", "reconciliation.detach", "reconciliation.completed":
		m.reconciliationOps.WithLabelValues(name[len("reconciliation."):]).Inc()
	case "budget.report":
		if status != "" {
			m.budgetReports.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ledger.create", "ledger.update", "ledger.delete":
		m.ledgerDuration.WithLabelValues(name[len("ledger."):]).Observe(float64(duration.Milliseconds()))
	case "report.generate":
		m.reportDuration.Observe(duration.Seconds())
	case "budget.report":
		m.budgetReportDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ledger.balance_delta":
		if value < 0 {
			value = -value
		}
		m.balanceDeltaAmount.Observe(value)
	case "circuit_breaker.state":
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	}
}
