package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_LedgerCounters(t *testing.T) {
	metrics := NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)

	metrics.IncrementCounter("ledger.mutation.success", map[string]string{"operation": operationCreate})
	metrics.IncrementCounter("ledger.mutation.success", map[string]string{"operation": operationCreate})
	metrics.IncrementCounter("ledger.mutation.failed", map[string]string{"operation": operationUpdate})
	metrics.IncrementCounter("ledger.conflict", nil)
	metrics.IncrementCounter("unknown.metric", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ledgerMutations.WithLabelValues(operationCreate, "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ledgerMutations.WithLabelValues(operationUpdate, "failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ledgerConflicts))
}

func TestPrometheusMetrics_AlertAndReportCounters(t *testing.T) {
	metrics := NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)

	metrics.IncrementCounter("alert.emitted", map[string]string{"type": "LOW_BALANCE"})
	metrics.IncrementCounter("alert.emitted", map[string]string{})
	metrics.IncrementCounter("alert.publish.failed", nil)
	metrics.IncrementCounter("report.generated", map[string]string{"type": "CASH_FLOW", "status": "success"})
	metrics.RecordGauge("circuit_breaker.state", float64(StateOpen), map[string]string{"service": reportBreakerService})

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.alertsEmitted.WithLabelValues("LOW_BALANCE")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.alertPublishFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.reportsGenerated.WithLabelValues("CASH_FLOW", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.circuitBreakerState.WithLabelValues(reportBreakerService)))
}

func TestPrometheusMetrics_ReconciliationAndBudgetCounters(t *testing.T) {
	metrics := NewPrometheusMetrics(prometheus.NewRegistry()).(*PrometheusMetrics)

	metrics.IncrementCounter("reconciliation.attach", nil)
	metrics.IncrementCounter("reconciliation.completed", nil)
	metrics.IncrementCounter("budget.report", map[string]string{"status": "failed"})
	metrics.IncrementCounter("budget.report", nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.reconciliationOps.WithLabelValues("attach")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.reconciliationOps.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.budgetReports.WithLabelValues("failed")))
}

func TestPrometheusMetrics_SeparateRegistriesDoNotCollide(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})

	reg := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(reg)
	metrics.RecordProcessingTime("ledger.delete", 12*time.Millisecond)
	metrics.RecordGauge("ledger.balance_delta", -250, nil)

	count, err := testutil.GatherAndCount(reg, "ledger_mutation_duration_milliseconds", "ledger_balance_delta_amount")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAuditLogger_IncludesCorrelationID(t *testing.T) {
	var buf bytes.Buffer
	audit := NewAuditLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := WithCorrelationID(context.Background(), "req-123")
	txnID := uuid.New()

	audit.LogLedgerMutationCompleted(ctx, txnID, operationDelete, 7)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["correlation_id"])
	assert.Equal(t, txnID.String(), entry["transaction_id"])
	assert.Equal(t, operationDelete, entry["operation"])
}

func TestCorrelationID_EmptyWithoutValue(t *testing.T) {
	assert.Empty(t, CorrelationID(context.Background()))
	assert.Equal(t, "abc", CorrelationID(WithCorrelationID(context.Background(), "abc")))
}
