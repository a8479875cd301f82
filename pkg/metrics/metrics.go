// Package metrics provides Prometheus metrics for the enrichment and
// aggregation engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the engine's Prometheus collectors.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  prometheus.Registerer

	// Batch lifecycle
	batchesProcessed prometheus.Counter
	batchesRejected  prometheus.Counter

	// Row quality
	rowsValidated prometheus.Counter
	rowsRejected  *prometheus.CounterVec

	// Stage latency
	enrichLatency    prometheus.Histogram
	aggregateLatency prometheus.Histogram

	// Operational gauges
	lastBatchRows prometheus.Gauge
	snapshotCount prometheus.Gauge
	workerCount   prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry so the default Go collectors stay out of the way.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with configuration options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "xiaozhao",
		subsystem: "engine",
		buckets:   prometheus.DefBuckets,
		registry:  prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.register()

	return m
}

func (m *Manager) register() {
	auto := promauto.With(m.registry)

	m.batchesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batches_processed_total",
		Help:      "Total number of upload batches processed end to end",
	})

	m.batchesRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "batches_rejected_total",
		Help:      "Total number of upload batches rejected at the batch level",
	})

	m.rowsValidated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rows_validated_total",
		Help:      "Total number of rows that passed schema validation",
	})

	m.rowsRejected = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_rejected_total",
			Help:      "Total number of rejected rows by error kind",
		},
		[]string{"kind"},
	)

	m.enrichLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "enrich_latency_milliseconds",
		Help:      "Batch enrichment latency in milliseconds",
		Buckets:   m.buckets,
	})

	m.aggregateLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregate_latency_milliseconds",
		Help:      "Batch aggregation latency in milliseconds",
		Buckets:   m.buckets,
	})

	m.lastBatchRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "last_batch_rows",
		Help:      "Valid row count of the most recently processed batch",
	})

	m.snapshotCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_count",
		Help:      "Number of batch snapshots currently retained",
	})

	m.workerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_count",
		Help:      "Configured enrichment worker count",
	})
}

// RecordBatchProcessed increments the processed-batch counter.
func RecordBatchProcessed() {
	globalManager.batchesProcessed.Inc()
}

// RecordBatchRejected increments the rejected-batch counter.
func RecordBatchRejected() {
	globalManager.batchesRejected.Inc()
}

// RecordRowsValidated adds to the validated-row counter.
func RecordRowsValidated(n int) {
	globalManager.rowsValidated.Add(float64(n))
}

// RecordRowRejected increments the rejected-row counter for an error kind.
func RecordRowRejected(kind string) {
	globalManager.rowsRejected.WithLabelValues(kind).Inc()
}

// RecordEnrichLatency records batch enrichment latency in milliseconds.
func RecordEnrichLatency(latencyMs float64) {
	globalManager.enrichLatency.Observe(latencyMs)
}

// RecordAggregateLatency records batch aggregation latency in milliseconds.
func RecordAggregateLatency(latencyMs float64) {
	globalManager.aggregateLatency.Observe(latencyMs)
}

// UpdateLastBatchRows sets the valid row count of the latest batch.
func UpdateLastBatchRows(n int) {
	globalManager.lastBatchRows.Set(float64(n))
}

// UpdateSnapshotCount sets the number of retained snapshots.
func UpdateSnapshotCount(n int) {
	globalManager.snapshotCount.Set(float64(n))
}

// UpdateWorkerCount sets the configured worker count.
func UpdateWorkerCount(n int) {
	globalManager.workerCount.Set(float64(n))
}

// GetRegistry returns the custom Prometheus registry used by the engine.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
