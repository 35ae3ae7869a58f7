package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation result label values
const (
	ResultOK      = "ok"
	ResultError   = "error"
	ResultMissing = "missing"
)

// Metrics holds all Prometheus metrics for the inventory store
type Metrics struct {
	adds           prometheus.Counter
	removes        *prometheus.CounterVec
	snapshotLoads  *prometheus.CounterVec
	snapshotSaves  *prometheus.CounterVec
	skippedEntries prometheus.Counter
	items          prometheus.Gauge
}

// New creates a new metrics instance registered against reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		adds: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "stockpile_adds_total",
				Help: "Total number of successful add operations",
			},
		),
		removes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpile_removes_total",
				Help: "Total number of remove operations by result",
			},
			[]string{"result"},
		),
		snapshotLoads: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpile_snapshot_loads_total",
				Help: "Total number of snapshot load attempts by result",
			},
			[]string{"result"},
		),
		snapshotSaves: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockpile_snapshot_saves_total",
				Help: "Total number of snapshot save attempts by result",
			},
			[]string{"result"},
		),
		skippedEntries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "stockpile_load_entries_skipped_total",
				Help: "Total number of snapshot entries dropped during sanitization",
			},
		),
		items: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "stockpile_items",
				Help: "Number of distinct items currently in stock",
			},
		),
	}
}

// RecordAdd records a successful add operation
func (m *Metrics) RecordAdd() {
	if m == nil {
		return
	}
	m.adds.Inc()
}

// RecordRemove records a remove operation with its result
func (m *Metrics) RecordRemove(result string) {
	if m == nil {
		return
	}
	m.removes.WithLabelValues(result).Inc()
}

// RecordSnapshotLoad records a snapshot load attempt with its result
func (m *Metrics) RecordSnapshotLoad(result string) {
	if m == nil {
		return
	}
	m.snapshotLoads.WithLabelValues(result).Inc()
}

// RecordSnapshotSave records a snapshot save attempt with its result
func (m *Metrics) RecordSnapshotSave(result string) {
	if m == nil {
		return
	}
	m.snapshotSaves.WithLabelValues(result).Inc()
}

// RecordSkippedEntry records a snapshot entry dropped during sanitization
func (m *Metrics) RecordSkippedEntry() {
	if m == nil {
		return
	}
	m.skippedEntries.Inc()
}

// SetItems updates the distinct item count gauge
func (m *Metrics) SetItems(n int) {
	if m == nil {
		return
	}
	m.items.Set(float64(n))
}
