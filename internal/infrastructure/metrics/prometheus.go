// Package metrics expone contadores operativos en formato Prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jhoicas/stock-count-api/internal/application/ports"
)

var _ ports.MetricsRecorder = (*Recorder)(nil)

const namespace = "stock_count"

// Recorder implementa ports.MetricsRecorder sobre un registro de Prometheus.
type Recorder struct {
	countsRecorded *prometheus.CounterVec
	countsCleared  *prometheus.CounterVec
	syncs          *prometheus.CounterVec
	syncDuration   prometheus.Histogram
	rowsReconciled *prometheus.CounterVec
}

// NewRecorder crea y registra las métricas en reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		countsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "counts_recorded_total",
			Help:      "Conteos físicos registrados.",
		}, []string{"shop"}),
		countsCleared: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "counts_cleared_total",
			Help:      "Conteos físicos eliminados por limpieza masiva.",
		}, []string{"shop"}),
		syncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "syncs_total",
			Help:      "Sincronizaciones de catálogo por resultado.",
		}, []string{"result"}),
		syncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "sync_duration_seconds",
			Help:      "Duración de la sincronización de catálogo.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
		rowsReconciled: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_reconciled_total",
			Help:      "Filas conciliadas servidas por estado.",
		}, []string{"status"}),
	}
	reg.MustRegister(r.countsRecorded, r.countsCleared, r.syncs, r.syncDuration, r.rowsReconciled)
	return r
}

func (r *Recorder) CountRecorded(shop string) {
	r.countsRecorded.WithLabelValues(shop).Inc()
}

func (r *Recorder) CountsCleared(shop string, removed int64) {
	r.countsCleared.WithLabelValues(shop).Add(float64(removed))
}

func (r *Recorder) SyncFinished(_ string, elapsed time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.syncs.WithLabelValues(result).Inc()
	r.syncDuration.Observe(elapsed.Seconds())
}

func (r *Recorder) RowsReconciled(match, mismatch, noCount int) {
	r.rowsReconciled.WithLabelValues("match").Add(float64(match))
	r.rowsReconciled.WithLabelValues("mismatch").Add(float64(mismatch))
	r.rowsReconciled.WithLabelValues("no-count").Add(float64(noCount))
}
