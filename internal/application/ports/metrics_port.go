package ports

import "time"

// MetricsRecorder contadores operativos de conteos y sincronizaciones.
type MetricsRecorder interface {
	CountRecorded(shop string)
	CountsCleared(shop string, removed int64)
	SyncFinished(shop string, elapsed time.Duration, err error)
	RowsReconciled(match, mismatch, noCount int)
}

// NopMetrics implementación vacía para tests y CLI.
type NopMetrics struct{}

func (NopMetrics) CountRecorded(string)                      {}
func (NopMetrics) CountsCleared(string, int64)               {}
func (NopMetrics) SyncFinished(string, time.Duration, error) {}
func (NopMetrics) RowsReconciled(int, int, int)              {}
