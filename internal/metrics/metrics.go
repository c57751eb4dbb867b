// Package metrics records Prometheus metrics for workbook loads and exports.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "kompetencia"

// Recorder owns a private registry with the tool's collectors.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	loads          *prometheus.CounterVec
	scoreRecords   prometheus.Counter
	exports        *prometheus.CounterVec
	exportFiles    prometheus.Counter
	exportDuration prometheus.Histogram
	lastExportSize prometheus.Gauge
}

// New creates a Recorder with every collector registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workbook_loads_total",
			Help:      "Workbook load attempts by result.",
		}, []string{"result"}),
		scoreRecords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_records_total",
			Help:      "Long-form score records produced from loaded workbooks.",
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Export runs by result.",
		}, []string{"result"}),
		exportFiles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_files_total",
			Help:      "Report files written into export archives.",
		}),
		exportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "export_duration_seconds",
			Help:      "Wall time of export runs.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 60, 300},
		}),
		lastExportSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_export_bytes",
			Help:      "Size of the most recent successful export archive.",
		}),
	}
	r.registry.MustRegister(r.loads, r.scoreRecords, r.exports, r.exportFiles, r.exportDuration, r.lastExportSize)
	return r
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveLoad records a workbook load.
func (r *Recorder) ObserveLoad(err error, records int) {
	if r == nil {
		return
	}
	r.loads.WithLabelValues(result(err)).Inc()
	if err == nil {
		r.scoreRecords.Add(float64(records))
	}
}

// ObserveExport records an export run.
func (r *Recorder) ObserveExport(err error, files, size int, d time.Duration) {
	if r == nil {
		return
	}
	r.exports.WithLabelValues(result(err)).Inc()
	r.exportDuration.Observe(d.Seconds())
	if err == nil {
		r.exportFiles.Add(float64(files))
		r.lastExportSize.Set(float64(size))
	}
}

// WriteTextfile dumps the registry in the Prometheus text format, for the
// node exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
