// Package metrics records one generator run in Prometheus form and writes it
// out as a node_exporter textfile, since the process exits before anything
// could scrape it.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder wraps a private registry with the run metrics.
type Recorder struct {
	registry *prometheus.Registry

	// ColorsTotal counts palette entries emitted
	ColorsTotal prometheus.Counter

	// BytesTotal counts bytes written to the output stream
	BytesTotal prometheus.Counter

	// WriteErrorsTotal counts failed output writes
	WriteErrorsTotal prometheus.Counter

	// MaxHueError is the worst round-trip hue deviation in degrees
	MaxHueError prometheus.Gauge

	// RunDuration is how long the last run took
	RunDuration prometheus.Gauge

	// LastRun is the unix time the last run finished
	LastRun prometheus.Gauge
}

// New creates a recorder with its own registry so repeated runs (and tests)
// never collide on the global one.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Recorder{
		registry: reg,
		ColorsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "palette_colors_total",
			Help: "Total palette entries emitted",
		}),
		BytesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "palette_bytes_written_total",
			Help: "Total bytes written to the output stream",
		}),
		WriteErrorsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "palette_write_errors_total",
			Help: "Total output write failures",
		}),
		MaxHueError: f.NewGauge(prometheus.GaugeOpts{
			Name: "palette_max_hue_error_degrees",
			Help: "Worst round-trip hue deviation in degrees",
		}),
		RunDuration: f.NewGauge(prometheus.GaugeOpts{
			Name: "palette_run_duration_seconds",
			Help: "Duration of the last run in seconds",
		}),
		LastRun: f.NewGauge(prometheus.GaugeOpts{
			Name: "palette_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		}),
	}
}

// ObserveWrite records the outcome of writing a palette.
func (r *Recorder) ObserveWrite(colors int, bytes int64, err error) {
	r.ColorsTotal.Add(float64(colors))
	r.BytesTotal.Add(float64(bytes))
	if err != nil {
		r.WriteErrorsTotal.Inc()
	}
}

// ObserveVerify records the worst hue error from a verification pass.
func (r *Recorder) ObserveVerify(maxHueError float64) {
	r.MaxHueError.Set(maxHueError)
}

// Finish stamps the run duration and completion time.
func (r *Recorder) Finish(started time.Time) {
	r.RunDuration.Set(time.Since(started).Seconds())
	r.LastRun.SetToCurrentTime()
}

// Gatherer exposes the registry, mainly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile atomically writes all metrics to path in text exposition
// format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
