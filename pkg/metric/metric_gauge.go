package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	lastRunTimestampGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "interp",
			Subsystem: "run",
			Name:      "last_timestamp_seconds",
			Help:      "Unix time the last run finished.",
		}, []string{"mode"})

	lastRunDurationGauge = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "interp",
			Subsystem: "run",
			Name:      "last_duration_seconds",
			Help:      "Wall time of the last run.",
		}, []string{"mode"})
)

// SetRunFinished records the end of a run in the given mode.
func SetRunFinished(mode string, started, finished time.Time) {
	lastRunTimestampGauge.WithLabelValues(mode).Set(float64(finished.Unix()))
	lastRunDurationGauge.WithLabelValues(mode).Set(finished.Sub(started).Seconds())
}
