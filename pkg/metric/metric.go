package metric

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds every interp collector. It is separate from the default
// registry so a run exports only its own series.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(statementCounter)
	Registry.MustRegister(lexemeCounter)
	Registry.MustRegister(lineRejectedCounter)

	Registry.MustRegister(lastRunTimestampGauge)
	Registry.MustRegister(lastRunDurationGauge)
}

// WriteTextfile writes all metrics in the text exposition format, for the
// node exporter textfile collector.
func WriteTextfile(path string) error {
	return errors.Wrapf(prometheus.WriteToTextfile(path, Registry), "writing metrics to %s", path)
}
