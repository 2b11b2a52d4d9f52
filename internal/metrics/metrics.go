package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(
		Observer.prometheus.Frames,
		Observer.prometheus.Commands,
		Observer.prometheus.Runs,
		Observer.prometheus.Accuracy,
		Observer.prometheus.Error,
	)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// IncrFrame counts a rendered frame.
func (m *Metrics) IncrFrame() {
	m.prometheus.Frames.Inc()
}

// IncrCommand counts an applied command by type.
func (m *Metrics) IncrCommand(command string) {
	m.prometheus.Commands.WithLabelValues(command).Inc()
}

// IncrRun counts a finished optimizer run.
func (m *Metrics) IncrRun() {
	m.prometheus.Runs.Inc()
}

// Track exposes the latest model quality.
func (m *Metrics) Track(accuracy, mse float64) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.prometheus.Accuracy.Set(accuracy)
	m.prometheus.Error.Set(mse)
}
