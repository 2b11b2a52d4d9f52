package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Frames   prometheus.Counter
	Commands *prometheus.CounterVec
	Runs     prometheus.Counter
	Accuracy prometheus.Gauge
	Error    prometheus.Gauge
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lab",
			Name:      "frames",
		}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lab",
			Name:      "commands",
		}, []string{"command"}),
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lab",
			Name:      "optimizer_runs",
		}),
		Accuracy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lab",
			Name:      "accuracy",
		}),
		Error: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lab",
			Name:      "mse",
		}),
	}
}
