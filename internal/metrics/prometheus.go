package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "studentviz"

// Prometheus holds the collectors fed by a dashboard recompute.
type Prometheus struct {
	Recomputes      prometheus.Counter
	Excluded        prometheus.Counter
	TrendSuppressed prometheus.Counter
	Records         prometheus.Gauge
	Filtered        prometheus.Gauge
}

// NewPrometheusMetrics creates unregistered collectors under the studentviz namespace.
func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Recomputes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recomputes_total",
			Help:      "Dashboard recomputes.",
		}),
		Excluded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "excluded_records_total",
			Help:      "Filtered records that fell outside the bin domain.",
		}),
		TrendSuppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trend_suppressed_total",
			Help:      "Recomputes where the x field had no spread.",
		}),
		Records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Records loaded at the last recompute.",
		}),
		Filtered: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "filtered_records",
			Help:      "Records kept by the filters at the last recompute.",
		}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Recomputes, p.Excluded, p.TrendSuppressed, p.Records, p.Filtered}
}
