package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/spektr-org/studentviz/engine"
)

var _ engine.Observer = (*Metrics)(nil)

// Metrics is an engine.Observer that feeds Prometheus collectors.
type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
	lastKept   int
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		mutex:      new(sync.RWMutex),
		prometheus: NewPrometheusMetrics(),
	}
	for _, c := range m.prometheus.collectors() {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Recomputed counts a finished recompute and records its input and output sizes.
func (m *Metrics) Recomputed(total, filtered int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.lastKept = filtered
	m.prometheus.Recomputes.Inc()
	m.prometheus.Records.Set(float64(total))
	m.prometheus.Filtered.Set(float64(filtered))
}

// Excluded counts filtered records that fell outside the bin domain.
func (m *Metrics) Excluded(n int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.prometheus.Excluded.Add(float64(n))
}

// TrendSuppressed counts a recompute without a trend line.
func (m *Metrics) TrendSuppressed() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.prometheus.TrendSuppressed.Inc()
}

// LastFiltered returns the filtered size of the last recompute.
func (m *Metrics) LastFiltered() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.lastKept
}

// Dump logs every metric gathered from g at debug level.
func Dump(g prometheus.Gatherer) {
	families, err := g.Gather()
	if err != nil {
		log.Error().Err(err).Msg("could not gather metrics")
		return
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			value := metric.GetCounter().GetValue()
			if metric.GetGauge() != nil {
				value = metric.GetGauge().GetValue()
			}
			log.Debug().Str("metric", mf.GetName()).Float64("value", value).Msg("metrics")
		}
	}
}
