// Package stats collects Prometheus metrics for a single run and writes
// them to a node-exporter textfile.
package stats

import (
	"sync"

	"codeberg.org/mutker/termtoys/internal/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	PromNamespace = "termtoys"
)

// SecondsBucketsGame covers 0.5s to ~17m.
var SecondsBucketsGame = prometheus.ExponentialBuckets(0.5, 2, 12)

type Ctl struct {
	subsystem string
	registry  *prometheus.Registry

	metrics map[string]prometheus.Collector
	mu      sync.Mutex
}

func NewCtl(subsystem string, registry *prometheus.Registry) *Ctl {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	return &Ctl{
		subsystem: subsystem,
		registry:  registry,
		metrics:   make(map[string]prometheus.Collector),
	}
}

func (c *Ctl) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Ctl) RegisterCounter(name, help string) prometheus.Counter {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: PromNamespace,
		Subsystem: c.subsystem,
		Name:      name,
		Help:      help,
	})

	return c.register(name, counter).(prometheus.Counter)
}

func (c *Ctl) RegisterCounterVec(name, help string, labels ...string) *prometheus.CounterVec {
	counterVec := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: PromNamespace,
		Subsystem: c.subsystem,
		Name:      name,
		Help:      help,
	}, labels)

	return c.register(name, counterVec).(*prometheus.CounterVec)
}

func (c *Ctl) RegisterHistogram(name, help string, buckets []float64) prometheus.Histogram {
	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: PromNamespace,
		Subsystem: c.subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	})

	return c.register(name, histogram).(prometheus.Histogram)
}

// register returns the collector already registered under name, if any.
func (c *Ctl) register(name string, collector prometheus.Collector) prometheus.Collector {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.metrics[name]; ok {
		return existing
	}

	c.registry.MustRegister(collector)
	c.metrics[name] = collector

	return collector
}

// WriteTextfile writes every registered metric to path in the Prometheus
// text format. The file is replaced atomically.
func (c *Ctl) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return errors.New().Wrap(errors.ErrWriteStats, err)
	}

	return nil
}

// reason returns the label value used for a rejected input.
func reason(err error) string {
	if code := errors.CodeOf(err); code != "" {
		return string(code)
	}

	return "unknown"
}
