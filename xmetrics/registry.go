// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"fmt"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is a Prometheus registry and a go-kit metrics.Provider all in one.  The
// Provider methods only hand out metrics that were preregistered from a Module, and
// panic for unknown names or mismatched types.
type Registry interface {
	provider.Provider
	prometheus.Gatherer
	prometheus.Registerer
}

type registry struct {
	*prometheus.Registry
	cache map[string]prometheus.Collector
}

// NewRegistry creates a Registry and preregisters every metric from the given modules.
// Duplicate names are an error.
func NewRegistry(o *Options, modules ...Module) (Registry, error) {
	r := &registry{
		Registry: o.registry(),
		cache:    make(map[string]prometheus.Collector),
	}

	for _, module := range modules {
		for _, m := range module() {
			if _, ok := r.cache[m.Name]; ok {
				return nil, fmt.Errorf("duplicate metric: %s", m.Name)
			}

			c, err := NewCollector(o.namespace(), o.subsystem(), m)
			if err != nil {
				return nil, err
			}

			if err := r.Registry.Register(c); err != nil {
				return nil, fmt.Errorf("unable to register metric %s: %w", m.Name, err)
			}

			r.cache[m.Name] = c
		}
	}

	return r, nil
}

func (r *registry) collector(name string) prometheus.Collector {
	c, ok := r.cache[name]
	if !ok {
		panic(fmt.Errorf("the metric %s was not registered", name))
	}

	return c
}

func (r *registry) NewCounter(name string) metrics.Counter {
	if vec, ok := r.collector(name).(*prometheus.CounterVec); ok {
		return gokitprometheus.NewCounter(vec)
	}

	panic(fmt.Errorf("the metric %s is not a counter", name))
}

func (r *registry) NewGauge(name string) metrics.Gauge {
	if vec, ok := r.collector(name).(*prometheus.GaugeVec); ok {
		return gokitprometheus.NewGauge(vec)
	}

	panic(fmt.Errorf("the metric %s is not a gauge", name))
}

// NewHistogram ignores the bucket count, since buckets come from the Metric descriptor
func (r *registry) NewHistogram(name string, _ int) metrics.Histogram {
	if vec, ok := r.collector(name).(*prometheus.HistogramVec); ok {
		return gokitprometheus.NewHistogram(vec)
	}

	panic(fmt.Errorf("the metric %s is not a histogram", name))
}

func (r *registry) Stop() {
}
