// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	CounterType   = "counter"
	GaugeType     = "gauge"
	HistogramType = "histogram"
)

// Module is a function type that returns prebuilt metrics.  Packages expose their
// metrics as a Module named Metrics.
type Module func() []Metric

// Metric describes a single metric that will be preregistered
type Metric struct {
	// Name is the required name of this metric
	Name string

	// Type must be one of the type constants in this package
	Type string

	// Help is the help string.  If not supplied, the metric's name is used.
	Help string

	// LabelNames are the Prometheus label names of this metric.  This field is optional.
	LabelNames []string

	// Buckets are the observation buckets of a histogram.  Ignored for other types.
	Buckets []float64
}

// NewCollector creates a Prometheus vector from a Metric descriptor
func NewCollector(namespace, subsystem string, m Metric) (prometheus.Collector, error) {
	if len(m.Name) == 0 {
		return nil, errors.New("a name is required for a metric")
	}

	help := m.Help
	if len(help) == 0 {
		help = m.Name
	}

	switch m.Type {
	case CounterType:
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      m.Name,
			Help:      help,
		}, m.LabelNames), nil

	case GaugeType:
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      m.Name,
			Help:      help,
		}, m.LabelNames), nil

	case HistogramType:
		return prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      m.Name,
			Help:      help,
			Buckets:   m.Buckets,
		}, m.LabelNames), nil

	default:
		return nil, fmt.Errorf("unsupported metric type: %s", m.Type)
	}
}
