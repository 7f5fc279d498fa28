// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package compute

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/provider"
	"github.com/xmidt-org/xraydemo/tracing"
	"github.com/xmidt-org/xraydemo/xmetrics"
)

// Names
const (
	InvocationCounter   = "invocations_total"
	CounterValueGauge   = "counter_value"
	SubsegmentHistogram = "subsegment_duration_seconds"
)

// Labels
const (
	UnitLabel       = "unit"
	OutcomeLabel    = "outcome"
	SubsegmentLabel = "subsegment"
)

// Label Values
const (
	SuccessOutcome = "success"
	FailureOutcome = "failure"
)

// Metrics returns the Metrics relevant to this package
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       InvocationCounter,
			Type:       xmetrics.CounterType,
			Help:       "Count of compute unit invocations by unit and outcome.",
			LabelNames: []string{UnitLabel, OutcomeLabel},
		},
		{
			Name: CounterValueGauge,
			Type: xmetrics.GaugeType,
			Help: "The last value of the persisted counter seen by this process.",
		},
		{
			Name:       SubsegmentHistogram,
			Type:       xmetrics.HistogramType,
			Help:       "Duration of traced subsegments.",
			Buckets:    []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			LabelNames: []string{SubsegmentLabel, OutcomeLabel},
		},
	}
}

// Measures are the metrics the units report to
type Measures struct {
	Invocations metrics.Counter
	Count       metrics.Gauge
	Subsegments metrics.Histogram
}

// NewMeasures obtains Measures from a provider that has this package's Metrics registered
func NewMeasures(p provider.Provider) Measures {
	return Measures{
		Invocations: p.NewCounter(InvocationCounter),
		Count:       p.NewGauge(CounterValueGauge),
		Subsegments: p.NewHistogram(SubsegmentHistogram, 0),
	}
}

// DiscardMeasures returns Measures that go nowhere
func DiscardMeasures() Measures {
	return Measures{
		Invocations: discard.NewCounter(),
		Count:       discard.NewGauge(),
		Subsegments: discard.NewHistogram(),
	}
}

func outcomeOf(err error) string {
	if err != nil {
		return FailureOutcome
	}

	return SuccessOutcome
}

func (m Measures) invoked(unit string, err error) {
	m.Invocations.With(UnitLabel, unit, OutcomeLabel, outcomeOf(err)).Add(1)
}

// ObserveSpans records the duration of each finished subsegment
func (m Measures) ObserveSpans(spans ...tracing.Span) {
	for _, s := range spans {
		m.Subsegments.With(SubsegmentLabel, s.Name(), OutcomeLabel, outcomeOf(s.Error())).Observe(s.Duration().Seconds())
	}
}
