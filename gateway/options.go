// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"time"

	"github.com/xmidt-org/sallust"
	"github.com/xmidt-org/xraydemo/compute"
	"github.com/xmidt-org/xraydemo/tracing"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DefaultTimeout bounds each request served by the router.  It matches the timeout of
// the deployed functions.
const DefaultTimeout = 30 * time.Second

// Option configures the gateway
type Option func(*options)

type options struct {
	logger         *zap.Logger
	tracer         *tracing.Tracer
	measures       compute.Measures
	tracerProvider trace.TracerProvider
	timeLayout     string
	timeout        time.Duration
}

func newOptions(o []Option) *options {
	opts := &options{
		logger:   sallust.Default(),
		measures: compute.DiscardMeasures(),
		timeout:  DefaultTimeout,
	}

	for _, option := range o {
		option(opts)
	}

	return opts
}

// WithLogger sets the base logger for requests.  A nil logger means sallust.Default().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		} else {
			o.logger = sallust.Default()
		}
	}
}

// WithTracer sets the Tracer used to open a subsegment around each whole invocation.
// Without one, no such subsegment is opened.
func WithTracer(t *tracing.Tracer) Option {
	return func(o *options) {
		o.tracer = t
	}
}

// WithMeasures sets the metrics that traced subsegment durations are reported to
func WithMeasures(m compute.Measures) Option {
	return func(o *options) {
		o.measures = m
	}
}

// WithTracerProvider sets the OpenTelemetry provider used for server spans of the
// local router.  A nil provider means the global one.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

// WithTimeLayout sets the layout of start times in span headers
func WithTimeLayout(layout string) Option {
	return func(o *options) {
		o.timeLayout = layout
	}
}

// WithTimeout sets the deadline given to each request served by the router.  A
// nonpositive timeout disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}
