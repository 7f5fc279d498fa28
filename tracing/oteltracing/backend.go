// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package oteltracing implements tracing.Backend on top of OpenTelemetry.  Annotations
// become span attributes and subsegments become child spans.
package oteltracing

import (
	"context"

	"github.com/xmidt-org/candlelight"
	"github.com/xmidt-org/xraydemo/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName names the tracer obtained from the provider
const InstrumentationName = "github.com/xmidt-org/xraydemo/tracing/oteltracing"

// Backend is the OpenTelemetry tracing.Backend
type Backend struct {
	tracer trace.Tracer
}

var _ tracing.Backend = Backend{}

// New returns a Backend using the given provider.  A nil provider means the global one.
func New(tp trace.TracerProvider) Backend {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	return Backend{
		tracer: tp.Tracer(InstrumentationName),
	}
}

// NewTracerProvider builds a provider from candlelight configuration, e.g. an OTLP or
// stdout exporter.
func NewTracerProvider(config candlelight.Config) (trace.TracerProvider, error) {
	return candlelight.ConfigureTracerProvider(config)
}

func (b Backend) Annotate(ctx context.Context, key, value string) bool {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return false
	}

	span.SetAttributes(attribute.String(key, value))
	return true
}

// BeginSubsegment starts a child span.  A context without a valid span context has no
// active trace, so nothing is started.
func (b Backend) BeginSubsegment(ctx context.Context, name string) (context.Context, tracing.Subsegment) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, nil
	}

	subCtx, span := b.tracer.Start(ctx, name)
	return subCtx, subsegment{span}
}

type subsegment struct {
	span trace.Span
}

func (s subsegment) AddError(err error) {
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())
}

func (s subsegment) Close() {
	s.span.End()
}
