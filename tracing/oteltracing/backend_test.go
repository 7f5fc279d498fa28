// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package oteltracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/xraydemo/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestProvider() (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)), recorder
}

func testBackendNoActiveTrace(t *testing.T) {
	var (
		assert      = assert.New(t)
		tp, spans   = newTestProvider()
		backend     = New(tp)
		ctx         = context.Background()
		subCtx, sub = backend.BeginSubsegment(ctx, "handler 2 timeout")
	)

	assert.False(backend.Annotate(ctx, tracing.ComponentNameKey, "xray-demo-handler-2"))
	assert.Equal(ctx, subCtx)
	assert.Nil(sub)
	assert.Empty(spans.Ended())
}

func testBackendActiveTrace(t *testing.T) {
	var (
		assert    = assert.New(t)
		require   = require.New(t)
		tp, spans = newTestProvider()
		backend   = New(tp)

		ctx, root = tp.Tracer("test").Start(context.Background(), "GET /ykkonen")
	)

	assert.True(backend.Annotate(ctx, tracing.ComponentNameKey, "xray-demo-handler-1"))

	_, sub := backend.BeginSubsegment(ctx, "100ms wait and error sometimes")
	require.NotNil(sub)
	sub.AddError(errors.New("Something just failed"))
	sub.Close()
	root.End()

	ended := spans.Ended()
	require.Len(ended, 2)

	child := ended[0]
	assert.Equal("100ms wait and error sometimes", child.Name())
	assert.Equal(codes.Error, child.Status().Code)
	assert.Equal("Something just failed", child.Status().Description)
	assert.Equal(root.SpanContext().SpanID(), child.Parent().SpanID())
	assert.NotEmpty(child.Events())

	assert.Contains(ended[1].Attributes(), attribute.String(tracing.ComponentNameKey, "xray-demo-handler-1"))
}

func TestBackend(t *testing.T) {
	t.Run("NoActiveTrace", testBackendNoActiveTrace)
	t.Run("ActiveTrace", testBackendActiveTrace)
}

func TestTracerWithOpenTelemetry(t *testing.T) {
	var (
		assert    = assert.New(t)
		require   = require.New(t)
		tp, spans = newTestProvider()
		tracer    = tracing.NewTracer(tracing.WithBackend(New(tp)))

		ctx, root = tp.Tracer("test").Start(context.Background(), "GET /kakkonen")
	)

	require.NoError(tracer.Trace(ctx, "handler 2 timeout", func(context.Context) error { return nil }))
	root.End()

	ended := spans.Ended()
	require.Len(ended, 2)
	assert.Equal("handler 2 timeout", ended[0].Name())
	assert.Equal(codes.Unset, ended[0].Status().Code)
}
