// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package xraytracing implements tracing.Backend on top of the AWS X-Ray SDK.
package xraytracing

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go/aws/client"
	"github.com/aws/aws-xray-sdk-go/strategy/ctxmissing"
	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/xmidt-org/xraydemo/tracing"
)

// Backend is the X-Ray tracing.Backend
type Backend struct{}

var _ tracing.Backend = Backend{}

// New configures the X-Ray SDK so that a missing segment is logged instead of panicking,
// and returns the Backend.
func New() (Backend, error) {
	err := xray.Configure(xray.Config{
		ContextMissingStrategy: ctxmissing.NewDefaultLogErrorStrategy(),
	})

	return Backend{}, err
}

// Annotate adds an indexed annotation to the segment or subsegment in the context.
// Lambda facade segments cannot carry annotations, so callers running in Lambda should
// annotate from inside a subsegment.
func (Backend) Annotate(ctx context.Context, key, value string) bool {
	seg := xray.GetSegment(ctx)
	if seg == nil {
		return false
	}

	return seg.AddAnnotation(key, value) == nil
}

// BeginSubsegment opens an X-Ray subsegment.  In Lambda, the SDK builds the facade
// parent segment from the invocation's trace header.
func (Backend) BeginSubsegment(ctx context.Context, name string) (context.Context, tracing.Subsegment) {
	subCtx, seg := xray.BeginSubsegment(ctx, name)
	if seg == nil {
		return ctx, nil
	}

	return subCtx, subsegment{seg}
}

type subsegment struct {
	seg *xray.Segment
}

func (s subsegment) AddError(err error) {
	s.seg.AddError(err)
}

func (s subsegment) Close() {
	s.seg.Close(nil)
}

// InstrumentAWS traces every call made by an AWS SDK client
func InstrumentAWS(c *client.Client) {
	xray.AWS(c)
}

// InstrumentTransport traces outbound HTTP calls made through the given round tripper
func InstrumentTransport(next http.RoundTripper) http.RoundTripper {
	return xray.RoundTripper(next)
}
