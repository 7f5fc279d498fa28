// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/xmidt-org/xraydemo/compute"
	"github.com/xmidt-org/xraydemo/tracing"
)

// invoke runs a unit with a Recorder in its context, inside a subsegment named after the
// unit when a Tracer is configured.  Recorded spans are reported to the measures.
func (o *options) invoke(ctx context.Context, unit compute.Unit) (compute.Response, *tracing.Recorder, error) {
	recorder := tracing.GetRecorder(ctx)
	if recorder == nil {
		recorder = new(tracing.Recorder)
		ctx = tracing.WithRecorder(ctx, recorder)
	}

	var (
		response compute.Response
		err      error
	)

	if o.tracer != nil {
		err = o.tracer.Trace(ctx, unit.Name(), func(ctx context.Context) error {
			var invokeErr error
			response, invokeErr = unit.Invoke(ctx)
			return invokeErr
		})
	} else {
		response, err = unit.Invoke(ctx)
	}

	o.measures.ObserveSpans(recorder.Spans()...)
	return response, recorder, err
}
