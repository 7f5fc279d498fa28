// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package tracing wraps the units of work of a request in trace subsegments.

A Tracer sits in front of a Backend, which is the concrete tracing system (AWS X-Ray
or OpenTelemetry).  Tracer.Trace opens a subsegment, runs an operation, records any
error on the subsegment and closes it.  Every traced operation also yields a Span, a
small immutable record of the name, timing and outcome, which is handed to the
Recorder carried in the context, if any.

When the context carries no active trace, the Backend hands out no subsegment and
the Tracer only records Spans.  Tracing never fails a request.
*/
package tracing
