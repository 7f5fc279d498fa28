// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tracing

import "context"

// Subsegment is an open child span in the concrete tracing system
type Subsegment interface {
	// AddError attaches the error's message to this subsegment and marks it as failed
	AddError(error)

	// Close ends this subsegment
	Close()
}

// Backend is the concrete tracing system.  Implementations must treat a context
// without an active trace as a no-op rather than an error.
type Backend interface {
	// Annotate attaches indexed metadata to the current trace entity.  It returns
	// false when there was nothing to annotate.
	Annotate(ctx context.Context, key, value string) bool

	// BeginSubsegment opens a child of the current trace entity.  If the context has
	// no active trace, the original context and a nil Subsegment are returned.
	BeginSubsegment(ctx context.Context, name string) (context.Context, Subsegment)
}

// NopBackend is a Backend that never traces anything
type NopBackend struct{}

func (NopBackend) Annotate(context.Context, string, string) bool {
	return false
}

func (NopBackend) BeginSubsegment(ctx context.Context, _ string) (context.Context, Subsegment) {
	return ctx, nil
}
