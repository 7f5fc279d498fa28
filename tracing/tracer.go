// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"
	"fmt"

	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

// ComponentNameKey is the annotation key used to tag traces with the component that produced them
const ComponentNameKey = "componentName"

// Option configures a Tracer
type Option func(*Tracer)

// WithBackend sets the tracing system.  A nil Backend means NopBackend.
func WithBackend(b Backend) Option {
	return func(t *Tracer) {
		if b != nil {
			t.backend = b
		} else {
			t.backend = NopBackend{}
		}
	}
}

// WithSpanner sets the Spanner used to time traced operations
func WithSpanner(sp Spanner) Option {
	return func(t *Tracer) {
		if sp != nil {
			t.spanner = sp
		}
	}
}

// Tracer runs operations inside subsegments of the current trace
type Tracer struct {
	backend Backend
	spanner Spanner
}

// NewTracer builds a Tracer.  Without options, nothing is sent to a tracing system.
func NewTracer(o ...Option) *Tracer {
	t := &Tracer{
		backend: NopBackend{},
		spanner: NewSpanner(),
	}

	for _, option := range o {
		option(t)
	}

	return t
}

// Annotate tags the current trace entity with a component name.  Nothing happens
// outside of an active trace.
func (t *Tracer) Annotate(ctx context.Context, componentName string) {
	if !t.backend.Annotate(ctx, ComponentNameKey, componentName) {
		sallust.Get(ctx).Debug("no active trace to annotate", zap.String(ComponentNameKey, componentName))
	}
}

// Trace runs f inside a subsegment with the given name.  The context passed to f carries
// the subsegment.  If f fails, its error message is added to the subsegment.  Either way
// the subsegment is closed exactly once, and the error from f is returned unchanged.  A
// panic in f is recorded as a failure of the subsegment before it continues to unwind.
func (t *Tracer) Trace(ctx context.Context, name string, f func(context.Context) error) (err error) {
	var (
		subCtx, sub = t.backend.BeginSubsegment(ctx, name)
		finish      = t.spanner.Start(name)
	)

	defer func() {
		r := recover()
		spanErr := err
		if r != nil {
			spanErr = fmt.Errorf("panic: %v", r)
		}

		t.end(ctx, name, sub, finish, spanErr)
		if r != nil {
			panic(r)
		}
	}()

	err = f(subCtx)
	return
}

func (t *Tracer) end(ctx context.Context, name string, sub Subsegment, finish func(error) Span, err error) {
	if sub != nil {
		if err != nil {
			sub.AddError(err)
		}

		sub.Close()
	}

	s := finish(err)
	if r := GetRecorder(ctx); r != nil {
		r.Record(s)
	}

	if err != nil {
		sallust.Get(ctx).Debug("traced operation failed", zap.String("subsegment", name), zap.Duration("duration", s.Duration()), zap.Error(err))
	}
}
