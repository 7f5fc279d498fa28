// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"
	"sync"
)

// Spanned is implemented by anything that can report the Spans produced on its behalf
type Spanned interface {
	Spans() []Span
}

// Recorder collects the Spans finished during a single request.  It is safe for
// concurrent use.
type Recorder struct {
	lock  sync.Mutex
	spans []Span
}

// Record appends finished Spans
func (r *Recorder) Record(spans ...Span) {
	r.lock.Lock()
	r.spans = append(r.spans, spans...)
	r.lock.Unlock()
}

// Spans returns a copy of the Spans recorded so far, in the order they finished
func (r *Recorder) Spans() []Span {
	r.lock.Lock()
	defer r.lock.Unlock()

	if len(r.spans) == 0 {
		return nil
	}

	copyOf := make([]Span, len(r.spans))
	copy(copyOf, r.spans)
	return copyOf
}

// Err returns a SpanError of all recorded Spans if at least one of them failed.
// Otherwise, it returns nil.
func (r *Recorder) Err() error {
	spans := r.Spans()
	for _, s := range spans {
		if s.Error() != nil {
			return SpanError(spans)
		}
	}

	return nil
}

type recorderKey struct{}

// WithRecorder returns a context that carries the given Recorder
func WithRecorder(ctx context.Context, r *Recorder) context.Context {
	return context.WithValue(ctx, recorderKey{}, r)
}

// GetRecorder returns the Recorder in the context, or nil if there is none
func GetRecorder(ctx context.Context) *Recorder {
	r, _ := ctx.Value(recorderKey{}).(*Recorder)
	return r
}
