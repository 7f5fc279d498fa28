// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tracing

import "time"

// Spanner creates Spans
type Spanner interface {
	// Start begins timing the named operation.  The returned closure finishes the Span
	// with the given error.  Only the first call to the closure records anything, and
	// every call returns the same Span.
	Start(string) func(error) Span
}

// SpannerOption configures a Spanner
type SpannerOption func(*spanner)

// Now sets the clock used for the start of each Span.  A nil function is ignored.
func Now(now func() time.Time) SpannerOption {
	return func(sp *spanner) {
		if now != nil {
			sp.now = now
		}
	}
}

// Since sets the function used to compute each Span's duration.  A nil function is ignored.
func Since(since func(time.Time) time.Duration) SpannerOption {
	return func(sp *spanner) {
		if since != nil {
			sp.since = since
		}
	}
}

// NewSpanner returns a Spanner that uses the system clock unless configured otherwise
func NewSpanner(o ...SpannerOption) Spanner {
	sp := &spanner{
		now:   time.Now,
		since: time.Since,
	}

	for _, option := range o {
		option(sp)
	}

	return sp
}

type spanner struct {
	now   func() time.Time
	since func(time.Time) time.Duration
}

func (sp *spanner) Start(name string) func(error) Span {
	s := &span{
		name:  name,
		start: sp.now(),
	}

	return func(err error) Span {
		s.finish(sp.since(s.start), err)
		return s
	}
}
