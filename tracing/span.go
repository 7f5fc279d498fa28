// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"sync/atomic"
	"time"
)

// Span is the record of a single traced operation.  A Span is produced by the closure
// returned from Spanner.Start and does not change once that closure has been called.
type Span interface {
	// Name is the subsegment name of the operation
	Name() string

	// Start is when the operation began
	Start() time.Time

	// Duration is how long the operation ran.  It is fixed by the first call to the
	// finishing closure.
	Duration() time.Duration

	// Error is the error the operation returned, or nil on success
	Error() error
}

type span struct {
	name     string
	start    time.Time
	duration time.Duration
	err      error

	finished uint32
}

func (s *span) Name() string {
	return s.name
}

func (s *span) Start() time.Time {
	return s.start
}

func (s *span) Duration() time.Duration {
	return s.duration
}

func (s *span) Error() error {
	return s.err
}

// finish records the outcome.  Only the first call has any effect.
func (s *span) finish(duration time.Duration, err error) {
	if atomic.CompareAndSwapUint32(&s.finished, 0, 1) {
		s.duration = duration
		s.err = err
	}
}
