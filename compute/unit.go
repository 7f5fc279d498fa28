// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package compute

import (
	"context"
	"time"
)

const (
	// ResultSuccess is the result reported by every successful invocation
	ResultSuccess = "success"

	// DefaultDelay is how long each unit waits inside its delay subsegment
	DefaultDelay = 100 * time.Millisecond
)

// Response is the body of a successful invocation
type Response struct {
	Result string `json:"result" codec:"result"`

	// Count is only reported by UnitOne
	Count *int64 `json:"count,omitempty" codec:"count,omitempty"`
}

// Unit is a single invocable compute unit
type Unit interface {
	// Name is the component name used to annotate traces
	Name() string

	// Invoke runs the unit once.  Errors are not handled by the unit and should fail the
	// invocation.
	Invoke(context.Context) (Response, error)
}
