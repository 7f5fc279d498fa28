// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package compute

import (
	"context"
	"errors"
	"fmt"

	"github.com/xmidt-org/sallust"
	"github.com/xmidt-org/xraydemo/counter"
	"github.com/xmidt-org/xraydemo/xhttp"
	"go.uber.org/zap"
)

const (
	// ComponentNameOne is the trace annotation of UnitOne
	ComponentNameOne = "xray-demo-handler-1"

	// DefaultTargetURL is the external host UnitOne calls
	DefaultTargetURL = "https://google.fi"

	// TargetURLEnv is the environment variable that overrides DefaultTargetURL in a deployed function
	TargetURLEnv = "TARGET_URL"

	OutboundSubsegment = "google http call"
	WaitOneSubsegment  = "100ms wait and error sometimes"
)

// ErrSomethingFailed is the deliberate failure of UnitOne
var ErrSomethingFailed = errors.New("Something just failed")

// Fails reports whether UnitOne fails for an updated count: once every ten increments,
// when the count ends in 9.
func Fails(count int64) bool {
	return count%10 == 9
}

// UnitOne increments the counter, calls the target URL and waits.  It fails with
// ErrSomethingFailed after the wait when Fails(count) is true.  The increment is kept
// even when the invocation fails.
type UnitOne struct {
	config
	store counter.Store
}

// NewUnitOne creates UnitOne on top of a counter Store
func NewUnitOne(store counter.Store, o ...Option) *UnitOne {
	return &UnitOne{
		config: newConfig(o),
		store:  store,
	}
}

func (u *UnitOne) Name() string {
	return ComponentNameOne
}

func (u *UnitOne) Invoke(ctx context.Context) (r Response, err error) {
	logger := sallust.Get(ctx).With(zap.String("component", ComponentNameOne))
	defer func() {
		u.measures.invoked(ComponentNameOne, err)
		if err != nil {
			logger.Error("invocation failed", zap.Error(err))
		}
	}()

	u.tracer.Annotate(ctx, ComponentNameOne)

	count, err := u.store.Increment(ctx, u.key)
	if err != nil {
		return Response{}, err
	}

	u.measures.Count.Set(float64(count))
	logger.Debug("counter incremented", zap.String("key", u.key), zap.Int64("count", count))

	err = u.tracer.Trace(ctx, OutboundSubsegment, func(ctx context.Context) error {
		return xhttp.GetAndDiscard(ctx, u.client, u.targetURL)
	})

	if err != nil {
		return Response{}, fmt.Errorf("outbound call to %s failed: %w", u.targetURL, err)
	}

	err = u.tracer.Trace(ctx, WaitOneSubsegment, func(context.Context) error {
		u.sleep(u.delay)
		if Fails(count) {
			return ErrSomethingFailed
		}

		return nil
	})

	if err != nil {
		return Response{}, err
	}

	return Response{Result: ResultSuccess, Count: &count}, nil
}
