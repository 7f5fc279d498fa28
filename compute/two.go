// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package compute

import (
	"context"

	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	// ComponentNameTwo is the trace annotation of UnitTwo
	ComponentNameTwo = "xray-demo-handler-2"

	WaitTwoSubsegment = "handler 2 timeout"
)

// UnitTwo waits and succeeds
type UnitTwo struct {
	config
}

// NewUnitTwo creates UnitTwo.  Only the tracer, delay, sleep and measures options apply.
func NewUnitTwo(o ...Option) *UnitTwo {
	return &UnitTwo{
		config: newConfig(o),
	}
}

func (u *UnitTwo) Name() string {
	return ComponentNameTwo
}

func (u *UnitTwo) Invoke(ctx context.Context) (Response, error) {
	u.tracer.Annotate(ctx, ComponentNameTwo)

	err := u.tracer.Trace(ctx, WaitTwoSubsegment, func(context.Context) error {
		u.sleep(u.delay)
		return nil
	})

	u.measures.invoked(ComponentNameTwo, err)
	if err != nil {
		sallust.Get(ctx).Error("invocation failed", zap.String("component", ComponentNameTwo), zap.Error(err))
		return Response{}, err
	}

	return Response{Result: ResultSuccess}, nil
}
