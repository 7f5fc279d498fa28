// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/xraydemo/compute"
	"github.com/xmidt-org/xraydemo/tracing"
)

type mockUnit struct {
	mock.Mock
}

func (m *mockUnit) Name() string {
	return m.Called().String(0)
}

func (m *mockUnit) Invoke(ctx context.Context) (compute.Response, error) {
	arguments := m.Called(ctx)
	return arguments.Get(0).(compute.Response), arguments.Error(1)
}

// tracedUnit runs a single traced step, the way the real units do
type tracedUnit struct {
	name     string
	tracer   *tracing.Tracer
	response compute.Response
	err      error
}

func (tu tracedUnit) Name() string {
	return tu.name
}

func (tu tracedUnit) Invoke(ctx context.Context) (compute.Response, error) {
	err := tu.tracer.Trace(ctx, "step", func(context.Context) error { return tu.err })
	if err != nil {
		return compute.Response{}, err
	}

	return tu.response, nil
}

type subsegmentRecorder struct {
	opened []string
}

func (sr *subsegmentRecorder) Annotate(context.Context, string, string) bool {
	return true
}

func (sr *subsegmentRecorder) BeginSubsegment(ctx context.Context, name string) (context.Context, tracing.Subsegment) {
	sr.opened = append(sr.opened, name)
	return ctx, nopSubsegment{}
}

type nopSubsegment struct{}

func (nopSubsegment) AddError(error) {}
func (nopSubsegment) Close()         {}
