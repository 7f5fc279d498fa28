// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Annotate(ctx context.Context, key, value string) bool {
	return m.Called(ctx, key, value).Bool(0)
}

func (m *mockBackend) BeginSubsegment(ctx context.Context, name string) (context.Context, Subsegment) {
	arguments := m.Called(ctx, name)
	sub, _ := arguments.Get(1).(Subsegment)
	return arguments.Get(0).(context.Context), sub
}

type mockSubsegment struct {
	mock.Mock
}

func (m *mockSubsegment) AddError(err error) {
	m.Called(err)
}

func (m *mockSubsegment) Close() {
	m.Called()
}
