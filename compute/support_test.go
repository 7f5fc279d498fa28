// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package compute

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/xmidt-org/xraydemo/tracing"
)

// fakeBackend pretends every context carries an active trace
type fakeBackend struct {
	lock        sync.Mutex
	annotations []string
	opened      []string
	closed      int
	errors      []error
}

func (fb *fakeBackend) Annotate(_ context.Context, key, value string) bool {
	fb.lock.Lock()
	fb.annotations = append(fb.annotations, key+"="+value)
	fb.lock.Unlock()
	return true
}

func (fb *fakeBackend) BeginSubsegment(ctx context.Context, name string) (context.Context, tracing.Subsegment) {
	fb.lock.Lock()
	fb.opened = append(fb.opened, name)
	fb.lock.Unlock()
	return ctx, fakeSubsegment{fb}
}

type fakeSubsegment struct {
	fb *fakeBackend
}

func (fs fakeSubsegment) AddError(err error) {
	fs.fb.lock.Lock()
	fs.fb.errors = append(fs.fb.errors, err)
	fs.fb.lock.Unlock()
}

func (fs fakeSubsegment) Close() {
	fs.fb.lock.Lock()
	fs.fb.closed++
	fs.fb.lock.Unlock()
}

// newTarget starts a server standing in for the external host
func newTarget(t *testing.T, status int) (*httptest.Server, *int32) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		response.WriteHeader(status)
	}))

	t.Cleanup(server.Close)
	return server, &hits
}

// sleepRecorder replaces time.Sleep
type sleepRecorder struct {
	lock   sync.Mutex
	sleeps []time.Duration
}

func (sr *sleepRecorder) sleep(d time.Duration) {
	sr.lock.Lock()
	sr.sleeps = append(sr.sleeps, d)
	sr.lock.Unlock()
}

// testStore is an in-memory counter.Store that tests can seed and inspect
type testStore struct {
	lock   sync.Mutex
	counts map[string]int64
}

func newTestStore() *testStore {
	return &testStore{counts: make(map[string]int64)}
}

func (ts *testStore) Increment(_ context.Context, key string) (int64, error) {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	ts.counts[key]++
	return ts.counts[key], nil
}

func (ts *testStore) Set(key string, value int64) {
	ts.lock.Lock()
	ts.counts[key] = value
	ts.lock.Unlock()
}

func (ts *testStore) Get(key string) (int64, bool) {
	ts.lock.Lock()
	defer ts.lock.Unlock()

	v, ok := ts.counts[key]
	return v, ok
}
