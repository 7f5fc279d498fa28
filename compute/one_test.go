// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package compute

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/xraydemo/counter"
	"github.com/xmidt-org/xraydemo/tracing"
)

var _ Unit = (*UnitOne)(nil)

type failingStore struct {
	err error
}

func (fs failingStore) Increment(context.Context, string) (int64, error) {
	return 0, fs.err
}

func TestFails(t *testing.T) {
	assert := assert.New(t)
	for count := int64(0); count < 100; count++ {
		assert.Equal(count%10 == 9, Fails(count), "count %d", count)
	}
}

func testUnitOneSuccess(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		store        = newTestStore()
		target, hits = newTarget(t, http.StatusOK)
		backend      = new(fakeBackend)
		sleeps       = new(sleepRecorder)
		recorder     = new(tracing.Recorder)
		ctx          = tracing.WithRecorder(context.Background(), recorder)

		unit = NewUnitOne(
			store,
			WithTracer(tracing.NewTracer(tracing.WithBackend(backend))),
			WithClient(target.Client()),
			WithTargetURL(target.URL),
			WithSleep(sleeps.sleep),
		)
	)

	assert.Equal(ComponentNameOne, unit.Name())

	response, err := unit.Invoke(ctx)
	require.NoError(err)
	assert.Equal(ResultSuccess, response.Result)
	require.NotNil(response.Count)
	assert.Equal(int64(1), *response.Count)

	body, err := json.Marshal(response)
	require.NoError(err)
	assert.JSONEq(`{"result":"success","count":1}`, string(body))

	assert.Equal(int32(1), *hits)
	assert.Equal([]string{"componentName=xray-demo-handler-1"}, backend.annotations)
	assert.Equal([]string{OutboundSubsegment, WaitOneSubsegment}, backend.opened)
	assert.Equal(2, backend.closed)
	assert.Empty(backend.errors)
	assert.Equal(DefaultDelay, sleeps.sleeps[0])
	assert.Len(recorder.Spans(), 2)

	value, ok := store.Get(counter.DefaultKey)
	assert.True(ok)
	assert.Equal(int64(1), value)
}

func testUnitOneFailureAtNine(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		store     = newTestStore()
		target, _ = newTarget(t, http.StatusOK)
		backend   = new(fakeBackend)

		unit = NewUnitOne(
			store,
			WithTracer(tracing.NewTracer(tracing.WithBackend(backend))),
			WithClient(target.Client()),
			WithTargetURL(target.URL),
			WithSleep(func(time.Duration) {}),
		)
	)

	store.Set(counter.DefaultKey, 8)
	response, err := unit.Invoke(context.Background())
	assert.True(err == ErrSomethingFailed)
	assert.Equal(Response{}, response)

	value, _ := store.Get(counter.DefaultKey)
	assert.Equal(int64(9), value, "the increment must persist when the invocation fails")

	require.Len(backend.errors, 1)
	assert.Equal(ErrSomethingFailed, backend.errors[0])
	assert.Equal(2, backend.closed)

	response, err = unit.Invoke(context.Background())
	require.NoError(err)
	require.NotNil(response.Count)
	assert.Equal(int64(10), *response.Count)
}

func testUnitOneSequence(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		store     = newTestStore()
		target, _ = newTarget(t, http.StatusOK)
		unit      = NewUnitOne(store, WithClient(target.Client()), WithTargetURL(target.URL), WithDelay(0))

		counts   []int64
		failures []int
	)

	for call := 1; call <= 10; call++ {
		response, err := unit.Invoke(context.Background())
		if err != nil {
			assert.Equal(ErrSomethingFailed, err)
			failures = append(failures, call)
			continue
		}

		require.NotNil(response.Count)
		counts = append(counts, *response.Count)
	}

	assert.Equal([]int{9}, failures)
	assert.Equal([]int64{1, 2, 3, 4, 5, 6, 7, 8, 10}, counts)
}

func testUnitOneConcurrent(t *testing.T) {
	const n = 100

	var (
		assert = assert.New(t)

		store     = newTestStore()
		target, _ = newTarget(t, http.StatusOK)
		unit      = NewUnitOne(store, WithClient(target.Client()), WithTargetURL(target.URL), WithDelay(0))

		wg       sync.WaitGroup
		lock     sync.Mutex
		failures int
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := unit.Invoke(context.Background()); err != nil {
				lock.Lock()
				failures++
				lock.Unlock()
			}
		}()
	}

	wg.Wait()

	value, _ := store.Get(counter.DefaultKey)
	assert.Equal(int64(n), value)
	assert.Equal(n/10, failures)
}

func testUnitOneOutboundFailure(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		store     = newTestStore()
		target, _ = newTarget(t, http.StatusBadGateway)
		backend   = new(fakeBackend)
		sleeps    = new(sleepRecorder)

		unit = NewUnitOne(
			store,
			WithTracer(tracing.NewTracer(tracing.WithBackend(backend))),
			WithClient(target.Client()),
			WithTargetURL(target.URL),
			WithSleep(sleeps.sleep),
		)
	)

	_, err := unit.Invoke(context.Background())
	require.Error(err)
	assert.False(errors.Is(err, ErrSomethingFailed))
	assert.Equal([]string{OutboundSubsegment}, backend.opened)
	assert.Equal(1, backend.closed)
	assert.Empty(sleeps.sleeps)

	value, _ := store.Get(counter.DefaultKey)
	assert.Equal(int64(1), value)
}

func testUnitOneStoreFailure(t *testing.T) {
	var (
		assert        = assert.New(t)
		expectedError = errors.New("expected")
		backend       = new(fakeBackend)
		unit          = NewUnitOne(failingStore{expectedError}, WithTracer(tracing.NewTracer(tracing.WithBackend(backend))))
	)

	_, err := unit.Invoke(context.Background())
	assert.Equal(expectedError, err)
	assert.Empty(backend.opened)
}

func TestUnitOne(t *testing.T) {
	t.Run("Success", testUnitOneSuccess)
	t.Run("FailureAtNine", testUnitOneFailureAtNine)
	t.Run("Sequence", testUnitOneSequence)
	t.Run("Concurrent", testUnitOneConcurrent)
	t.Run("OutboundFailure", testUnitOneOutboundFailure)
	t.Run("StoreFailure", testUnitOneStoreFailure)
}
