// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package counter

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (ms *MemoryStore) set(key string, value int64) {
	ms.lock.Lock()
	ms.counts[key] = value
	ms.lock.Unlock()
}

func (ms *MemoryStore) get(key string) (int64, bool) {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	v, ok := ms.counts[key]
	return v, ok
}

func testMemoryStoreInitialize(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)
		store   = NewMemoryStore()
	)

	_, ok := store.get(DefaultKey)
	assert.False(ok)

	count, err := store.Increment(context.Background(), DefaultKey)
	require.NoError(err)
	assert.Equal(int64(1), count)

	count, err = store.Increment(context.Background(), DefaultKey)
	require.NoError(err)
	assert.Equal(int64(2), count)

	other, err := store.Increment(context.Background(), "other")
	require.NoError(err)
	assert.Equal(int64(1), other)
}

func testMemoryStoreSet(t *testing.T) {
	var (
		assert = assert.New(t)
		store  = NewMemoryStore()
	)

	store.set(DefaultKey, 8)
	count, err := store.Increment(context.Background(), DefaultKey)
	assert.NoError(err)
	assert.Equal(int64(9), count)

	value, ok := store.get(DefaultKey)
	assert.True(ok)
	assert.Equal(int64(9), value)
}

func testMemoryStoreConcurrent(t *testing.T) {
	const n = 250

	var (
		assert = assert.New(t)
		store  = NewMemoryStore()
		wg     sync.WaitGroup
		seen   = make(chan int64, n)
	)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			count, err := store.Increment(context.Background(), DefaultKey)
			assert.NoError(err)
			seen <- count
		}()
	}

	wg.Wait()
	close(seen)

	unique := make(map[int64]bool, n)
	for count := range seen {
		assert.False(unique[count], "count %d returned twice", count)
		unique[count] = true
	}

	value, _ := store.get(DefaultKey)
	assert.Equal(int64(n), value)
	assert.Len(unique, n)
}

func TestMemoryStore(t *testing.T) {
	t.Run("Initialize", testMemoryStoreInitialize)
	t.Run("Set", testMemoryStoreSet)
	t.Run("Concurrent", testMemoryStoreConcurrent)
}
